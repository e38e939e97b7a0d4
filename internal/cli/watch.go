package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/stylecheck/internal/config"
	"github.com/ppiankov/stylecheck/internal/scan"
	"github.com/ppiankov/stylecheck/internal/watch"
)

func newWatchCmd() *cobra.Command {
	var (
		color    string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-check a file every time it changes",
		Long:  "Check the file once, then check it again after each write until interrupted. Every pass is a complete scan of the file.",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSettings(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("color") {
				color = cfg.ColorMode()
			}
			if !cmd.Flags().Changed("debounce") {
				debounce = cfg.Debounce()
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			useColor, err := resolveColor(color, out)
			if err != nil {
				return err
			}
			formatter := scan.NewTextFormatter(useColor)

			path := args[0]
			rescan := func() error {
				diags, err := scan.ScanFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(errOut, "--- %s: %d diagnostics (%s)\n", path, len(diags), time.Now().Format(time.TimeOnly))
				return formatter.Format(out, diags)
			}

			if err := rescan(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watch.Run(ctx, watch.Config{
				Path:     path,
				Debounce: debounce,
				OnChange: rescan,
			})
		},
	}

	cmd.Flags().StringVar(&color, "color", config.ColorAuto, "color labels: auto, always, never")
	cmd.Flags().DurationVar(&debounce, "debounce", config.DefaultDebounce, "delay between a change and the rescan")

	return cmd
}
