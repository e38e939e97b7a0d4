package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/stylecheck/internal/config"
	"github.com/ppiankov/stylecheck/internal/scan"
)

// checkOptions carries the flags shared by the root command and check.
type checkOptions struct {
	color  string
	strict bool
}

func (o *checkOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.color, "color", config.ColorAuto, "color labels: auto, always, never")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "exit with status 2 when any diagnostic is emitted")
}

// run scans path and prints its diagnostics. Settings from the config file
// apply unless the matching flag was set explicitly.
func (o *checkOptions) run(cmd *cobra.Command, path string) error {
	cfg, err := config.LoadSettings(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	color, strict := o.color, o.strict
	if !cmd.Flags().Changed("color") {
		color = cfg.ColorMode()
	}
	if !cmd.Flags().Changed("strict") && cfg.Strict {
		strict = true
	}

	w := cmd.OutOrStdout()
	useColor, err := resolveColor(color, w)
	if err != nil {
		return err
	}

	diags, err := scan.ScanFile(path)
	if err != nil {
		return err
	}
	if err := scan.NewTextFormatter(useColor).Format(w, diags); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}

	if strict && len(diags) > 0 {
		return &FindingsError{Path: path, Count: len(diags)}
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check one C source file and print its diagnostics",
		Long:  "Scan a single source file and print one line per diagnostic to stdout. The exit status does not depend on the diagnostics unless strict mode is enabled.",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}
	opts.addFlags(cmd)

	return cmd
}
