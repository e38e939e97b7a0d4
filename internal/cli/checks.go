package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/stylecheck/internal/scan"
)

func newChecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the pattern checks in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, c := range scan.AllCheckers() {
				id, cat := c.ID(), c.Category()
				for _, msg := range c.Messages() {
					if _, err := fmt.Fprintf(w, "%-28s %-9s %s\n", id, cat, msg); err != nil {
						return err
					}
					// chain links share one id
					id, cat = "", ""
				}
			}
			return nil
		},
	}
}
