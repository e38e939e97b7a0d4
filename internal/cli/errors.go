package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError reports a malformed invocation. Nothing has been read yet.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// FindingsError is returned in strict mode when diagnostics were emitted.
type FindingsError struct {
	Path  string
	Count int
}

func (e *FindingsError) Error() string {
	return fmt.Sprintf("%s: %d diagnostics", e.Path, e.Count)
}

// exactlyOneFile accepts a single positional source path.
func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Usage: cmd.UseLine()}
	}
	return nil
}
