package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ppiankov/stylecheck/internal/config"
)

// resolveColor decides whether labels are colored for the given mode.
func resolveColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto, "":
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("invalid color %q (use auto, always, or never)", mode)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
