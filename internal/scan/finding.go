package scan

import "fmt"

// Kind classifies a diagnostic.
type Kind int

const (
	KindStyle Kind = iota + 1
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding reported against one line of a file.
type Diagnostic struct {
	Kind        Kind
	Description string
	Line        int
	Path        string
}

// String renders the diagnostic in the fixed one-line output format.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at line %d in \"%s\"", d.Kind, d.Description, d.Line, d.Path)
}
