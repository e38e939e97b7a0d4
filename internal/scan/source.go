package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// lineSource yields raw lines in order, terminators included.
type lineSource struct {
	r *bufio.Reader
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{r: bufio.NewReader(r)}
}

// next returns the next raw line. ok is false once the input is exhausted.
func (s *lineSource) next() (line string, ok bool, err error) {
	line, err = s.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return line, line != "", nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read source: %w", err)
	}
	return line, true, nil
}

func hasTerminator(raw string) bool {
	return strings.HasSuffix(raw, "\n")
}
