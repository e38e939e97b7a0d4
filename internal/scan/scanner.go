package scan

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// State holds everything a scan mutates while walking one file.
// A State is owned by a single scan and must not be shared.
type State struct {
	path     string
	line     int
	blankRun int
	comments commentTracker

	// pending holds a comment completed on the previous line. It is checked
	// when the next line arrives, never on the line that closed it.
	pending []string

	commentCheckers []Checker
	codeCheckers    []Checker
	diags           []Diagnostic
}

// NewState creates the scan state for the file at path.
func NewState(path string) *State {
	return &State{
		path:            path,
		pending:         make([]string, 0, 1),
		commentCheckers: CommentCheckers(),
		codeCheckers:    CodeCheckers(),
	}
}

// Step processes one raw line, terminator included.
func (s *State) Step(raw string) {
	s.line++
	s.checkPending()

	if !hasTerminator(raw) {
		s.report(KindError, "malformed EOL")
	}

	text := stripEOL(raw)
	if hasTrailingSpace(text) {
		s.report(KindStyle, "detected trailing spaces")
	}
	if strings.Contains(text, "\t") {
		s.report(KindStyle, "detected TAB")
		text = expandFirstTab(text)
	}

	if isBlank(text) {
		s.blankRun++
		if s.blankRun == 2 {
			s.report(KindStyle, "detected multiple empty lines")
		}
		return
	}
	s.blankRun = 0

	text = maskString(text)
	comment, done, code := s.comments.feed(text)
	if done {
		s.pending = append(s.pending[:0], comment)
	}
	if code {
		s.run(s.codeCheckers, text)
	}
}

// Diagnostics returns the diagnostics in the order they were produced.
func (s *State) Diagnostics() []Diagnostic {
	return s.diags
}

// Lines returns the number of lines processed so far.
func (s *State) Lines() int {
	return s.line
}

func (s *State) checkPending() {
	if len(s.pending) == 0 {
		return
	}
	comment := s.pending[0]
	s.pending = s.pending[:0]

	if strings.HasPrefix(comment, lintMarker) {
		return
	}
	s.run(s.commentCheckers, comment)
}

func (s *State) run(checkers []Checker, text string) {
	for _, c := range checkers {
		for _, msg := range c.Run(text) {
			s.report(KindStyle, msg)
		}
	}
}

func (s *State) report(kind Kind, description string) {
	s.diags = append(s.diags, Diagnostic{
		Kind:        kind,
		Description: description,
		Line:        s.line,
		Path:        s.path,
	})
}

// Scan reads r to the end and returns every diagnostic for it, attributing
// them to path. On a read error no diagnostics are returned.
//
// A comment closed on the final line is never checked since no following
// line exists to trigger it.
func Scan(r io.Reader, path string) ([]Diagnostic, error) {
	src := newLineSource(r)
	state := NewState(path)

	for {
		raw, ok, err := src.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		state.Step(raw)
	}

	if len(state.pending) > 0 {
		slog.Debug("comment on last line left unchecked", "path", path, "line", state.Lines())
	}
	slog.Debug("scan complete", "path", path, "lines", state.Lines(), "diagnostics", len(state.diags))
	return state.Diagnostics(), nil
}

// ScanFile opens path and scans it.
func ScanFile(path string) ([]Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Scan(f, path)
}
