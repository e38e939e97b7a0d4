package scan

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	commentOpen  = "/*"
	commentClose = "*/"
	lintMarker   = "/*lint"
)

type commentMode int

const (
	modeStart commentMode = iota
	modeInComment
)

var (
	// closeAtEndRe also covers a line holding only the marker, e.g. " */".
	closeAtEndRe = regexp.MustCompile(`^(.*\*/)\s*$`)
	decorationRe = regexp.MustCompile(`^\*\s*`)
)

// commentTracker accumulates the text of block comments across lines.
type commentTracker struct {
	mode commentMode
	buf  []string
}

// feed consumes one masked line. done is true when a comment was completed
// on this line, in which case comment holds its full text. code is true when
// the line carries no comment at all and must go through the code checks.
func (t *commentTracker) feed(line string) (comment string, done, code bool) {
	if t.mode == modeInComment {
		return t.continueComment(line)
	}

	idx := strings.Index(line, commentOpen)
	if idx < 0 {
		return "", false, true
	}
	rest := line[idx:]
	if end := strings.Index(rest[len(commentOpen):], commentClose); end >= 0 {
		return rest[:len(commentOpen)+end+len(commentClose)], true, false
	}
	t.mode = modeInComment
	t.buf = append(t.buf[:0], rest)
	return "", false, false
}

func (t *commentTracker) continueComment(line string) (string, bool, bool) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)

	if m := closeAtEndRe.FindStringSubmatch(s); m != nil {
		t.buf = append(t.buf, m[1])
		return t.finish(), true, false
	}

	t.buf = append(t.buf, decorationRe.ReplaceAllString(s, ""))
	return "", false, false
}

func (t *commentTracker) finish() string {
	text := strings.Join(t.buf, " ")
	t.buf = t.buf[:0]
	t.mode = modeStart
	return text
}
