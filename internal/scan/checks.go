package scan

import (
	"fmt"
	"regexp"
)

// patternCheck is a generic checker that reports msg when re matches.
type patternCheck struct {
	id  string
	cat string
	re  *regexp.Regexp
	msg string
}

func (c *patternCheck) ID() string         { return c.id }
func (c *patternCheck) Category() string   { return c.cat }
func (c *patternCheck) Messages() []string { return []string{c.msg} }

func (c *patternCheck) Run(text string) []string {
	if !c.re.MatchString(text) {
		return nil
	}
	return []string{c.msg}
}

func gluedKeyword(id, pattern, keyword string) *patternCheck {
	return &patternCheck{
		id:  id,
		cat: "code",
		re:  regexp.MustCompile(pattern),
		msg: fmt.Sprintf("glued %q", keyword),
	}
}

// chainCheck evaluates its links in order and stops at the first match.
type chainCheck struct {
	id    string
	cat   string
	links []patternCheck
}

func (c *chainCheck) ID() string       { return c.id }
func (c *chainCheck) Category() string { return c.cat }

func (c *chainCheck) Messages() []string {
	msgs := make([]string, 0, len(c.links))
	for _, l := range c.links {
		msgs = append(msgs, l.msg)
	}
	return msgs
}

func (c *chainCheck) Run(text string) []string {
	for i := range c.links {
		if found := c.links[i].Run(text); found != nil {
			return found
		}
	}
	return nil
}
