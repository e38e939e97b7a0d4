package scan

import "regexp"

// Checker is the interface all pattern checks implement.
// Run returns the description of every violation found in text, in order.
type Checker interface {
	ID() string
	Category() string
	Messages() []string
	Run(text string) []string
}

// CommentCheckers returns the checks applied to a completed block comment.
// Each one is evaluated independently.
func CommentCheckers() []Checker {
	return []Checker{
		&patternCheck{id: "glued-doxygen-back-comment", cat: "comment",
			re: regexp.MustCompile(`^/\*\*<\S`), msg: "glued doxygen back-comment start"},
		&patternCheck{id: "glued-doxygen-comment", cat: "comment",
			re: regexp.MustCompile(`^/\*\*[^\s<]`), msg: "glued doxygen comment start"},
		&patternCheck{id: "glued-comment", cat: "comment",
			re: regexp.MustCompile(`^/\*[^\s*=]`), msg: "glued comment start"},
		&patternCheck{id: "lower-case-comment", cat: "comment",
			re: regexp.MustCompile(`^/\*\s*[a-z]`), msg: "lower case comment start"},
	}
}

// CodeCheckers returns the checks applied to a non-blank code line.
// Each one is evaluated independently; the operator chain reports at most
// one violation per line.
func CodeCheckers() []Checker {
	return []Checker{
		&patternCheck{id: "line-comment", cat: "code",
			re: regexp.MustCompile(`//`), msg: "detected // comment"},
		&patternCheck{id: "comma-spacing", cat: "code",
			re: regexp.MustCompile(`,\S`), msg: "comma not followed by space"},
		&patternCheck{id: "loose-semicolon", cat: "code",
			re: regexp.MustCompile(`\S\s+;`), msg: "loose semicolon"},

		// keywords
		gluedKeyword("glued-if", `\bif\(`, "if"),
		gluedKeyword("glued-for", `\bfor\(`, "for"),
		gluedKeyword("glued-while", `\bwhile\(`, "while"),
		gluedKeyword("glued-switch", `\bswitch\(`, "switch"),
		gluedKeyword("glued-do-while", `\)while\b`, "while"),
		gluedKeyword("glued-do", `\bdo\{`, "do"),

		// parentheses and braces
		&patternCheck{id: "loose-open-paren", cat: "code",
			re: regexp.MustCompile(`\(\s`), msg: "loose '('"},
		&patternCheck{id: "loose-close-paren", cat: "code",
			re: regexp.MustCompile(`\S\s+\)`), msg: "loose ')'"},
		&patternCheck{id: "glued-left-brace", cat: "code",
			re: regexp.MustCompile(`[)\w]\{`), msg: "glued left brace"},
		&patternCheck{id: "glued-right-brace", cat: "code",
			re: regexp.MustCompile(`\}\w`), msg: "glued right brace"},

		operatorChain(),
	}
}

// AllCheckers returns the comment checks followed by the code checks.
func AllCheckers() []Checker {
	return append(CommentCheckers(), CodeCheckers()...)
}

const (
	// compoundOp matches <<=, >>= and the two-character operators ending in '='.
	compoundOp = `(?:<<=|>>=|[<>=!+\-*/%&|^]=)`
	// operand matches a character that is neither space nor operator glyph.
	operand = `[^\s<>=!+\-*/%&|^]`
	logicalOp = `(?:&&|\|\||\^\^)`
)

func operatorChain() *chainCheck {
	return &chainCheck{id: "operator-spacing", cat: "operator", links: []patternCheck{
		{re: regexp.MustCompile(operand + compoundOp + `|` + compoundOp + `\S`),
			msg: "glued operator (1)"},
		{re: regexp.MustCompile(`=[^\s=]`),
			msg: "glued assignment/comparison operator (2)"},
		{re: regexp.MustCompile(operand + `=`),
			msg: "glued assignment/comparison operator (3)"},
		{re: regexp.MustCompile(`(?:<<|>>)[^\s=]`),
			msg: "glued operator (4)"},
		{re: regexp.MustCompile(`\S` + logicalOp),
			msg: "glued logical operator (1)"},
		{re: regexp.MustCompile(logicalOp + `\S`),
			msg: "glued logical operator (2)"},
	}}
}
