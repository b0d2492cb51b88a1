package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/juliandroske/rdg/pkg"
)

type lineKind int

const (
	lineInvalid lineKind = iota
	lineBlank
	lineComment
	lineCall
)

// call is one parsed function-call line: a case-folded function name
// and its trimmed, case-folded argument tokens.
type call struct {
	name string
	args []string
}

// <identifier>(<args>) with the identifier restricted to letters,
// digits, and underscore. The argument body may not itself contain
// parentheses, so a stray ')' or '(' fails the match instead of
// leaking into an argument token. Whitespace around the call is
// trimmed first.
var callPattern = regexp.MustCompile(`^([A-Za-z0-9_]+)\s*\(([^()]*)\)$`)

// parseLine classifies one source line. Comment lines start with '#'
// or ';' after optional leading whitespace. A non-blank, non-comment
// line that does not match the call grammar is a syntax error.
func parseLine(raw string) (lineKind, call, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return lineBlank, call{}, nil
	}
	if trimmed[0] == '#' || trimmed[0] == ';' {
		return lineComment, call{}, nil
	}

	m := callPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return lineInvalid, call{}, fmt.Errorf("%w: expected name(args)", pkg.ErrSyntax)
	}

	c := call{name: strings.ToLower(m[1])}
	if body := strings.TrimSpace(m[2]); body != "" {
		parts := strings.Split(body, ",")
		c.args = make([]string, len(parts))
		for i, p := range parts {
			c.args[i] = strings.ToLower(strings.TrimSpace(p))
		}
	}
	return lineCall, c, nil
}
