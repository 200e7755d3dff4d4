// Package pattern translates shell-style globs ("?" and "*") into anchored
// basename matchers.
package pattern

import (
	"regexp"
	"strings"
)

// Pattern is a compiled glob. It matches whole basenames only.
type Pattern struct {
	glob string
	re   *regexp.Regexp
}

// Translate compiles a glob. "?" matches exactly one character, "*" matches any
// run of characters including the empty one, and every other character is
// taken literally. Every input is a valid glob.
func Translate(glob string) *Pattern {
	return &Pattern{
		glob: glob,
		re:   regexp.MustCompile(Expr(glob)),
	}
}

// Expr returns the anchored regular expression a glob translates to.
func Expr(glob string) string {
	var b strings.Builder
	b.WriteString(`(?s)^(?:`)
	for _, r := range glob {
		switch r {
		case '?':
			b.WriteString(".")
		case '*':
			b.WriteString(".*")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`)$`)
	return b.String()
}

// Glob returns the source glob.
func (p *Pattern) Glob() string { return p.glob }

// Match reports whether name matches the glob in full.
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

func (p *Pattern) String() string { return p.glob }

// Set is a list of patterns combined with logical OR.
type Set []*Pattern

// TranslateAll compiles every glob into a Set, preserving order.
func TranslateAll(globs []string) Set {
	set := make(Set, 0, len(globs))
	for _, g := range globs {
		set = append(set, Translate(g))
	}
	return set
}

// MatchAny reports whether any pattern matches name. An empty set matches nothing.
func (s Set) MatchAny(name string) bool {
	for _, p := range s {
		if p.Match(name) {
			return true
		}
	}
	return false
}
