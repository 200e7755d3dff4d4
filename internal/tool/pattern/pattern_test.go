package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_Star(t *testing.T) {
	p := Translate("*.txt")

	assert.True(t, p.Match("a.txt"))
	assert.True(t, p.Match("b.c.txt"))
	assert.True(t, p.Match(".txt"))
	assert.False(t, p.Match("a.txt2"))
	assert.False(t, p.Match("dir/a.txt2"))
}

func TestTranslate_QuestionMark(t *testing.T) {
	p := Translate("file?.log")

	assert.True(t, p.Match("file1.log"))
	assert.False(t, p.Match("file12.log"))
	assert.False(t, p.Match("file.log"))
}

func TestTranslate_QuestionMarkIsOneRune(t *testing.T) {
	p := Translate("?.md")

	assert.True(t, p.Match("文.md"))
	assert.True(t, p.Match("🚀.md"))
	assert.False(t, p.Match("ab.md"))
}

func TestTranslate_MetacharactersAreLiteral(t *testing.T) {
	tests := []struct {
		glob    string
		match   []string
		noMatch []string
	}{
		{glob: "a.c", match: []string{"a.c"}, noMatch: []string{"abc"}},
		{glob: "[ab]", match: []string{"[ab]"}, noMatch: []string{"a", "b"}},
		{glob: "x+y", match: []string{"x+y"}, noMatch: []string{"xxy"}},
		{glob: "(v1)|v2", match: []string{"(v1)|v2"}, noMatch: []string{"v2", "v1"}},
		{glob: "cost$^", match: []string{"cost$^"}, noMatch: []string{"cost"}},
		{glob: `back\*`, match: []string{`back\`, `back\slash`}, noMatch: []string{"back"}},
		{glob: "{a,b}", match: []string{"{a,b}"}, noMatch: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.glob, func(t *testing.T) {
			p := Translate(tt.glob)
			for _, name := range tt.match {
				assert.True(t, p.Match(name), "expected %q to match %q", tt.glob, name)
			}
			for _, name := range tt.noMatch {
				assert.False(t, p.Match(name), "expected %q not to match %q", tt.glob, name)
			}
		})
	}
}

func TestTranslate_EmptyGlobMatchesOnlyEmpty(t *testing.T) {
	p := Translate("")

	assert.True(t, p.Match(""))
	assert.False(t, p.Match("a"))
}

func TestTranslate_NewlineInName(t *testing.T) {
	assert.True(t, Translate("a*b").Match("a\nb"))
}

func TestExpr(t *testing.T) {
	assert.Equal(t, `(?s)^(?:file.\.log)$`, Expr("file?.log"))
	assert.Equal(t, `(?s)^(?:.*\.txt)$`, Expr("*.txt"))
}

func TestSet_MatchAny(t *testing.T) {
	set := TranslateAll([]string{"*.php", "*.htm*"})

	assert.True(t, set.MatchAny("index.php"))
	assert.True(t, set.MatchAny("page.html"))
	assert.False(t, set.MatchAny("style.css"))
	assert.Equal(t, "*.php", set[0].Glob())
}

func TestSet_EmptyMatchesNothing(t *testing.T) {
	var set Set
	assert.False(t, set.MatchAny("anything"))
}
