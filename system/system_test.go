package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/sysutil/internal/testing/testhelpers"
)

func TestParseRmArgs(t *testing.T) {
	dto, err := parseRmArgs([]string{"-rf", "a", "-r"})
	require.NoError(t, err)
	assert.True(t, dto.Recursive)
	assert.True(t, dto.Force)
	assert.Equal(t, []string{"a", "-r"}, dto.Paths)

	dto, err = parseRmArgs([]string{"-r", "-f", "--", "-r"})
	require.NoError(t, err)
	assert.True(t, dto.Recursive)
	assert.Equal(t, []string{"-r"}, dto.Paths)

	dto, err = parseRmArgs([]string{"--recursive", "a"})
	require.NoError(t, err)
	assert.True(t, dto.Recursive)
	assert.False(t, dto.Force)

	_, err = parseRmArgs([]string{"-x", "a"})
	assert.Error(t, err)
}

func TestParseMkdirArgs(t *testing.T) {
	dto, err := parseMkdirArgs([]string{"a", "-p", "-m", "0755", "b"})
	require.NoError(t, err)
	assert.True(t, dto.Parents)
	assert.Equal(t, "0755", dto.Mode)
	assert.Equal(t, []string{"a", "b"}, dto.Paths)

	dto, err = parseMkdirArgs([]string{"-pm0700", "c"})
	require.NoError(t, err)
	assert.True(t, dto.Parents)
	assert.Equal(t, "0700", dto.Mode)
	assert.Equal(t, []string{"c"}, dto.Paths)

	_, err = parseMkdirArgs([]string{"c", "-m"})
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"-p", "a", "b"}, tokens([]string{"  -p a\tb "}))
	assert.Equal(t, []string{"a b", "c"}, tokens([]string{"a b", "c"}))
}

func TestMkDirAndRm(t *testing.T) {
	dir := testhelpers.CanonicalTempDir(t)
	nested := filepath.Join(dir, "x", "y", "z")

	assert.False(t, MkDir(nested), "missing parents without -p")
	require.True(t, MkDir("-p", "-m", "0755", nested))
	assert.DirExists(t, nested)
	testhelpers.WriteFile(t, filepath.Join(nested, "f.txt"), "f")

	assert.False(t, Rm(filepath.Join(dir, "x")), "non-empty directory without -r")
	assert.True(t, Rm("-rf "+filepath.Join(dir, "x")))
	assert.NoDirExists(t, filepath.Join(dir, "x"))

	assert.False(t, Rm("-q", dir), "unknown option")
	assert.False(t, Rm(), "no operands")
}

func TestCat(t *testing.T) {
	dir := testhelpers.CanonicalTempDir(t)
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	out := filepath.Join(dir, "out.txt")
	testhelpers.WriteFile(t, a, "A")
	testhelpers.WriteFile(t, b, "B")

	content, err := Cat(a + " " + b)
	require.NoError(t, err)
	assert.Equal(t, "AB", content)

	content, err = Cat(a, b, ">", out)
	require.NoError(t, err)
	assert.Empty(t, content)

	_, err = Cat(a, ">>", out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ABA", string(got))

	_, err = Cat(a, ">", filepath.Join(dir, "missing", "out.txt"))
	assert.Error(t, err)
}

func TestWhich(t *testing.T) {
	assert.Equal(t, "nope", Which("", "nope"))
	assert.Equal(t, "nope", Which("definitely-not-a-real-program-xyz", "nope"))
}

func TestFind(t *testing.T) {
	root := testhelpers.CanonicalTempDir(t)
	testhelpers.BuildTree(t, root, map[string]string{
		"a.txt":     "a",
		"sub/b.txt": "b",
		"sub/c.md":  "c",
		"empty/":    "",
	})

	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.txt"),
	}, Find(root, "-type", "f", "-name", "*.txt"))

	assert.Equal(t, []string{root, filepath.Join(root, "empty"), filepath.Join(root, "sub")}, Find(root+" -type d"))

	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "c.md"),
	}, Find(root, "-name", "a*", "-name", "*.md"))

	assert.Empty(t, Find(filepath.Join(root, "missing")))
	assert.Empty(t, Find())
}
