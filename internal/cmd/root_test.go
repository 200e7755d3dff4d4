package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/sysutil/internal/testing/testhelpers"
	"github.com/Cyclone1070/sysutil/internal/tool/find"
)

// run executes the root command with an isolated config and returns stdout
// and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SYSUTIL_CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "sysutil", cmd.Use)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"rm", "mkdir", "cat", "which", "find", "exec"})
}

func TestVersionFlag(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestMkdirFindRm(t *testing.T) {
	root := testhelpers.CanonicalTempDir(t)
	nested := filepath.Join(root, "a", "b")

	_, _, err := run(t, "mkdir", "-p", "-m", "0755", nested)
	require.NoError(t, err)
	assert.DirExists(t, nested)
	testhelpers.WriteFile(t, filepath.Join(nested, "f.go"), "package f")
	testhelpers.WriteFile(t, filepath.Join(root, "readme.md"), "#")

	out, _, err := run(t, "find", root, "--type", "f", "--name", "*.go")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nested, "f.go")+"\n", out)

	out, _, err = run(t, "find", root, "--type", "d", "--maxdepth", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{root, filepath.Join(root, "a")}, strings.Fields(out))

	_, stderr, err := run(t, "rm", filepath.Join(root, "a"))
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, stderr, filepath.Join(root, "a"))

	_, _, err = run(t, "rm", "-rf", filepath.Join(root, "a"))
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(root, "a"))
}

func TestFindInvalidType(t *testing.T) {
	_, _, err := run(t, "find", ".", "--type", "x")

	var typeErr *find.InvalidTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestCat(t *testing.T) {
	dir := testhelpers.CanonicalTempDir(t)
	a := filepath.Join(dir, "a")
	out := filepath.Join(dir, "out")
	testhelpers.WriteFile(t, a, "one\n")

	stdout, _, err := run(t, "cat", a, a)
	require.NoError(t, err)
	assert.Equal(t, "one\none\n", stdout)

	_, _, err = run(t, "cat", a, "-o", out)
	require.NoError(t, err)
	_, _, err = run(t, "cat", a, "-o", out, "--append")
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "one\none\n", string(got))

	stdout, stderr, err := run(t, "cat", a, filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "one\n", stdout)
	assert.Contains(t, stderr, "missing")
}

func TestWhichFallback(t *testing.T) {
	out, _, err := run(t, "which", "definitely-not-a-real-program-xyz", "--fallback", "none")
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "none\n", out)
}

func TestExec(t *testing.T) {
	dir := testhelpers.CanonicalTempDir(t)
	target := filepath.Join(dir, "made")

	args, err := json.Marshal(map[string]any{"paths": []string{target}})
	require.NoError(t, err)

	out, _, err := run(t, "exec", "mkdir", string(args))
	require.NoError(t, err)
	assert.Contains(t, out, `"success":true`)
	assert.DirExists(t, target)

	_, _, err = run(t, "exec", "nope", "{}")
	assert.ErrorContains(t, err, `unknown tool "nope"`)

	out, _, err = run(t, "exec", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "find"`)
}

func TestConfigFlagRequiresFile(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "find", ".")
	assert.ErrorContains(t, err, "read config")
}
