package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/sysutil/internal/config"
	"github.com/Cyclone1070/sysutil/internal/logging"
	"github.com/Cyclone1070/sysutil/internal/testing/testhelpers"
	"github.com/Cyclone1070/sysutil/internal/tool/cat"
	"github.com/Cyclone1070/sysutil/internal/tool/find"
	"github.com/Cyclone1070/sysutil/internal/tool/mkdir"
	"github.com/Cyclone1070/sysutil/internal/tool/remove"
)

func newRegistry() *Registry {
	return NewRegistry(NewTools(config.DefaultConfig(), logging.Discard())...)
}

func TestRegistry_Names(t *testing.T) {
	r := newRegistry()

	assert.Equal(t, []string{"cat", "find", "mkdir", "rm", "which"}, r.Names())

	decls := r.Declarations()
	require.Len(t, decls, 5)
	assert.Equal(t, "cat", decls[0].Name)
	assert.Contains(t, decls[1].Parameters.Properties, "max_depth")
}

func TestRegistry_UnknownTool(t *testing.T) {
	_, err := newRegistry().Execute(context.Background(), "ls", nil)

	var unknown *UnknownToolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ls", unknown.Name)
}

func TestExecute_MkdirFindRm(t *testing.T) {
	r := newRegistry()
	ctx := context.Background()
	root := testhelpers.CanonicalTempDir(t)
	target := filepath.Join(root, "a", "b")

	out, err := r.Execute(ctx, "mkdir", map[string]any{"paths": []any{target}, "parents": "true"})
	require.NoError(t, err)
	var mk mkdir.MkdirResponse
	require.NoError(t, json.Unmarshal([]byte(out), &mk))
	assert.True(t, mk.Success)
	assert.DirExists(t, target)

	testhelpers.WriteFile(t, filepath.Join(target, "x.txt"), "x")

	// A string depth and a single name decode thanks to weak typing.
	out, err = r.Execute(ctx, "find", map[string]any{"path": root, "type": "d", "max_depth": "1", "names": "a"})
	require.NoError(t, err)
	var found find.FindResponse
	require.NoError(t, json.Unmarshal([]byte(out), &found))
	assert.Equal(t, []string{filepath.Join(root, "a")}, found.Matches)

	out, err = r.Execute(ctx, "rm", map[string]any{"paths": []string{filepath.Join(root, "a")}, "recursive": true})
	require.NoError(t, err)
	var rm remove.RmResponse
	require.NoError(t, json.Unmarshal([]byte(out), &rm))
	assert.True(t, rm.Success)
	assert.NoDirExists(t, filepath.Join(root, "a"))
}

func TestExecute_Cat(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	testhelpers.WriteFile(t, a, "hello")

	out, err := newRegistry().Execute(context.Background(), "cat", map[string]any{"files": []any{a, filepath.Join(dir, "missing")}})
	require.NoError(t, err)

	var resp cat.CatResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "hello", resp.Content)
	assert.Len(t, resp.Skipped, 1)
}

func TestExecute_UnknownArgument(t *testing.T) {
	_, err := newRegistry().Execute(context.Background(), "rm", map[string]any{"paths": []any{"x"}, "verbose": true})

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "rm", argErr.Tool)
}

func TestExecute_ValidationError(t *testing.T) {
	_, err := newRegistry().Execute(context.Background(), "rm", map[string]any{})

	assert.ErrorIs(t, err, remove.ErrPathRequired)
	assert.Contains(t, err.Error(), "rm validation failed")
}

func TestBaseAdapter_RunError(t *testing.T) {
	boom := errors.New("boom")
	a := NewBaseAdapter(
		"fail",
		"always fails",
		nil,
		func(dto struct{}) (struct{}, error) { return dto, nil },
		func(context.Context, struct{}) (struct{}, error) { return struct{}{}, boom },
	)

	_, err := a.Execute(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "fail", a.Declaration().Name)
}
