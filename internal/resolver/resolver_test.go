package resolver

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFindModuleRoot_AtRoot(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))

	got, err := findModuleRoot(tmp)
	require.NoError(t, err)
	assert.Equal(t, tmp, got)
}

func TestFindModuleRoot_FromSubdirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))
	sub := filepath.Join(tmp, "internal", "strategy")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	got, err := findModuleRoot(sub)
	require.NoError(t, err)
	assert.Equal(t, tmp, got)
}

func TestResolve_KeepsSubdirectory(t *testing.T) {
	// The package loader runs in the requested directory, not the module
	// root, so only that subtree is analyzed.
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))
	sub := filepath.Join(tmp, "beverage")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	got, err := Resolve(sub, discard())
	require.NoError(t, err)
	assert.Equal(t, sub, got)
}

func TestResolve_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "go.mod")
	require.NoError(t, os.WriteFile(file, []byte("module test\n"), 0o644))

	_, err := Resolve(file, discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestResolve_Missing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "absent"), discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat ")
}
