package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagekraft/pagekraft/internal/adapters/outbound/config"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created .pagekraft.yaml")

	// The starter config must load as a valid default configuration.
	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "index.html", cfg.Page)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pagekraft.yaml"), []byte("page: custom.html\n"), 0644))

	_, err := runCommand(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCommand(t, "init", dir, "--force")
	require.NoError(t, err)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "index.html", cfg.Page, "--force replaces the existing file")
}
