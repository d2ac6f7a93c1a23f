package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSSHServerPreparesKeyDirAndStore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, nil)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "keys"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NotNil(t, srv.store)
	assert.NotNil(t, srv.tracker)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	assert.NoError(t, srv.Shutdown())
	assert.Nil(t, srv.store, "shutdown closes the database")
}

func TestNewSSHServerWithoutDatabase(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(blocker, "scores.db") // parent is a file

	srv, err := NewSSHServer(cfg, nil)
	require.NoError(t, err, "a missing database is not fatal")
	assert.Nil(t, srv.store)
	assert.Nil(t, srv.tracker)
	assert.NoError(t, srv.Shutdown())
}
