package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/rent-ledger/auth"
	"github.com/warp/rent-ledger/config"
)

func TestLoadCredentials_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	raw := `users:
  - email: collector@example.com
    password: secret1
    role: collector
    name: Field Collector
  - email: manager@example.com
    password: secret2
    role: manager
    name: Portfolio Manager
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	creds, err := config.LoadCredentials(path)
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, "collector@example.com", creds[0].Email)
	assert.Equal(t, auth.RoleManager, creds[1].Role)
}

func TestLoadCredentials_EmptyPathFallsBackToDemo(t *testing.T) {
	creds, err := config.LoadCredentials("")
	require.NoError(t, err)
	assert.NotEmpty(t, creds)
}

func TestLoadCredentials_MissingFile(t *testing.T) {
	_, err := config.LoadCredentials(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadCredentials_NoUsersListed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: []\n"), 0o600))

	_, err := config.LoadCredentials(path)
	assert.Error(t, err)
}
