package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "phone_directory.json", cfg.Storage.File)
	assert.Equal(t, 5, cfg.Display.PerPage)
	assert.Equal(t, "phone_directory.log", cfg.Logging.File)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonebook.yaml")
	payload := `
storage:
  backend: sqlite
  database: contacts.db
display:
  per_page: 10
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "contacts.db", cfg.Storage.Database)
	assert.Equal(t, 10, cfg.Display.PerPage)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "phone_directory.json", cfg.Storage.File)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("backend and paths", func(t *testing.T) {
		t.Setenv("PHONEBOOK_BACKEND", "sqlite")
		t.Setenv("PHONEBOOK_DB", "/tmp/contacts.db")
		t.Setenv("PHONEBOOK_FILE", "/tmp/contacts.json")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
		assert.Equal(t, "/tmp/contacts.db", cfg.Storage.Database)
		assert.Equal(t, "/tmp/contacts.json", cfg.Storage.File)
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "error")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "error", cfg.Logging.Level)
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("bad backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage.Backend = "csv"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad page size", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Display.PerPage = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "loud"
		assert.Error(t, cfg.Validate())
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "phonebook.yaml")

	want := DefaultConfig()
	want.Display.PerPage = 7
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Display.PerPage)
}
