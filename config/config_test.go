package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATA_DIR", "CITIES_FILE", "PAGE_SIZE", "LOG_LEVEL",
		"SUMMARY_CSV_PATH", "ARCHIVE_DRIVER", "ARCHIVE_DSN", "ARCHIVE_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.ArchiveDriver)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/data")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ARCHIVE_DRIVER", "mysql")
	t.Setenv("ARCHIVE_DSN", "user:pw@tcp(localhost:3306)/trips")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "mysql", cfg.ArchiveDriver)
	assert.True(t, cfg.ArchiveEnabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PAGE_SIZE", "0"},
		{"LOG_LEVEL", "verbose"},
		{"ARCHIVE_DRIVER", "sqlite"},
		{"ARCHIVE_MAX_RETRIES", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry("data")

	assert.Equal(t, []string{"chicago", "new york city", "washington"}, r.Cities())

	path, err := r.Lookup("new york city")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "new_york_city.csv"), path)

	_, err = r.Lookup("boston")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestLoadRegistryFromYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cities.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
cities:
  Boston: boston.csv
  washington: /abs/washington.csv
`), 0644))

	r, err := LoadRegistry(&Config{DataDir: dir, CitiesFile: file})
	require.NoError(t, err)
	assert.Equal(t, []string{"boston", "washington"}, r.Cities())

	path, err := r.Lookup("boston")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "boston.csv"), path)

	path, err = r.Lookup("washington")
	require.NoError(t, err)
	assert.Equal(t, "/abs/washington.csv", path)
}

func TestLoadRegistryRejectsEmptyFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cities.yaml")
	require.NoError(t, os.WriteFile(file, []byte("cities: {}\n"), 0644))

	_, err := LoadRegistry(&Config{CitiesFile: file})
	assert.Error(t, err)
}
