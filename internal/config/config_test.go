package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "unilife.db", c.DatabaseFile)
	assert.Equal(t, "recordings", c.RecordingsDir)
	assert.Equal(t, "files", c.PickerDir)
	assert.Equal(t, "student_001", c.StudentID)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"database_file":    "/data/app.db",
		"student_id":       "student_042",
		"shutdown_timeout": "10s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/data/app.db", cfg.DatabaseFile)
		assert.Equal(t, "student_042", cfg.StudentID)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		// Fields absent from the JSON keep their defaults.
		assert.Equal(t, "recordings", cfg.RecordingsDir)
	})

	t.Run("no flags means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{StudentID: "keep-me"}
		parseJson(cfg)
		assert.Equal(t, "keep-me", cfg.StudentID)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-s", "student_007", "-l", "debug", "-t", "30"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "student_007", cfg.StudentID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "unilife.db", cfg.DatabaseFile)
}
