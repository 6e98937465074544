package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "categories.json", cfg.Store.Path)
	assert.True(t, cfg.Locale.DayFirst)
	assert.Equal(t, "INR", cfg.Locale.Currency)
	assert.Equal(t, "logs/edit-log.csv", cfg.Log.EditLog)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Locale.DayFirst = false
	cfg.Locale.Currency = "USD"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("store: [not: a: mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
