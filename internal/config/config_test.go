package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhmo/exprcalc/internal/bindings"
)

func TestConfig_Bindings(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "vars.toml")
	if err := os.WriteFile(path, []byte("x = 1\ny = 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	cfg := &Config{BindingsFile: path, Vars: bindings.Vars{'y': 20}}
	got, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, map[rune]int{'x': 1, 'y': 20}, got)
}

func TestConfig_Bindings_NoSources(t *testing.T) {
	got, err := (&Config{}).Bindings()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConfig_Bindings_MissingFile(t *testing.T) {
	cfg := &Config{BindingsFile: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := cfg.Bindings()
	assert.Error(t, err)
}
