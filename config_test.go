package sco_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosco/sco"
)

func TestDefaultConfig(t *testing.T) {
	cfg := sco.DefaultConfig()
	require.Equal(t, sco.MinStackSize, cfg.StackSize)
	require.Equal(t, "disabled", cfg.LogLevel)
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o644))

	cfg, err := sco.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, sco.MinStackSize, cfg.StackSize)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRejectsUndersizedStack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stackSize: 1\n"), 0o644))

	cfg, err := sco.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, sco.MinStackSize, cfg.StackSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := sco.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
