package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tomdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "format: markdown\naccess: Public\nmarker: ';'\noutput: docs\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "Public", cfg.Access)
	assert.Equal(t, ";", cfg.Marker)
	assert.Equal(t, "docs", cfg.Output)
}

func TestLoadConfigMissingDefaultIsEmpty(t *testing.T) {
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, *cfg)
}

func TestLoadConfigMissingExplicitFails(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "format: html\n")
	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "unknown format")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "format: markdown\naccess: Public\n")
	t.Setenv("TOMDOC_FORMAT", "text")
	t.Setenv("TOMDOC_ACCESS", "Internal")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "Internal", cfg.Access)
}

func TestResolveConfigMerging(t *testing.T) {
	cfg := &fileConfig{Format: "markdown", Access: "Public", Marker: ";", Output: "docs"}

	t.Run("config fills unset flags", func(t *testing.T) {
		rc, output := resolveConfig(options{}, cfg)
		assert.Equal(t, renderConfig{format: "markdown", access: "Public", marker: ";"}, rc)
		assert.Equal(t, "docs", output)
	})
	t.Run("flags win over config", func(t *testing.T) {
		rc, output := resolveConfig(options{text: true, access: "Internal", marker: "#", outputPath: "-"}, cfg)
		assert.Equal(t, renderConfig{format: "text", access: "Internal", marker: "#"}, rc)
		assert.Equal(t, "-", output)
	})
	t.Run("marker defaults to hash", func(t *testing.T) {
		rc, _ := resolveConfig(options{}, &fileConfig{})
		assert.Equal(t, "#", rc.marker)
		assert.Equal(t, "text", rc.format)
	})
}
