package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/graphver/pkg/graphver"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, graphver.ConfigFileName), []byte(content), 0644))
	return dir
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.MinStringLength)
	assert.Equal(t, "org.opentripplanner.common.MavenVersion", cfg.Anchor)
	assert.Equal(t, graphver.DecompressAuto, cfg.Decompress)
	assert.Equal(t, graphver.DefaultMaxDecodedBytes, cfg.MaxDecodedBytes)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `min_string_length: 4
anchor: com.example.BuildInfo
decompress: zstd
max_decoded_bytes: 1048576
`)

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4, cfg.MinStringLength)
	assert.Equal(t, "com.example.BuildInfo", cfg.Anchor)
	assert.Equal(t, graphver.DecompressZstd, cfg.Decompress)
	assert.Equal(t, int64(1048576), cfg.MaxDecodedBytes)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "min_string_length: 0\n")

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MinStringLength)
	assert.Equal(t, graphver.DefaultAnchor, cfg.Anchor)
	assert.Equal(t, graphver.DecompressAuto, cfg.Decompress)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := LoadDir(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := LoadDir(writeConfig(t, "{{invalid"))
	assert.True(t, errors.Is(err, graphver.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvMinStringLength: " 5 ",
		EnvAnchor:          "com.example.BuildInfo",
		EnvDecompress:      "GZIP",
		EnvMaxDecodedBytes: "2048",
	}))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MinStringLength)
	assert.Equal(t, "com.example.BuildInfo", cfg.Anchor)
	assert.Equal(t, graphver.DecompressGzip, cfg.Decompress)
	assert.Equal(t, int64(2048), cfg.MaxDecodedBytes)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvAnchor: "", EnvMinStringLength: ""})))
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv_InvalidNumbers(t *testing.T) {
	for _, key := range []string{EnvMinStringLength, EnvMaxDecodedBytes} {
		cfg := Default()
		err := cfg.ApplyEnv(envMap(map[string]string{key: "two"}))
		assert.True(t, errors.Is(err, graphver.ErrInvalidConfig), "%s: %v", key, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative min length", func(c *Config) { c.MinStringLength = -1 }, "min_string_length"},
		{"empty anchor", func(c *Config) { c.Anchor = "" }, "anchor must not be empty"},
		{"anchor too short", func(c *Config) { c.Anchor = "ab" }, "can never match"},
		{"unknown mode", func(c *Config) { c.Decompress = "bzip2" }, "decompress"},
		{"zero cap", func(c *Config) { c.MaxDecodedBytes = 0 }, "max_decoded_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, graphver.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Config{MinStringLength: -3, Decompress: "rar"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_string_length")
	assert.Contains(t, err.Error(), "anchor")
	assert.Contains(t, err.Error(), "decompress")
	assert.Contains(t, err.Error(), "max_decoded_bytes")
}
