package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Database string `json:"database"`
	Limit    int    `json:"limit"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "config.json5"),
		[]byte(`{database: "ajou", limit: 7}`),
		0600,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{limit: 99}`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "ajou", cfg.Database)
	require.Equal(t, 99, cfg.Limit)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRequireEnv(t *testing.T) {
	t.Setenv("CONFIGUTIL_TEST_KEY", "value")
	got, err := RequireEnv("CONFIGUTIL_TEST_KEY")
	require.NoError(t, err)
	require.Equal(t, "value", got)

	_, err = RequireEnv("CONFIGUTIL_TEST_KEY_MISSING")
	require.Error(t, err)
}
