package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	InitConfig()
}

func TestGetConfigFromViperDefaults(t *testing.T) {
	resetViper(t)

	config, err := GetConfigFromViper()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, config.LogLevel)
	assert.Equal(t, DefaultLogFormat, config.LogFormat)
	assert.Equal(t, DefaultIndexFile, config.IndexFile)
	assert.Equal(t, DefaultExclude, config.Exclude)
	assert.Empty(t, config.Formatter)
}

func TestGetConfigFromViperFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: debug
formatter: prettier --log-level silent --write
markers:
  python: [py, python, ipython]
profile: ci
profiles:
  ci:
    log_format: json
    exclude: ["**/drafts/**"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	config, err := GetConfigFromViper()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat, "profile overrides base")
	assert.Equal(t, []string{"**/drafts/**"}, config.Exclude)
	assert.Equal(t, "prettier --log-level silent --write", config.Formatter, "profile keeps unset keys")
	assert.Equal(t, []string{"py", "python", "ipython"}, config.Markers["python"])
}

func TestGetConfigFromViperUnknownProfile(t *testing.T) {
	resetViper(t)
	viper.Set("profile", "missing")

	_, err := GetConfigFromViper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestDefaultProfileIsNoop(t *testing.T) {
	resetViper(t)
	viper.Set("profile", "default")

	config, err := GetConfigFromViper()
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, config.LogLevel)
}
