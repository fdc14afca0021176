package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var release = Info{
	Version:   "0.3.0",
	GitCommit: "9f2c1e7",
	BuildTime: "2026-10-18T09:00:00Z",
	GoVersion: "go1.25.1",
}

func TestUnstampedBuildDefaults(t *testing.T) {
	info := Get()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
}

func TestGetReadsLinkerVariables(t *testing.T) {
	saved := []string{Version, GitCommit, BuildTime}
	t.Cleanup(func() { Version, GitCommit, BuildTime = saved[0], saved[1], saved[2] })

	Version, GitCommit, BuildTime = release.Version, release.GitCommit, release.BuildTime
	info := Get()
	assert.Equal(t, release.Version, info.Version)
	assert.Equal(t, release.GitCommit, info.GitCommit)
	assert.Equal(t, release.BuildTime, info.BuildTime)
}

func TestInfoString(t *testing.T) {
	assert.Equal(t,
		"Version: 0.3.0, GitCommit: 9f2c1e7, BuildTime: 2026-10-18T09:00:00Z, GoVersion: go1.25.1",
		release.String())
}

func TestInfoJSON(t *testing.T) {
	out, err := release.JSON()
	require.NoError(t, err)

	assert.Equal(t, `{
  "version": "0.3.0",
  "gitCommit": "9f2c1e7",
  "buildTime": "2026-10-18T09:00:00Z",
  "goVersion": "go1.25.1"
}`, out)

	var decoded Info
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, release, decoded)
}

func TestInfoYAML(t *testing.T) {
	out, err := yaml.Marshal(release)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, yaml.Unmarshal(out, &fields))
	assert.Equal(t, map[string]string{
		"version":   "0.3.0",
		"gitCommit": "9f2c1e7",
		"buildTime": "2026-10-18T09:00:00Z",
		"goVersion": "go1.25.1",
	}, fields)

	var decoded Info
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, release, decoded)
}
