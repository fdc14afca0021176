package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labex-labs/skilltag/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ExtractConfig
		wantErr bool
	}{
		{"valid", ExtractConfig{Tech: "python", Format: FormatText}, false},
		{"tech detected later", ExtractConfig{Format: FormatText}, false},
		{"unsupported tech", ExtractConfig{Tech: "cobol", Format: FormatText}, true},
		{"bad format", ExtractConfig{Tech: "go", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveTechnology(t *testing.T) {
	tests := []struct {
		name    string
		tech    string
		paths   []string
		want    skills.Technology
		wantErr bool
	}{
		{"explicit wins", "flask", []string{"app.py"}, skills.Flask, false},
		{"detected", "", []string{"main.go", "util.go"}, skills.Go, false},
		{"mixed", "", []string{"main.go", "main.rs"}, "", true},
		{"unknown extension", "", []string{"step1.md"}, "", true},
		{"stdin needs tech", "", nil, "", true},
		{"stdin dash needs tech", "", []string{"-"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &ExtractConfig{Tech: tt.tech, Format: FormatText}
			got, err := config.resolveTechnology(tt.paths)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	step := filepath.Join(dir, "step1.md")
	require.NoError(t, os.WriteFile(step, []byte("Run:\n\n```go\nfmt.Println(1)\n```\n\n```bash\ngo run .\n```\n"), 0o644))

	contents, err := readInputs([]string{step}, nil, []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fmt.Println(1)\n"}, contents)

	contents, err = readInputs(nil, strings.NewReader("len(x)"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"len(x)"}, contents)

	contents, err = readInputs([]string{step}, nil, []string{"rust"})
	require.NoError(t, err)
	assert.Equal(t, []string{""}, contents, "missing marker reads as empty content")

	_, err = readInputs([]string{filepath.Join(dir, "missing.md")}, nil, nil)
	assert.Error(t, err)
}

func TestReadInputsJoinsMarkersInOrder(t *testing.T) {
	dir := t.TempDir()
	step := filepath.Join(dir, "step2.md")
	require.NoError(t, os.WriteFile(step, []byte("```shell\nls -la\n```\n\n```bash\ncat a.txt\n```\n\n```python\nprint(1)\n```\n"), 0o644))

	contents, err := readInputs([]string{step}, nil, []string{"bash", "shell"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat a.txt\n\nls -la\n"}, contents)

	set, err := skills.ExtractAll(skills.Python, contents...)
	require.NoError(t, err)
	assert.NotContains(t, set.Sorted(), "python/print", "unselected markers are not classified")
}

func TestExtractMarkerFlagSplitsOnCommas(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().StringSliceP("marker", "m", nil, "")
	cmd.Flags().String("tech", "", "")
	cmd.Flags().StringP("format", "f", FormatText, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--marker", "bash,shell", "-m", "zsh"}))

	config := getExtractConfigFromFlags(cmd)
	assert.Equal(t, []string{"bash", "shell", "zsh"}, config.Markers)
}

func TestWriteSkills(t *testing.T) {
	set := skills.NewSet("python/print", "python/len")

	tests := []struct {
		format   string
		expected string
	}{
		{FormatText, "python/len\npython/print\n"},
		{FormatJSON, "[\n  \"python/len\",\n  \"python/print\"\n]\n"},
		{FormatYAML, "- python/len\n- python/print\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeSkills(&buf, tt.format, set))
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, writeSkills(&buf, FormatText, skills.NewSet()))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, writeSkills(&buf, FormatJSON, skills.NewSet()))
	assert.Equal(t, "[]\n", buf.String())
}
