package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labex-labs/skilltag/pkg/fence"
	"github.com/labex-labs/skilltag/pkg/presenter"
	"github.com/labex-labs/skilltag/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExtractConfig holds configuration for the extract command
type ExtractConfig struct {
	Tech    string
	Markers []string
	Format  string
}

// NewExtractConfig creates a new ExtractConfig with default values
func NewExtractConfig() *ExtractConfig {
	return &ExtractConfig{
		Tech:    "",
		Markers: nil,
		Format:  FormatText,
	}
}

// Validate validates the ExtractConfig and returns an error if invalid
func (c *ExtractConfig) Validate() error {
	if c.Tech != "" {
		if _, err := skills.ParseTechnology(c.Tech); err != nil {
			return err
		}
	}
	return validateFormat(c.Format)
}

// resolveTechnology returns the configured technology, or the one every
// input file's extension agrees on.
func (c *ExtractConfig) resolveTechnology(paths []string) (skills.Technology, error) {
	if c.Tech != "" {
		return skills.ParseTechnology(c.Tech)
	}

	var tech skills.Technology
	for _, path := range paths {
		detected, ok := skills.DetectTechnology(path)
		if !ok {
			return "", errors.Errorf("cannot detect the technology of %s, use --tech", path)
		}
		if tech != "" && detected != tech {
			return "", errors.Errorf("inputs mix %s and %s, use --tech", tech, detected)
		}
		tech = detected
	}
	if tech == "" {
		return "", errors.New("--tech is required when reading stdin")
	}
	return tech, nil
}

func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return errors.Errorf("invalid format: %s, must be one of: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
}

var extractCmd = &cobra.Command{
	Use:   "extract [file...]",
	Short: "Print the skills demonstrated by some code",
	Long: `Classify code with the rule-set of one technology and print the sorted skills.
Input is read from the given files, or from stdin when none (or "-") is given.
Without --tech, the technology is detected from the file extensions.
With --marker, only the code fenced under the given markers in markdown input is
classified. Blocks are concatenated marker by marker in the order given.

Examples:
  skilltag extract main.py
  skilltag extract --tech flask app.py
  skilltag extract --tech go --marker go step1.md step2.md
  skilltag extract --tech linux --marker bash,shell step1.md
  echo '<p>hi</p>' | skilltag extract --tech html --format json`,
	Run: func(cmd *cobra.Command, args []string) {
		config := getExtractConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		tech, err := config.resolveTechnology(args)
		if err != nil {
			presenter.Error(err, "Invalid arguments")
			os.Exit(1)
		}

		contents, err := readInputs(args, os.Stdin, config.Markers)
		if err != nil {
			presenter.Error(err, "Failed to read input")
			os.Exit(1)
		}

		set, err := skills.ExtractAll(tech, contents...)
		if err != nil {
			presenter.Error(err, "Failed to extract skills")
			os.Exit(1)
		}
		if err := writeSkills(os.Stdout, config.Format, set); err != nil {
			presenter.Error(err, "Failed to write skills")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewExtractConfig()
	extractCmd.Flags().String("tech", defaults.Tech, "Technology whose rule-set classifies the input")
	extractCmd.Flags().StringSliceP("marker", "m", defaults.Markers, "Only classify code fenced under these markers (comma-separated)")
	extractCmd.Flags().StringP("format", "f", defaults.Format, "Output format (text, json, yaml)")
}

// getExtractConfigFromFlags extracts extract configuration from command flags
func getExtractConfigFromFlags(cmd *cobra.Command) *ExtractConfig {
	config := NewExtractConfig()
	if tech, err := cmd.Flags().GetString("tech"); err == nil {
		config.Tech = tech
	}
	if markers, err := cmd.Flags().GetStringSlice("marker"); err == nil {
		config.Markers = markers
	}
	if format, err := cmd.Flags().GetString("format"); err == nil {
		config.Format = format
	}
	return config
}

// readInputs returns one content per input, classified separately.
func readInputs(paths []string, stdin io.Reader, markers []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	contents := make([]string, 0, len(paths))
	for _, path := range paths {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		if len(markers) > 0 {
			contents = append(contents, fence.Parse(data).Code(markers...))
			continue
		}
		contents = append(contents, string(data))
	}
	return contents, nil
}

func writeSkills(w io.Writer, format string, set skills.Set) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal skills")
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return errors.Wrap(err, "failed to marshal skills")
		}
		return enc.Close()
	default:
		sorted := set.Sorted()
		if len(sorted) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, strings.Join(sorted, "\n"))
		return err
	}
}
