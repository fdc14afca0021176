package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/labex-labs/skilltag/pkg/labs"
	"github.com/labex-labs/skilltag/pkg/presenter"
	"github.com/labex-labs/skilltag/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type technologyInfo struct {
	Name  string `json:"name" yaml:"name"`
	Rules int    `json:"rules,omitempty" yaml:"rules,omitempty"`
}

type treeInfo struct {
	Name      string   `json:"name" yaml:"name"`
	Markers   []string `json:"markers" yaml:"markers"`
	Supported bool     `json:"supported" yaml:"supported"`
}

type technologiesReport struct {
	Technologies []technologyInfo `json:"technologies" yaml:"technologies"`
	Trees        []treeInfo       `json:"trees" yaml:"trees"`
}

var technologiesCmd = &cobra.Command{
	Use:   "technologies",
	Short: "List the technologies and skill trees skilltag knows",
	Long: `List the technologies the engine has a rule-set for, and the lab skill trees
with the fence markers their code is read from. Trees without a rule-set
cannot be used with 'skilltag add'.`,
	Run: func(cmd *cobra.Command, _ []string) {
		format, _ := cmd.Flags().GetString("format")
		withRules, _ := cmd.Flags().GetBool("rules")
		if err := validateFormat(format); err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		report := buildTechnologiesReport(loadConfig().Markers, withRules)
		if err := writeTechnologies(os.Stdout, format, report); err != nil {
			presenter.Error(err, "Failed to write technologies")
			os.Exit(1)
		}
	},
}

func init() {
	technologiesCmd.Flags().StringP("format", "f", FormatText, "Output format (text, json, yaml)")
	technologiesCmd.Flags().Bool("rules", false, "Include the number of rules per technology")
}

func buildTechnologiesReport(markers map[string][]string, withRules bool) technologiesReport {
	var report technologiesReport
	for _, tech := range skills.Supported() {
		info := technologyInfo{Name: string(tech)}
		if withRules {
			info.Rules = countRules(tech)
		}
		report.Technologies = append(report.Technologies, info)
	}
	for _, tree := range labs.Trees(markers) {
		report.Trees = append(report.Trees, treeInfo{
			Name:      tree.Name,
			Markers:   tree.Markers,
			Supported: tree.Supported,
		})
	}
	return report
}

// countRules counts single-skill rules, expanding token sweeps and
// reference tables.
func countRules(tech skills.Technology) int {
	rules, err := skills.Rules(tech)
	if err != nil {
		return 0
	}
	n := 0
	for _, rule := range rules {
		if e, ok := rule.(skills.Expander); ok {
			n += len(e.Expand())
			continue
		}
		n++
	}
	return n
}

func writeTechnologies(w io.Writer, format string, report technologiesReport) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal technologies")
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "failed to marshal technologies")
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TECHNOLOGY\tRULES")
	for _, tech := range report.Technologies {
		rules := "-"
		if tech.Rules > 0 {
			rules = fmt.Sprint(tech.Rules)
		}
		fmt.Fprintf(tw, "%s\t%s\n", tech.Name, rules)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TREE\tMARKERS\tSUPPORTED")
	for _, tree := range report.Trees {
		fmt.Fprintf(tw, "%s\t%s\t%t\n", tree.Name, strings.Join(tree.Markers, ","), tree.Supported)
	}
	return tw.Flush()
}
