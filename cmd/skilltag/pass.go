package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/labex-labs/skilltag/pkg/labs"
	"github.com/labex-labs/skilltag/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// PassConfig holds configuration for the add and sort commands
type PassConfig struct {
	Tree   string
	DryRun bool
}

// NewPassConfig creates a new PassConfig with default values
func NewPassConfig() *PassConfig {
	return &PassConfig{
		Tree:   "",
		DryRun: false,
	}
}

var addCmd = &cobra.Command{
	Use:   "add <dir>",
	Short: "Add extracted skills to every lab under a directory",
	Long: `Walk <dir> for lab records, extract the code fenced under the tree's markers
from every step, classify it and union the result into the step's skills.
Existing skills are never removed.

Examples:
  skilltag add ./python --tree python
  skilltag add ./flask --tree flask --dry-run`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getPassConfigFromFlags(cmd)
		if config.Tree == "" {
			presenter.Error(errors.New("--tree is required"), "Invalid arguments")
			os.Exit(1)
		}
		runPass(cmd.Context(), args[0], config)
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort <dir>",
	Short: "Deduplicate and sort the skills of every lab under a directory",
	Long:  `Walk <dir> for lab records and rewrite every step's skills deduplicated and sorted, without extracting.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getPassConfigFromFlags(cmd)
		config.Tree = ""
		runPass(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewPassConfig()
	addCmd.Flags().StringP("tree", "t", defaults.Tree, "Skill tree of the labs (see 'skilltag technologies')")
	addCmd.Flags().Bool("dry-run", defaults.DryRun, "Print a diff of every record instead of writing it")
	sortCmd.Flags().Bool("dry-run", defaults.DryRun, "Print a diff of every record instead of writing it")
}

// getPassConfigFromFlags extracts pass configuration from command flags
func getPassConfigFromFlags(cmd *cobra.Command) *PassConfig {
	config := NewPassConfig()
	if tree, err := cmd.Flags().GetString("tree"); err == nil {
		config.Tree = tree
	}
	if dryRun, err := cmd.Flags().GetBool("dry-run"); err == nil {
		config.DryRun = dryRun
	}
	return config
}

func runPass(ctx context.Context, root string, config *PassConfig) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	updater, err := labs.NewUpdater(
		labs.WithConfig(loadConfig()),
		labs.WithDryRun(config.DryRun),
		labs.WithLabCallback(reportLab),
	)
	if err != nil {
		presenter.Error(err, "Invalid configuration")
		os.Exit(1)
	}

	result, err := updater.Run(ctx, root, config.Tree)
	if result == nil {
		presenter.Error(err, "Failed to run pass")
		os.Exit(1)
	}

	presenter.Summary(&presenter.PassSummary{
		Mode:    string(result.Mode),
		Tree:    result.Tree,
		Visited: result.Visited,
		Changed: result.Changed,
		Failed:  result.Failed,
		DryRun:  config.DryRun,
	})
	if err != nil {
		presenter.Error(err, fmt.Sprintf("%d lab(s) failed", result.Failed))
		os.Exit(1)
	}
}

// reportLab prints the outcome of one record
func reportLab(lab labs.LabResult) {
	switch {
	case lab.Err != nil:
		presenter.Warning(fmt.Sprintf("Skipped %s: %v", lab.Path, lab.Err))
	case lab.Diff != "":
		presenter.Diff(lab.Diff)
	case lab.Changed:
		presenter.Success(fmt.Sprintf("Updated %s (+%d skills)", lab.Path, lab.Added))
	}
}
