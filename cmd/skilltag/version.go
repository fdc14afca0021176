package main

import (
	"fmt"
	"io"
	"os"

	"github.com/labex-labs/skilltag/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version information of skilltag in JSON format.`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := printVersion(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting version info: %s\n", err)
			os.Exit(1)
		}
	},
}

func printVersion(w io.Writer) error {
	out, err := version.Get().JSON()
	if err != nil {
		return errors.Wrap(err, "failed to marshal version info")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
