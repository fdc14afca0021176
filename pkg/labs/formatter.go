package labs

import (
	"context"
	"os/exec"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/labex-labs/skilltag/pkg/logger"
	"github.com/pkg/errors"
)

// formatterArgs splits command with shell quoting rules and appends path.
// An empty command yields no arguments.
func formatterArgs(command, path string) ([]string, error) {
	if strings.TrimSpace(command) == "" {
		return nil, nil
	}
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid formatter command %q", command)
	}
	return append(args, path), nil
}

// runFormatter runs the formatter command on path.
func runFormatter(ctx context.Context, command, path string) error {
	args, err := formatterArgs(command, path)
	if err != nil || len(args) == 0 {
		return err
	}

	logger.G(ctx).WithField("command", shellquote.Join(args...)).Debug("running formatter")
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "formatter failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}
