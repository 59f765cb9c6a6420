package collector

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/rileyhilliard/dotfetch/internal/errors"
)

// Runner runs an external command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// runCommand is the default Runner. The command is killed when ctx expires.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("Couldn't run %s", name),
			fmt.Sprintf("Make sure %s is installed and on your PATH.", name))
	}
	return stdout.String(), nil
}
