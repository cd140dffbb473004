package inject

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"envprof/internal/model"
)

// Command applies plan to the current process and prepares argv to run
// under the updated environment. The command is looked up on the new PATH.
func Command(ctx context.Context, plan *model.UpdatePlan, argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, errors.New("no command given")
	}
	if err := Apply(plan, ProcessInjector{}); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if cmd.Err != nil {
		return nil, errors.Wrapf(cmd.Err, "cannot run %s", argv[0])
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// ExitCode extracts the exit status of a finished child, or 1 for errors
// that did not come from the child itself.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode()
	}
	return 1
}
