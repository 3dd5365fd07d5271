package shell

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// DefaultGracePeriod is how long an interrupted child may take to exit before it is killed.
const DefaultGracePeriod = 10 * time.Second

// command builds a child process bound to ctx. When ctx is done the child is
// interrupted so it can run its own cleanup, and killed once grace has passed.
func command(ctx context.Context, grace time.Duration, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // name is a resolved package manager or node binary
	cmd.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return cmd.Process.Kill()
		}
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = grace
	return cmd
}

// exitedZero reports whether cmd ran and exited with status zero.
func exitedZero(cmd *exec.Cmd) bool {
	return cmd.ProcessState != nil && cmd.ProcessState.Success()
}
