package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultNode is the runtime used to execute a companion's entry point.
const DefaultNode = "node"

// Delegator implements ports.Delegator by running the companion entry point under node.
type Delegator struct {
	logger  ports.Logger
	streams Streams
	env     []string
	node    string
	grace   time.Duration
}

// NewDelegator creates a Delegator whose children inherit the process streams and environment.
func NewDelegator(logger ports.Logger) *Delegator {
	return &Delegator{
		logger:  logger,
		streams: StdStreams(),
		node:    DefaultNode,
		grace:   DefaultGracePeriod,
	}
}

// WithStreams replaces the streams handed to the companion.
func (d *Delegator) WithStreams(streams Streams) *Delegator {
	d.streams = streams
	return d
}

// WithEnv replaces the environment of the companion. A nil env inherits the process environment.
func (d *Delegator) WithEnv(env []string) *Delegator {
	d.env = env
	return d
}

// WithNode replaces the node executable, either a bare name looked up in PATH or an absolute path.
func (d *Delegator) WithNode(node string) *Delegator {
	d.node = node
	return d
}

// WithGracePeriod sets how long the companion may take to exit once interrupted.
func (d *Delegator) WithGracePeriod(grace time.Duration) *Delegator {
	d.grace = grace
	return d
}

// Delegate runs "node <entry> args..." in the current directory and waits for it to exit.
func (d *Delegator) Delegate(ctx context.Context, resolution domain.Resolution, args []string) error {
	name := resolution.Companion.Name
	if resolution.Entry == "" {
		return zerr.With(zerr.Wrap(domain.ErrCompanionNotFound, "companion has no entry point"), "package", name)
	}

	env := d.env
	if env == nil {
		env = os.Environ()
	}

	node, err := lookPath(d.node, env)
	if err != nil {
		failure := zerr.Wrap(domain.ErrDelegationFailed, "node executable not found")
		failure = zerr.With(failure, "package", name)
		return zerr.With(failure, "cause", err.Error())
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, resolution.Entry)
	argv = append(argv, args...)

	if vertex, ok := ports.VertexFromContext(ctx); ok {
		vertex.Log(domain.LogLevelDebug, node+" "+resolution.Entry)
	}
	d.logger.Info("delegating to " + resolution.Companion.String())

	cmd := command(ctx, d.grace, node, argv...)
	cmd.Env = d.env
	cmd.Stdin = d.streams.Stdin
	cmd.Stdout = d.streams.Stdout
	cmd.Stderr = d.streams.Stderr

	// A companion interrupted by a signal that still exits zero has finished cleanly.
	if err := cmd.Run(); err != nil && !exitedZero(cmd) {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			failure := zerr.Wrap(domain.ErrCompanionExited, "companion failed")
			failure = zerr.With(failure, "package", name)
			return zerr.With(failure, domain.ExitCodeKey, exitErr.ExitCode())
		}

		failure := zerr.Wrap(domain.ErrDelegationFailed, "failed to start companion")
		failure = zerr.With(failure, "package", name)
		return zerr.With(failure, "cause", err.Error())
	}

	return nil
}
