package shell

import (
	"context"
	"strconv"
	"time"

	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer by running the package manager through a shell.
type Installer struct {
	logger  ports.Logger
	streams Streams
	env     []string
	grace   time.Duration
}

// NewInstaller creates an Installer whose children inherit the process streams and environment.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{
		logger:  logger,
		streams: StdStreams(),
		grace:   DefaultGracePeriod,
	}
}

// WithStreams replaces the streams handed to the package manager.
func (i *Installer) WithStreams(streams Streams) *Installer {
	i.streams = streams
	return i
}

// WithEnv replaces the environment of the package manager. A nil env inherits the process environment.
func (i *Installer) WithEnv(env []string) *Installer {
	i.env = env
	return i
}

// WithGracePeriod sets how long the package manager may take to exit once interrupted.
func (i *Installer) WithGracePeriod(d time.Duration) *Installer {
	i.grace = d
	return i
}

// Install runs "<manager> <install args> pkg" in cwd and waits for it to exit.
func (i *Installer) Install(ctx context.Context, cwd string, manager domain.PackageManager, pkg string) error {
	line := manager.InstallCommand(pkg)
	name, args := shellCommand(line)

	vertex, hasVertex := ports.VertexFromContext(ctx)
	if hasVertex {
		vertex.Log(domain.LogLevelDebug, line)
	}
	i.logger.Info("running " + strconv.Quote(line) + " in " + cwd)

	cmd := command(ctx, i.grace, name, args...)
	cmd.Dir = cwd
	cmd.Env = i.env
	cmd.Stdin = i.streams.Stdin
	cmd.Stdout = i.streams.Stdout
	cmd.Stderr = i.streams.Stderr

	if err := cmd.Run(); err != nil && !exitedZero(cmd) {
		code := exitCode(err)

		failure := zerr.Wrap(domain.ErrInstallFailed, "package manager failed")
		failure = zerr.With(failure, "command", line)
		failure = zerr.With(failure, "package", pkg)
		if code >= 0 {
			failure = zerr.With(failure, domain.ExitCodeKey, code)
		} else {
			failure = zerr.With(failure, "cause", err.Error())
		}

		if hasVertex {
			vertex.Log(domain.LogLevelDebug, err.Error())
		}
		return failure
	}

	return nil
}
