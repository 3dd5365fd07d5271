// Package app implements the bootstrap dispatcher for the webpack command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	explanationHeader = "The CLI for webpack must be installed as a separate package, for which there are two choices:"
	guidance          = "It needs to be installed alongside webpack to use the CLI"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.CompanionResolver
	detector     ports.LockfileDetector
	installer    ports.Installer
	delegator    ports.Delegator
	prompter     ports.Prompter
	telemetry    ports.Telemetry
	logger       ports.Logger
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.CompanionResolver,
	detector ports.LockfileDetector,
	installer ports.Installer,
	delegator ports.Delegator,
	prompter ports.Prompter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		detector:     detector,
		installer:    installer,
		delegator:    delegator,
		prompter:     prompter,
		telemetry:    telemetry,
		logger:       logger,
		stderr:       os.Stderr,
	}
}

// WithStderr sets the stream receiving the explanation, notices and guidance.
func (a *App) WithStderr(w io.Writer) *App {
	a.stderr = w
	return a
}

// Run delegates to every companion present under cwd, or offers to install
// one when neither is. args are forwarded to the companion untouched.
func (a *App) Run(ctx context.Context, cwd string, args []string) error {
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn("failed to close telemetry: " + err.Error())
		}
	}()

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	result := a.resolve(ctx, cwd, cfg.Companions)
	if result.AnyPresent() {
		for _, res := range result.Present() {
			if err := ctx.Err(); err != nil {
				return zerr.Wrap(err, "interrupted before delegating to "+res.Companion.Name)
			}
			if err := a.delegate(ctx, res, args); err != nil {
				return err
			}
		}
		return nil
	}

	return a.offerInstall(ctx, cwd, cfg, args)
}

// resolve probes both companions. A failed probe counts as absent.
func (a *App) resolve(ctx context.Context, cwd string, companions domain.Companions) domain.ResolutionResult {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhaseResolve.VertexName(""))
	defer vertex.Complete(nil)

	return domain.ResolutionResult{
		Primary:     a.probe(ctx, vertex, cwd, companions.Primary),
		Alternative: a.probe(ctx, vertex, cwd, companions.Alternative),
	}
}

func (a *App) probe(ctx context.Context, vertex ports.Vertex, cwd string, companion domain.Companion) domain.Resolution {
	res := a.resolver.Resolve(ctx, cwd, companion)
	vertex.Log(domain.LogLevelDebug, companion.Name+": "+res.Presence.String())

	if res.Presence == domain.PresenceUnknown {
		msg := "could not determine whether " + companion.Name + " is installed"
		if res.Err != nil {
			msg += ": " + res.Err.Error()
		}
		a.logger.Warn(msg)
	}
	return res
}

func (a *App) delegate(ctx context.Context, res domain.Resolution, args []string) error {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhaseDelegate.VertexName(res.Companion.Name))
	err := a.delegator.Delegate(ctx, res, args)
	vertex.Complete(err)
	return err
}

// offerInstall explains the choice, asks for a companion, installs it and delegates to it.
func (a *App) offerInstall(ctx context.Context, cwd string, cfg *domain.Config, args []string) error {
	companions := cfg.Companions
	a.explain(companions)

	manager := a.detector.Detect(cwd, cfg.YarnLockfile)

	answer, err := a.ask(ctx, companions, manager)
	if err != nil {
		return err
	}

	companion, ok := companions.MatchAnswer(answer)
	if !ok {
		a.println(guidance)
		return zerr.With(zerr.Wrap(domain.ErrUnrecognizedAnswer, "no companion selected"), "answer", answer)
	}

	a.println(fmt.Sprintf("Installing '%s' (running '%s')...", companion.Name, manager.InstallCommand(companion.Name)))

	if err := a.install(ctx, cwd, manager, companion); err != nil {
		return err
	}

	res := a.resolver.Resolve(ctx, cwd, companion)
	if !res.Present() {
		notFound := zerr.Wrap(domain.ErrCompanionNotFound, "companion not resolvable after installation")
		notFound = zerr.With(notFound, "package", companion.Name)
		if res.Err != nil {
			notFound = zerr.With(notFound, "cause", res.Err.Error())
		}
		return notFound
	}

	return a.delegate(ctx, res, args)
}

func (a *App) explain(companions domain.Companions) {
	a.println(explanationHeader)
	for _, c := range companions.All() {
		a.println(fmt.Sprintf("    %s (%s) : %s", c.Name, c.URL, c.Description))
	}
}

// ask reads the operator's answer. The session is closed as soon as the read returns.
func (a *App) ask(ctx context.Context, companions domain.Companions, manager domain.PackageManager) (string, error) {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhasePrompt.VertexName(""))

	answer, err := a.readAnswer(ctx, question(companions, manager))
	vertex.Complete(err)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read answer")
	}
	return answer, nil
}

func (a *App) readAnswer(ctx context.Context, q string) (string, error) {
	session := a.prompter.Open()
	defer func() {
		if err := session.Close(); err != nil {
			a.logger.Warn("failed to close prompt: " + err.Error())
		}
	}()
	return session.Ask(ctx, q)
}

func (a *App) install(ctx context.Context, cwd string, manager domain.PackageManager, companion domain.Companion) error {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhaseInstall.VertexName(companion.Name))
	err := a.installer.Install(ctx, cwd, manager, companion.Name)
	vertex.Complete(err)
	return err
}

func (a *App) println(line string) {
	_, _ = fmt.Fprintln(a.stderr, line)
}

// question builds the prompt text listing both install commands.
func question(companions domain.Companions, manager domain.PackageManager) string {
	primary, alternative := companions.Primary.Name, companions.Alternative.Name
	return fmt.Sprintf(
		"Would you like to install %s or %s? (That will run '%s' or '%s') (%s/%s): ",
		primary, alternative,
		manager.InstallCommand(primary), manager.InstallCommand(alternative),
		primary, alternative,
	)
}
