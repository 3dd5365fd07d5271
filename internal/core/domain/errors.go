package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrInstallFailed is returned when the package manager could not be spawned or exited non-zero.
	ErrInstallFailed = zerr.New("installation failed")

	// ErrUnrecognizedAnswer is returned when the operator answer matches neither companion.
	ErrUnrecognizedAnswer = zerr.New("unrecognized answer")

	// ErrCompanionNotFound is returned when a companion cannot be resolved after installation.
	ErrCompanionNotFound = zerr.New("companion package not found")

	// ErrDelegationFailed is returned when a companion could not be started.
	ErrDelegationFailed = zerr.New("delegation failed")

	// ErrCompanionExited is returned when a delegated companion exits with a non-zero status.
	ErrCompanionExited = zerr.New("companion exited with non-zero status")

	// ErrPromptClosed is returned when reading from a prompt session that was already closed.
	ErrPromptClosed = zerr.New("prompt closed")

	// ErrInvalidConfig is returned when the bootstrap configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

// ExitCodeKey is the zerr metadata key carrying a process exit code.
const ExitCodeKey = "exit_code"

// ExitCode maps an error returned by the dispatcher to a process exit code.
// A nil error maps to 0. The exit status of a companion that exited non-zero
// is propagated; every other failure maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, ErrCompanionExited) {
		return 1
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		z, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		if code, ok := z.Metadata()[ExitCodeKey].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}

// IsReported reports whether the error has already been explained on the
// error stream, either by the guidance message or by the companion itself.
func IsReported(err error) bool {
	return errors.Is(err, ErrUnrecognizedAnswer) || errors.Is(err, ErrCompanionExited)
}
