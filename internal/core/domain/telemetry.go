package domain

import "strings"

// Phase names a unit of work recorded by telemetry.
type Phase string

const (
	// PhaseResolve covers probing for both companions.
	PhaseResolve Phase = "resolve"
	// PhasePrompt covers asking the operator which companion to install.
	PhasePrompt Phase = "prompt"
	// PhaseInstall covers running the package manager.
	PhaseInstall Phase = "install"
	// PhaseDelegate covers running a companion.
	PhaseDelegate Phase = "delegate"
)

// VertexName returns the telemetry vertex name for the phase, optionally scoped to a package.
func (p Phase) VertexName(pkg string) string {
	if pkg == "" {
		return string(p)
	}
	return string(p) + " " + pkg
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a level name to a LogLevel, falling back to def when unknown or empty.
func ParseLogLevel(s string, def LogLevel) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return def
	}
}
