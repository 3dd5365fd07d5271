package ports

import "context"

// Prompter opens interactive question sessions on the operator's terminal.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Open acquires the input and output streams for a session.
	Open() PromptSession
}

// PromptSession asks questions until it is closed.
type PromptSession interface {
	// Ask writes the question to the output stream and blocks until one
	// newline-terminated line is read from the input stream or ctx is done.
	// The returned answer excludes the line terminator.
	Ask(ctx context.Context, question string) (string, error)

	// Close releases the session. Asking on a closed session returns domain.ErrPromptClosed.
	Close() error
}
