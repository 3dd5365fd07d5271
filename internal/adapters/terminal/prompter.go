// Package terminal asks the operator questions on the process's standard streams.
package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Prompter implements ports.Prompter over an input reader and an output writer.
type Prompter struct {
	logger ports.Logger
	in     io.Reader
	out    io.Writer
}

// NewPrompter creates a Prompter reading stdin and writing stdout.
func NewPrompter(logger ports.Logger) *Prompter {
	return NewPrompterWithStreams(logger, os.Stdin, os.Stdout)
}

// NewPrompterWithStreams creates a Prompter on the given streams.
func NewPrompterWithStreams(logger ports.Logger, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		logger: logger,
		in:     in,
		out:    out,
	}
}

// Open starts a session. The streams are borrowed, never closed.
func (p *Prompter) Open() ports.PromptSession {
	if f, ok := p.in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		p.logger.Info("input is not a terminal, reading the answer from " + f.Name())
	}
	return &Session{in: p.in, out: p.out}
}

// Session is a single open prompt.
type Session struct {
	in  io.Reader
	out io.Writer

	mu     sync.Mutex
	closed bool
}

type line struct {
	text string
	err  error
}

// Ask writes question and waits for one line of input.
// End of input terminates the line; an empty input yields an empty answer.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	if s.isClosed() {
		return "", domain.ErrPromptClosed
	}

	if _, err := io.WriteString(s.out, question); err != nil {
		return "", zerr.Wrap(err, "failed to write prompt")
	}

	// The read cannot be interrupted, so it runs apart from the select.
	ch := make(chan line, 1)
	go func() {
		text, err := readLine(s.in)
		ch <- line{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-ch:
		return l.text, l.err
	}
}

// Close ends the session. Closing twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// readLine reads up to and excluding the next "\n" one byte at a time, so no
// input past the answer is consumed before the companion inherits the stream.
// A trailing "\r" is dropped.
func readLine(r io.Reader) (string, error) {
	var buf []byte
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				break
			}
			buf = append(buf, b[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", zerr.Wrap(err, "failed to read answer")
		}
	}

	if len(buf) > 0 && buf[len(buf)-1] == '\r' {
		buf = buf[:len(buf)-1]
	}
	return string(buf), nil
}
