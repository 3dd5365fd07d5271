// Package shell spawns the package manager and the delegated companion as child processes.
package shell

import (
	"io"
	"os"
	"runtime"
)

// Streams are the standard streams handed to a child process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams returns the streams of the current process, so children inherit them.
func StdStreams() Streams {
	return Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// shellCommand returns the shell invocation that runs line.
func shellCommand(line string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", line}
	}
	return "sh", []string{"-c", line}
}
