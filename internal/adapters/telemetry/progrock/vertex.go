package progrock

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/webpack/internal/core/domain"
)

// Vertex implements ports.Vertex on top of a progrock vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer for output produced during the phase.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer for error output produced during the phase.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records msg as a message labeled with the vertex name.
// progrock message levels share their values with domain.LogLevel.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_ = v.vertex.Recorder.Record(&progrock.StatusUpdate{
		Messages: []*progrock.Message{{
			Message: msg,
			Level:   progrock.MessageLevel(level),
			Labels:  []*progrock.Label{progrock.Labelf(VertexLabel, "%s", v.vertex.Vertex.GetName())},
		}},
	})
}

// Complete marks the phase as finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
