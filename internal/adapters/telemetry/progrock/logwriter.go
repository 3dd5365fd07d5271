package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// VertexLabel is the message label carrying the name of the vertex a message was logged against.
const VertexLabel = "webpack.trai.ch/vertex"

// LogWriter is a progrock.Writer that replays status updates through a ports.Logger.
//
// Phase transitions and vertex output are written at debug level. Messages keep
// the level they were logged with.
type LogWriter struct {
	logger ports.Logger

	mu     sync.Mutex
	names  map[string]string
	active map[string]bool
}

// NewLogWriter creates a LogWriter forwarding to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger: logger,
		names:  make(map[string]string),
		active: make(map[string]bool),
	}
}

// WriteStatus forwards the vertexes, logs and messages of one update.
func (w *LogWriter) WriteStatus(status *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range status.GetVertexes() {
		w.vertex(v)
	}
	for _, l := range status.GetLogs() {
		w.output(l)
	}
	for _, m := range status.GetMessages() {
		w.message(m)
	}
	return nil
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}

func (w *LogWriter) vertex(v *progrock.Vertex) {
	id, name := v.GetId(), v.GetName()
	w.names[id] = name

	if v.GetCompleted() == nil {
		if !w.active[id] {
			w.active[id] = true
			w.logger.Debug(name + ": started")
		}
		return
	}

	if !w.active[id] {
		return
	}
	delete(w.active, id)

	switch {
	case v.Error != nil:
		w.logger.Debug(name + ": failed: " + v.GetError())
	case v.GetCanceled():
		w.logger.Debug(name + ": canceled")
	default:
		w.logger.Debug(name + ": done")
	}
}

func (w *LogWriter) output(l *progrock.VertexLog) {
	name := w.names[l.GetVertex()]
	for _, line := range strings.Split(strings.TrimRight(string(l.GetData()), "\r\n"), "\n") {
		if line == "" {
			continue
		}
		w.logger.Debug(name + ": " + line)
	}
}

func (w *LogWriter) message(m *progrock.Message) {
	text := m.GetMessage()
	for _, label := range m.GetLabels() {
		if label.GetName() == VertexLabel {
			text = label.GetValue() + ": " + text
			break
		}
	}

	switch m.GetLevel() {
	case progrock.MessageLevel_DEBUG:
		w.logger.Debug(text)
	case progrock.MessageLevel_WARNING:
		w.logger.Warn(text)
	case progrock.MessageLevel_ERROR:
		w.logger.Error(zerr.New(text))
	default:
		w.logger.Info(text)
	}
}
