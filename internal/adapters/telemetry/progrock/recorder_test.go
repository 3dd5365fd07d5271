package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webpack/internal/adapters/logger"
	"go.trai.ch/webpack/internal/adapters/telemetry/progrock"
	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/webpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := progrock.New(mocks.NewMockLogger(ctrl))
	assert.NotNil(t, recorder)
	assert.NoError(t, recorder.Close())
}

func TestRecorder_RecordAttachesVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	recorder := progrock.New(mockLogger)

	ctx, vertex := recorder.Record(context.Background(), domain.PhaseResolve.VertexName(""))
	require.NotNil(t, vertex)

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)

	vertex.Complete(nil)
	require.NoError(t, recorder.Close())
}

func TestRecorder_ForwardsPhasesToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Debug("resolve: started"),
		mockLogger.EXPECT().Debug("resolve: webpack-cli: present"),
		mockLogger.EXPECT().Warn("resolve: webpack-command: manifest unreadable"),
		mockLogger.EXPECT().Debug("resolve: done"),
		mockLogger.EXPECT().Debug("install webpack-cli: started"),
		mockLogger.EXPECT().Info("install webpack-cli: npm install -D webpack-cli"),
		mockLogger.EXPECT().Debug("install webpack-cli: added 1 package"),
		mockLogger.EXPECT().Debug("install webpack-cli: npm WARN deprecated"),
		mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.Equal(t, "install webpack-cli: exit status 1", err.Error())
		}),
		mockLogger.EXPECT().Debug("install webpack-cli: failed: exit status 1"),
	)

	recorder := progrock.New(mockLogger)
	ctx := context.Background()

	_, resolve := recorder.Record(ctx, domain.PhaseResolve.VertexName(""))
	resolve.Log(domain.LogLevelDebug, "webpack-cli: present")
	resolve.Log(domain.LogLevelWarn, "webpack-command: manifest unreadable")
	resolve.Complete(nil)

	_, install := recorder.Record(ctx, domain.PhaseInstall.VertexName("webpack-cli"))
	install.Log(domain.LogLevelInfo, "npm install -D webpack-cli")
	_, err := install.Stdout().Write([]byte("added 1 package\n"))
	require.NoError(t, err)
	_, err = install.Stderr().Write([]byte("npm WARN deprecated\r\n"))
	require.NoError(t, err)
	install.Log(domain.LogLevelError, "exit status 1")
	install.Complete(errors.New("exit status 1"))

	assert.NoError(t, recorder.Close())
}

func TestRecorder_CanceledPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Debug("prompt: started"),
		mockLogger.EXPECT().Debug("prompt: canceled"),
	)

	recorder := progrock.New(mockLogger)
	_, prompt := recorder.Record(context.Background(), domain.PhasePrompt.VertexName(""))
	prompt.Complete(context.Canceled)
}

func TestRecorder_DebugLevelShowsPhases(t *testing.T) {
	var buf bytes.Buffer
	recorder := progrock.New(logger.NewWithOutput(&buf, domain.LogLevelDebug))

	ctx, resolve := recorder.Record(context.Background(), domain.PhaseResolve.VertexName(""))
	resolve.Log(domain.LogLevelDebug, "webpack-cli: present")
	resolve.Complete(nil)

	_, delegate := recorder.Record(ctx, domain.PhaseDelegate.VertexName("webpack-cli"))
	delegate.Complete(nil)
	require.NoError(t, recorder.Close())

	out := buf.String()
	assert.Contains(t, out, `msg="resolve: webpack-cli: present"`)
	assert.Contains(t, out, `msg="resolve: done"`)
	assert.Contains(t, out, `msg="delegate webpack-cli: done"`)
}

func TestRecorder_DefaultLevelHidesPhases(t *testing.T) {
	var buf bytes.Buffer
	recorder := progrock.New(logger.NewWithOutput(&buf, domain.LogLevelWarn))

	_, resolve := recorder.Record(context.Background(), domain.PhaseResolve.VertexName(""))
	resolve.Log(domain.LogLevelDebug, "webpack-cli: present")
	resolve.Complete(nil)

	assert.Empty(t, buf.String())
}
