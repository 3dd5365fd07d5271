package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webpack/internal/adapters/shell"
	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/webpack/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

// writeScript creates an executable shell script in dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700))
	return path
}

// fakeManagerEnv returns an environment whose PATH resolves bin first.
func fakeManagerEnv(bin string) []string {
	return []string{"PATH=" + bin + string(os.PathListSeparator) + os.Getenv("PATH")}
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	return zErr.Metadata()
}

func TestInstaller_Install_Arguments(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name    string
		manager domain.PackageManager
		pkg     string
		binary  string
		want    string
	}{
		{"npm", domain.PackageManagerNPM, "webpack-cli", "npm", "install -D webpack-cli"},
		{"yarn", domain.PackageManagerYarn, "webpack-command", "yarn", "add -D webpack-command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

			bin := t.TempDir()
			cwd := t.TempDir()
			writeScript(t, bin, tt.binary, `echo "$@" > args.txt`+"\n")

			installer := shell.NewInstaller(mockLogger).
				WithEnv(fakeManagerEnv(bin)).
				WithStreams(shell.Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

			err := installer.Install(context.Background(), cwd, tt.manager, tt.pkg)
			require.NoError(t, err)

			//nolint:gosec // test file path
			got, err := os.ReadFile(filepath.Join(cwd, "args.txt"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(string(got)))
		})
	}
}

func TestInstaller_Install_ForwardsOutput(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	bin := t.TempDir()
	writeScript(t, bin, "npm", "echo added 1 package\necho npm WARN deprecated >&2\n")

	var stdout, stderr bytes.Buffer
	installer := shell.NewInstaller(mockLogger).
		WithEnv(fakeManagerEnv(bin)).
		WithStreams(shell.Streams{Stdout: &stdout, Stderr: &stderr})

	err := installer.Install(context.Background(), t.TempDir(), domain.PackageManagerNPM, "webpack-cli")
	require.NoError(t, err)

	assert.Equal(t, "added 1 package\n", stdout.String())
	assert.Equal(t, "npm WARN deprecated\n", stderr.String())
}

func TestInstaller_Install_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	bin := t.TempDir()
	writeScript(t, bin, "npm", "exit 3\n")

	installer := shell.NewInstaller(mockLogger).
		WithEnv(fakeManagerEnv(bin)).
		WithStreams(shell.Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	err := installer.Install(context.Background(), t.TempDir(), domain.PackageManagerNPM, "webpack-cli")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Equal(t, 1, domain.ExitCode(err))

	meta := metadata(t, err)
	assert.Equal(t, 3, meta[domain.ExitCodeKey])
	assert.Equal(t, "npm install -D webpack-cli", meta["command"])
}

func TestInstaller_Install_ManagerMissing(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	// An empty PATH leaves the shell unable to find the package manager.
	installer := shell.NewInstaller(mockLogger).
		WithEnv([]string{"PATH=" + t.TempDir()}).
		WithStreams(shell.Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	err := installer.Install(context.Background(), t.TempDir(), domain.PackageManagerYarn, "webpack-cli")
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestInstaller_Install_MissingWorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	installer := shell.NewInstaller(mockLogger).
		WithStreams(shell.Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	missing := filepath.Join(t.TempDir(), "missing")
	err := installer.Install(context.Background(), missing, domain.PackageManagerNPM, "webpack-cli")
	require.ErrorIs(t, err, domain.ErrInstallFailed)

	meta := metadata(t, err)
	assert.NotContains(t, meta, domain.ExitCodeKey)
	assert.Contains(t, meta, "cause")
}

func TestInstaller_Install_LogsToVertex(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	mockVertex := mocks.NewMockVertex(ctrl)
	gomock.InOrder(
		mockVertex.EXPECT().Log(domain.LogLevelDebug, "npm install -D webpack-cli").Times(1),
		mockVertex.EXPECT().Log(domain.LogLevelDebug, "exit status 1").Times(1),
	)

	bin := t.TempDir()
	writeScript(t, bin, "npm", "exit 1\n")

	installer := shell.NewInstaller(mockLogger).
		WithEnv(fakeManagerEnv(bin)).
		WithStreams(shell.Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	err := installer.Install(ctx, t.TempDir(), domain.PackageManagerNPM, "webpack-cli")
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
}

// waitForFile blocks until path exists. It is safe to call from a helper goroutine.
func waitForFile(t *testing.T, path string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestInstaller_Install_InterruptedOnCancel(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	bin := t.TempDir()
	cwd := t.TempDir()
	writeScript(t, bin, "npm", "trap 'echo interrupted > marker; exit 130' INT\n"+
		"touch ready\n"+
		"while :; do sleep 0.05; done\n")

	installer := shell.NewInstaller(mockLogger).
		WithEnv(fakeManagerEnv(bin)).
		WithGracePeriod(5 * time.Second).
		WithStreams(shell.Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		waitForFile(t, filepath.Join(cwd, "ready"))
		cancel()
	}()

	err := installer.Install(ctx, cwd, domain.PackageManagerNPM, "webpack-cli")
	require.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Equal(t, 130, metadata(t, err)[domain.ExitCodeKey])

	marker, readErr := os.ReadFile(filepath.Join(cwd, "marker"))
	require.NoError(t, readErr)
	assert.Equal(t, "interrupted\n", string(marker))
}
