package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestSelectPackageManager(t *testing.T) {
	assert.Equal(t, domain.PackageManagerYarn, domain.SelectPackageManager(true))
	assert.Equal(t, domain.PackageManagerNPM, domain.SelectPackageManager(false))
}

func TestPackageManager_InstallArgs(t *testing.T) {
	tests := []struct {
		name    string
		manager domain.PackageManager
		pkg     string
		args    []string
		cmdline string
		binary  string
	}{
		{
			name:    "npm",
			manager: domain.PackageManagerNPM,
			pkg:     "webpack-cli",
			args:    []string{"install", "-D", "webpack-cli"},
			cmdline: "npm install -D webpack-cli",
			binary:  "npm",
		},
		{
			name:    "yarn",
			manager: domain.PackageManagerYarn,
			pkg:     "webpack-command",
			args:    []string{"add", "-D", "webpack-command"},
			cmdline: "yarn add -D webpack-command",
			binary:  "yarn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.args, tt.manager.InstallArgs(tt.pkg))
			assert.Equal(t, tt.cmdline, tt.manager.InstallCommand(tt.pkg))
			assert.Equal(t, tt.binary, tt.manager.Binary())
		})
	}
}

func TestPackageManager_InstallArgsNotShared(t *testing.T) {
	first := domain.PackageManagerNPM.InstallArgs("webpack-cli")
	first[0] = "mutated"

	assert.Equal(t, "install", domain.PackageManagerNPM.InstallArgs("webpack-cli")[0])
}

func TestCompanions_MatchAnswer(t *testing.T) {
	companions := domain.DefaultCompanions()

	tests := []struct {
		answer string
		want   string
		ok     bool
	}{
		{"webpack-cli", "webpack-cli", true},
		{"WEBPACK-CLI", "webpack-cli", true},
		{"Webpack-Command", "webpack-command", true},
		{"webpack-cli\n", "webpack-cli", true},
		{"webpack-command\r\n", "webpack-command", true},
		{"", "", false},
		{"   ", "", false},
		{" webpack-cli", "", false},
		{"webpack-cli ", "", false},
		{"nope", "", false},
		{"webpack", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, ok := companions.MatchAnswer(tt.answer)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestCompanions_All(t *testing.T) {
	companions := domain.DefaultCompanions()
	all := companions.All()

	require.Len(t, all, 2)
	assert.Equal(t, "webpack-cli", all[0].Name)
	assert.Equal(t, "webpack-command", all[1].Name)
}

func TestResolutionResult(t *testing.T) {
	companions := domain.DefaultCompanions()
	present := func(c domain.Companion) domain.Resolution {
		return domain.Resolution{Companion: c, Presence: domain.PresencePresent}
	}
	absent := func(c domain.Companion) domain.Resolution {
		return domain.Resolution{Companion: c, Presence: domain.PresenceAbsent}
	}

	both := domain.ResolutionResult{Primary: present(companions.Primary), Alternative: present(companions.Alternative)}
	assert.True(t, both.AnyPresent())
	require.Len(t, both.Present(), 2)
	assert.Equal(t, "webpack-cli", both.Present()[0].Companion.Name)
	assert.Equal(t, "webpack-command", both.Present()[1].Companion.Name)

	onlyB := domain.ResolutionResult{Primary: absent(companions.Primary), Alternative: present(companions.Alternative)}
	assert.True(t, onlyB.AnyPresent())
	require.Len(t, onlyB.Present(), 1)
	assert.Equal(t, "webpack-command", onlyB.Present()[0].Companion.Name)

	unknown := domain.ResolutionResult{
		Primary:     domain.Resolution{Companion: companions.Primary, Presence: domain.PresenceUnknown},
		Alternative: absent(companions.Alternative),
	}
	assert.False(t, unknown.AnyPresent())
	assert.Empty(t, unknown.Present())
}

func TestExitCode(t *testing.T) {
	exited := zerr.With(zerr.Wrap(domain.ErrCompanionExited, "webpack-cli"), domain.ExitCodeKey, 3)
	installFailed := zerr.With(zerr.Wrap(domain.ErrInstallFailed, "npm install -D webpack-cli"), domain.ExitCodeKey, 7)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"companion exit code propagated", exited, 3},
		{"wrapped companion exit code propagated", zerr.Wrap(exited, "delegating"), 3},
		{"install failure always 1", installFailed, 1},
		{"unrecognized answer", domain.ErrUnrecognizedAnswer, 1},
		{"companion exited without code", domain.ErrCompanionExited, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCode(tt.err))
		})
	}
}

func TestIsReported(t *testing.T) {
	assert.True(t, domain.IsReported(zerr.Wrap(domain.ErrUnrecognizedAnswer, "nope")))
	assert.True(t, domain.IsReported(zerr.With(zerr.Wrap(domain.ErrCompanionExited, "webpack-cli"), domain.ExitCodeKey, 2)))
	assert.False(t, domain.IsReported(zerr.Wrap(domain.ErrInstallFailed, "npm install -D webpack-cli")))
	assert.False(t, domain.IsReported(domain.ErrDelegationFailed))
}
