// Package nodemodules locates installed npm packages the way Node's require.resolve does.
package nodemodules

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	modulesDir   = "node_modules"
	manifestName = "package.json"
	defaultMain  = "index.js"

	// NodePathEnvVar lists extra directories searched after the node_modules hierarchy.
	NodePathEnvVar = "NODE_PATH"
)

// manifest is the subset of package.json the resolver needs.
type manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Main    string `json:"main"`
}

// Resolver implements ports.CompanionResolver by walking node_modules directories.
type Resolver struct {
	logger   ports.Logger
	nodePath []string
}

// NewResolver creates a Resolver that also searches the directories listed in NODE_PATH.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{
		logger:   logger,
		nodePath: filepath.SplitList(os.Getenv(NodePathEnvVar)),
	}
}

// WithNodePath replaces the NODE_PATH directories. Used for testing.
func (r *Resolver) WithNodePath(dirs ...string) *Resolver {
	r.nodePath = dirs
	return r
}

// Resolve looks the companion up from cwd upwards, then in NODE_PATH.
func (r *Resolver) Resolve(ctx context.Context, cwd string, companion domain.Companion) domain.Resolution {
	res := domain.Resolution{Companion: companion, Presence: domain.PresenceAbsent}

	for _, dir := range r.candidates(cwd, companion.Name) {
		if err := ctx.Err(); err != nil {
			res.Presence = domain.PresenceUnknown
			res.Err = err
			return res
		}

		found, err := r.probe(dir, &res)
		if err != nil {
			res.Presence = domain.PresenceUnknown
			res.Err = zerr.With(err, "package", companion.Name)
			return res
		}
		if found {
			r.checkVersion(res)
			return res
		}
	}

	return res
}

// candidates lists the package directories to probe, nearest first.
func (r *Resolver) candidates(cwd, name string) []string {
	var dirs []string

	dir := filepath.Clean(cwd)
	for {
		if filepath.Base(dir) != modulesDir {
			dirs = append(dirs, filepath.Join(dir, modulesDir, name))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for _, p := range r.nodePath {
		if p == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(p, name))
	}

	return dirs
}

// probe fills res when dir holds the package. A missing package.json is not an error.
func (r *Resolver) probe(dir string, res *domain.Resolution) (bool, error) {
	manifestPath := filepath.Join(dir, manifestName)

	//nolint:gosec // path is built from the working directory and a configured package name
	data, err := os.ReadFile(manifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read package manifest"), "path", manifestPath)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to parse package manifest"), "path", manifestPath)
	}

	entry, err := resolveEntry(dir, m.Main)
	if err != nil {
		return false, err
	}

	res.Presence = domain.PresencePresent
	res.Dir = dir
	res.Entry = entry
	res.Version = m.Version
	return true, nil
}

// resolveEntry finds the file Node loads for a package, trying the same
// extensions and index fallbacks as require.
func resolveEntry(dir, main string) (string, error) {
	var tries []string
	if main != "" {
		base := filepath.Join(dir, filepath.FromSlash(main))
		tries = append(tries,
			base,
			base+".js",
			base+".json",
			filepath.Join(base, defaultMain),
		)
	}
	tries = append(tries, filepath.Join(dir, defaultMain))

	for _, p := range tries {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
	}

	err := zerr.Wrap(domain.ErrCompanionNotFound, "package entry point not found")
	err = zerr.With(err, "dir", dir)
	return "", zerr.With(err, "main", main)
}

// checkVersion warns when the installed version falls outside the companion's constraint.
func (r *Resolver) checkVersion(res domain.Resolution) {
	if res.Companion.VersionConstraint == "" || r.logger == nil {
		return
	}

	constraint, err := semver.NewConstraint(res.Companion.VersionConstraint)
	if err != nil {
		return
	}

	version, err := semver.NewVersion(strings.TrimPrefix(res.Version, "v"))
	if err != nil {
		r.logger.Warn(res.Companion.Name + " has an unparseable version " + strconv.Quote(res.Version))
		return
	}

	if !constraint.Check(version) {
		r.logger.Warn(res.Companion.Name + "@" + version.String() +
			" does not satisfy " + res.Companion.VersionConstraint)
	}
}
