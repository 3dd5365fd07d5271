// Package config provides the configuration loader for the webpack bootstrap.
package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Loader implements ports.ConfigLoader using embedded defaults overlaid by an
// optional webpack-bootstrap.yaml in the working directory.
type Loader struct {
	Logger   ports.Logger
	Filename string
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Logger:   log,
		Filename: FileName,
	}
}

// Load reads the configuration for the given working directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	var bootfile Bootfile
	if err := decode(defaultsYAML, "<defaults>", &bootfile); err != nil {
		return nil, err
	}

	source := "<defaults>"
	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No override file.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := decode(data, path, &bootfile); err != nil {
			return nil, err
		}
		source = path
		if l.Logger != nil {
			l.Logger.Info("loaded configuration from " + path)
		}
	}

	return toDomain(&bootfile, source)
}

// Load reads a configuration file from the given path on top of the defaults.
func Load(path string) (*domain.Config, error) {
	loader := &Loader{Filename: filepath.Base(path)}
	return loader.Load(filepath.Dir(path))
}

// decode validates data against the schema and unmarshals it over bootfile.
// Fields absent from data keep their previous value.
func decode(data []byte, source string, bootfile *Bootfile) error {
	if err := validateDocument(data, source); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, bootfile); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", source)
	}
	return nil
}

func toDomain(bootfile *Bootfile, source string) (*domain.Config, error) {
	if len(bootfile.Companions) != 2 {
		err := zerr.Wrap(domain.ErrInvalidConfig, "exactly two companions are required")
		err = zerr.With(err, "path", source)
		return nil, zerr.With(err, "count", len(bootfile.Companions))
	}

	primary, err := companionFromDTO(bootfile.Companions[0], source)
	if err != nil {
		return nil, err
	}
	alternative, err := companionFromDTO(bootfile.Companions[1], source)
	if err != nil {
		return nil, err
	}
	if primary.Name == alternative.Name {
		err := zerr.Wrap(domain.ErrInvalidConfig, "companion names must be distinct")
		err = zerr.With(err, "path", source)
		return nil, zerr.With(err, "name", primary.Name)
	}

	return &domain.Config{
		Version: bootfile.Version,
		Companions: domain.Companions{
			Primary:     primary,
			Alternative: alternative,
		},
		YarnLockfile: bootfile.YarnLockfile,
	}, nil
}

func companionFromDTO(dto CompanionDTO, source string) (domain.Companion, error) {
	if dto.VersionConstraint != "" {
		if _, err := semver.NewConstraint(dto.VersionConstraint); err != nil {
			invalid := zerr.Wrap(domain.ErrInvalidConfig, "invalid version constraint")
			invalid = zerr.With(invalid, "path", source)
			invalid = zerr.With(invalid, "companion", dto.Name)
			return domain.Companion{}, zerr.With(invalid, "constraint", dto.VersionConstraint)
		}
	}

	return domain.Companion{
		Name:              dto.Name,
		URL:               dto.URL,
		Description:       dto.Description,
		VersionConstraint: dto.VersionConstraint,
	}, nil
}
