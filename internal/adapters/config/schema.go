package config

// FileName is the optional override file looked up in the working directory.
const FileName = "webpack-bootstrap.yaml"

// Bootfile represents the structure of the webpack-bootstrap.yaml configuration file.
type Bootfile struct {
	Version      string         `yaml:"version"`
	YarnLockfile string         `yaml:"yarnLockfile"`
	Companions   []CompanionDTO `yaml:"companions"`
}

// CompanionDTO represents a companion package definition in the configuration.
type CompanionDTO struct {
	Name              string `yaml:"name"`
	URL               string `yaml:"url"`
	Description       string `yaml:"description"`
	VersionConstraint string `yaml:"versionConstraint"`
}
