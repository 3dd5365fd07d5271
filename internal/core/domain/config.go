package domain

// Config is the bootstrap configuration after defaults and overrides are applied.
type Config struct {
	// Version is the configuration schema version.
	Version string

	// Companions are the two packages offered to the operator.
	Companions Companions

	// YarnLockfile is the file name whose presence selects yarn over npm.
	YarnLockfile string
}

// DefaultConfig returns the configuration used when no override file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:      "1",
		Companions:   DefaultCompanions(),
		YarnLockfile: DefaultYarnLockfile,
	}
}
