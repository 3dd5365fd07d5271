package domain

import "strings"

// Companion describes one of the external CLI packages the bootstrap can delegate to.
type Companion struct {
	// Name is the npm package name (e.g., "webpack-cli"). Always lower-case.
	Name string

	// URL points at the package's home page and is shown in the explanation text.
	URL string

	// Description is a one-line summary shown next to the name.
	Description string

	// VersionConstraint is an optional semver constraint the installed package
	// is expected to satisfy (e.g., ">=3.0.0"). Empty means any version.
	VersionConstraint string
}

// String returns the package name.
func (c Companion) String() string {
	return c.Name
}

// Companions is the ordered pair of alternatives. Primary (A) always runs
// before Alternative (B) when both are present.
type Companions struct {
	Primary     Companion
	Alternative Companion
}

// All returns both companions in delegation order.
func (c Companions) All() []Companion {
	return []Companion{c.Primary, c.Alternative}
}

// MatchAnswer returns the companion whose name equals the operator answer,
// ignoring case. Only the line terminator is stripped; any other whitespace
// makes the answer unrecognized.
func (c Companions) MatchAnswer(answer string) (Companion, bool) {
	answer = strings.TrimSuffix(answer, "\n")
	answer = strings.TrimSuffix(answer, "\r")
	normalized := strings.ToLower(answer)

	for _, companion := range c.All() {
		if normalized == companion.Name {
			return companion, true
		}
	}
	return Companion{}, false
}

// DefaultCompanions returns the two stock webpack CLI packages.
func DefaultCompanions() Companions {
	return Companions{
		Primary: Companion{
			Name:        "webpack-cli",
			URL:         "https://github.com/webpack/webpack-cli",
			Description: "The original webpack CLI from webpack@3.",
		},
		Alternative: Companion{
			Name:        "webpack-command",
			URL:         "https://github.com/webpack-contrib/webpack-command",
			Description: "A lightweight, opinionated webpack CLI.",
		},
	}
}
