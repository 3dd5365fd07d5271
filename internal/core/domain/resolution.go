package domain

// Presence is the tri-state outcome of probing for a companion package.
type Presence int

const (
	// PresenceAbsent means the package could not be found. This is a valid outcome, not an error.
	PresenceAbsent Presence = iota
	// PresencePresent means the package was found and can be loaded.
	PresencePresent
	// PresenceUnknown means the probe itself failed; see Resolution.Err.
	PresenceUnknown
)

// String returns a human readable form of the presence state.
func (p Presence) String() string {
	switch p {
	case PresencePresent:
		return "present"
	case PresenceUnknown:
		return "unknown"
	default:
		return "absent"
	}
}

// Resolution is the result of probing for a single companion.
type Resolution struct {
	Companion Companion
	Presence  Presence

	// Dir is the package directory inside node_modules.
	Dir string

	// Entry is the file executed when the package is loaded.
	Entry string

	// Version is the version declared in the package manifest, if any.
	Version string

	// Err holds the probe failure when Presence is PresenceUnknown.
	Err error
}

// Present reports whether the companion can be delegated to.
func (r Resolution) Present() bool {
	return r.Presence == PresencePresent
}

// ResolutionResult holds both probes. It is computed once per invocation.
type ResolutionResult struct {
	Primary     Resolution
	Alternative Resolution
}

// AnyPresent reports whether at least one companion can be delegated to.
func (r ResolutionResult) AnyPresent() bool {
	return r.Primary.Present() || r.Alternative.Present()
}

// Present returns the resolutions to delegate to, in delegation order.
func (r ResolutionResult) Present() []Resolution {
	var out []Resolution
	for _, res := range []Resolution{r.Primary, r.Alternative} {
		if res.Present() {
			out = append(out, res)
		}
	}
	return out
}
