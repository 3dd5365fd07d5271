package domain

import "strings"

// DefaultYarnLockfile is the lock file whose presence selects yarn.
const DefaultYarnLockfile = "yarn.lock"

// PackageManager identifies the tool used to install a companion package.
type PackageManager int

const (
	// PackageManagerNPM is the default when no yarn lock file is found.
	PackageManagerNPM PackageManager = iota
	// PackageManagerYarn is selected when a yarn lock file exists in the working directory.
	PackageManagerYarn
)

// SelectPackageManager is a pure function of lock file presence.
func SelectPackageManager(yarnLockPresent bool) PackageManager {
	if yarnLockPresent {
		return PackageManagerYarn
	}
	return PackageManagerNPM
}

// Binary returns the executable name of the package manager.
func (m PackageManager) Binary() string {
	if m == PackageManagerYarn {
		return "yarn"
	}
	return "npm"
}

// String returns the executable name of the package manager.
func (m PackageManager) String() string {
	return m.Binary()
}

// InstallArgs returns the argument list that adds pkg as a dev dependency.
// A fresh slice is returned on every call.
func (m PackageManager) InstallArgs(pkg string) []string {
	verb := "install"
	if m == PackageManagerYarn {
		verb = "add"
	}
	return []string{verb, "-D", pkg}
}

// InstallCommand returns the full command line for display purposes.
func (m PackageManager) InstallCommand(pkg string) string {
	return m.Binary() + " " + strings.Join(m.InstallArgs(pkg), " ")
}
