// Package fs provides file system probes.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/webpack/internal/core/domain"
)

// Detector implements ports.LockfileDetector by testing for the yarn lock file.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect reports yarn when yarnLockfile exists in cwd and npm otherwise.
// Stat errors other than absence also fall back to npm.
func (d *Detector) Detect(cwd, yarnLockfile string) domain.PackageManager {
	if yarnLockfile == "" {
		yarnLockfile = domain.DefaultYarnLockfile
	}
	return domain.SelectPackageManager(exists(filepath.Join(cwd, yarnLockfile)))
}

// exists reports whether path exists. A directory counts.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
