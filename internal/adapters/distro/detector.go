package distro

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPaths are the os-release locations, in lookup order.
var DefaultPaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Detector implements ports.DistroDetector.
type Detector struct {
	paths  []string
	logger ports.Logger
}

var _ ports.DistroDetector = (*Detector)(nil)

// NewDetector creates a Detector reading the first existing file of paths.
func NewDetector(logger ports.Logger, paths ...string) *Detector {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	return &Detector{paths: paths, logger: logger}
}

// Detect returns the host distribution, or DistroUnknown when no
// os-release file can be read.
func (d *Detector) Detect() domain.Distro {
	for _, path := range d.paths {
		rel, err := readOSRelease(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			d.logger.Error(err)
			continue
		}

		distro := rel.Distro()
		d.logger.Debug("detected " + distro.String() + " from " + path + " (ID=" + rel.ID + ")")
		return distro
	}

	d.logger.Debug("no os-release file found")
	return domain.DistroUnknown
}

func readOSRelease(path string) (OSRelease, error) {
	f, err := os.Open(path)
	if err != nil {
		return OSRelease{}, err
	}
	defer func() { _ = f.Close() }()

	rel, err := ParseOSRelease(f)
	if err != nil {
		return OSRelease{}, zerr.With(zerr.Wrap(err, "failed to read os-release"), "path", path)
	}
	return rel, nil
}
