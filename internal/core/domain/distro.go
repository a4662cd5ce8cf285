package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Distro identifies the Linux distribution of the host.
// The set is closed; anything unrecognized is DistroUnknown.
type Distro int

const (
	// DistroUnknown is the host distribution when detection found nothing usable.
	DistroUnknown Distro = iota
	// DistroArch is Arch Linux and its derivatives.
	DistroArch
	// DistroOpenSUSE is openSUSE Leap and Tumbleweed.
	DistroOpenSUSE
	// DistroDebian is Debian and its derivatives, Ubuntu included.
	DistroDebian
	// DistroFedora is Fedora.
	DistroFedora
)

var distroNames = map[Distro]string{
	DistroUnknown:  "Unknown",
	DistroArch:     "Arch",
	DistroOpenSUSE: "OpenSUSE",
	DistroDebian:   "Debian",
	DistroFedora:   "Fedora",
}

// Distros returns every known distribution, Unknown first.
func Distros() []Distro {
	return []Distro{DistroUnknown, DistroArch, DistroOpenSUSE, DistroDebian, DistroFedora}
}

// String returns the canonical name used in task files.
func (d Distro) String() string {
	if name, ok := distroNames[d]; ok {
		return name
	}
	return distroNames[DistroUnknown]
}

// ParseDistro parses a distribution name case-insensitively.
func ParseDistro(s string) (Distro, error) {
	for d, name := range distroNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return DistroUnknown, zerr.With(zerr.Wrap(ErrUnknownDistro, "cannot parse distro"), "distro", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Distro) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Distro) UnmarshalText(text []byte) error {
	parsed, err := ParseDistro(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
