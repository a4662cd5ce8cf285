// Package pkgmgr maps distributions onto their package managers and runs them.
package pkgmgr

import "go.trai.ch/ecfg/internal/core/domain"

// Driver describes how to invoke one distribution's package manager.
// A Driver with an empty Executable is inert.
type Driver struct {
	Distro      domain.Distro
	Executable  string
	InstallArgs []string
	RemoveArgs  []string
	// ConfirmInput is written to stdin to accept the manager's prompt.
	ConfirmInput []byte
}

var drivers = map[domain.Distro]Driver{
	domain.DistroArch: {
		Distro:       domain.DistroArch,
		Executable:   "pacman",
		InstallArgs:  []string{"-S", "--needed"},
		RemoveArgs:   []string{"-Rs"},
		ConfirmInput: []byte("\n"),
	},
	domain.DistroOpenSUSE: {
		Distro:       domain.DistroOpenSUSE,
		Executable:   "zypper",
		InstallArgs:  []string{"install"},
		RemoveArgs:   []string{"remove"},
		ConfirmInput: []byte("\n"),
	},
	domain.DistroDebian: {
		Distro:      domain.DistroDebian,
		Executable:  "apt-get",
		InstallArgs: []string{"install", "-y"},
		RemoveArgs:  []string{"remove", "-y"},
	},
	domain.DistroFedora: {
		Distro:      domain.DistroFedora,
		Executable:  "dnf",
		InstallArgs: []string{"install", "-y"},
		RemoveArgs:  []string{"remove", "-y"},
	},
}

// Lookup returns the driver for d, or an inert driver when d has none.
func Lookup(d domain.Distro) Driver {
	if drv, ok := drivers[d]; ok {
		return drv
	}
	return Driver{Distro: d}
}

// Inert reports whether the driver cannot run anything.
func (d Driver) Inert() bool {
	return d.Executable == ""
}
