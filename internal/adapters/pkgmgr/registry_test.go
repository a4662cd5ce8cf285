package pkgmgr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ecfg/internal/adapters/pkgmgr"
	"go.trai.ch/ecfg/internal/core/domain"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		distro     domain.Distro
		executable string
		install    []string
		remove     []string
		confirm    string
	}{
		{domain.DistroArch, "pacman", []string{"-S", "--needed"}, []string{"-Rs"}, "\n"},
		{domain.DistroOpenSUSE, "zypper", []string{"install"}, []string{"remove"}, "\n"},
		{domain.DistroDebian, "apt-get", []string{"install", "-y"}, []string{"remove", "-y"}, ""},
		{domain.DistroFedora, "dnf", []string{"install", "-y"}, []string{"remove", "-y"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.distro.String(), func(t *testing.T) {
			drv := pkgmgr.Lookup(tt.distro)
			assert.False(t, drv.Inert())
			assert.Equal(t, tt.distro, drv.Distro)
			assert.Equal(t, tt.executable, drv.Executable)
			assert.Equal(t, tt.install, drv.InstallArgs)
			assert.Equal(t, tt.remove, drv.RemoveArgs)
			assert.Equal(t, tt.confirm, string(drv.ConfirmInput))
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	drv := pkgmgr.Lookup(domain.DistroUnknown)
	assert.True(t, drv.Inert())
	assert.Equal(t, domain.DistroUnknown, drv.Distro)
}
