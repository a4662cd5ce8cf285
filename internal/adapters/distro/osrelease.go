// Package distro detects the host Linux distribution from os-release.
package distro

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/ecfg/internal/core/domain"
)

// OSRelease holds the identification fields of an os-release file.
type OSRelease struct {
	ID         string
	IDLike     []string
	PrettyName string
}

// ParseOSRelease reads the KEY=value lines of an os-release file.
// Comments, blank lines and malformed lines are skipped.
func ParseOSRelease(r io.Reader) (OSRelease, error) {
	var rel OSRelease

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = unquote(strings.TrimSpace(value))

		switch strings.TrimSpace(key) {
		case "ID":
			rel.ID = strings.ToLower(value)
		case "ID_LIKE":
			rel.IDLike = strings.Fields(strings.ToLower(value))
		case "PRETTY_NAME":
			rel.PrettyName = value
		}
	}

	return rel, scanner.Err()
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	switch v[0] {
	case '"':
		if s, err := strconv.Unquote(v); err == nil {
			return s
		}
		return strings.Trim(v, `"`)
	case '\'':
		return strings.Trim(v, "'")
	}
	return v
}

// families maps identifier fragments onto distributions, checked in order.
var families = []struct {
	fragment string
	distro   domain.Distro
}{
	{"opensuse", domain.DistroOpenSUSE},
	{"suse", domain.DistroOpenSUSE},
	{"arch", domain.DistroArch},
	{"debian", domain.DistroDebian},
	{"ubuntu", domain.DistroDebian},
	{"fedora", domain.DistroFedora},
	{"rhel", domain.DistroFedora},
}

// Distro maps the release onto a known distribution. ID is tried first,
// then each ID_LIKE entry.
func (r OSRelease) Distro() domain.Distro {
	for _, id := range append([]string{r.ID}, r.IDLike...) {
		if id == "" {
			continue
		}
		for _, f := range families {
			if strings.Contains(id, f.fragment) {
				return f.distro
			}
		}
	}
	return domain.DistroUnknown
}
