package ports

import "go.trai.ch/ecfg/internal/core/domain"

// DistroDetector determines the host distribution.
//
//go:generate mockgen -source=distro_detector.go -destination=mocks/mock_distro_detector.go -package=mocks
type DistroDetector interface {
	Detect() domain.Distro
}
