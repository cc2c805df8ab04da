package service

import (
	"runtime"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/cache"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/model"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	caches []cache.Sweepable
}

// NewSystemService creates a new SystemService reporting on the given caches.
func NewSystemService(caches ...cache.Sweepable) *SystemService {
	return &SystemService{
		caches: caches,
	}
}

// CheckHealth reports liveness together with the number of entries held by each cache.
func (s *SystemService) CheckHealth() model.HealthStatus {
	sizes := make(map[string]int, len(s.caches))
	for _, c := range s.caches {
		if sized, ok := c.(interface{ Len() int }); ok {
			sizes[c.Name()] = sized.Len()
		}
	}
	return model.HealthStatus{Status: "healthy", Caches: sizes}
}

func (s *SystemService) CheckVersion() model.VersionInfo {
	return model.VersionInfo{
		AppVersion: version.Version,
		GoVersion:  runtime.Version(),
	}
}
