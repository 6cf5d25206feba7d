package ports

import "github.com/aalvaropc/drills/internal/domain"

// DrillLoader loads drill sets from a source (e.g., filesystem).
type DrillLoader interface {
	LoadDrillSet(path string) (domain.DrillSet, error)
}
