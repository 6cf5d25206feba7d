package ports

import "github.com/aalvaropc/drills/internal/domain"

type DrillCatalog interface {
	ListDrillSets(root string) ([]domain.DrillSetRef, error)
}
