package interfaces

import (
	"context"
	"repair_orders/internal/domain/entities"
)

//go:generate mockgen -source=catalog_interface.go -destination=mocks/catalog_interface_mock.go -package=mock_interfaces

// ICatalog is the read-only source of priced line-item templates. A zero-value
// item (empty ID) means the id is unknown.
type ICatalog interface {
	GetItem(ctx context.Context, id string) (entities.CatalogItem, error)
}
