package repository

import (
	"context"
	"sync"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"
)

// MemoryCatalog is an in-process catalog. Upsert exists for seeding; the engine
// only ever reads.
type MemoryCatalog struct {
	mu    sync.RWMutex
	items map[string]entities.CatalogItem
}

var _ interfaces.ICatalog = (*MemoryCatalog)(nil)

func NewMemoryCatalog(items ...entities.CatalogItem) *MemoryCatalog {
	c := &MemoryCatalog{items: make(map[string]entities.CatalogItem, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

func (c *MemoryCatalog) GetItem(_ context.Context, id string) (entities.CatalogItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[id], nil
}

func (c *MemoryCatalog) Upsert(item entities.CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[item.ID] = item
}
