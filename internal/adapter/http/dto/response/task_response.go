package response

import (
	"time"

	"repair_orders/internal/domain/entities"
)

type TaskResponse struct {
	ID            string    `json:"id"`
	ProcessID     string    `json:"processId"`
	CatalogItemID string    `json:"catalogItemId,omitempty"`
	Name          string    `json:"name"`
	Spec          string    `json:"spec"`
	Unit          string    `json:"unit"`
	Count         float64   `json:"count"`
	TotalCost     float64   `json:"totalCost"`
	MaterialCost  float64   `json:"materialCost"`
	LaborCost     float64   `json:"laborCost"`
	ExpenseCost   float64   `json:"expenseCost"`
	TotalPrice    float64   `json:"totalPrice"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		ProcessID:     t.ProcessID,
		CatalogItemID: t.CatalogItemID,
		Name:          t.Name,
		Spec:          t.Spec,
		Unit:          t.Unit,
		Count:         t.Count,
		TotalCost:     t.TotalCost,
		MaterialCost:  t.MaterialCost,
		LaborCost:     t.LaborCost,
		ExpenseCost:   t.ExpenseCost,
		TotalPrice:    t.TotalPrice,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTasks(ts []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTask(t))
	}
	return out
}

type CatalogItemResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Spec         string  `json:"spec"`
	Unit         string  `json:"unit"`
	MaterialCost float64 `json:"materialCost"`
	LaborCost    float64 `json:"laborCost"`
	ExpenseCost  float64 `json:"expenseCost"`
	TotalCost    float64 `json:"totalCost"`
}

func FromCatalogItem(it entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse(it)
}
