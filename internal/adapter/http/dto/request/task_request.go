package request

import "repair_orders/internal/usecase"

// TaskRequest creates a task. Omitted fields are filled from the catalog item
// when catalogItemId is set.
type TaskRequest struct {
	CatalogItemID string   `json:"catalogItemId" example:"waterproof-membrane"`
	Name          *string  `json:"name"`
	Spec          *string  `json:"spec"`
	Unit          *string  `json:"unit" example:"m2"`
	Count         float64  `json:"count" example:"12.5"`
	TotalCost     *float64 `json:"totalCost"`
	MaterialCost  *float64 `json:"materialCost"`
	LaborCost     *float64 `json:"laborCost"`
	ExpenseCost   *float64 `json:"expenseCost"`
	Notes         string   `json:"notes"`
}

func (r TaskRequest) ToInput() usecase.TaskInput {
	return usecase.TaskInput{
		CatalogItemID: r.CatalogItemID,
		Name:          r.Name,
		Spec:          r.Spec,
		Unit:          r.Unit,
		Count:         r.Count,
		TotalCost:     r.TotalCost,
		MaterialCost:  r.MaterialCost,
		LaborCost:     r.LaborCost,
		ExpenseCost:   r.ExpenseCost,
		Notes:         r.Notes,
	}
}

type TaskPatchRequest struct {
	Name         *string  `json:"name"`
	Spec         *string  `json:"spec"`
	Unit         *string  `json:"unit"`
	Count        *float64 `json:"count"`
	TotalCost    *float64 `json:"totalCost"`
	MaterialCost *float64 `json:"materialCost"`
	LaborCost    *float64 `json:"laborCost"`
	ExpenseCost  *float64 `json:"expenseCost"`
	Notes        *string  `json:"notes"`
}

func (r TaskPatchRequest) ToPatch() usecase.TaskPatch {
	return usecase.TaskPatch(r)
}
