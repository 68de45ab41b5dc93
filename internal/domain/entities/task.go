package entities

import "time"

// Task is a priced, quantified line item (작업) under exactly one Process.
//
// Pricing notes:
//   - MaterialCost, LaborCost, ExpenseCost and TotalCost are per-unit amounts.
//   - When a catalog item was chosen, its prices were copied at creation time;
//     later catalog changes never reach an existing Task.
//   - TotalPrice = Count x TotalCost, recomputed on every write.
type Task struct {
	ID            string    `json:"id"`
	ProcessID     string    `json:"processId"`
	CatalogItemID string    `json:"catalogItemId,omitempty"`
	Name          string    `json:"name"`
	Spec          string    `json:"spec,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	Count         float64   `json:"count"`
	TotalCost     float64   `json:"totalCost"`
	MaterialCost  float64   `json:"materialCost"`
	LaborCost     float64   `json:"laborCost"`
	ExpenseCost   float64   `json:"expenseCost"`
	Notes         string    `json:"notes"`
	TotalPrice    float64   `json:"totalPrice"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TracksComponents reports whether the task prices material, labor and expense
// separately. A task with all three at zero carries a lump TotalCost.
func (t Task) TracksComponents() bool {
	return t.MaterialCost != 0 || t.LaborCost != 0 || t.ExpenseCost != 0
}
