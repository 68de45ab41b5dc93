package entities

// CatalogItem is a reusable priced template (일위대가). The engine only reads it
// and copies its prices into new Tasks.
type CatalogItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Spec         string  `json:"spec"`
	Unit         string  `json:"unit"`
	MaterialCost float64 `json:"materialCost"`
	LaborCost    float64 `json:"laborCost"`
	ExpenseCost  float64 `json:"expenseCost"`
	TotalCost    float64 `json:"totalCost"`
}
