// Package costs derives task prices and instruction cost rollups.
//
// Every function here is pure. Arithmetic runs on decimals and is converted to
// float64 once per result, so recomputing a rollup from the same tasks always
// yields the same numbers regardless of iteration order.
package costs

import (
	"repair_orders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Line returns count x unitCost.
func Line(count, unitCost float64) decimal.Decimal {
	return decimal.NewFromFloat(count).Mul(decimal.NewFromFloat(unitCost))
}

// TaskPrice is the derived totalPrice of a task.
func TaskPrice(count, totalCost float64) float64 {
	return Line(count, totalCost).InexactFloat64()
}

// ComponentSum returns material + labor + expense as a per-unit amount.
func ComponentSum(material, labor, expense float64) float64 {
	return decimal.NewFromFloat(material).
		Add(decimal.NewFromFloat(labor)).
		Add(decimal.NewFromFloat(expense)).
		InexactFloat64()
}

// ConsistencyPlaces is the number of decimal places at which a total cost and
// its component sum must agree.
const ConsistencyPlaces = 6

// Consistent reports whether a task's TotalCost agrees with its components
// once both are rounded to ConsistencyPlaces. Tasks that do not track
// components are always consistent.
func Consistent(t entities.Task) bool {
	if !t.TracksComponents() {
		return true
	}
	sum := decimal.NewFromFloat(t.MaterialCost).
		Add(decimal.NewFromFloat(t.LaborCost)).
		Add(decimal.NewFromFloat(t.ExpenseCost)).
		Round(ConsistencyPlaces)
	return sum.Equal(decimal.NewFromFloat(t.TotalCost).Round(ConsistencyPlaces))
}

// Aggregate rolls tasks up into an instruction-level Aggregate. processCount is
// passed in because processes without tasks still count.
func Aggregate(processCount int, tasks []entities.Task) entities.Aggregate {
	material := decimal.Zero
	labor := decimal.Zero
	expense := decimal.Zero
	total := decimal.Zero
	var inconsistent []string

	for _, t := range tasks {
		material = material.Add(Line(t.Count, t.MaterialCost))
		labor = labor.Add(Line(t.Count, t.LaborCost))
		expense = expense.Add(Line(t.Count, t.ExpenseCost))
		total = total.Add(Line(t.Count, t.TotalCost))
		if !Consistent(t) {
			inconsistent = append(inconsistent, t.ID)
		}
	}

	return entities.Aggregate{
		MaterialAmount:      material.InexactFloat64(),
		LaborAmount:         labor.InexactFloat64(),
		ExpenseAmount:       expense.InexactFloat64(),
		TotalAmount:         total.InexactFloat64(),
		ProcessCount:        processCount,
		TaskCount:           len(tasks),
		InconsistentTaskIDs: inconsistent,
	}
}
