package entities

import "time"

// Instruction is a repair work order (지시서).
//
// Domain notes:
//   - Status and Confirmed are only changed through the transition operations
//     (see instruction_status.go); field updates never touch them.
//   - Cost amounts are not stored here; they are derived from the Tasks of every
//     Process and exposed through InstructionWithAggregate.
type Instruction struct {
	ID            string            `json:"id"`
	OrderNumber   string            `json:"orderNumber"`
	OrderDate     time.Time         `json:"orderDate"`
	Name          string            `json:"name"`
	Manager       string            `json:"manager"`
	Delegator     string            `json:"delegator"`
	District      string            `json:"district"`
	Dong          string            `json:"dong"`
	LotNumber     string            `json:"lotNumber"`
	DetailAddress string            `json:"detailAddress"`
	Structure     string            `json:"structure"`
	Memo          string            `json:"memo"`
	Status        InstructionStatus `json:"status"`
	Confirmed     bool              `json:"confirmed"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// State returns the part of the instruction the workflow rules look at.
func (i Instruction) State() InstructionState {
	return InstructionState{Status: i.Status, Confirmed: i.Confirmed}
}

// CanEdit reports whether the instruction and its descendants accept mutations.
func (i Instruction) CanEdit() bool {
	return i.State().CanEdit()
}

// InstructionWithAggregate is the read projection consumed by document and
// payment views: the instruction plus its current cost rollup.
type InstructionWithAggregate struct {
	Instruction Instruction `json:"instruction"`
	Aggregate   Aggregate   `json:"aggregate"`
}
