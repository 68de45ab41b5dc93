package entities

// Aggregate is the cost rollup of one Instruction. It is derived from the
// current Tasks and never edited by hand.
//
// TotalAmount is not forced to equal the sum of the three component amounts;
// tasks whose TotalCost disagrees with their components are listed in
// InconsistentTaskIDs instead of being corrected.
type Aggregate struct {
	MaterialAmount      float64  `json:"materialAmount"`
	LaborAmount         float64  `json:"laborAmount"`
	ExpenseAmount       float64  `json:"expenseAmount"`
	TotalAmount         float64  `json:"totalAmount"`
	ProcessCount        int      `json:"processCount"`
	TaskCount           int      `json:"taskCount"`
	InconsistentTaskIDs []string `json:"inconsistentTaskIds,omitempty"`
}
