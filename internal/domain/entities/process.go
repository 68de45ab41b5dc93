package entities

import "time"

// ProcessStatus is the manual progress marker of a Process (공종). It is
// independent of the owning Instruction's status.
type ProcessStatus string

const (
	ProcessStatusBeforeWork ProcessStatus = "before_work"
	ProcessStatusInProgress ProcessStatus = "in_progress"
	ProcessStatusCompleted  ProcessStatus = "completed"
)

func (s ProcessStatus) Valid() bool {
	switch s {
	case ProcessStatusBeforeWork, ProcessStatusInProgress, ProcessStatusCompleted:
		return true
	}
	return false
}

// Process is a work category grouping priced Tasks under exactly one Instruction.
type Process struct {
	ID            string        `json:"id"`
	InstructionID string        `json:"instructionId"`
	Name          string        `json:"name"`
	Worker        string        `json:"worker"`
	EndDate       *time.Time    `json:"endDate"`
	Status        ProcessStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
