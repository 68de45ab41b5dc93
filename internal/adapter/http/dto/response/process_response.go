package response

import (
	"time"

	"repair_orders/internal/domain/entities"
)

type ProcessResponse struct {
	ID            string    `json:"id"`
	InstructionID string    `json:"instructionId"`
	Name          string    `json:"name"`
	Worker        string    `json:"worker"`
	EndDate       string    `json:"endDate,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromProcess(p entities.Process) ProcessResponse {
	res := ProcessResponse{
		ID:            p.ID,
		InstructionID: p.InstructionID,
		Name:          p.Name,
		Worker:        p.Worker,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.EndDate != nil {
		res.EndDate = p.EndDate.Format(time.DateOnly)
	}
	return res
}

func FromProcesses(ps []entities.Process) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProcess(p))
	}
	return out
}
