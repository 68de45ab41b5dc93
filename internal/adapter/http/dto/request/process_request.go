package request

import (
	"fmt"
	"strings"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"
)

type ProcessRequest struct {
	Name    string `json:"name" example:"Waterproofing"`
	Worker  string `json:"worker"`
	EndDate string `json:"endDate" example:"2024-06-01"`
	Status  string `json:"status" example:"before_work"`
}

func (r ProcessRequest) ToInput() (usecase.ProcessInput, error) {
	end, err := parseDatePtr(&r.EndDate)
	if err != nil {
		return usecase.ProcessInput{}, fmt.Errorf("endDate: %w", err)
	}
	return usecase.ProcessInput{
		Name:    r.Name,
		Worker:  r.Worker,
		EndDate: end,
		Status:  entities.ProcessStatus(r.Status),
	}, nil
}

// ProcessPatchRequest: an empty endDate clears the target end date.
type ProcessPatchRequest struct {
	Name    *string `json:"name"`
	Worker  *string `json:"worker"`
	EndDate *string `json:"endDate"`
	Status  *string `json:"status"`
}

func (r ProcessPatchRequest) ToPatch() (usecase.ProcessPatch, error) {
	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return usecase.ProcessPatch{}, fmt.Errorf("endDate: %w", err)
	}
	patch := usecase.ProcessPatch{
		Name:         r.Name,
		Worker:       r.Worker,
		EndDate:      end,
		ClearEndDate: r.EndDate != nil && strings.TrimSpace(*r.EndDate) == "",
	}
	if r.Status != nil {
		s := entities.ProcessStatus(*r.Status)
		patch.Status = &s
	}
	return patch, nil
}
