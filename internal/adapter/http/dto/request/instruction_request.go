package request

import (
	"fmt"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"
)

type InstructionRequest struct {
	OrderNumber   string `json:"orderNumber" example:"2024-017"`
	OrderDate     string `json:"orderDate" example:"2024-05-02"`
	Name          string `json:"name" example:"Basement leak repair"`
	Manager       string `json:"manager"`
	Delegator     string `json:"delegator"`
	District      string `json:"district"`
	Dong          string `json:"dong"`
	LotNumber     string `json:"lotNumber"`
	DetailAddress string `json:"detailAddress"`
	Structure     string `json:"structure"`
	Memo          string `json:"memo"`
}

func (r InstructionRequest) ToInput() (usecase.InstructionInput, error) {
	date, err := parseDate(r.OrderDate)
	if err != nil {
		return usecase.InstructionInput{}, fmt.Errorf("orderDate: %w", err)
	}
	return usecase.InstructionInput{
		OrderNumber:   r.OrderNumber,
		OrderDate:     date,
		Name:          r.Name,
		Manager:       r.Manager,
		Delegator:     r.Delegator,
		District:      r.District,
		Dong:          r.Dong,
		LotNumber:     r.LotNumber,
		DetailAddress: r.DetailAddress,
		Structure:     r.Structure,
		Memo:          r.Memo,
	}, nil
}

// InstructionPatchRequest only carries descriptive fields; status moves
// through the transition routes.
type InstructionPatchRequest struct {
	OrderNumber   *string `json:"orderNumber"`
	OrderDate     *string `json:"orderDate"`
	Name          *string `json:"name"`
	Manager       *string `json:"manager"`
	Delegator     *string `json:"delegator"`
	District      *string `json:"district"`
	Dong          *string `json:"dong"`
	LotNumber     *string `json:"lotNumber"`
	DetailAddress *string `json:"detailAddress"`
	Structure     *string `json:"structure"`
	Memo          *string `json:"memo"`
}

func (r InstructionPatchRequest) ToPatch() (usecase.InstructionPatch, error) {
	date, err := parseDatePtr(r.OrderDate)
	if err != nil {
		return usecase.InstructionPatch{}, fmt.Errorf("orderDate: %w", err)
	}
	return usecase.InstructionPatch{
		OrderNumber:   r.OrderNumber,
		OrderDate:     date,
		Name:          r.Name,
		Manager:       r.Manager,
		Delegator:     r.Delegator,
		District:      r.District,
		Dong:          r.Dong,
		LotNumber:     r.LotNumber,
		DetailAddress: r.DetailAddress,
		Structure:     r.Structure,
		Memo:          r.Memo,
	}, nil
}

type StatusRequest struct {
	Status string `json:"status" binding:"required" example:"in_progress"`
}

func (r StatusRequest) ToStatus() entities.InstructionStatus {
	return entities.InstructionStatus(r.Status)
}

// IngestRequest is a batch of already-parsed spreadsheet rows.
type IngestRequest struct {
	Rows []InstructionRequest `json:"rows" binding:"required"`
}
