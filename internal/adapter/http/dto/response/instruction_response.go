package response

import (
	"time"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"
)

type AggregateResponse struct {
	MaterialAmount      float64  `json:"materialAmount"`
	LaborAmount         float64  `json:"laborAmount"`
	ExpenseAmount       float64  `json:"expenseAmount"`
	TotalAmount         float64  `json:"totalAmount"`
	ProcessCount        int      `json:"processCount"`
	TaskCount           int      `json:"taskCount"`
	InconsistentTaskIDs []string `json:"inconsistentTaskIds"`
}

type InstructionResponse struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"orderNumber"`
	OrderDate     string             `json:"orderDate,omitempty"`
	Name          string             `json:"name"`
	Manager       string             `json:"manager"`
	Delegator     string             `json:"delegator"`
	District      string             `json:"district"`
	Dong          string             `json:"dong"`
	LotNumber     string             `json:"lotNumber"`
	DetailAddress string             `json:"detailAddress"`
	Structure     string             `json:"structure"`
	Memo          string             `json:"memo"`
	Status        string             `json:"status"`
	Confirmed     bool               `json:"confirmed"`
	Editable      bool               `json:"editable"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Aggregate     *AggregateResponse `json:"aggregate,omitempty"`
}

func FromInstruction(i entities.Instruction) InstructionResponse {
	res := InstructionResponse{
		ID:            i.ID,
		OrderNumber:   i.OrderNumber,
		Name:          i.Name,
		Manager:       i.Manager,
		Delegator:     i.Delegator,
		District:      i.District,
		Dong:          i.Dong,
		LotNumber:     i.LotNumber,
		DetailAddress: i.DetailAddress,
		Structure:     i.Structure,
		Memo:          i.Memo,
		Status:        string(i.Status),
		Confirmed:     i.Confirmed,
		Editable:      i.CanEdit(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	if !i.OrderDate.IsZero() {
		res.OrderDate = i.OrderDate.Format(time.DateOnly)
	}
	return res
}

func FromInstructionWithAggregate(v entities.InstructionWithAggregate) InstructionResponse {
	res := FromInstruction(v.Instruction)
	agg := FromAggregate(v.Aggregate)
	res.Aggregate = &agg
	return res
}

func FromInstructionsWithAggregate(vs []entities.InstructionWithAggregate) []InstructionResponse {
	out := make([]InstructionResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromInstructionWithAggregate(v))
	}
	return out
}

func FromAggregate(a entities.Aggregate) AggregateResponse {
	ids := a.InconsistentTaskIDs
	if ids == nil {
		ids = []string{}
	}
	return AggregateResponse{
		MaterialAmount:      a.MaterialAmount,
		LaborAmount:         a.LaborAmount,
		ExpenseAmount:       a.ExpenseAmount,
		TotalAmount:         a.TotalAmount,
		ProcessCount:        a.ProcessCount,
		TaskCount:           a.TaskCount,
		InconsistentTaskIDs: ids,
	}
}

type RowErrorResponse struct {
	RowIndex int    `json:"rowIndex"`
	Message  string `json:"message"`
}

type IngestResponse struct {
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Errors    []RowErrorResponse `json:"errors"`
}

func FromIngestResult(r usecase.IngestResult) IngestResponse {
	res := IngestResponse{Succeeded: r.Succeeded, Failed: len(r.Errors), Errors: make([]RowErrorResponse, 0, len(r.Errors))}
	for _, e := range r.Errors {
		res.Errors = append(res.Errors, RowErrorResponse(e))
	}
	return res
}
