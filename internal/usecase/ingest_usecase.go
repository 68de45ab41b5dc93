package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RowError reports one failed ingest row by its zero-based position.
type RowError struct {
	RowIndex int    `json:"rowIndex"`
	Message  string `json:"message"`
}

type IngestResult struct {
	Succeeded int        `json:"succeeded"`
	Errors    []RowError `json:"errors"`
}

// IIngestUseCase feeds already-parsed rows into CreateInstruction.
//
// Every row is its own unit of work: a failed row is recorded and the batch
// goes on, and rows that succeeded earlier are never rolled back.
type IIngestUseCase interface {
	Ingest(ctx context.Context, rows []InstructionInput) IngestResult
}

type IngestUseCase struct {
	instructions IInstructionUseCase
}

var _ IIngestUseCase = (*IngestUseCase)(nil)

func NewIngestUseCase(instructions IInstructionUseCase) *IngestUseCase {
	return &IngestUseCase{instructions: instructions}
}

func (u *IngestUseCase) Ingest(ctx context.Context, rows []InstructionInput) IngestResult {
	res := IngestResult{Errors: []RowError{}}
	for n, row := range rows {
		if err := u.createRow(ctx, row); err != nil {
			res.Errors = append(res.Errors, RowError{RowIndex: n, Message: err.Error()})
			continue
		}
		res.Succeeded++
	}
	log.Info().
		Int("rows", len(rows)).
		Int("succeeded", res.Succeeded).
		Int("failed", len(res.Errors)).
		Msg("[ingest][usecase] batch finished")
	return res
}

func (u *IngestUseCase) createRow(ctx context.Context, row InstructionInput) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row panicked: %v", r)
		}
	}()
	_, err = u.instructions.CreateInstruction(ctx, row)
	return err
}
