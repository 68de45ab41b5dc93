package usecase

import (
	"context"
	"errors"
	"testing"

	"repair_orders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestUseCase_PartialFailure(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	uc := NewIngestUseCase(e.instructions)

	rows := []InstructionInput{
		{OrderNumber: "A-1", Name: "Roof"},
		{OrderNumber: "A-2", Name: ""},
		{OrderNumber: "A-3", Name: "Basement"},
		{OrderNumber: "A-4", Name: "  "},
		{OrderNumber: "A-5", Name: "Facade"},
	}
	res := uc.Ingest(ctx, rows)

	assert.Equal(t, 3, res.Succeeded)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 1, res.Errors[0].RowIndex)
	assert.Equal(t, 3, res.Errors[1].RowIndex)
	assert.Contains(t, res.Errors[0].Message, "name")

	all, err := e.instructions.ListInstructions(ctx, InstructionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A-1", all[0].Instruction.OrderNumber)
	assert.Equal(t, "A-5", all[2].Instruction.OrderNumber)
}

func TestIngestUseCase_EmptyBatch(t *testing.T) {
	uc := NewIngestUseCase(newTestEngine(t).instructions)
	res := uc.Ingest(context.Background(), nil)
	assert.Equal(t, 0, res.Succeeded)
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors)
}

// flakyInstructions fails or panics on chosen rows and delegates the rest.
type flakyInstructions struct {
	IInstructionUseCase
	calls int
	fail  map[int]error
	panic map[int]bool
}

func (f *flakyInstructions) CreateInstruction(ctx context.Context, in InstructionInput) (entities.Instruction, error) {
	n := f.calls
	f.calls++
	if f.panic[n] {
		panic("row exploded")
	}
	if err := f.fail[n]; err != nil {
		return entities.Instruction{}, err
	}
	return f.IInstructionUseCase.CreateInstruction(ctx, in)
}

func TestIngestUseCase_RowsAreIndependent(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	flaky := &flakyInstructions{
		IInstructionUseCase: e.instructions,
		fail:                map[int]error{0: errors.New("store unavailable")},
		panic:               map[int]bool{2: true},
	}
	uc := NewIngestUseCase(flaky)

	res := uc.Ingest(ctx, []InstructionInput{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}})

	assert.Equal(t, 4, flaky.calls)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, []RowError{
		{RowIndex: 0, Message: "store unavailable"},
		{RowIndex: 2, Message: "row panicked: row exploded"},
	}, res.Errors)

	all, err := e.instructions.ListInstructions(ctx, InstructionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
