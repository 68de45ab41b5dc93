package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"repair_orders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTree(t *testing.T, r *MemoryOrderRepository) {
	t.Helper()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ins := entities.Instruction{ID: "i1", Name: "Roof", Status: entities.InstructionStatusReceived, CreatedAt: now}
	require.NoError(t, r.Commit(context.Background(), entities.ChangeSet{
		InstructionID: "i1",
		Instruction:   &ins,
		Processes: []entities.Process{
			{ID: "p2", InstructionID: "i1", Name: "Tiles"},
			{ID: "p1", InstructionID: "i1", Name: "Gutter"},
		},
		Tasks: []entities.Task{
			{ID: "t1", ProcessID: "p2", Name: "Remove tiles"},
			{ID: "t2", ProcessID: "p1", Name: "Seal"},
		},
	}))
}

func TestMemoryOrderRepository_CreationOrder(t *testing.T) {
	r := NewMemoryOrderRepository()
	seedTree(t, r)
	ctx := context.Background()

	processes, err := r.ListProcesses(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, processes, 2)
	assert.Equal(t, "p2", processes[0].ID)
	assert.Equal(t, "p1", processes[1].ID)

	tasks, err := r.ListTasks(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID)

	none, err := r.ListTasks(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryOrderRepository_MissingIsZeroValue(t *testing.T) {
	r := NewMemoryOrderRepository()
	ctx := context.Background()

	i, err := r.GetInstruction(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, i.ID)
	p, err := r.GetProcess(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, p.ID)
	task, err := r.GetTask(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, task.ID)
}

func TestMemoryOrderRepository_RejectedCommitAppliesNothing(t *testing.T) {
	r := NewMemoryOrderRepository()
	seedTree(t, r)
	ctx := context.Background()

	err := r.Commit(ctx, entities.ChangeSet{
		InstructionID:  "i1",
		DeletedTaskIDs: []string{"t1"},
		Tasks:          []entities.Task{{ID: "t3", ProcessID: "ghost", Name: "Orphan"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDanglingReference))

	got, err := r.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID, "delete in a rejected change set must not apply")
}

func TestMemoryOrderRepository_DeletingParentAloneIsRejected(t *testing.T) {
	r := NewMemoryOrderRepository()
	seedTree(t, r)

	err := r.Commit(context.Background(), entities.ChangeSet{InstructionID: "i1", DeletedProcessIDs: []string{"p1"}})
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestMemoryOrderRepository_CascadeDelete(t *testing.T) {
	r := NewMemoryOrderRepository()
	seedTree(t, r)
	ctx := context.Background()

	require.NoError(t, r.Commit(ctx, entities.ChangeSet{
		InstructionID:     "i1",
		DeleteInstruction: true,
		DeletedProcessIDs: []string{"p1", "p2"},
		DeletedTaskIDs:    []string{"t1", "t2"},
	}))
	all, err := r.ListInstructions(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryOrderRepository_ProcessEndDateIsCopied(t *testing.T) {
	r := NewMemoryOrderRepository()
	seedTree(t, r)
	ctx := context.Background()

	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Commit(ctx, entities.ChangeSet{
		InstructionID: "i1",
		Processes:     []entities.Process{{ID: "p1", InstructionID: "i1", Name: "Gutter", EndDate: &end}},
	}))
	end = end.AddDate(1, 0, 0)

	p, err := r.GetProcess(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, 2024, p.EndDate.Year())
}

func TestMemoryPaymentRepository(t *testing.T) {
	r := NewMemoryPaymentRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, entities.Payment{ID: "pay-1", InstructionID: "i1", Amount: 10})
	require.NoError(t, err)
	_, err = r.Create(ctx, entities.Payment{ID: "pay-1", InstructionID: "i1"})
	assert.ErrorIs(t, err, ErrPaymentExists)

	got, err := r.GetByID(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Amount)

	list, err := r.ListByInstructionID(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryCatalog(t *testing.T) {
	c := NewMemoryCatalog(entities.CatalogItem{ID: "c1", Name: "Waterproofing", TotalCost: 10})
	ctx := context.Background()

	it, err := c.GetItem(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Waterproofing", it.Name)

	c.Upsert(entities.CatalogItem{ID: "c1", Name: "Waterproofing v2"})
	it, _ = c.GetItem(ctx, "c1")
	assert.Equal(t, "Waterproofing v2", it.Name)

	missing, err := c.GetItem(ctx, "c9")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
