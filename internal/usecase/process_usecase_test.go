package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repair_orders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessUseCase_Create(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	x := e.mustInstruction(t, "X")
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	t.Run("defaults to before_work", func(t *testing.T) {
		p, err := e.processes.CreateProcess(ctx, x.ID, ProcessInput{Name: " Plumbing ", Worker: "Choi", EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, x.ID, p.InstructionID)
		assert.Equal(t, "Plumbing", p.Name)
		assert.Equal(t, entities.ProcessStatusBeforeWork, p.Status)
		require.NotNil(t, p.EndDate)
		assert.Equal(t, end, *p.EndDate)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			in    ProcessInput
			field string
		}{
			{"empty name", ProcessInput{Name: "  "}, "name"},
			{"unknown status", ProcessInput{Name: "Tiles", Status: "paused"}, "status"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := e.processes.CreateProcess(ctx, x.ID, tc.in)
				require.Error(t, err)
				assert.True(t, IsValidation(err), "got %v", err)
				var ee *EngineError
				require.True(t, errors.As(err, &ee))
				assert.Equal(t, tc.field, ee.Field)
			})
		}
	})

	t.Run("unknown instruction", func(t *testing.T) {
		_, err := e.processes.CreateProcess(ctx, "missing", ProcessInput{Name: "Tiles"})
		assert.True(t, IsNotFound(err), "got %v", err)
	})
}

func TestProcessUseCase_Update(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	x := e.mustInstruction(t, "X")
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	p, err := e.processes.CreateProcess(ctx, x.ID, ProcessInput{Name: "Plumbing", EndDate: &end})
	require.NoError(t, err)

	got, err := e.processes.UpdateProcess(ctx, p.ID, ProcessPatch{
		Worker: ptr("Han"),
		Status: ptr(entities.ProcessStatusInProgress),
	})
	require.NoError(t, err)
	assert.Equal(t, "Han", got.Worker)
	assert.Equal(t, entities.ProcessStatusInProgress, got.Status)
	assert.Equal(t, "Plumbing", got.Name)
	require.NotNil(t, got.EndDate)

	got, err = e.processes.UpdateProcess(ctx, p.ID, ProcessPatch{ClearEndDate: true})
	require.NoError(t, err)
	assert.Nil(t, got.EndDate)

	// The process status is independent of the instruction status.
	view, err := e.instructions.GetInstructionWithAggregate(ctx, x.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InstructionStatusReceived, view.Instruction.Status)

	_, err = e.processes.UpdateProcess(ctx, p.ID, ProcessPatch{Status: ptr(entities.ProcessStatus("done"))})
	assert.True(t, IsValidation(err), "got %v", err)

	_, err = e.processes.UpdateProcess(ctx, "missing", ProcessPatch{Worker: ptr("x")})
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestProcessUseCase_DeleteCascadesOnlyItsTasks(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	x, p1, _ := scenarioA(t, e)
	p2 := e.mustProcess(t, x.ID, "P2")
	kept := e.mustTask(t, p2.ID, TaskInput{Name: ptr("T2"), Count: 3, TotalCost: ptr(7.0)})

	require.NoError(t, e.processes.DeleteProcess(ctx, p1.ID))

	tasks, err := e.tasks.ListTasksByInstruction(ctx, x.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, kept.ID, tasks[0].ID)
	agg := e.aggregate(t, x.ID)
	assert.Equal(t, 21.0, agg.TotalAmount)
	assert.Equal(t, 1, agg.ProcessCount)

	err = e.processes.DeleteProcess(ctx, p1.ID)
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestProcessUseCase_List(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	x := e.mustInstruction(t, "X")
	plumbing, err := e.processes.CreateProcess(ctx, x.ID, ProcessInput{Name: "Plumbing", Worker: "Kim Minsu"})
	require.NoError(t, err)
	tiles, err := e.processes.CreateProcess(ctx, x.ID, ProcessInput{Name: "Floor tiles", Worker: "Park", Status: entities.ProcessStatusCompleted})
	require.NoError(t, err)
	paint, err := e.processes.CreateProcess(ctx, x.ID, ProcessInput{Name: "Paint", Worker: "kim jiwoo"})
	require.NoError(t, err)

	cases := []struct {
		name     string
		instrID  string
		filter   ProcessFilter
		expected []string
	}{
		{"no filter keeps creation order", x.ID, ProcessFilter{}, []string{plumbing.ID, tiles.ID, paint.ID}},
		{"worker substring ignores case", x.ID, ProcessFilter{Worker: "KIM"}, []string{plumbing.ID, paint.ID}},
		{"name substring", x.ID, ProcessFilter{Name: "tile"}, []string{tiles.ID}},
		{"status", x.ID, ProcessFilter{Status: entities.ProcessStatusBeforeWork}, []string{plumbing.ID, paint.ID}},
		{"combined", x.ID, ProcessFilter{Worker: "kim", Name: "paint"}, []string{paint.ID}},
		{"no match", x.ID, ProcessFilter{Name: "roof"}, []string{}},
		{"unknown instruction", "missing", ProcessFilter{}, []string{}},
		{"blank instruction", " ", ProcessFilter{}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.processes.ListProcessesByInstruction(ctx, tc.instrID, tc.filter)
			require.NoError(t, err)
			require.NotNil(t, got)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}
