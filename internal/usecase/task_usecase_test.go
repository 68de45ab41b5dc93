package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"repair_orders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskUseCase_CreateReconciliation(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.catalog.Upsert(entities.CatalogItem{
		ID: "cat-1", Name: "Tile", Spec: "300x300", Unit: "m2",
		MaterialCost: 10, LaborCost: 5, ExpenseCost: 1, TotalCost: 16,
	})
	e.catalog.Upsert(entities.CatalogItem{ID: "cat-lump", Name: "Disposal", Unit: "set", TotalCost: 70})
	x := e.mustInstruction(t, "X")
	p := e.mustProcess(t, x.ID, "P")
	material, labor := 0.1, 0.2

	cases := []struct {
		name      string
		in        TaskInput
		wantTotal float64
		wantPrice float64
	}{
		{
			name:      "lump price without components",
			in:        TaskInput{Name: ptr("Cleanup"), Count: 3, TotalCost: ptr(25.0)},
			wantTotal: 25, wantPrice: 75,
		},
		{
			name:      "total derived from components",
			in:        TaskInput{Name: ptr("Grout"), Count: 4, MaterialCost: ptr(2.5), LaborCost: ptr(1.25)},
			wantTotal: 3.75, wantPrice: 15,
		},
		{
			name:      "matching explicit total",
			in:        TaskInput{Name: ptr("Sealant"), Count: 2, TotalCost: ptr(0.3), MaterialCost: ptr(0.1), LaborCost: ptr(0.2)},
			wantTotal: 0.3, wantPrice: 0.6,
		},
		{
			name:      "float total computed by the client",
			in:        TaskInput{Name: ptr("Caulk"), Count: 1, TotalCost: ptr(material + labor), MaterialCost: ptr(material), LaborCost: ptr(labor)},
			wantTotal: material + labor, wantPrice: material + labor,
		},
		{
			name:      "catalog snapshot",
			in:        TaskInput{CatalogItemID: "cat-1", Count: 5},
			wantTotal: 16, wantPrice: 80,
		},
		{
			name:      "catalog component override rederives total",
			in:        TaskInput{CatalogItemID: "cat-1", Count: 1, LaborCost: ptr(9.0)},
			wantTotal: 20, wantPrice: 20,
		},
		{
			name:      "catalog lump item",
			in:        TaskInput{CatalogItemID: "cat-lump", Count: 2},
			wantTotal: 70, wantPrice: 140,
		},
		{
			name:      "zero count",
			in:        TaskInput{Name: ptr("Inspection"), Count: 0, TotalCost: ptr(40.0)},
			wantTotal: 40, wantPrice: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.tasks.CreateTask(ctx, p.ID, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, got.TotalCost)
			assert.Equal(t, tc.wantPrice, got.TotalPrice)
			assert.Equal(t, p.ID, got.ProcessID)
		})
	}

	agg := e.aggregate(t, x.ID)
	assert.Empty(t, agg.InconsistentTaskIDs)
	assert.Equal(t, len(cases), agg.TaskCount)
}

func TestTaskUseCase_CreateRejects(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	x := e.mustInstruction(t, "X")
	p := e.mustProcess(t, x.ID, "P")

	cases := []struct {
		name   string
		procID string
		in     TaskInput
		is     func(error) bool
		field  string
	}{
		{"negative count", p.ID, TaskInput{Name: ptr("a"), Count: -1}, IsInvalidQuantity, "count"},
		{"NaN count", p.ID, TaskInput{Name: ptr("a"), Count: math.NaN()}, IsInvalidQuantity, "count"},
		{"negative labor", p.ID, TaskInput{Name: ptr("a"), Count: 1, LaborCost: ptr(-3.0)}, IsInvalidQuantity, "laborCost"},
		{"infinite total", p.ID, TaskInput{Name: ptr("a"), Count: 1, TotalCost: ptr(math.Inf(1))}, IsInvalidQuantity, "totalCost"},
		{"missing name", p.ID, TaskInput{Count: 1}, IsValidation, "name"},
		{"inconsistent explicit total", p.ID,
			TaskInput{Name: ptr("a"), Count: 1, TotalCost: ptr(90.0), MaterialCost: ptr(60.0), LaborCost: ptr(40.0)},
			IsValidation, "totalCost"},
		{"unknown catalog item", p.ID, TaskInput{CatalogItemID: "nope", Count: 1}, IsNotFound, ""},
		{"unknown process", "missing", TaskInput{Name: ptr("a"), Count: 1}, IsNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.tasks.CreateTask(ctx, tc.procID, tc.in)
			require.Error(t, err)
			assert.True(t, tc.is(err), "got %v", err)
			var ee *EngineError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tc.field, ee.Field)
		})
	}

	tasks, err := e.tasks.ListTasksByProcess(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("count change recomputes price and aggregate", func(t *testing.T) {
		e := newTestEngine(t)
		x, _, t1 := scenarioA(t, e)
		got, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{Count: ptr(5.0)})
		require.NoError(t, err)
		assert.Equal(t, 500.0, got.TotalPrice)
		assert.Equal(t, t1.ProcessID, got.ProcessID)
		agg := e.aggregate(t, x.ID)
		assert.Equal(t, 500.0, agg.TotalAmount)
		assert.Equal(t, 300.0, agg.MaterialAmount)
		assert.Equal(t, 200.0, agg.LaborAmount)
	})

	t.Run("component change without total rederives it", func(t *testing.T) {
		e := newTestEngine(t)
		_, _, t1 := scenarioA(t, e)
		got, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{ExpenseCost: ptr(15.0)})
		require.NoError(t, err)
		assert.Equal(t, 115.0, got.TotalCost)
		assert.Equal(t, 230.0, got.TotalPrice)
	})

	t.Run("explicit total must match components", func(t *testing.T) {
		e := newTestEngine(t)
		x, _, t1 := scenarioA(t, e)
		_, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{TotalCost: ptr(120.0)})
		require.Error(t, err)
		assert.True(t, IsValidation(err), "got %v", err)
		assert.Equal(t, 200.0, e.aggregate(t, x.ID).TotalAmount)

		got, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{TotalCost: ptr(120.0), ExpenseCost: ptr(20.0)})
		require.NoError(t, err)
		assert.Equal(t, 240.0, got.TotalPrice)
	})

	t.Run("clearing components turns the total into a lump price", func(t *testing.T) {
		e := newTestEngine(t)
		_, _, t1 := scenarioA(t, e)
		got, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{
			MaterialCost: ptr(0.0), LaborCost: ptr(0.0), TotalCost: ptr(80.0),
		})
		require.NoError(t, err)
		assert.False(t, got.TracksComponents())
		assert.Equal(t, 160.0, got.TotalPrice)
	})

	t.Run("zeroing every component without a total clears the cost", func(t *testing.T) {
		e := newTestEngine(t)
		x, _, t1 := scenarioA(t, e)
		got, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{
			MaterialCost: ptr(0.0), LaborCost: ptr(0.0), ExpenseCost: ptr(0.0),
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.TotalCost)
		assert.Equal(t, 0.0, got.TotalPrice)
		assert.Equal(t, 0.0, e.aggregate(t, x.ID).TotalAmount)
	})

	t.Run("rejects bad quantities and unknown ids", func(t *testing.T) {
		e := newTestEngine(t)
		_, _, t1 := scenarioA(t, e)
		_, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{Count: ptr(-2.0)})
		assert.True(t, IsInvalidQuantity(err), "got %v", err)
		_, err = e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{Name: ptr("")})
		assert.True(t, IsValidation(err), "got %v", err)
		_, err = e.tasks.UpdateTask(ctx, "missing", TaskPatch{Count: ptr(1.0)})
		assert.True(t, IsNotFound(err), "got %v", err)
	})

	t.Run("not found wins over not editable", func(t *testing.T) {
		e := newTestEngine(t)
		x, _, _ := scenarioA(t, e)
		e.advance(t, x.ID, entities.InstructionStatusCanceled)
		_, err := e.tasks.UpdateTask(ctx, "missing", TaskPatch{Count: ptr(-1.0)})
		assert.True(t, IsNotFound(err), "got %v", err)
	})

	t.Run("not editable wins over bad quantity", func(t *testing.T) {
		e := newTestEngine(t)
		x, _, t1 := scenarioA(t, e)
		e.advance(t, x.ID, entities.InstructionStatusCanceled)
		_, err := e.tasks.UpdateTask(ctx, t1.ID, TaskPatch{Count: ptr(-1.0)})
		assert.True(t, IsNotEditable(err), "got %v", err)
	})
}

func TestTaskUseCase_InconsistentDataIsSurfaced(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	// A catalog item whose total disagrees with its components is copied as-is.
	e.catalog.Upsert(entities.CatalogItem{ID: "cat-bad", Name: "Legacy", MaterialCost: 10, LaborCost: 10, TotalCost: 25})
	x := e.mustInstruction(t, "X")
	p := e.mustProcess(t, x.ID, "P")
	task := e.mustTask(t, p.ID, TaskInput{CatalogItemID: "cat-bad", Count: 2})
	assert.Equal(t, 25.0, task.TotalCost)

	agg := e.aggregate(t, x.ID)
	assert.Equal(t, 50.0, agg.TotalAmount)
	assert.Equal(t, 40.0, agg.MaterialAmount+agg.LaborAmount+agg.ExpenseAmount)
	assert.Equal(t, []string{task.ID}, agg.InconsistentTaskIDs)

	// Edits that leave the costs alone keep the stored values.
	got, err := e.tasks.UpdateTask(ctx, task.ID, TaskPatch{Count: ptr(3.0)})
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.TotalCost)
	assert.Equal(t, 75.0, got.TotalPrice)
}

func TestTaskUseCase_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	x, p1, t1 := scenarioA(t, e)
	t2 := e.mustTask(t, p1.ID, TaskInput{Name: ptr("T2"), Count: 1, TotalCost: ptr(30.0)})

	byProcess, err := e.tasks.ListTasksByProcess(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, byProcess, 2)
	assert.Equal(t, t1.ID, byProcess[0].ID)
	assert.Equal(t, t2.ID, byProcess[1].ID)
	assert.Equal(t, 230.0, e.aggregate(t, x.ID).TotalAmount)

	require.NoError(t, e.tasks.DeleteTask(ctx, t1.ID))
	assert.Equal(t, 30.0, e.aggregate(t, x.ID).TotalAmount)

	err = e.tasks.DeleteTask(ctx, t1.ID)
	assert.True(t, IsNotFound(err), "got %v", err)

	for _, id := range []string{"missing", ""} {
		got, err := e.tasks.ListTasksByProcess(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		got, err = e.tasks.ListTasksByInstruction(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}
