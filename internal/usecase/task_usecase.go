package usecase

import (
	"context"
	"fmt"
	"math"
	"repair_orders/internal/domain/costs"
	"repair_orders/internal/domain/entities"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// TaskInput describes a new task. When CatalogItemID is set, the catalog item
// fills every field left nil; the copied values are a snapshot.
type TaskInput struct {
	CatalogItemID string   `json:"catalogItemId,omitempty"`
	Name          *string  `json:"name" validate:"omitnil,max=200"`
	Spec          *string  `json:"spec"`
	Unit          *string  `json:"unit"`
	Count         float64  `json:"count"`
	TotalCost     *float64 `json:"totalCost"`
	MaterialCost  *float64 `json:"materialCost"`
	LaborCost     *float64 `json:"laborCost"`
	ExpenseCost   *float64 `json:"expenseCost"`
	Notes         string   `json:"notes"`
}

// TaskPatch updates the fields that are set. A task cannot be moved to
// another process, and its catalog reference is fixed at creation.
//
// A patch that sets cost components without TotalCost derives TotalCost from
// them, so zeroing all three components also zeroes TotalCost. To turn a task
// into a lump-price task, send the zeroed components together with TotalCost.
type TaskPatch struct {
	Name         *string  `json:"name" validate:"omitnil,min=1,max=200"`
	Spec         *string  `json:"spec"`
	Unit         *string  `json:"unit"`
	Count        *float64 `json:"count"`
	TotalCost    *float64 `json:"totalCost"`
	MaterialCost *float64 `json:"materialCost"`
	LaborCost    *float64 `json:"laborCost"`
	ExpenseCost  *float64 `json:"expenseCost"`
	Notes        *string  `json:"notes"`
}

func (p TaskPatch) touchesComponents() bool {
	return p.MaterialCost != nil || p.LaborCost != nil || p.ExpenseCost != nil
}

// ITaskUseCase is the Task Ledger.
type ITaskUseCase interface {
	CreateTask(ctx context.Context, processID string, in TaskInput) (entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	ListTasksByProcess(ctx context.Context, processID string) ([]entities.Task, error)
	ListTasksByInstruction(ctx context.Context, instructionID string) ([]entities.Task, error)
}

type TaskUseCase struct {
	book *OrderBook
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(book *OrderBook) *TaskUseCase {
	return &TaskUseCase{book: book}
}

func (u *TaskUseCase) CreateTask(ctx context.Context, processID string, in TaskInput) (entities.Task, error) {
	const op = "CreateTask"

	var created entities.Task
	err := u.book.withProcess(ctx, op, processID, true, func(p entities.Process) error {
		if _, err := u.book.editable(ctx, op, entityProcess, p.ID, p.InstructionID); err != nil {
			return err
		}
		if err := u.book.validateInput(op, entityTask, "", in); err != nil {
			return err
		}

		now := u.book.now()
		t := entities.Task{
			ID:            u.book.newID(),
			ProcessID:     p.ID,
			CatalogItemID: strings.TrimSpace(in.CatalogItemID),
			Count:         in.Count,
			Notes:         in.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		snapshotTotal := false
		if t.CatalogItemID != "" {
			item, err := u.catalogItem(ctx, op, t.CatalogItemID)
			if err != nil {
				return err
			}
			t.Name, t.Spec, t.Unit = item.Name, item.Spec, item.Unit
			t.MaterialCost, t.LaborCost, t.ExpenseCost = item.MaterialCost, item.LaborCost, item.ExpenseCost
			t.TotalCost = item.TotalCost
			snapshotTotal = item.TotalCost > 0
		}
		setIf(&t.Name, in.Name)
		setIf(&t.Spec, in.Spec)
		setIf(&t.Unit, in.Unit)
		setIf(&t.MaterialCost, in.MaterialCost)
		setIf(&t.LaborCost, in.LaborCost)
		setIf(&t.ExpenseCost, in.ExpenseCost)
		setIf(&t.TotalCost, in.TotalCost)
		t.Name = strings.TrimSpace(t.Name)

		if t.Name == "" {
			return newFieldError(op, entityTask, "", "name", fmt.Errorf("%w: required", entities.ErrValidation))
		}
		if err := checkQuantities(op, "", t); err != nil {
			return err
		}
		componentsGiven := in.MaterialCost != nil || in.LaborCost != nil || in.ExpenseCost != nil
		derive := in.TotalCost == nil && (componentsGiven || !snapshotTotal)
		if err := reconcileTotalCost(op, "", &t, in.TotalCost != nil, derive); err != nil {
			return err
		}
		t.TotalPrice = costs.TaskPrice(t.Count, t.TotalCost)

		if err := u.book.commit(ctx, entities.ChangeSet{InstructionID: p.InstructionID, Tasks: []entities.Task{t}}); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("process_id", processID).Msg("[task][usecase] create rejected")
		return entities.Task{}, err
	}
	log.Info().
		Str("process_id", created.ProcessID).
		Str("task_id", created.ID).
		Float64("total_price", created.TotalPrice).
		Msg("[task][usecase] created")
	return created, nil
}

func (u *TaskUseCase) catalogItem(ctx context.Context, op, id string) (entities.CatalogItem, error) {
	if u.book.catalog == nil {
		return entities.CatalogItem{}, newEngineError(op, entityCatalogItem, id, entities.ErrNotFound)
	}
	item, err := u.book.catalog.GetItem(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, fmt.Errorf("%s: load catalog item %s: %w", op, id, err)
	}
	if item.ID == "" {
		return entities.CatalogItem{}, newEngineError(op, entityCatalogItem, id, entities.ErrNotFound)
	}
	return item, nil
}

func (u *TaskUseCase) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (entities.Task, error) {
	const op = "UpdateTask"
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	var updated entities.Task
	err := u.book.withTask(ctx, op, taskID, func(t entities.Task, p entities.Process) error {
		if _, err := u.book.editable(ctx, op, entityTask, t.ID, p.InstructionID); err != nil {
			return err
		}
		if err := u.book.validateInput(op, entityTask, t.ID, patch); err != nil {
			return err
		}
		setIf(&t.Name, patch.Name)
		setIf(&t.Spec, patch.Spec)
		setIf(&t.Unit, patch.Unit)
		setIf(&t.Count, patch.Count)
		setIf(&t.MaterialCost, patch.MaterialCost)
		setIf(&t.LaborCost, patch.LaborCost)
		setIf(&t.ExpenseCost, patch.ExpenseCost)
		setIf(&t.TotalCost, patch.TotalCost)
		setIf(&t.Notes, patch.Notes)

		if err := checkQuantities(op, t.ID, t); err != nil {
			return err
		}
		// Untouched costs are left as stored, even when inconsistent; the
		// aggregate reports them.
		switch {
		case patch.TotalCost == nil && patch.touchesComponents() && !t.TracksComponents():
			t.TotalCost = 0
		case patch.TotalCost != nil || patch.touchesComponents():
			derive := patch.TotalCost == nil
			if err := reconcileTotalCost(op, t.ID, &t, patch.TotalCost != nil, derive); err != nil {
				return err
			}
		}
		t.TotalPrice = costs.TaskPrice(t.Count, t.TotalCost)
		t.UpdatedAt = u.book.now()

		if err := u.book.commit(ctx, entities.ChangeSet{InstructionID: p.InstructionID, Tasks: []entities.Task{t}}); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("task_id", taskID).Msg("[task][usecase] update rejected")
		return entities.Task{}, err
	}
	return updated, nil
}

func (u *TaskUseCase) DeleteTask(ctx context.Context, taskID string) error {
	const op = "DeleteTask"
	err := u.book.withTask(ctx, op, taskID, func(t entities.Task, p entities.Process) error {
		if _, err := u.book.editable(ctx, op, entityTask, t.ID, p.InstructionID); err != nil {
			return err
		}
		return u.book.commit(ctx, entities.ChangeSet{InstructionID: p.InstructionID, DeletedTaskIDs: []string{t.ID}})
	})
	if err != nil {
		log.Warn().Err(err).Str("task_id", taskID).Msg("[task][usecase] delete rejected")
		return err
	}
	log.Info().Str("task_id", taskID).Msg("[task][usecase] deleted")
	return nil
}

// ListTasksByProcess returns an empty slice for an unknown process.
func (u *TaskUseCase) ListTasksByProcess(ctx context.Context, processID string) ([]entities.Task, error) {
	const op = "ListTasksByProcess"
	out := []entities.Task{}
	processID = strings.TrimSpace(processID)
	if processID == "" {
		return out, nil
	}
	err := u.book.withProcess(ctx, op, processID, false, func(p entities.Process) error {
		tasks, err := u.book.repo.ListTasks(ctx, p.InstructionID)
		if err != nil {
			return fmt.Errorf("%s %s: %w", op, p.ID, err)
		}
		for _, t := range tasks {
			if t.ProcessID == p.ID {
				out = append(out, t)
			}
		}
		return nil
	})
	if IsNotFound(err) {
		return []entities.Task{}, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListTasksByInstruction joins the tasks of every process of the instruction,
// ordered by process then by creation. Unknown instructions yield an empty
// slice.
func (u *TaskUseCase) ListTasksByInstruction(ctx context.Context, instructionID string) ([]entities.Task, error) {
	const op = "ListTasksByInstruction"
	instructionID = strings.TrimSpace(instructionID)
	if instructionID == "" {
		return []entities.Task{}, nil
	}
	var out []entities.Task
	err := u.book.withInstruction(ctx, op, instructionID, false, func(i entities.Instruction) error {
		processes, err := u.book.repo.ListProcesses(ctx, i.ID)
		if err != nil {
			return fmt.Errorf("%s %s: %w", op, i.ID, err)
		}
		tasks, err := u.book.repo.ListTasks(ctx, i.ID)
		if err != nil {
			return fmt.Errorf("%s %s: %w", op, i.ID, err)
		}
		position := make(map[string]int, len(processes))
		for n, p := range processes {
			position[p.ID] = n
		}
		out = slices.Clone(tasks)
		slices.SortStableFunc(out, func(a, b entities.Task) int {
			return position[a.ProcessID] - position[b.ProcessID]
		})
		return nil
	})
	if IsNotFound(err) {
		return []entities.Task{}, nil
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Task{}
	}
	return out, nil
}

// checkQuantities rejects negative, NaN and infinite counts or costs.
func checkQuantities(op, id string, t entities.Task) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"count", t.Count},
		{"totalCost", t.TotalCost},
		{"materialCost", t.MaterialCost},
		{"laborCost", t.LaborCost},
		{"expenseCost", t.ExpenseCost},
	}
	for _, f := range fields {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return newFieldError(op, entityTask, id, f.name, fmt.Errorf("%w: %v", entities.ErrInvalidQuantity, f.value))
		}
	}
	return nil
}

// reconcileTotalCost keeps TotalCost in line with the cost components at
// write time. A task without components carries a lump TotalCost. Otherwise
// TotalCost is derived from the components, or, when the caller supplied it,
// must match them.
func reconcileTotalCost(op, id string, t *entities.Task, supplied, derive bool) error {
	if !t.TracksComponents() {
		return nil
	}
	if derive {
		t.TotalCost = costs.ComponentSum(t.MaterialCost, t.LaborCost, t.ExpenseCost)
		return nil
	}
	if supplied && !costs.Consistent(*t) {
		sum := costs.ComponentSum(t.MaterialCost, t.LaborCost, t.ExpenseCost)
		return newFieldError(op, entityTask, id, "totalCost",
			fmt.Errorf("%w: %v does not match material+labor+expense %v", entities.ErrValidation, t.TotalCost, sum))
	}
	return nil
}
