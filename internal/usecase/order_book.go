package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"repair_orders/internal/domain/costs"
	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	entityInstruction = "instruction"
	entityProcess     = "process"
	entityTask        = "task"
	entityCatalogItem = "catalog item"
)

// OrderBook is the state shared by the instruction, process and task usecases.
//
// Every Instruction subtree has a single writer: mutations hold the
// Instruction's write lock across load, validation and commit, while reads
// hold the read lock. Different Instructions never contend. Aggregates are
// never cached; every rollup is computed from the stored subtree.
type OrderBook struct {
	repo     interfaces.IOrderRepository
	catalog  interfaces.ICatalog
	validate *validator.Validate

	now   func() time.Time
	newID func() string

	locksMu sync.Mutex
	locks   map[string]*sync.RWMutex
}

func NewOrderBook(repo interfaces.IOrderRepository, catalog interfaces.ICatalog) *OrderBook {
	return &OrderBook{
		repo:     repo,
		catalog:  catalog,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		locks:    make(map[string]*sync.RWMutex),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (b *OrderBook) instructionLock(id string) *sync.RWMutex {
	b.locksMu.Lock()
	defer b.locksMu.Unlock()
	l, ok := b.locks[id]
	if !ok {
		l = &sync.RWMutex{}
		b.locks[id] = l
	}
	return l
}

// forget drops the lock of a deleted instruction. Callers still waiting on
// the old lock re-read the instruction and get NotFound.
func (b *OrderBook) forget(id string) {
	b.locksMu.Lock()
	delete(b.locks, id)
	b.locksMu.Unlock()
}

func (b *OrderBook) lockWrite(id string) func() {
	l := b.instructionLock(id)
	l.Lock()
	return l.Unlock
}

func (b *OrderBook) lockRead(id string) func() {
	l := b.instructionLock(id)
	l.RLock()
	return l.RUnlock
}

func (b *OrderBook) validateInput(op, entity, id string, in any) error {
	err := b.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return newFieldError(op, entity, id, fe.Field(), fmt.Errorf("%w: failed on %q", entities.ErrValidation, fe.Tag()))
	}
	return newEngineError(op, entity, id, fmt.Errorf("%w: %v", entities.ErrValidation, err))
}

func requireID(op, entity, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", newFieldError(op, entity, "", "id", entities.ErrValidation)
	}
	return id, nil
}

func (b *OrderBook) loadInstruction(ctx context.Context, op, id string) (entities.Instruction, error) {
	i, err := b.repo.GetInstruction(ctx, id)
	if err != nil {
		return entities.Instruction{}, fmt.Errorf("%s: load instruction %s: %w", op, id, err)
	}
	if i.ID == "" {
		return entities.Instruction{}, newEngineError(op, entityInstruction, id, entities.ErrNotFound)
	}
	return i, nil
}

func (b *OrderBook) loadProcess(ctx context.Context, op, id string) (entities.Process, error) {
	p, err := b.repo.GetProcess(ctx, id)
	if err != nil {
		return entities.Process{}, fmt.Errorf("%s: load process %s: %w", op, id, err)
	}
	if p.ID == "" {
		return entities.Process{}, newEngineError(op, entityProcess, id, entities.ErrNotFound)
	}
	return p, nil
}

// loadLiveProcess is loadProcess for a process whose instruction must still
// exist. Rows left behind by an interrupted subtree delete read as NotFound.
func (b *OrderBook) loadLiveProcess(ctx context.Context, op, id string) (entities.Process, error) {
	p, err := b.loadProcess(ctx, op, id)
	if err != nil {
		return entities.Process{}, err
	}
	i, err := b.repo.GetInstruction(ctx, p.InstructionID)
	if err != nil {
		return entities.Process{}, fmt.Errorf("%s: load instruction %s: %w", op, p.InstructionID, err)
	}
	if i.ID == "" {
		return entities.Process{}, newEngineError(op, entityProcess, id, entities.ErrNotFound)
	}
	return p, nil
}

func (b *OrderBook) loadTask(ctx context.Context, op, id string) (entities.Task, error) {
	t, err := b.repo.GetTask(ctx, id)
	if err != nil {
		return entities.Task{}, fmt.Errorf("%s: load task %s: %w", op, id, err)
	}
	if t.ID == "" {
		return entities.Task{}, newEngineError(op, entityTask, id, entities.ErrNotFound)
	}
	return t, nil
}

// editable loads the owning instruction and rejects locked ones. The error
// names the entity the caller tried to mutate.
func (b *OrderBook) editable(ctx context.Context, op, entity, entityID, instructionID string) (entities.Instruction, error) {
	i, err := b.loadInstruction(ctx, op, instructionID)
	if err != nil {
		return entities.Instruction{}, err
	}
	if !i.CanEdit() {
		return entities.Instruction{}, newEngineError(op, entity, entityID, entities.ErrNotEditable)
	}
	return i, nil
}

// withInstruction runs fn under the instruction's lock after re-reading it.
// Unknown ids fail before a lock is allocated for them.
func (b *OrderBook) withInstruction(ctx context.Context, op, id string, write bool, fn func(entities.Instruction) error) error {
	id, err := requireID(op, entityInstruction, id)
	if err != nil {
		return err
	}
	if _, err := b.loadInstruction(ctx, op, id); err != nil {
		return err
	}
	var unlock func()
	if write {
		unlock = b.lockWrite(id)
	} else {
		unlock = b.lockRead(id)
	}
	defer unlock()

	i, err := b.loadInstruction(ctx, op, id)
	if err != nil {
		return err
	}
	return fn(i)
}

// withProcess resolves the process to its instruction, takes that
// instruction's lock and re-reads the process before calling fn.
func (b *OrderBook) withProcess(ctx context.Context, op, id string, write bool, fn func(entities.Process) error) error {
	id, err := requireID(op, entityProcess, id)
	if err != nil {
		return err
	}
	p, err := b.loadLiveProcess(ctx, op, id)
	if err != nil {
		return err
	}
	var unlock func()
	if write {
		unlock = b.lockWrite(p.InstructionID)
	} else {
		unlock = b.lockRead(p.InstructionID)
	}
	defer unlock()

	p, err = b.loadLiveProcess(ctx, op, id)
	if err != nil {
		return err
	}
	return fn(p)
}

// withTask is withProcess for a task id; fn receives the task and its process.
func (b *OrderBook) withTask(ctx context.Context, op, id string, fn func(entities.Task, entities.Process) error) error {
	id, err := requireID(op, entityTask, id)
	if err != nil {
		return err
	}
	t, err := b.loadTask(ctx, op, id)
	if err != nil {
		return err
	}
	p, err := b.taskProcess(ctx, op, t)
	if err != nil {
		return err
	}
	unlock := b.lockWrite(p.InstructionID)
	defer unlock()

	if t, err = b.loadTask(ctx, op, id); err != nil {
		return err
	}
	if p, err = b.taskProcess(ctx, op, t); err != nil {
		return err
	}
	return fn(t, p)
}

// taskProcess loads the live process of t. A task whose process or
// instruction is gone is itself NotFound.
func (b *OrderBook) taskProcess(ctx context.Context, op string, t entities.Task) (entities.Process, error) {
	p, err := b.loadLiveProcess(ctx, op, t.ProcessID)
	if IsNotFound(err) {
		return entities.Process{}, newEngineError(op, entityTask, t.ID, entities.ErrNotFound)
	}
	return p, err
}

// commit applies cs. Must be called with the instruction's write lock held.
func (b *OrderBook) commit(ctx context.Context, cs entities.ChangeSet) error {
	if err := b.repo.Commit(ctx, cs); err != nil {
		return fmt.Errorf("commit instruction %s: %w", cs.InstructionID, err)
	}
	if cs.DeleteInstruction {
		b.forget(cs.InstructionID)
	}
	return nil
}

// aggregate rolls up the instruction's subtree as currently stored. Must be
// called with the instruction's lock held.
func (b *OrderBook) aggregate(ctx context.Context, instructionID string) (entities.Aggregate, error) {
	processes, err := b.repo.ListProcesses(ctx, instructionID)
	if err != nil {
		return entities.Aggregate{}, fmt.Errorf("aggregate %s: list processes: %w", instructionID, err)
	}
	tasks, err := b.repo.ListTasks(ctx, instructionID)
	if err != nil {
		return entities.Aggregate{}, fmt.Errorf("aggregate %s: list tasks: %w", instructionID, err)
	}
	return costs.Aggregate(len(processes), tasks), nil
}
