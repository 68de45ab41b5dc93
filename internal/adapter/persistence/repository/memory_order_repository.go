package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"
)

// ErrDanglingReference is returned by Commit when the change set would leave a
// process or task without its parent.
var ErrDanglingReference = errors.New("dangling parent reference")

type memInstruction struct {
	seq uint64
	v   entities.Instruction
}

type memProcess struct {
	seq uint64
	v   entities.Process
}

type memTask struct {
	seq           uint64
	instructionID string
	v             entities.Task
}

// MemoryOrderRepository keeps the order tree in process memory. It backs the
// tests and STORE_DRIVER=memory. Commits are validated on a copy and swapped in,
// so a rejected change set leaves nothing behind.
type MemoryOrderRepository struct {
	mu           sync.RWMutex
	seq          uint64
	instructions map[string]memInstruction
	processes    map[string]memProcess
	tasks        map[string]memTask
}

var _ interfaces.IOrderRepository = (*MemoryOrderRepository)(nil)

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		instructions: make(map[string]memInstruction),
		processes:    make(map[string]memProcess),
		tasks:        make(map[string]memTask),
	}
}

func (r *MemoryOrderRepository) GetInstruction(_ context.Context, id string) (entities.Instruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.instructions[id].v, nil
}

func (r *MemoryOrderRepository) ListInstructions(_ context.Context) ([]entities.Instruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]memInstruction, 0, len(r.instructions))
	for _, it := range r.instructions {
		rows = append(rows, it)
	}
	slices.SortFunc(rows, func(a, b memInstruction) int { return cmpSeq(a.seq, b.seq) })
	out := make([]entities.Instruction, 0, len(rows))
	for _, it := range rows {
		out = append(out, it.v)
	}
	return out, nil
}

func (r *MemoryOrderRepository) GetProcess(_ context.Context, id string) (entities.Process, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyProcess(r.processes[id].v), nil
}

func (r *MemoryOrderRepository) ListProcesses(_ context.Context, instructionID string) ([]entities.Process, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var rows []memProcess
	for _, it := range r.processes {
		if it.v.InstructionID == instructionID {
			rows = append(rows, it)
		}
	}
	slices.SortFunc(rows, func(a, b memProcess) int { return cmpSeq(a.seq, b.seq) })
	out := make([]entities.Process, 0, len(rows))
	for _, it := range rows {
		out = append(out, copyProcess(it.v))
	}
	return out, nil
}

func (r *MemoryOrderRepository) GetTask(_ context.Context, id string) (entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tasks[id].v, nil
}

func (r *MemoryOrderRepository) ListTasks(_ context.Context, instructionID string) ([]entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var rows []memTask
	for _, it := range r.tasks {
		if it.instructionID == instructionID {
			rows = append(rows, it)
		}
	}
	slices.SortFunc(rows, func(a, b memTask) int { return cmpSeq(a.seq, b.seq) })
	out := make([]entities.Task, 0, len(rows))
	for _, it := range rows {
		out = append(out, it.v)
	}
	return out, nil
}

func (r *MemoryOrderRepository) Commit(_ context.Context, cs entities.ChangeSet) error {
	if cs.IsEmpty() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	instructions := cloneMap(r.instructions)
	processes := cloneMap(r.processes)
	tasks := cloneMap(r.tasks)
	seq := r.seq

	for _, id := range cs.DeletedTaskIDs {
		delete(tasks, id)
	}
	for _, id := range cs.DeletedProcessIDs {
		delete(processes, id)
	}
	if cs.DeleteInstruction {
		delete(instructions, cs.InstructionID)
	}
	if cs.Instruction != nil {
		cur, ok := instructions[cs.Instruction.ID]
		if !ok {
			seq++
			cur.seq = seq
		}
		cur.v = *cs.Instruction
		instructions[cs.Instruction.ID] = cur
	}
	for _, p := range cs.Processes {
		if _, ok := instructions[p.InstructionID]; !ok {
			return fmt.Errorf("process %s: instruction %s: %w", p.ID, p.InstructionID, ErrDanglingReference)
		}
		cur, ok := processes[p.ID]
		if !ok {
			seq++
			cur.seq = seq
		}
		cur.v = copyProcess(p)
		processes[p.ID] = cur
	}
	for _, t := range cs.Tasks {
		parent, ok := processes[t.ProcessID]
		if !ok {
			return fmt.Errorf("task %s: process %s: %w", t.ID, t.ProcessID, ErrDanglingReference)
		}
		cur, ok := tasks[t.ID]
		if !ok {
			seq++
			cur.seq = seq
		}
		cur.instructionID = parent.v.InstructionID
		cur.v = t
		tasks[t.ID] = cur
	}
	for id, p := range processes {
		if _, ok := instructions[p.v.InstructionID]; !ok {
			return fmt.Errorf("process %s: instruction %s: %w", id, p.v.InstructionID, ErrDanglingReference)
		}
	}
	for id, t := range tasks {
		if _, ok := processes[t.v.ProcessID]; !ok {
			return fmt.Errorf("task %s: process %s: %w", id, t.v.ProcessID, ErrDanglingReference)
		}
	}

	r.instructions, r.processes, r.tasks, r.seq = instructions, processes, tasks, seq
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cmpSeq(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func copyProcess(p entities.Process) entities.Process {
	if p.EndDate != nil {
		d := *p.EndDate
		p.EndDate = &d
	}
	return p
}
