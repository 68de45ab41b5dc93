package usecase

import (
	"context"
	"fmt"
	"repair_orders/internal/domain/entities"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type ProcessInput struct {
	Name    string                 `json:"name" validate:"required,max=200"`
	Worker  string                 `json:"worker"`
	EndDate *time.Time             `json:"endDate"`
	Status  entities.ProcessStatus `json:"status" validate:"omitempty,oneof=before_work in_progress completed"`
}

// ProcessPatch updates the fields that are set. ClearEndDate removes the
// target end date and wins over EndDate.
type ProcessPatch struct {
	Name         *string                 `json:"name" validate:"omitnil,min=1,max=200"`
	Worker       *string                 `json:"worker"`
	EndDate      *time.Time              `json:"endDate"`
	ClearEndDate bool                    `json:"clearEndDate"`
	Status       *entities.ProcessStatus `json:"status" validate:"omitnil,oneof=before_work in_progress completed"`
}

// ProcessFilter narrows a process listing: case-insensitive substrings on name
// and worker, exact status. Zero fields match everything.
type ProcessFilter struct {
	Name   string
	Worker string
	Status entities.ProcessStatus
}

func (f ProcessFilter) match(p entities.Process) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return containsFold(p.Name, f.Name) && containsFold(p.Worker, f.Worker)
}

// IProcessUseCase is the Process Registry.
type IProcessUseCase interface {
	CreateProcess(ctx context.Context, instructionID string, in ProcessInput) (entities.Process, error)
	UpdateProcess(ctx context.Context, processID string, patch ProcessPatch) (entities.Process, error)
	DeleteProcess(ctx context.Context, processID string) error
	ListProcessesByInstruction(ctx context.Context, instructionID string, filter ProcessFilter) ([]entities.Process, error)
}

type ProcessUseCase struct {
	book *OrderBook
}

var _ IProcessUseCase = (*ProcessUseCase)(nil)

func NewProcessUseCase(book *OrderBook) *ProcessUseCase {
	return &ProcessUseCase{book: book}
}

func (u *ProcessUseCase) CreateProcess(ctx context.Context, instructionID string, in ProcessInput) (entities.Process, error) {
	const op = "CreateProcess"
	in.Name = strings.TrimSpace(in.Name)

	var created entities.Process
	err := u.book.withInstruction(ctx, op, instructionID, true, func(i entities.Instruction) error {
		if !i.CanEdit() {
			return newEngineError(op, entityInstruction, i.ID, entities.ErrNotEditable)
		}
		if err := u.book.validateInput(op, entityProcess, "", in); err != nil {
			return err
		}
		status := in.Status
		if status == "" {
			status = entities.ProcessStatusBeforeWork
		}
		now := u.book.now()
		p := entities.Process{
			ID:            u.book.newID(),
			InstructionID: i.ID,
			Name:          in.Name,
			Worker:        strings.TrimSpace(in.Worker),
			EndDate:       in.EndDate,
			Status:        status,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := u.book.commit(ctx, entities.ChangeSet{InstructionID: i.ID, Processes: []entities.Process{p}}); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("instruction_id", instructionID).Msg("[process][usecase] create rejected")
		return entities.Process{}, err
	}
	log.Info().Str("instruction_id", created.InstructionID).Str("process_id", created.ID).Msg("[process][usecase] created")
	return created, nil
}

// UpdateProcess applies patch. Status-only patches are held to the same
// editability rule as every other field.
func (u *ProcessUseCase) UpdateProcess(ctx context.Context, processID string, patch ProcessPatch) (entities.Process, error) {
	const op = "UpdateProcess"
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	var updated entities.Process
	err := u.book.withProcess(ctx, op, processID, true, func(p entities.Process) error {
		if _, err := u.book.editable(ctx, op, entityProcess, p.ID, p.InstructionID); err != nil {
			return err
		}
		if err := u.book.validateInput(op, entityProcess, p.ID, patch); err != nil {
			return err
		}
		setIf(&p.Name, patch.Name)
		setIf(&p.Worker, patch.Worker)
		setIf(&p.Status, patch.Status)
		if patch.EndDate != nil {
			d := *patch.EndDate
			p.EndDate = &d
		}
		if patch.ClearEndDate {
			p.EndDate = nil
		}
		p.UpdatedAt = u.book.now()
		if err := u.book.commit(ctx, entities.ChangeSet{InstructionID: p.InstructionID, Processes: []entities.Process{p}}); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("process_id", processID).Msg("[process][usecase] update rejected")
		return entities.Process{}, err
	}
	return updated, nil
}

// DeleteProcess removes the process and its tasks in one unit of work.
func (u *ProcessUseCase) DeleteProcess(ctx context.Context, processID string) error {
	const op = "DeleteProcess"
	err := u.book.withProcess(ctx, op, processID, true, func(p entities.Process) error {
		if _, err := u.book.editable(ctx, op, entityProcess, p.ID, p.InstructionID); err != nil {
			return err
		}
		tasks, err := u.book.repo.ListTasks(ctx, p.InstructionID)
		if err != nil {
			return fmt.Errorf("%s: list tasks of %s: %w", op, p.InstructionID, err)
		}
		cs := entities.ChangeSet{InstructionID: p.InstructionID, DeletedProcessIDs: []string{p.ID}}
		for _, t := range tasks {
			if t.ProcessID == p.ID {
				cs.DeletedTaskIDs = append(cs.DeletedTaskIDs, t.ID)
			}
		}
		if err := u.book.commit(ctx, cs); err != nil {
			return err
		}
		log.Info().
			Str("instruction_id", p.InstructionID).
			Str("process_id", p.ID).
			Int("tasks_deleted", len(cs.DeletedTaskIDs)).
			Msg("[process][usecase] deleted")
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("process_id", processID).Msg("[process][usecase] delete rejected")
	}
	return err
}

// ListProcessesByInstruction never reports a missing instruction; it returns
// an empty slice instead.
func (u *ProcessUseCase) ListProcessesByInstruction(ctx context.Context, instructionID string, filter ProcessFilter) ([]entities.Process, error) {
	const op = "ListProcessesByInstruction"
	instructionID = strings.TrimSpace(instructionID)
	out := []entities.Process{}
	if instructionID == "" {
		return out, nil
	}
	err := u.book.withInstruction(ctx, op, instructionID, false, func(i entities.Instruction) error {
		processes, err := u.book.repo.ListProcesses(ctx, i.ID)
		if err != nil {
			return fmt.Errorf("%s %s: %w", op, i.ID, err)
		}
		for _, p := range processes {
			if filter.match(p) {
				out = append(out, p)
			}
		}
		return nil
	})
	if IsNotFound(err) {
		return []entities.Process{}, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
