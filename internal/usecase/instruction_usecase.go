package usecase

import (
	"context"
	"fmt"
	"repair_orders/internal/domain/entities"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// InstructionInput carries the fields of a new Instruction. Status and
// confirmed are not part of it: every instruction starts received and
// unconfirmed.
type InstructionInput struct {
	OrderNumber   string    `json:"orderNumber" validate:"max=64"`
	OrderDate     time.Time `json:"orderDate"`
	Name          string    `json:"name" validate:"required,max=200"`
	Manager       string    `json:"manager"`
	Delegator     string    `json:"delegator"`
	District      string    `json:"district"`
	Dong          string    `json:"dong"`
	LotNumber     string    `json:"lotNumber"`
	DetailAddress string    `json:"detailAddress"`
	Structure     string    `json:"structure"`
	Memo          string    `json:"memo"`
}

// InstructionPatch updates the fields that are set. It has no status or
// confirmed field; those only move through the transition operations.
type InstructionPatch struct {
	OrderNumber   *string    `json:"orderNumber" validate:"omitnil,max=64"`
	OrderDate     *time.Time `json:"orderDate"`
	Name          *string    `json:"name" validate:"omitnil,min=1,max=200"`
	Manager       *string    `json:"manager"`
	Delegator     *string    `json:"delegator"`
	District      *string    `json:"district"`
	Dong          *string    `json:"dong"`
	LotNumber     *string    `json:"lotNumber"`
	DetailAddress *string    `json:"detailAddress"`
	Structure     *string    `json:"structure"`
	Memo          *string    `json:"memo"`
}

// InstructionFilter narrows ListInstructions. Name and Manager match
// case-insensitive substrings; an empty field matches everything.
type InstructionFilter struct {
	Name    string
	Manager string
	Status  entities.InstructionStatus
}

func (f InstructionFilter) match(i entities.Instruction) bool {
	if f.Status != "" && i.Status != f.Status {
		return false
	}
	return containsFold(i.Name, f.Name) && containsFold(i.Manager, f.Manager)
}

func containsFold(s, sub string) bool {
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// IInstructionUseCase is the Instruction Store: the instruction CRUD plus the
// workflow transitions.
//
//   - SetStatus moves between the working states of an editable instruction.
//   - Close ends the work (in_approval -> completed).
//   - Confirm locks a completed instruction for billing.
//   - Cancel locks any instruction that has not ended.
//   - End retires a confirmed instruction.
type IInstructionUseCase interface {
	CreateInstruction(ctx context.Context, in InstructionInput) (entities.Instruction, error)
	UpdateInstruction(ctx context.Context, id string, patch InstructionPatch) (entities.Instruction, error)
	DeleteInstruction(ctx context.Context, id string) error
	GetInstructionWithAggregate(ctx context.Context, id string) (entities.InstructionWithAggregate, error)
	ListInstructions(ctx context.Context, filter InstructionFilter) ([]entities.InstructionWithAggregate, error)

	SetStatus(ctx context.Context, id string, status entities.InstructionStatus) (entities.Instruction, error)
	Close(ctx context.Context, id string) (entities.Instruction, error)
	Confirm(ctx context.Context, id string) (entities.Instruction, error)
	Cancel(ctx context.Context, id string) (entities.Instruction, error)
	End(ctx context.Context, id string) (entities.Instruction, error)
}

type InstructionUseCase struct {
	book *OrderBook
}

var _ IInstructionUseCase = (*InstructionUseCase)(nil)

func NewInstructionUseCase(book *OrderBook) *InstructionUseCase {
	return &InstructionUseCase{book: book}
}

func (u *InstructionUseCase) CreateInstruction(ctx context.Context, in InstructionInput) (entities.Instruction, error) {
	const op = "CreateInstruction"
	in.Name = strings.TrimSpace(in.Name)
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	if err := u.book.validateInput(op, entityInstruction, "", in); err != nil {
		return entities.Instruction{}, err
	}

	now := u.book.now()
	i := entities.Instruction{
		ID:            u.book.newID(),
		OrderNumber:   in.OrderNumber,
		OrderDate:     in.OrderDate,
		Name:          in.Name,
		Manager:       in.Manager,
		Delegator:     in.Delegator,
		District:      in.District,
		Dong:          in.Dong,
		LotNumber:     in.LotNumber,
		DetailAddress: in.DetailAddress,
		Structure:     in.Structure,
		Memo:          in.Memo,
		Status:        entities.InstructionStatusReceived,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	unlock := u.book.lockWrite(i.ID)
	defer unlock()
	if err := u.book.commit(ctx, entities.ChangeSet{InstructionID: i.ID, Instruction: &i}); err != nil {
		log.Error().Err(err).Str("instruction_id", i.ID).Msg("[instruction][usecase] create failed")
		return entities.Instruction{}, err
	}
	log.Info().Str("instruction_id", i.ID).Str("order_number", i.OrderNumber).Msg("[instruction][usecase] created")
	return i, nil
}

func (u *InstructionUseCase) UpdateInstruction(ctx context.Context, id string, patch InstructionPatch) (entities.Instruction, error) {
	const op = "UpdateInstruction"
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	var updated entities.Instruction
	err := u.book.withInstruction(ctx, op, id, true, func(i entities.Instruction) error {
		if !i.CanEdit() {
			return newEngineError(op, entityInstruction, i.ID, entities.ErrNotEditable)
		}
		if err := u.book.validateInput(op, entityInstruction, i.ID, patch); err != nil {
			return err
		}
		applyInstructionPatch(&i, patch)
		i.UpdatedAt = u.book.now()
		if err := u.book.commit(ctx, entities.ChangeSet{InstructionID: i.ID, Instruction: &i}); err != nil {
			return err
		}
		updated = i
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("instruction_id", id).Msg("[instruction][usecase] update rejected")
		return entities.Instruction{}, err
	}
	return updated, nil
}

func applyInstructionPatch(i *entities.Instruction, p InstructionPatch) {
	setIf(&i.OrderNumber, p.OrderNumber)
	setIf(&i.OrderDate, p.OrderDate)
	setIf(&i.Name, p.Name)
	setIf(&i.Manager, p.Manager)
	setIf(&i.Delegator, p.Delegator)
	setIf(&i.District, p.District)
	setIf(&i.Dong, p.Dong)
	setIf(&i.LotNumber, p.LotNumber)
	setIf(&i.DetailAddress, p.DetailAddress)
	setIf(&i.Structure, p.Structure)
	setIf(&i.Memo, p.Memo)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// DeleteInstruction removes the instruction with every process and task
// under it in one unit of work.
func (u *InstructionUseCase) DeleteInstruction(ctx context.Context, id string) error {
	const op = "DeleteInstruction"
	err := u.book.withInstruction(ctx, op, id, true, func(i entities.Instruction) error {
		if !i.CanEdit() {
			return newEngineError(op, entityInstruction, i.ID, entities.ErrNotEditable)
		}
		processes, err := u.book.repo.ListProcesses(ctx, i.ID)
		if err != nil {
			return fmt.Errorf("%s: list processes of %s: %w", op, i.ID, err)
		}
		tasks, err := u.book.repo.ListTasks(ctx, i.ID)
		if err != nil {
			return fmt.Errorf("%s: list tasks of %s: %w", op, i.ID, err)
		}
		cs := entities.ChangeSet{InstructionID: i.ID, DeleteInstruction: true}
		for _, t := range tasks {
			cs.DeletedTaskIDs = append(cs.DeletedTaskIDs, t.ID)
		}
		for _, p := range processes {
			cs.DeletedProcessIDs = append(cs.DeletedProcessIDs, p.ID)
		}
		return u.book.commit(ctx, cs)
	})
	if err != nil {
		log.Warn().Err(err).Str("instruction_id", id).Msg("[instruction][usecase] delete rejected")
		return err
	}
	log.Info().Str("instruction_id", id).Msg("[instruction][usecase] deleted")
	return nil
}

func (u *InstructionUseCase) GetInstructionWithAggregate(ctx context.Context, id string) (entities.InstructionWithAggregate, error) {
	const op = "GetInstructionWithAggregate"
	var out entities.InstructionWithAggregate
	err := u.book.withInstruction(ctx, op, id, false, func(i entities.Instruction) error {
		agg, err := u.book.aggregate(ctx, i.ID)
		if err != nil {
			return err
		}
		out = entities.InstructionWithAggregate{Instruction: i, Aggregate: agg}
		return nil
	})
	if err != nil {
		return entities.InstructionWithAggregate{}, err
	}
	return out, nil
}

// ListInstructions returns the matching instructions with their aggregates.
// Instructions deleted while the listing runs are skipped.
func (u *InstructionUseCase) ListInstructions(ctx context.Context, filter InstructionFilter) ([]entities.InstructionWithAggregate, error) {
	all, err := u.book.repo.ListInstructions(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListInstructions: %w", err)
	}
	out := make([]entities.InstructionWithAggregate, 0, len(all))
	for _, i := range all {
		if !filter.match(i) {
			continue
		}
		view, err := u.GetInstructionWithAggregate(ctx, i.ID)
		if IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if filter.match(view.Instruction) {
			out = append(out, view)
		}
	}
	return out, nil
}

func (u *InstructionUseCase) SetStatus(ctx context.Context, id string, status entities.InstructionStatus) (entities.Instruction, error) {
	return u.transition(ctx, "SetStatus", id, entities.ActionSetStatus, status)
}

func (u *InstructionUseCase) Close(ctx context.Context, id string) (entities.Instruction, error) {
	return u.transition(ctx, "Close", id, entities.ActionClose, "")
}

func (u *InstructionUseCase) Confirm(ctx context.Context, id string) (entities.Instruction, error) {
	return u.transition(ctx, "Confirm", id, entities.ActionConfirm, "")
}

func (u *InstructionUseCase) Cancel(ctx context.Context, id string) (entities.Instruction, error) {
	return u.transition(ctx, "Cancel", id, entities.ActionCancel, "")
}

func (u *InstructionUseCase) End(ctx context.Context, id string) (entities.Instruction, error) {
	return u.transition(ctx, "End", id, entities.ActionEnd, "")
}

func (u *InstructionUseCase) transition(ctx context.Context, op, id string, action entities.InstructionAction, target entities.InstructionStatus) (entities.Instruction, error) {
	var updated entities.Instruction
	err := u.book.withInstruction(ctx, op, id, true, func(i entities.Instruction) error {
		next, err := i.State().Apply(action, target)
		if err != nil {
			if action == entities.ActionSetStatus && IsValidation(err) {
				return newFieldError(op, entityInstruction, i.ID, "status", err)
			}
			return newEngineError(op, entityInstruction, i.ID, err)
		}
		from := i.Status
		i.Status = next.Status
		i.Confirmed = next.Confirmed
		i.UpdatedAt = u.book.now()
		if err := u.book.commit(ctx, entities.ChangeSet{InstructionID: i.ID, Instruction: &i}); err != nil {
			return err
		}
		log.Info().
			Str("instruction_id", i.ID).
			Str("action", string(action)).
			Str("from", string(from)).
			Str("to", string(i.Status)).
			Bool("confirmed", i.Confirmed).
			Msg("[instruction][usecase] transition applied")
		updated = i
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("instruction_id", id).Str("action", string(action)).Msg("[instruction][usecase] transition rejected")
		return entities.Instruction{}, err
	}
	return updated, nil
}
