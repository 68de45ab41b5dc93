package entities

import "fmt"

// InstructionStatus is the workflow position of an Instruction.
//
// Nominal progression:
//
//	received -> in_progress -> work_completed -> in_approval -> completed -> ended
//
// with canceled reachable from every non-terminal state. The four working
// states can be reached from one another through SetStatus so that mis-clicks
// can be corrected; completed, ended and canceled are only reachable through
// their dedicated actions.
type InstructionStatus string

const (
	InstructionStatusReceived      InstructionStatus = "received"
	InstructionStatusInProgress    InstructionStatus = "in_progress"
	InstructionStatusWorkCompleted InstructionStatus = "work_completed"
	InstructionStatusInApproval    InstructionStatus = "in_approval"
	InstructionStatusCompleted     InstructionStatus = "completed"
	InstructionStatusEnded         InstructionStatus = "ended"
	InstructionStatusCanceled      InstructionStatus = "canceled"
)

// InstructionStatuses lists every status in progression order.
func InstructionStatuses() []InstructionStatus {
	return []InstructionStatus{
		InstructionStatusReceived,
		InstructionStatusInProgress,
		InstructionStatusWorkCompleted,
		InstructionStatusInApproval,
		InstructionStatusCompleted,
		InstructionStatusEnded,
		InstructionStatusCanceled,
	}
}

func (s InstructionStatus) Valid() bool {
	_, ok := instructionTransitions[s]
	return ok
}

// Working reports whether s is one of the states SetStatus may target.
func (s InstructionStatus) Working() bool {
	switch s {
	case InstructionStatusReceived,
		InstructionStatusInProgress,
		InstructionStatusWorkCompleted,
		InstructionStatusInApproval:
		return true
	}
	return false
}

// InstructionAction is a workflow operation on an Instruction.
type InstructionAction string

const (
	ActionSetStatus InstructionAction = "set_status"
	ActionClose     InstructionAction = "close"
	ActionConfirm   InstructionAction = "confirm"
	ActionCancel    InstructionAction = "cancel"
	ActionEnd       InstructionAction = "end"
)

// InstructionActions lists every action, for exhaustive checks.
func InstructionActions() []InstructionAction {
	return []InstructionAction{ActionSetStatus, ActionClose, ActionConfirm, ActionCancel, ActionEnd}
}

// InstructionState is the (status, confirmed) pair the transition table works on.
type InstructionState struct {
	Status    InstructionStatus
	Confirmed bool
}

// CanEdit is the editability predicate: not completed, canceled or ended, and
// not yet confirmed for billing.
func (s InstructionState) CanEdit() bool {
	switch s.Status {
	case InstructionStatusCompleted, InstructionStatusCanceled, InstructionStatusEnded:
		return false
	}
	return !s.Confirmed
}

// transitionRule computes the next state for one (status, action) pair.
// A nil rule means the action is illegal from that status.
type transitionRule func(from InstructionState, target InstructionStatus) (InstructionState, error)

func toWorkingStatus(from InstructionState, target InstructionStatus) (InstructionState, error) {
	if !target.Working() {
		return from, fmt.Errorf("%w: %s cannot be set directly", ErrInvalidTransition, target)
	}
	return InstructionState{Status: target, Confirmed: from.Confirmed}, nil
}

func to(status InstructionStatus) transitionRule {
	return func(from InstructionState, _ InstructionStatus) (InstructionState, error) {
		return InstructionState{Status: status, Confirmed: from.Confirmed}, nil
	}
}

func confirmOnce(from InstructionState, _ InstructionStatus) (InstructionState, error) {
	if from.Confirmed {
		return from, fmt.Errorf("%w: already confirmed", ErrInvalidTransition)
	}
	return InstructionState{Status: from.Status, Confirmed: true}, nil
}

func endConfirmed(from InstructionState, _ InstructionStatus) (InstructionState, error) {
	if !from.Confirmed {
		return from, fmt.Errorf("%w: completed instruction must be confirmed before it ends", ErrInvalidTransition)
	}
	return InstructionState{Status: InstructionStatusEnded, Confirmed: true}, nil
}

// instructionTransitions is the (state, action) -> state | error table.
// Every status must have an entry, even when no action is legal from it.
var instructionTransitions = map[InstructionStatus]map[InstructionAction]transitionRule{
	InstructionStatusReceived: {
		ActionSetStatus: toWorkingStatus,
		ActionCancel:    to(InstructionStatusCanceled),
	},
	InstructionStatusInProgress: {
		ActionSetStatus: toWorkingStatus,
		ActionCancel:    to(InstructionStatusCanceled),
	},
	InstructionStatusWorkCompleted: {
		ActionSetStatus: toWorkingStatus,
		ActionCancel:    to(InstructionStatusCanceled),
	},
	InstructionStatusInApproval: {
		ActionSetStatus: toWorkingStatus,
		ActionClose:     to(InstructionStatusCompleted),
		ActionCancel:    to(InstructionStatusCanceled),
	},
	InstructionStatusCompleted: {
		ActionConfirm: confirmOnce,
		ActionEnd:     endConfirmed,
		ActionCancel:  to(InstructionStatusCanceled),
	},
	InstructionStatusEnded:    {},
	InstructionStatusCanceled: {},
}

// Apply runs action against s. target is only read by ActionSetStatus.
//
// Errors:
//   - ErrValidation for an unknown current or target status
//   - ErrNotEditable when SetStatus is attempted on a locked instruction
//   - ErrInvalidTransition for every other illegal (state, action) pair
func (s InstructionState) Apply(action InstructionAction, target InstructionStatus) (InstructionState, error) {
	rules, ok := instructionTransitions[s.Status]
	if !ok {
		return s, fmt.Errorf("%w: unknown status %q", ErrValidation, s.Status)
	}
	if action == ActionSetStatus {
		if !target.Valid() {
			return s, fmt.Errorf("%w: unknown status %q", ErrValidation, target)
		}
		if !s.CanEdit() {
			return s, ErrNotEditable
		}
	}
	rule := rules[action]
	if rule == nil {
		return s, fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, s.Status)
	}
	return rule(s, target)
}
