package usecase

import (
	"errors"
	"fmt"
	"repair_orders/internal/domain/entities"
)

// EngineError wraps an error kind from entities with the operation and the
// offending entity id or field.
type EngineError struct {
	Op     string // operation being performed (e.g. "UpdateTask")
	Entity string // "instruction", "process", "task" or "catalog item"
	ID     string
	Field  string
	Err    error
}

func (e *EngineError) Error() string {
	target := e.Entity
	if e.ID != "" {
		target = fmt.Sprintf("%s %s", e.Entity, e.ID)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s %s: field %s: %v", e.Op, target, e.Field, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, target, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func (e *EngineError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func newEngineError(op, entity, id string, err error) *EngineError {
	return &EngineError{Op: op, Entity: entity, ID: id, Err: err}
}

func newFieldError(op, entity, id, field string, err error) *EngineError {
	return &EngineError{Op: op, Entity: entity, ID: id, Field: field, Err: err}
}

func IsNotFound(err error) bool {
	return errors.Is(err, entities.ErrNotFound)
}

func IsNotEditable(err error) bool {
	return errors.Is(err, entities.ErrNotEditable)
}

func IsInvalidTransition(err error) bool {
	return errors.Is(err, entities.ErrInvalidTransition)
}

func IsInvalidQuantity(err error) bool {
	return errors.Is(err, entities.ErrInvalidQuantity)
}

func IsValidation(err error) bool {
	return errors.Is(err, entities.ErrValidation)
}
