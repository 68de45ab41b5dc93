package entities

import "errors"

// Error kinds shared by every engine operation. Callers match them with errors.Is;
// the usecase layer wraps them with the offending entity id/field.
var (
	ErrNotFound          = errors.New("not found")
	ErrNotEditable       = errors.New("instruction is not editable")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrValidation        = errors.New("validation error")
)
