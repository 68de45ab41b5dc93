package interfaces

import (
	"context"
	"repair_orders/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

// IOrderRepository abstracts persistence for the Instruction -> Process -> Task tree.
//
// Contract:
//   - Get* return a zero-value entity (empty ID) when nothing matches.
//   - List* return entities in creation order and an empty slice when nothing matches.
//   - ListTasks returns every task of every process of the instruction.
//   - Commit applies the whole change set atomically or returns an error having
//     applied nothing.

type IOrderRepository interface {
	GetInstruction(ctx context.Context, id string) (entities.Instruction, error)
	ListInstructions(ctx context.Context) ([]entities.Instruction, error)
	GetProcess(ctx context.Context, id string) (entities.Process, error)
	ListProcesses(ctx context.Context, instructionID string) ([]entities.Process, error)
	GetTask(ctx context.Context, id string) (entities.Task, error)
	ListTasks(ctx context.Context, instructionID string) ([]entities.Task, error)
	Commit(ctx context.Context, cs entities.ChangeSet) error
}
