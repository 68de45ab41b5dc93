package interfaces

import (
	"context"
	"repair_orders/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface_mock.go -package=mock_interfaces

// IPaymentRepository abstracts persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInstructionID(ctx context.Context, instructionID string) ([]entities.Payment, error)
}
