package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"
)

var ErrPaymentExists = errors.New("payment already exists")

type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments []entities.Payment
}

var _ interfaces.IPaymentRepository = (*MemoryPaymentRepository)(nil)

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{}
}

func (r *MemoryPaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.ContainsFunc(r.payments, func(x entities.Payment) bool { return x.ID == p.ID }) {
		return entities.Payment{}, ErrPaymentExists
	}
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *MemoryPaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *MemoryPaymentRepository) ListByInstructionID(_ context.Context, instructionID string) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Payment, 0)
	for _, p := range r.payments {
		if p.InstructionID == instructionID {
			out = append(out, p)
		}
	}
	return out, nil
}
