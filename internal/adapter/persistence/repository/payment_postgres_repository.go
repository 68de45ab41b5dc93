package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	InstructionID string `gorm:"size:36;not null;index"`
	Amount        float64
	Date          time.Time `gorm:"index"`
	Status        string    `gorm:"size:16;not null"`
	MPPayloadRaw  []byte
}

func (PaymentModel) TableName() string { return "payments" }

// CatalogItemModel is read only; rows are loaded by whoever maintains the
// price book.
type CatalogItemModel struct {
	ID           string `gorm:"primaryKey;size:64"`
	Name         string
	Spec         string
	Unit         string
	MaterialCost float64
	LaborCost    float64
	ExpenseCost  float64
	TotalCost    float64
}

func (CatalogItemModel) TableName() string { return "catalog_items" }

// SupportModels lists the payment and catalog tables for migration.
func SupportModels() []any {
	return []any{&PaymentModel{}, &CatalogItemModel{}}
}

type PaymentPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentPostgresRepository)(nil)

func NewPaymentPostgresRepository(db *gorm.DB) *PaymentPostgresRepository {
	return &PaymentPostgresRepository{db: db}
}

func (r *PaymentPostgresRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := PaymentModel{
		ID:            p.ID,
		InstructionID: p.InstructionID,
		Amount:        p.Amount,
		Date:          p.Date,
		Status:        string(p.Status),
		MPPayloadRaw:  p.MPPayloadRaw,
	}
	err := r.db.WithContext(ctx).Create(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.Payment{}, ErrPaymentExists
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentPostgresRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var m PaymentModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentModel(m), nil
}

func (r *PaymentPostgresRepository) ListByInstructionID(ctx context.Context, instructionID string) ([]entities.Payment, error) {
	var rows []PaymentModel
	if err := r.db.WithContext(ctx).Where("instruction_id = ?", instructionID).Order("date, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromPaymentModel(m))
	}
	return out, nil
}

func fromPaymentModel(m PaymentModel) entities.Payment {
	p := entities.Payment{
		ID:            m.ID,
		InstructionID: m.InstructionID,
		Amount:        m.Amount,
		Date:          m.Date.UTC(),
		Status:        entities.PaymentStatus(m.Status),
	}
	if len(m.MPPayloadRaw) > 0 {
		p.MPPayloadRaw = json.RawMessage(m.MPPayloadRaw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(m.MPPayloadRaw, &parsed); err == nil {
			p.MPPayload = parsed
		}
	}
	return p
}

type CatalogPostgres struct {
	db *gorm.DB
}

var _ interfaces.ICatalog = (*CatalogPostgres)(nil)

func NewCatalogPostgres(db *gorm.DB) *CatalogPostgres {
	return &CatalogPostgres{db: db}
}

func (c *CatalogPostgres) GetItem(ctx context.Context, id string) (entities.CatalogItem, error) {
	var m CatalogItemModel
	err := c.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CatalogItem{}, nil
	}
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem(m), nil
}
