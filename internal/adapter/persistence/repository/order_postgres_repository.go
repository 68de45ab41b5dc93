package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InstructionModel, ProcessModel and TaskModel are the gorm rows of the order
// tree. Pass them to database.ConnectPostgres for migration.
type InstructionModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	OrderNumber   string `gorm:"size:64"`
	OrderDate     *time.Time
	Name          string `gorm:"size:200;not null"`
	Manager       string
	Delegator     string
	District      string
	Dong          string
	LotNumber     string
	DetailAddress string
	Structure     string
	Memo          string
	Status        string `gorm:"size:16;not null;index"`
	Confirmed     bool
	CreatedAt     time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (InstructionModel) TableName() string { return "instructions" }

type ProcessModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	InstructionID string `gorm:"size:36;not null;index"`
	Name          string `gorm:"size:200;not null"`
	Worker        string
	EndDate       *time.Time
	Status        string    `gorm:"size:16;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`

	Instruction InstructionModel `gorm:"foreignKey:InstructionID;constraint:OnDelete:CASCADE"`
}

func (ProcessModel) TableName() string { return "processes" }

type TaskModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	InstructionID string `gorm:"size:36;not null;index"`
	ProcessID     string `gorm:"size:36;not null;index"`
	CatalogItemID string `gorm:"size:64"`
	Name          string `gorm:"not null"`
	Spec          string
	Unit          string
	Count         float64
	TotalCost     float64
	MaterialCost  float64
	LaborCost     float64
	ExpenseCost   float64
	Notes         string
	TotalPrice    float64
	CreatedAt     time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`

	Process ProcessModel `gorm:"foreignKey:ProcessID;constraint:OnDelete:CASCADE"`
}

func (TaskModel) TableName() string { return "tasks" }

// OrderModels lists the models OrderPostgresRepository needs migrated.
func OrderModels() []any {
	return []any{&InstructionModel{}, &ProcessModel{}, &TaskModel{}}
}

// OrderPostgresRepository persists the order tree with gorm. Foreign keys keep
// parents in place; Commit runs in one database transaction.
type OrderPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderPostgresRepository)(nil)

func NewOrderPostgresRepository(db *gorm.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{db: db}
}

func (r *OrderPostgresRepository) GetInstruction(ctx context.Context, id string) (entities.Instruction, error) {
	var m InstructionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Instruction{}, nil
	}
	if err != nil {
		return entities.Instruction{}, err
	}
	return fromInstructionModel(m), nil
}

func (r *OrderPostgresRepository) ListInstructions(ctx context.Context) ([]entities.Instruction, error) {
	var rows []InstructionModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Instruction, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromInstructionModel(m))
	}
	return out, nil
}

func (r *OrderPostgresRepository) GetProcess(ctx context.Context, id string) (entities.Process, error) {
	var m ProcessModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Process{}, nil
	}
	if err != nil {
		return entities.Process{}, err
	}
	return fromProcessModel(m), nil
}

func (r *OrderPostgresRepository) ListProcesses(ctx context.Context, instructionID string) ([]entities.Process, error) {
	var rows []ProcessModel
	err := r.db.WithContext(ctx).Where("instruction_id = ?", instructionID).Order("created_at, id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Process, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromProcessModel(m))
	}
	return out, nil
}

func (r *OrderPostgresRepository) GetTask(ctx context.Context, id string) (entities.Task, error) {
	var m TaskModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Task{}, nil
	}
	if err != nil {
		return entities.Task{}, err
	}
	return fromTaskModel(m), nil
}

func (r *OrderPostgresRepository) ListTasks(ctx context.Context, instructionID string) ([]entities.Task, error) {
	var rows []TaskModel
	err := r.db.WithContext(ctx).Where("instruction_id = ?", instructionID).Order("created_at, id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Task, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromTaskModel(m))
	}
	return out, nil
}

func (r *OrderPostgresRepository) Commit(ctx context.Context, cs entities.ChangeSet) error {
	if cs.IsEmpty() {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(cs.DeletedTaskIDs) > 0 {
			if err := tx.Where("id IN ?", cs.DeletedTaskIDs).Delete(&TaskModel{}).Error; err != nil {
				return fmt.Errorf("delete tasks: %w", err)
			}
		}
		if len(cs.DeletedProcessIDs) > 0 {
			if err := tx.Where("id IN ?", cs.DeletedProcessIDs).Delete(&ProcessModel{}).Error; err != nil {
				return fmt.Errorf("delete processes: %w", err)
			}
		}
		if cs.DeleteInstruction {
			if err := tx.Where("id = ?", cs.InstructionID).Delete(&InstructionModel{}).Error; err != nil {
				return fmt.Errorf("delete instruction: %w", err)
			}
		}
		if cs.Instruction != nil {
			m := toInstructionModel(*cs.Instruction)
			if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
				return fmt.Errorf("save instruction %s: %w", m.ID, err)
			}
		}
		for _, p := range cs.Processes {
			m := toProcessModel(p)
			if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
				return fmt.Errorf("save process %s: %w", m.ID, err)
			}
		}
		for _, t := range cs.Tasks {
			m := toTaskModel(cs.InstructionID, t)
			if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
				return fmt.Errorf("save task %s: %w", m.ID, err)
			}
		}
		return nil
	})
}

func toInstructionModel(i entities.Instruction) InstructionModel {
	m := InstructionModel{
		ID:            i.ID,
		OrderNumber:   i.OrderNumber,
		Name:          i.Name,
		Manager:       i.Manager,
		Delegator:     i.Delegator,
		District:      i.District,
		Dong:          i.Dong,
		LotNumber:     i.LotNumber,
		DetailAddress: i.DetailAddress,
		Structure:     i.Structure,
		Memo:          i.Memo,
		Status:        string(i.Status),
		Confirmed:     i.Confirmed,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	if !i.OrderDate.IsZero() {
		d := i.OrderDate
		m.OrderDate = &d
	}
	return m
}

func fromInstructionModel(m InstructionModel) entities.Instruction {
	i := entities.Instruction{
		ID:            m.ID,
		OrderNumber:   m.OrderNumber,
		Name:          m.Name,
		Manager:       m.Manager,
		Delegator:     m.Delegator,
		District:      m.District,
		Dong:          m.Dong,
		LotNumber:     m.LotNumber,
		DetailAddress: m.DetailAddress,
		Structure:     m.Structure,
		Memo:          m.Memo,
		Status:        entities.InstructionStatus(m.Status),
		Confirmed:     m.Confirmed,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
	if m.OrderDate != nil {
		i.OrderDate = m.OrderDate.UTC()
	}
	return i
}

func toProcessModel(p entities.Process) ProcessModel {
	return ProcessModel{
		ID:            p.ID,
		InstructionID: p.InstructionID,
		Name:          p.Name,
		Worker:        p.Worker,
		EndDate:       p.EndDate,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func fromProcessModel(m ProcessModel) entities.Process {
	p := entities.Process{
		ID:            m.ID,
		InstructionID: m.InstructionID,
		Name:          m.Name,
		Worker:        m.Worker,
		Status:        entities.ProcessStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
	if m.EndDate != nil {
		d := m.EndDate.UTC()
		p.EndDate = &d
	}
	return p
}

func toTaskModel(instructionID string, t entities.Task) TaskModel {
	return TaskModel{
		ID:            t.ID,
		InstructionID: instructionID,
		ProcessID:     t.ProcessID,
		CatalogItemID: t.CatalogItemID,
		Name:          t.Name,
		Spec:          t.Spec,
		Unit:          t.Unit,
		Count:         t.Count,
		TotalCost:     t.TotalCost,
		MaterialCost:  t.MaterialCost,
		LaborCost:     t.LaborCost,
		ExpenseCost:   t.ExpenseCost,
		Notes:         t.Notes,
		TotalPrice:    t.TotalPrice,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func fromTaskModel(m TaskModel) entities.Task {
	return entities.Task{
		ID:            m.ID,
		ProcessID:     m.ProcessID,
		CatalogItemID: m.CatalogItemID,
		Name:          m.Name,
		Spec:          m.Spec,
		Unit:          m.Unit,
		Count:         m.Count,
		TotalCost:     m.TotalCost,
		MaterialCost:  m.MaterialCost,
		LaborCost:     m.LaborCost,
		ExpenseCost:   m.ExpenseCost,
		Notes:         m.Notes,
		TotalPrice:    m.TotalPrice,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}
