package repository

import (
	"errors"

	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"gorm.io/gorm"
)

type KitchenRepository struct {
	DB *gorm.DB
}

func NewKitchenRepository(db *gorm.DB) *KitchenRepository {
	return &KitchenRepository{DB: db}
}

func (r *KitchenRepository) CreateTicket(tx *gorm.DB, t *entity.KitchenTicket) error {
	return tx.Create(t).Error
}

func (r *KitchenRepository) GetBySource(tx *gorm.DB, sourceType string, sourceID uint) (*entity.KitchenTicket, error) {
	var t entity.KitchenTicket
	err := tx.Preload("Items").
		Where("source_type = ? AND source_id = ?", sourceType, sourceID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListActive returns the "pedidos a preparar" projection: tickets still
// awaiting or in preparation, oldest entry first.
func (r *KitchenRepository) ListActive() ([]entity.KitchenTicket, error) {
	var out []entity.KitchenTicket
	err := r.DB.Preload("Items").
		Where("status IN ?", []string{entity.TicketAwaitingPrep, entity.TicketInPrep}).
		Order("entered_at ASC").
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard advances the ticket only from the expected status, so
// concurrent stations cannot double-apply a step.
func (r *KitchenRepository) UpdateStatusGuard(tx *gorm.DB, ticketID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.KitchenTicket{}).
		Where("id = ? AND status = ?", ticketID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
