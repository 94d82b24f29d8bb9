package repository

import (
	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

// GET /tables
func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("label ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Get(tableID uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, tableID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(tx *gorm.DB, t *entity.Table) error {
	return tx.Create(t).Error
}

// UpdateProfile persists the admin-editable columns only. Status is a cached
// projection owned by the order/payment guards; writing it here would let a
// stale read clobber a transition that raced the edit.
func (r *TableRepository) UpdateProfile(tx *gorm.DB, t *entity.Table) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{"label": t.Label, "capacity": t.Capacity}).Error
}

func (r *TableRepository) Delete(tx *gorm.DB, tableID uint) error {
	return tx.Delete(&entity.Table{}, tableID).Error
}

// SetStatusGuard flips the table status only if it currently holds `from`.
// The caller decides what 0 rows affected means (lost race or invalid state).
func (r *TableRepository) SetStatusGuard(tx *gorm.DB, tableID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("id = ? AND status = ?", tableID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// SetStatus updates the cached table status unconditionally. Only called
// inside the same transaction that moves the owning order.
func (r *TableRepository) SetStatus(tx *gorm.DB, tableID uint, status string) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Update("status", status).Error
}

// HasActiveOrder reports whether any order on the table is still Open or
// Closed. Guards table deletion and table release on cancel.
func (r *TableRepository) HasActiveOrder(tx *gorm.DB, tableID uint) (bool, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).
		Where("table_id = ? AND status IN ?", tableID, entity.OrderActiveStatuses).
		Count(&cnt).Error
	return cnt > 0, err
}
