package repository

import (
	"errors"
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetStatus(tx *gorm.DB, orderID uint) (string, error) {
	var row struct{ Status string }
	err := tx.Model(&entity.Order{}).
		Select("status").Where("id = ?", orderID).First(&row).Error
	return row.Status, err
}

// FindActiveByTable returns the table's Open or Closed order, or nil when
// the table has none.
func (r *OrderRepository) FindActiveByTable(tx *gorm.DB, tableID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("table_id = ? AND status IN ?", tableID, entity.OrderActiveStatuses).
		Order("id DESC").First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard moves the order status only from the expected one.
// Exactly one concurrent caller gets RowsAffected == 1.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// CloseGuard is UpdateStatusGuard(Open -> Closed) plus the closing timestamp.
func (r *OrderRepository) CloseGuard(tx *gorm.DB, orderID uint, closedAt time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderOpen).
		Updates(map[string]any{"status": entity.OrderClosed, "closed_at": closedAt})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateNotes(tx *gorm.DB, orderID uint, notes string) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("notes", notes).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, subtotal, note, product_id, order_id").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// DeleteItemGuard removes the item only while it still belongs to the order.
// A second delete of the same item affects 0 rows.
func (r *OrderRepository) DeleteItemGuard(tx *gorm.DB, orderID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND order_id = ?", itemID, orderID).
		Delete(&entity.OrderItem{})
	return res.RowsAffected, res.Error
}

// RecomputeTotal rewrites the order total as the sum of item subtotals.
// Runs inside every item mutation transaction so the total never drifts.
func (r *OrderRepository) RecomputeTotal(tx *gorm.DB, orderID uint) (int64, error) {
	var row struct{ Total int64 }
	if err := tx.Model(&entity.OrderItem{}).
		Select("COALESCE(SUM(subtotal), 0) AS total").
		Where("order_id = ?", orderID).
		Scan(&row).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total", row.Total).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetPaymentsByOrder(orderID uint) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&out).Error
	return out, err
}
