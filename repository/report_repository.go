package repository

import (
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// GET /admin/reports/sales
type SalesSummary struct {
	PaymentCount  int64 `json:"paymentCount"`
	AmountPaidSum int64 `json:"amountPaidSum"` // what was actually tendered
	OrderTotalSum int64 `json:"orderTotalSum"` // what the orders were worth
}

func (r *ReportRepository) SalesSummary(from, to *time.Time) (SalesSummary, error) {
	db := r.DB.Model(&entity.Payment{})
	if from != nil {
		db = db.Where("paid_at >= ?", *from)
	}
	if to != nil {
		db = db.Where("paid_at < ?", *to)
	}
	var out SalesSummary
	err := db.Select(
		"COUNT(*) AS payment_count, " +
			"COALESCE(SUM(amount), 0) AS amount_paid_sum, " +
			"COALESCE(SUM(order_total), 0) AS order_total_sum").
		Scan(&out).Error
	return out, err
}

// GET /admin/reports/products
type ProductSalesRow struct {
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	QtySold     int64  `json:"qtySold"`
	Revenue     int64  `json:"revenue"`
}

// ProductsSold aggregates item quantities and revenue across Paid orders.
func (r *ReportRepository) ProductsSold(from, to *time.Time) ([]ProductSalesRow, error) {
	db := r.DB.Table("order_items AS oi").
		Select("oi.product_id, p.name AS product_name, SUM(oi.qty) AS qty_sold, SUM(oi.subtotal) AS revenue").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("o.status = ?", entity.OrderPaid).
		Where("oi.deleted_at IS NULL")
	if from != nil {
		db = db.Where("o.closed_at >= ?", *from)
	}
	if to != nil {
		db = db.Where("o.closed_at < ?", *to)
	}
	var rows []ProductSalesRow
	err := db.Group("oi.product_id, p.name").
		Order("qty_sold DESC").
		Scan(&rows).Error
	return rows, err
}
