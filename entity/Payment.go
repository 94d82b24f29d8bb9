package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentCash        = "dinheiro"
	PaymentCardReader  = "cartao_maquineta"
	PaymentPixReader   = "pix_maquineta"
	PaymentOtherMethod = "outro"
)

// ValidPaymentMethod reports whether method is one of the accepted manual
// tendering methods.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCardReader, PaymentPixReader, PaymentOtherMethod:
		return true
	}
	return false
}

type Payment struct {
	gorm.Model
	Method     string    `json:"method"`
	Amount     int64     `json:"amount"`     // attendant-entered; may differ from OrderTotal
	OrderTotal int64     `json:"orderTotal"` // order total at payment time, kept for audit
	Reference  string    `json:"reference"`  // receipt reference
	PaidAt     time.Time `json:"paidAt"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload only on /orders/:id
}
