package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // product price at add time, never follows catalog edits
	Subtotal  int64  `json:"subtotal"`  // qty * unitPrice
	Note      string `json:"note"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload only for audit views

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload only when the item needs the product name
}
