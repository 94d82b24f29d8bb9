package entity

import (
	"gorm.io/gorm"
)

type KitchenTicketItem struct {
	gorm.Model
	ProductName string `json:"productName"` // denormalized, survives catalog edits
	Qty         int    `json:"qty"`
	Note        string `json:"note"`

	KitchenTicketID uint          `json:"-"`
	KitchenTicket   KitchenTicket `json:"-"`
}
