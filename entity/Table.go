package entity

import (
	"gorm.io/gorm"
)

const (
	TableFree            = "Free"
	TableOccupied        = "Occupied"
	TableAwaitingPayment = "AwaitingPayment"
	TableBlocked         = "Blocked"
)

type Table struct {
	gorm.Model
	Label    string `gorm:"uniqueIndex" json:"label"` // ex: "01", "Varanda 1"
	Capacity int    `json:"capacity"`
	Status   string `json:"status"` // cached projection of the active order, updated in the same tx

	Orders []Order `json:"-"` // preload only for audit views
}
