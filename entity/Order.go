package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderOpen      = "Open"
	OrderClosed    = "Closed" // closed for new items, awaiting payment
	OrderPaid      = "Paid"
	OrderCancelled = "Cancelled"
)

// OrderActiveStatuses are the non-terminal statuses. A table holds at most
// one order in these statuses at any time.
var OrderActiveStatuses = []string{OrderOpen, OrderClosed}

type Order struct {
	gorm.Model
	Status   string     `json:"status"`
	Total    int64      `json:"total"` // recomputed from items on every mutation
	Notes    string     `json:"notes"`
	OpenedAt time.Time  `json:"openedAt"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"` // preload only for audit views

	// preload only on the detail endpoint
	OrderItems []OrderItem `json:"-"`
	Payments   []Payment   `json:"-"`
}
