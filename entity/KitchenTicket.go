package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	TicketAwaitingPrep = "AwaitingPrep"
	TicketInPrep       = "InPrep"
	TicketReady        = "Ready"
)

const (
	SourceDineIn          = "mesa"
	SourceExternalChannel = "externo"
)

// NextTicketStatus returns the only status a ticket may move to from cur.
// Ready is terminal.
func NextTicketStatus(cur string) (string, bool) {
	switch cur {
	case TicketAwaitingPrep:
		return TicketInPrep, true
	case TicketInPrep:
		return TicketReady, true
	}
	return "", false
}

// KitchenTicket is a preparation-queue projection of an order. Line items are
// snapshotted at creation and its status moves independently of the order.
type KitchenTicket struct {
	gorm.Model
	SourceType    string    `gorm:"uniqueIndex:idx_ticket_source" json:"sourceType"`
	SourceID      uint      `gorm:"uniqueIndex:idx_ticket_source" json:"sourceId"`
	CustomerLabel string    `json:"customerLabel"` // ex: "Mesa 03", customer name for external orders
	Status        string    `json:"status"`
	EnteredAt     time.Time `json:"enteredAt"`

	Items []KitchenTicketItem `json:"items"`
}
