package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"

	"gorm.io/gorm"
)

// TicketNotifier receives ticket events for the kitchen board feed. The
// polling GETs stay the source of truth; this is best-effort push.
type TicketNotifier interface {
	TicketQueued(t *entity.KitchenTicket)
	TicketStatusChanged(t *entity.KitchenTicket)
}

type KitchenService struct {
	DB       *gorm.DB
	Repo     *repository.KitchenRepository
	Notifier TicketNotifier // optional
}

func NewKitchenService(db *gorm.DB, repo *repository.KitchenRepository, notifier TicketNotifier) *KitchenService {
	return &KitchenService{DB: db, Repo: repo, Notifier: notifier}
}

// ----- Queue intake -----

// EnqueueDineIn projects a dine-in order into the preparation queue,
// denormalizing its current items. Called inside the order engine's
// transaction on the first item; a nil ticket means one already exists.
func (s *KitchenService) EnqueueDineIn(tx *gorm.DB, orderID uint) (*entity.KitchenTicket, error) {
	existing, err := s.Repo.GetBySource(tx, entity.SourceDineIn, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	// snapshot the item lines with their product names
	var lines []struct {
		Name string
		Qty  int
		Note string
	}
	if err := tx.Table("order_items AS oi").
		Select("p.name, oi.qty, oi.note").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Order("oi.id ASC").
		Scan(&lines).Error; err != nil {
		return nil, err
	}

	var label string
	if err := tx.Table("orders AS o").
		Select("t.label").
		Joins("JOIN tables t ON t.id = o.table_id").
		Where("o.id = ?", orderID).
		Scan(&label).Error; err != nil {
		return nil, err
	}

	ticket := entity.KitchenTicket{
		SourceType:    entity.SourceDineIn,
		SourceID:      orderID,
		CustomerLabel: fmt.Sprintf("Mesa %s", label),
		Status:        entity.TicketAwaitingPrep,
		EnteredAt:     time.Now(),
	}
	for _, l := range lines {
		ticket.Items = append(ticket.Items, entity.KitchenTicketItem{
			ProductName: l.Name, Qty: l.Qty, Note: l.Note,
		})
	}
	if err := s.Repo.CreateTicket(tx, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

type IntakeLineIn struct {
	ProductName string `json:"productName" binding:"required"`
	Qty         int    `json:"qty" binding:"required"`
	Note        string `json:"note"`
}

type IntakeTicketReq struct {
	SourceOrderID uint           `json:"sourceOrderId" binding:"required"`
	CustomerLabel string         `json:"customerLabel" binding:"required"`
	Items         []IntakeLineIn `json:"items" binding:"required,min=1"`
}

// IntakeExternal queues an order arriving from an external channel (ex:
// the WhatsApp bot) into the same preparation queue as dine-in orders.
func (s *KitchenService) IntakeExternal(req *IntakeTicketReq) (*entity.KitchenTicket, error) {
	if strings.TrimSpace(req.CustomerLabel) == "" {
		return nil, apperr.InvalidArgument("customerLabel is required")
	}
	for _, l := range req.Items {
		if l.Qty <= 0 {
			return nil, apperr.InvalidArgument("qty must be a positive integer")
		}
	}

	var ticket *entity.KitchenTicket
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.GetBySource(tx, entity.SourceExternalChannel, req.SourceOrderID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("external order %d is already queued", req.SourceOrderID)
		}

		t := entity.KitchenTicket{
			SourceType:    entity.SourceExternalChannel,
			SourceID:      req.SourceOrderID,
			CustomerLabel: req.CustomerLabel,
			Status:        entity.TicketAwaitingPrep,
			EnteredAt:     time.Now(),
		}
		for _, l := range req.Items {
			t.Items = append(t.Items, entity.KitchenTicketItem{
				ProductName: l.ProductName, Qty: l.Qty, Note: l.Note,
			})
		}
		if err := s.Repo.CreateTicket(tx, &t); err != nil {
			return err
		}
		ticket = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.NotifyQueued(ticket)
	logger.Info().Uint("ticket_id", ticket.ID).Str("source", ticket.SourceType).Msg("ticket queued")
	return ticket, nil
}

// ----- Projection -----

func (s *KitchenService) ListActive() ([]entity.KitchenTicket, error) {
	return s.Repo.ListActive()
}

// ----- Status transitions -----

// UpdateStatus advances a ticket one step forward (AwaitingPrep -> InPrep ->
// Ready). Anything else, including skipping a step, fails InvalidState. The
// compare-and-set guard makes concurrent stations produce one winner.
func (s *KitchenService) UpdateStatus(sourceType string, sourceID uint, newStatus string) (*entity.KitchenTicket, error) {
	if sourceType != entity.SourceDineIn && sourceType != entity.SourceExternalChannel {
		return nil, apperr.InvalidArgument("sourceType must be %q or %q", entity.SourceDineIn, entity.SourceExternalChannel)
	}
	switch newStatus {
	case entity.TicketAwaitingPrep, entity.TicketInPrep, entity.TicketReady:
	default:
		return nil, apperr.InvalidArgument("unknown ticket status %q", newStatus)
	}

	var ticket *entity.KitchenTicket
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		t, err := s.Repo.GetBySource(tx, sourceType, sourceID)
		if err != nil {
			return err
		}
		if t == nil {
			return apperr.NotFound("no ticket for %s order %d", sourceType, sourceID)
		}

		next, ok := entity.NextTicketStatus(t.Status)
		if !ok || next != newStatus {
			return apperr.InvalidState("ticket in %s cannot move to %s", t.Status, newStatus)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, t.ID, t.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.InvalidState("ticket %d was moved by another station", t.ID)
		}
		t.Status = newStatus
		ticket = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.TicketStatusChanged(ticket)
	}
	logger.Info().Uint("ticket_id", ticket.ID).Str("status", ticket.Status).Msg("ticket status updated")
	return ticket, nil
}

func (s *KitchenService) NotifyQueued(t *entity.KitchenTicket) {
	if s.Notifier != nil && t != nil {
		s.Notifier.TicketQueued(t)
	}
}
