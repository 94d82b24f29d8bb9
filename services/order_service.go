package services

import (
	"os"
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	TableRepo   *repository.TableRepository
	CatalogRepo *repository.CatalogRepository
	Kitchen     *KitchenService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	catalogRepo *repository.CatalogRepository,
	kitchen *KitchenService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, TableRepo: tableRepo, CatalogRepo: catalogRepo, Kitchen: kitchen}
}

// ----- Open (idempotent) -----

// OpenOrGetActive returns the table's Open or Closed order, creating a new
// Open one when the table is Free. The table row is the serialization point:
// the compare-and-set Free -> Occupied decides the single creator, everyone
// else reads the winner's order.
func (s *OrderService) OpenOrGetActive(tableID uint) (*entity.Order, bool, error) {
	table, err := s.TableRepo.Get(tableID)
	if err != nil {
		return nil, false, asNotFound(err, "table %d not found", tableID)
	}
	if table.Status == entity.TableBlocked {
		return nil, false, apperr.Conflict("table %s is blocked", table.Label)
	}

	var out *entity.Order
	created := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.FindActiveByTable(tx, tableID)
		if err != nil {
			return err
		}
		if existing != nil {
			out = existing
			return nil
		}

		affected, err := s.TableRepo.SetStatusGuard(tx, tableID, entity.TableFree, entity.TableOccupied)
		if err != nil {
			return err
		}
		if affected == 0 {
			// lost the race: the winner's order must exist by now
			existing, err := s.Repo.FindActiveByTable(tx, tableID)
			if err != nil {
				return err
			}
			if existing != nil {
				out = existing
				return nil
			}
			return apperr.Conflict("table %d is not free", tableID)
		}

		order := entity.Order{
			Status:   entity.OrderOpen,
			TableID:  tableID,
			OpenedAt: time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		out = &order
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		logger.Info().Uint("order_id", out.ID).Uint("table_id", tableID).Msg("order opened")
	}
	return out, created, nil
}

// ----- Items -----

type AddItemReq struct {
	ProductID uint   `json:"productId" binding:"required"`
	Qty       int    `json:"qty" binding:"required"`
	Note      string `json:"note"`
}

// AddItem appends a product to an Open order, snapshotting the current base
// price. Later catalog edits never touch existing items.
func (s *OrderService) AddItem(orderID uint, req *AddItemReq) (*entity.OrderItem, error) {
	if req.Qty <= 0 {
		return nil, apperr.InvalidArgument("qty must be a positive integer")
	}

	var item *entity.OrderItem
	var queued *entity.KitchenTicket
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		status, err := s.Repo.GetStatus(tx, orderID)
		if err != nil {
			return asNotFound(err, "order %d not found", orderID)
		}
		if status != entity.OrderOpen {
			return apperr.InvalidState("cannot add items to a %s order", status)
		}

		pb, err := s.CatalogRepo.GetProductBasics(tx, req.ProductID)
		if err != nil {
			return asNotFound(err, "product %d not found", req.ProductID)
		}
		if !pb.Available {
			return apperr.Unavailable("product %q is unavailable", pb.Name)
		}

		item = &entity.OrderItem{
			Qty:       req.Qty,
			UnitPrice: pb.BasePrice,
			Subtotal:  pb.BasePrice * int64(req.Qty),
			Note:      req.Note,
			OrderID:   orderID,
			ProductID: req.ProductID,
		}
		if err := s.Repo.CreateOrderItem(tx, item); err != nil {
			return err
		}
		if _, err := s.Repo.RecomputeTotal(tx, orderID); err != nil {
			return err
		}

		// first item sends the order to the kitchen; the ticket is a
		// snapshot and later mutations do not rewrite it
		queued, err = s.Kitchen.EnqueueDineIn(tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if queued != nil {
		s.Kitchen.NotifyQueued(queued)
	}
	return item, nil
}

// RemoveItem deletes an item while the order is still Open. Deleting the
// same item twice fails NotFound on the second call.
func (s *OrderService) RemoveItem(orderID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		status, err := s.Repo.GetStatus(tx, orderID)
		if err != nil {
			return asNotFound(err, "order %d not found", orderID)
		}
		if status != entity.OrderOpen {
			return apperr.InvalidState("cannot remove items from a %s order", status)
		}

		affected, err := s.Repo.DeleteItemGuard(tx, orderID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound("item %d not found on order %d", itemID, orderID)
		}
		_, err = s.Repo.RecomputeTotal(tx, orderID)
		return err
	})
}

// ----- Detail -----

type OrderDetail struct {
	ID       uint               `json:"id"`
	TableID  uint               `json:"tableId"`
	Status   string             `json:"status"`
	Total    int64              `json:"total"`
	Notes    string             `json:"notes"`
	OpenedAt time.Time          `json:"openedAt"`
	ClosedAt *time.Time         `json:"closedAt,omitempty"`
	Items    []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, asNotFound(err, "order %d not found", orderID)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, TableID: o.TableID, Status: o.Status, Total: o.Total,
		Notes: o.Notes, OpenedAt: o.OpenedAt, ClosedAt: o.ClosedAt, Items: items,
	}, nil
}
