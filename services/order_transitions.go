// services/order_transitions.go
package services

import (
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"

	"gorm.io/gorm"
)

// ----- Attendant actions -----

// CloseForPayment moves Open -> Closed and parks the table on
// AwaitingPayment. No item mutation is possible once Closed.
func (s *OrderService) CloseForPayment(orderID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, orderID).Error; err != nil {
			return asNotFound(err, "order %d not found", orderID)
		}

		now := time.Now()
		affected, err := s.Repo.CloseGuard(tx, o.ID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			cur, err := s.Repo.GetStatus(tx, o.ID)
			if err != nil {
				return err
			}
			return apperr.InvalidState("cannot close a %s order", cur)
		}

		if err := s.TableRepo.SetStatus(tx, o.TableID, entity.TableAwaitingPayment); err != nil {
			return err
		}
		o.Status = entity.OrderClosed
		o.ClosedAt = &now
		out = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Uint("order_id", out.ID).Msg("order closed for payment")
	return out, nil
}

// Cancel is the administrative escape hatch: Open|Closed -> Cancelled,
// releasing the table when no other active order holds it.
func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, orderID).Error; err != nil {
			return asNotFound(err, "order %d not found", orderID)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderOpen, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			affected, err = s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderClosed, entity.OrderCancelled)
			if err != nil {
				return err
			}
		}
		if affected == 0 {
			cur, err := s.Repo.GetStatus(tx, o.ID)
			if err != nil {
				return err
			}
			return apperr.InvalidState("cannot cancel a %s order", cur)
		}

		now := time.Now()
		if err := tx.Model(&entity.Order{}).
			Where("id = ?", o.ID).
			Update("closed_at", now).Error; err != nil {
			return err
		}

		// free the table only if this was its last active order
		active, err := s.TableRepo.HasActiveOrder(tx, o.TableID)
		if err != nil {
			return err
		}
		if !active {
			if err := s.TableRepo.SetStatus(tx, o.TableID, entity.TableFree); err != nil {
				return err
			}
		}
		o.Status = entity.OrderCancelled
		o.ClosedAt = &now
		out = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Uint("order_id", out.ID).Msg("order cancelled")
	return out, nil
}

// ----- PATCH /orders/:id -----

type UpdateOrderReq struct {
	Status string  `json:"status" binding:"omitempty,oneof=Closed Cancelled"`
	Notes  *string `json:"notes"`
}

func (s *OrderService) Update(orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	var out *entity.Order
	var err error
	switch req.Status {
	case entity.OrderClosed:
		out, err = s.CloseForPayment(orderID)
	case entity.OrderCancelled:
		out, err = s.Cancel(orderID)
	case "":
		out, err = s.Repo.GetOrder(orderID)
		err = asNotFound(err, "order %d not found", orderID)
	default:
		return nil, apperr.InvalidArgument("status must be %q or %q", entity.OrderClosed, entity.OrderCancelled)
	}
	if err != nil {
		return nil, err
	}

	if req.Notes != nil {
		if err := s.Repo.UpdateNotes(s.DB, out.ID, *req.Notes); err != nil {
			return nil, err
		}
		out.Notes = *req.Notes
	}
	return out, nil
}
