package services

import (
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.OrderRepository, tableRepo *repository.TableRepository) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, TableRepo: tableRepo}
}

type RegisterPaymentReq struct {
	Method     string `json:"method" binding:"required"`
	AmountPaid int64  `json:"amountPaid" binding:"required"`
}

// Register records a manual payment against a Closed order and releases the
// table. The Closed -> Paid compare-and-set is the single-writer gate: one
// concurrent caller wins, the rest fail InvalidState and no duplicate
// Payment row is ever created. The amount is attendant-entered and is not
// required to match the order total; both are recorded for the reports.
func (s *PaymentService) Register(orderID uint, req *RegisterPaymentReq) (*entity.Payment, error) {
	if !entity.ValidPaymentMethod(req.Method) {
		return nil, apperr.InvalidArgument("unknown payment method %q", req.Method)
	}
	if req.AmountPaid <= 0 {
		return nil, apperr.InvalidArgument("amountPaid must be positive")
	}

	var payment *entity.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, orderID).Error; err != nil {
			return asNotFound(err, "order %d not found", orderID)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderClosed, entity.OrderPaid)
		if err != nil {
			return err
		}
		if affected == 0 {
			cur, err := s.Repo.GetStatus(tx, o.ID)
			if err != nil {
				return err
			}
			return apperr.InvalidState("cannot register payment for a %s order", cur)
		}

		p := entity.Payment{
			Method:     req.Method,
			Amount:     req.AmountPaid,
			OrderTotal: o.Total,
			Reference:  uuid.NewString(),
			PaidAt:     time.Now(),
			OrderID:    o.ID,
		}
		if err := s.Repo.CreatePayment(tx, &p); err != nil {
			return err
		}

		// release the table unless another active order still holds it
		active, err := s.TableRepo.HasActiveOrder(tx, o.TableID)
		if err != nil {
			return err
		}
		if !active {
			if err := s.TableRepo.SetStatus(tx, o.TableID, entity.TableFree); err != nil {
				return err
			}
		}
		payment = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info().
		Uint("order_id", orderID).
		Str("method", payment.Method).
		Int64("amount", payment.Amount).
		Int64("order_total", payment.OrderTotal).
		Msg("payment registered")
	return payment, nil
}

func (s *PaymentService) ListForOrder(orderID uint) ([]entity.Payment, error) {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		return nil, asNotFound(err, "order %d not found", orderID)
	}
	return s.Repo.GetPaymentsByOrder(orderID)
}
