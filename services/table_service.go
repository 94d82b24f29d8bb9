package services

import (
	"errors"
	"strings"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"

	"gorm.io/gorm"
)

type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Get(tableID uint) (*entity.Table, error) {
	t, err := s.Repo.Get(tableID)
	if err != nil {
		return nil, asNotFound(err, "table %d not found", tableID)
	}
	return t, nil
}

// ----- Admin configuration -----

type CreateTableReq struct {
	Label    string `json:"label" binding:"required"`
	Capacity int    `json:"capacity"`
}

func (s *TableService) Create(req *CreateTableReq) (*entity.Table, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, apperr.InvalidArgument("label is required")
	}
	capacity := req.Capacity
	if capacity <= 0 {
		capacity = 4
	}
	t := entity.Table{Label: label, Capacity: capacity, Status: entity.TableFree}
	if err := s.Repo.Create(s.DB, &t); err != nil {
		return nil, apperr.Conflict("table label %q already exists", label)
	}
	return &t, nil
}

type UpdateTableReq struct {
	Label    *string `json:"label"`
	Capacity *int    `json:"capacity"`
	Status   *string `json:"status"` // admin override: Blocked or Free only
}

func (s *TableService) Update(tableID uint, req *UpdateTableReq) (*entity.Table, error) {
	t, err := s.Get(tableID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if label == "" {
			return nil, apperr.InvalidArgument("label cannot be empty")
		}
		t.Label = label
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, apperr.InvalidArgument("capacity must be positive")
		}
		t.Capacity = *req.Capacity
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if req.Status != nil {
			if err := s.overrideStatus(tx, t, *req.Status); err != nil {
				return err
			}
		}
		if err := s.Repo.UpdateProfile(tx, t); err != nil {
			if req.Label != nil {
				return apperr.Conflict("table label %q already exists", t.Label)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// overrideStatus handles the admin Blocked toggle. Occupancy statuses belong
// to the order engine and cannot be set here.
func (s *TableService) overrideStatus(tx *gorm.DB, t *entity.Table, status string) error {
	switch status {
	case entity.TableBlocked:
		affected, err := s.Repo.SetStatusGuard(tx, t.ID, entity.TableFree, entity.TableBlocked)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.InvalidState("only a Free table can be blocked (current: %s)", t.Status)
		}
	case entity.TableFree:
		affected, err := s.Repo.SetStatusGuard(tx, t.ID, entity.TableBlocked, entity.TableFree)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.InvalidState("only a Blocked table can be released (current: %s)", t.Status)
		}
	default:
		return apperr.InvalidArgument("status override must be %q or %q", entity.TableBlocked, entity.TableFree)
	}
	t.Status = status
	return nil
}

func (s *TableService) Delete(tableID uint) error {
	if _, err := s.Get(tableID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		active, err := s.Repo.HasActiveOrder(tx, tableID)
		if err != nil {
			return err
		}
		if active {
			return apperr.Conflict("table %d has an active order", tableID)
		}
		return s.Repo.Delete(tx, tableID)
	})
}

// asNotFound turns a gorm missing-record error into the NotFound kind and
// leaves storage errors untouched.
func asNotFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(format, args...)
	}
	return err
}
