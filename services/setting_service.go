package services

import (
	"strings"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"
)

type SettingService struct {
	Repo *repository.SettingRepository
}

func NewSettingService(repo *repository.SettingRepository) *SettingService {
	return &SettingService{Repo: repo}
}

type SettingReq struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

func (s *SettingService) List() ([]entity.Setting, error) {
	return s.Repo.List()
}

func (s *SettingService) Get(key string) (*entity.Setting, error) {
	st, err := s.Repo.GetByKey(key)
	if err != nil {
		return nil, asNotFound(err, "setting %q not found", key)
	}
	return st, nil
}

func (s *SettingService) Create(req *SettingReq) (*entity.Setting, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, apperr.InvalidArgument("key is required")
	}
	st := entity.Setting{Key: key, Value: req.Value, Description: req.Description}
	if err := s.Repo.Create(&st); err != nil {
		return nil, apperr.Conflict("setting %q already exists", key)
	}
	return &st, nil
}

func (s *SettingService) Update(key string, value, description string) (*entity.Setting, error) {
	st, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	st.Value = value
	if description != "" {
		st.Description = description
	}
	if err := s.Repo.Update(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *SettingService) Delete(key string) error {
	affected, err := s.Repo.DeleteByKey(key)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("setting %q not found", key)
	}
	return nil
}
