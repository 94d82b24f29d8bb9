package repository

import (
	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"gorm.io/gorm"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) List() ([]entity.Setting, error) {
	var out []entity.Setting
	err := r.DB.Order("key ASC").Find(&out).Error
	return out, err
}

func (r *SettingRepository) GetByKey(key string) (*entity.Setting, error) {
	var s entity.Setting
	if err := r.DB.Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) Create(s *entity.Setting) error {
	return r.DB.Create(s).Error
}

func (r *SettingRepository) Update(s *entity.Setting) error {
	return r.DB.Save(s).Error
}

func (r *SettingRepository) DeleteByKey(key string) (int64, error) {
	res := r.DB.Where("key = ?", key).Delete(&entity.Setting{})
	return res.RowsAffected, res.Error
}
