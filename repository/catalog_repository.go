package repository

import (
	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetCategory(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CatalogRepository) UpdateCategory(c *entity.Category) error {
	return r.DB.Save(c).Error
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *CatalogRepository) CategoryHasProducts(id uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Product{}).Where("category_id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

// ---------------- Products ----------------

func (r *CatalogRepository) ListProducts(categoryID *uint) ([]entity.Product, error) {
	db := r.DB.Order("name ASC")
	if categoryID != nil && *categoryID != 0 {
		db = db.Where("category_id = ?", *categoryID)
	}
	var out []entity.Product
	err := db.Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *CatalogRepository) UpdateProduct(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// ProductReferenced reports whether any order item snapshots this product.
// Referenced products must not be deleted (audit trail).
func (r *CatalogRepository) ProductReferenced(id uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).Where("product_id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

// ProductBasics is what the order engine needs to snapshot a price.
type ProductBasics struct {
	ID        uint
	Name      string
	BasePrice int64
	Available bool
}

func (r *CatalogRepository) GetProductBasics(tx *gorm.DB, id uint) (ProductBasics, error) {
	var pb ProductBasics
	err := tx.Model(&entity.Product{}).
		Select("id, name, base_price, available").
		Where("id = ?", id).
		First(&pb).Error
	return pb, err
}
