package services

import (
	"strings"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	DB   *gorm.DB
	Repo *repository.CatalogRepository
}

func NewCatalogService(db *gorm.DB, repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{DB: db, Repo: repo}
}

// ----- Categories -----

type CategoryReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) CreateCategory(req *CategoryReq) (*entity.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.InvalidArgument("name is required")
	}
	c := entity.Category{Name: name, Description: req.Description}
	if err := s.Repo.CreateCategory(&c); err != nil {
		return nil, apperr.Conflict("category %q already exists", name)
	}
	return &c, nil
}

func (s *CatalogService) UpdateCategory(id uint, req *CategoryReq) (*entity.Category, error) {
	c, err := s.Repo.GetCategory(id)
	if err != nil {
		return nil, asNotFound(err, "category %d not found", id)
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		c.Name = name
	}
	c.Description = req.Description
	if err := s.Repo.UpdateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.Repo.GetCategory(id); err != nil {
		return asNotFound(err, "category %d not found", id)
	}
	has, err := s.Repo.CategoryHasProducts(id)
	if err != nil {
		return err
	}
	if has {
		return apperr.Conflict("category %d still has products", id)
	}
	return s.Repo.DeleteCategory(id)
}

// ----- Products -----

type ProductReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   int64  `json:"basePrice"`
	PhotoURL    string `json:"photoUrl"`
	Available   *bool  `json:"available"`
	CategoryID  *uint  `json:"categoryId"`
}

func (s *CatalogService) ListProducts(categoryID *uint) ([]entity.Product, error) {
	return s.Repo.ListProducts(categoryID)
}

func (s *CatalogService) GetProduct(id uint) (*entity.Product, error) {
	p, err := s.Repo.GetProduct(id)
	if err != nil {
		return nil, asNotFound(err, "product %d not found", id)
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(req *ProductReq) (*entity.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.InvalidArgument("name is required")
	}
	if req.BasePrice < 0 {
		return nil, apperr.InvalidArgument("basePrice cannot be negative")
	}
	if req.CategoryID != nil {
		if _, err := s.Repo.GetCategory(*req.CategoryID); err != nil {
			return nil, asNotFound(err, "category %d not found", *req.CategoryID)
		}
	}
	p := entity.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		PhotoURL:    req.PhotoURL,
		Available:   true,
		CategoryID:  req.CategoryID,
	}
	if req.Available != nil {
		p.Available = *req.Available
	}
	if err := s.Repo.CreateProduct(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct edits the catalog entry. Existing order items keep the unit
// price they snapshotted, whatever happens to BasePrice here.
func (s *CatalogService) UpdateProduct(id uint, req *ProductReq) (*entity.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if req.BasePrice < 0 {
		return nil, apperr.InvalidArgument("basePrice cannot be negative")
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		p.Name = name
	}
	p.Description = req.Description
	p.BasePrice = req.BasePrice
	p.PhotoURL = req.PhotoURL
	if req.Available != nil {
		p.Available = *req.Available
	}
	if req.CategoryID != nil {
		if _, err := s.Repo.GetCategory(*req.CategoryID); err != nil {
			return nil, asNotFound(err, "category %d not found", *req.CategoryID)
		}
		p.CategoryID = req.CategoryID
	}
	if err := s.Repo.UpdateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	referenced, err := s.Repo.ProductReferenced(id)
	if err != nil {
		return err
	}
	if referenced {
		return apperr.Conflict("product %d is referenced by order items", id)
	}
	return s.Repo.DeleteProduct(id)
}
