package controllers

import (
	"strconv"

	"github.com/RubensDuarte2025/Julius-rmd/pkg/resp"
	"github.com/RubensDuarte2025/Julius-rmd/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// ----- Categories -----

// GET /categories
func (cc *CatalogController) ListCategories(c *gin.Context) {
	items, err := cc.Service.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/categories
func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var req services.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := cc.Service.CreateCategory(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, category)
}

// PUT /admin/categories/:id
func (cc *CatalogController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := cc.Service.UpdateCategory(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, category)
}

// DELETE /admin/categories/:id
func (cc *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.Service.DeleteCategory(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ----- Products -----

// GET /products?categoryId=
func (cc *CatalogController) ListProducts(c *gin.Context) {
	var categoryID *uint
	if q := c.Query("categoryId"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil || id <= 0 {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		v := uint(id)
		categoryID = &v
	}
	items, err := cc.Service.ListProducts(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /products/:id
func (cc *CatalogController) ProductDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := cc.Service.GetProduct(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /admin/products
func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req services.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := cc.Service.CreateProduct(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /admin/products/:id
func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := cc.Service.UpdateProduct(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id
func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.Service.DeleteProduct(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
