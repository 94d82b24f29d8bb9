package controllers

import (
	"github.com/RubensDuarte2025/Julius-rmd/pkg/resp"
	"github.com/RubensDuarte2025/Julius-rmd/services"

	"github.com/gin-gonic/gin"
)

// AdminController covers the back-office surface: system settings and the
// read-only sales reports.
type AdminController struct {
	Settings *services.SettingService
	Reports  *services.ReportService
}

func NewAdminController(settings *services.SettingService, reports *services.ReportService) *AdminController {
	return &AdminController{Settings: settings, Reports: reports}
}

// ----- Settings -----

// GET /admin/settings
func (ac *AdminController) ListSettings(c *gin.Context) {
	items, err := ac.Settings.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/settings/:key
func (ac *AdminController) GetSetting(c *gin.Context) {
	setting, err := ac.Settings.Get(c.Param("key"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, setting)
}

// POST /admin/settings
func (ac *AdminController) CreateSetting(c *gin.Context) {
	var req services.SettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	setting, err := ac.Settings.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, setting)
}

type settingUpdateReq struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// PUT /admin/settings/:key
func (ac *AdminController) UpdateSetting(c *gin.Context) {
	var req settingUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	setting, err := ac.Settings.Update(c.Param("key"), req.Value, req.Description)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, setting)
}

// DELETE /admin/settings/:key
func (ac *AdminController) DeleteSetting(c *gin.Context) {
	if err := ac.Settings.Delete(c.Param("key")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("key")})
}

// ----- Reports -----

// GET /admin/reports/sales?from=&to=
func (ac *AdminController) SalesReport(c *gin.Context) {
	from, to, err := services.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	summary, err := ac.Reports.SalesSummary(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /admin/reports/products?from=&to=
func (ac *AdminController) ProductsReport(c *gin.Context) {
	from, to, err := services.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	rows, err := ac.Reports.ProductsSold(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}
