package controllers

import (
	"strconv"

	"github.com/RubensDuarte2025/Julius-rmd/pkg/resp"
	"github.com/RubensDuarte2025/Julius-rmd/services"

	"github.com/gin-gonic/gin"
)

type KitchenController struct {
	Service *services.KitchenService
}

func NewKitchenController(svc *services.KitchenService) *KitchenController {
	return &KitchenController{Service: svc}
}

// GET /kitchen/tickets?status=active - FIFO projection of tickets still
// awaiting or in preparation
func (kc *KitchenController) List(c *gin.Context) {
	if c.DefaultQuery("status", "active") != "active" {
		resp.BadRequest(c, "only status=active is supported")
		return
	}
	tickets, err := kc.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tickets})
}

// POST /kitchen/tickets - intake for orders from external channels
func (kc *KitchenController) Intake(c *gin.Context) {
	var req services.IntakeTicketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ticket, err := kc.Service.IntakeExternal(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, ticket)
}

type ticketStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /kitchen/tickets/:sourceType/:sourceId/status - {status}
func (kc *KitchenController) UpdateStatus(c *gin.Context) {
	sourceType := c.Param("sourceType")
	sourceID, err := strconv.Atoi(c.Param("sourceId"))
	if err != nil || sourceID <= 0 {
		resp.BadRequest(c, "invalid sourceId")
		return
	}
	var req ticketStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ticket, err := kc.Service.UpdateStatus(sourceType, uint(sourceID), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, ticket)
}
