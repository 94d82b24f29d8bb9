package controllers

import (
	"github.com/RubensDuarte2025/Julius-rmd/pkg/resp"
	"github.com/RubensDuarte2025/Julius-rmd/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /tables/:id/orders - idempotent: returns the table's active order,
// creating one only when the table is free
func (oc *OrderController) Open(c *gin.Context) {
	tableID, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, created, err := oc.Service.OpenOrGetActive(tableID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if created {
		resp.Created(c, order)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id - order with nested items and computed total
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := oc.Service.Detail(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /orders/:id - {status: Closed|Cancelled, notes?}
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/items
func (oc *OrderController) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := oc.Service.AddItem(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /orders/:id/items/:itemId
func (oc *OrderController) RemoveItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	if err := oc.Service.RemoveItem(id, itemID); err != nil {
		resp.Error(c, err)
		return
	}
	detail, err := oc.Service.Detail(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}
