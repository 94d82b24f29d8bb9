package controllers

import (
	"github.com/RubensDuarte2025/Julius-rmd/pkg/resp"
	"github.com/RubensDuarte2025/Julius-rmd/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

// POST /orders/:id/payments - {method, amountPaid}
func (pc *PaymentController) Register(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.RegisterPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := pc.Service.Register(orderID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /orders/:id/payments
func (pc *PaymentController) ListForOrder(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	payments, err := pc.Service.ListForOrder(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments})
}
