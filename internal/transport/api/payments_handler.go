package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaymentsHandler struct {
	svs PaymentServicer
}

func NewPaymentsHandler(svs PaymentServicer) *PaymentsHandler {
	return &PaymentsHandler{svs: svs}
}

type CreateIntentParams struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type PaymentResponse struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
}

func (h *PaymentsHandler) CreateIntent(c *gin.Context) {
	var params CreateIntentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := h.svs.CreateIntent(reqCtx, getUserIDFromContext(c), params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &PaymentResponse{
		OrderID: payment.OrderID,
		Amount:  payment.Amount,
		Status:  string(payment.Status),
	})
}

type LockParams struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

func (h *PaymentsHandler) Lock(c *gin.Context) {
	orderID := c.Param("orderID")

	var params LockParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Lock(reqCtx, orderID, params.Amount); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type ConfirmParams struct {
	PaymentKey string `json:"paymentKey" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

// Confirm колбэк подтверждения от чекаута. Таймаут здесь длиннее обычного:
// внутри синхронный вызов внешнего шлюза.
func (h *PaymentsHandler) Confirm(c *gin.Context) {
	orderID := c.Param("orderID")

	var params ConfirmParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, ConfirmServiceTimeout)
	defer cancel()

	if err := h.svs.ConfirmAndCredit(reqCtx, orderID, params.PaymentKey, params.Amount); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
