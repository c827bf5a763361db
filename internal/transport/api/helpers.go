package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/transport/api/middlewares"
)

func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	val, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return val, true
}

// abortWithDomainError транслирует ошибки бизнес-правил в HTTP статусы.
// Конфликты состояния и валидации отличимы от инфраструктурных сбоев:
// последние уходят 500-кой без деталей.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInsufficientBalance):
		_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrForbiddenOwnBid):
		_ = c.AbortWithError(http.StatusForbidden, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrAlreadyHighestBidder),
		errors.Is(err, domain.ErrBuyNowUnavailable),
		errors.Is(err, domain.ErrInvalidAmount):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrAuctionClosed),
		errors.Is(err, domain.ErrFullAuctionRoom),
		errors.Is(err, domain.ErrInvalidAuctionStatus),
		errors.Is(err, domain.ErrNotPendingPayment),
		errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
