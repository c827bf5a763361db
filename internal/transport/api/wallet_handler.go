package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer) *WalletHandler {
	return &WalletHandler{svs: svs}
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

func (h *WalletHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: balance})
}

type EntryResponseItem struct {
	Amount        int64  `json:"amount"`
	BalanceBefore int64  `json:"balanceBefore"`
	BalanceAfter  int64  `json:"balanceAfter"`
	Reason        string `json:"reason"`
	CreatedAt     string `json:"createdAt"`
}

// Entries аудиторский след кошелька текущего юзера.
func (h *WalletHandler) Entries(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.svs.Entries(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]EntryResponseItem, len(entries))
	for i, entry := range entries {
		response[i] = EntryResponseItem{
			Amount:        entry.Amount,
			BalanceBefore: entry.BalanceBefore,
			BalanceAfter:  entry.BalanceAfter,
			Reason:        string(entry.Reason),
			CreatedAt:     entry.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}
