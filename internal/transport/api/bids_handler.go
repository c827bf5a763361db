package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-auction/internal/domain"
)

type BidsHandler struct {
	svs        BidServicer
	itemReader ItemReader
	bidReader  HighestBidReader
}

func NewBidsHandler(svs BidServicer, itemReader ItemReader, bidReader HighestBidReader) *BidsHandler {
	return &BidsHandler{
		svs:        svs,
		itemReader: itemReader,
		bidReader:  bidReader,
	}
}

type PlaceBidParams struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     int64  `json:"bidId"`
	ItemID    int64  `json:"itemId"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"createdAt"`
}

func (h *BidsHandler) PlaceBid(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	var params PlaceBidParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bid, err := h.svs.PlaceBid(reqCtx, itemID, getUserIDFromContext(c), params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &BidResponse{
		BidID:     bid.ID,
		ItemID:    bid.ItemID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.Format(time.RFC3339),
	})
}

type DealResponse struct {
	DealID  int64  `json:"dealId"`
	ItemID  int64  `json:"itemId"`
	BuyerID int64  `json:"buyerId"`
	Price   int64  `json:"price"`
	Status  string `json:"status"`
}

func (h *BidsHandler) BuyNow(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deal, err := h.svs.BuyNow(reqCtx, itemID, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &DealResponse{
		DealID:  deal.ID,
		ItemID:  deal.ItemID,
		BuyerID: deal.BuyerID,
		Price:   deal.Price,
		Status:  string(deal.Status),
	})
}

type ItemResponse struct {
	ItemID        int64  `json:"itemId"`
	Title         string `json:"title"`
	CurrentPrice  int64  `json:"currentPrice"`
	BuyNowPrice   *int64 `json:"buyNowPrice,omitempty"`
	Status        string `json:"status"`
	EndTime       string `json:"endTime"`
	HighestBidder *int64 `json:"highestBidder,omitempty"`
}

// Show read-only карточка лота: цена, статус, текущий лидер.
func (h *BidsHandler) Show(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, itemErr := h.itemReader.FindByID(reqCtx, itemID)
	if itemErr != nil {
		abortWithDomainError(c, itemErr)
		return
	}

	resp := ItemResponse{
		ItemID:       item.ID,
		Title:        item.Title,
		CurrentPrice: item.CurrentPrice,
		BuyNowPrice:  item.BuyNowPrice,
		Status:       string(item.Status),
		EndTime:      item.EndTime.Format(time.RFC3339),
	}

	highest, highestErr := h.bidReader.FindHighest(reqCtx, itemID)
	if highestErr != nil && !errors.Is(highestErr, domain.ErrRecordNotFound) {
		abortWithDomainError(c, highestErr)
		return
	}
	if highestErr == nil {
		resp.HighestBidder = &highest.BidderID
	}

	c.JSON(http.StatusOK, &resp)
}
