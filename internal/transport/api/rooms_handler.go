package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type RoomsHandler struct {
	svs RoomServicer
}

func NewRoomsHandler(svs RoomServicer) *RoomsHandler {
	return &RoomsHandler{svs: svs}
}

type AssignRoomParams struct {
	SlotTime time.Time `json:"slotTime" binding:"required"`
}

type RoomResponse struct {
	RoomID        int64  `json:"roomId"`
	SlotTime      string `json:"slotTime"`
	RoomIndex     int    `json:"roomIndex"`
	RoomStatus    string `json:"roomStatus"`
	AuctionStatus string `json:"auctionStatus"`
}

func (h *RoomsHandler) Assign(c *gin.Context) {
	var params AssignRoomParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	room, err := h.svs.AssignRoom(reqCtx, params.SlotTime.UTC())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &RoomResponse{
		RoomID:        room.ID,
		SlotTime:      room.SlotTime.Format(time.RFC3339),
		RoomIndex:     room.RoomIndex,
		RoomStatus:    string(room.RoomStatus),
		AuctionStatus: string(room.AuctionStatus),
	})
}

type RoomItemParams struct {
	ItemID int64 `json:"itemId" binding:"required"`
}

func (h *RoomsHandler) AddItem(c *gin.Context) {
	roomID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	var params RoomItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.AddItem(reqCtx, roomID, params.ItemID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RoomsHandler) RemoveItem(c *gin.Context) {
	roomID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramInt64(c, "itemID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.RemoveItem(reqCtx, roomID, itemID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// StartLive ручной запуск комнаты. Обычно комнаты запускает свипер, но
// оператору нужна возможность стартовать вручную; гонка между ними
// разрешается перепроверкой статуса под блокировкой.
func (h *RoomsHandler) StartLive(c *gin.Context) {
	roomID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.StartLive(reqCtx, roomID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RoomsHandler) EndLive(c *gin.Context) {
	roomID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.EndLive(reqCtx, roomID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
