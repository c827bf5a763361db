package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
)

type BidServicer interface {
	PlaceBid(ctx context.Context, itemID, bidderID, amount int64) (*domain.BidRecord, error)
	BuyNow(ctx context.Context, itemID, buyerID int64) (*domain.Deal, error)
}

type RoomServicer interface {
	AssignRoom(ctx context.Context, slot time.Time) (*domain.AuctionRoom, error)
	AddItem(ctx context.Context, roomID, itemID int64) error
	RemoveItem(ctx context.Context, roomID, itemID int64) error
	StartLive(ctx context.Context, roomID int64) error
	EndLive(ctx context.Context, roomID int64) error
}

type PaymentServicer interface {
	CreateIntent(ctx context.Context, userID, amount int64) (*domain.Payment, error)
	Lock(ctx context.Context, orderID string, amount int64) error
	ConfirmAndCredit(ctx context.Context, orderID, externalKey string, amount int64) error
}

type WalletServicer interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
	Entries(ctx context.Context, userID int64) ([]domain.WalletEntry, error)
}

// ItemReader read-only запросы по лотам для каталожных эндпоинтов.
type ItemReader interface {
	FindByID(ctx context.Context, id int64) (*domain.AuctionItem, error)
}

// HighestBidReader возвращает текущего лидера лота.
type HighestBidReader interface {
	FindHighest(ctx context.Context, itemID int64) (*domain.BidRecord, error)
}
