package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type WalletRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	Adjust(ctx context.Context, args repoargs.WalletAdjust) (*domain.Wallet, error)
	Entries(ctx context.Context, userID int64) ([]domain.WalletEntry, error)
}

type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.AuctionItem, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.AuctionItem, error)
	Accept(ctx context.Context, args repoargs.ItemAccept) error
	UpdateStatus(ctx context.Context, id int64, status domain.ItemStatusType) error
	FindExpiredIDs(ctx context.Context, limit uint) ([]int64, error)
}

type BidRepository interface {
	FindHighest(ctx context.Context, itemID int64) (*domain.BidRecord, error)
	ClearHighest(ctx context.Context, bidID int64) error
	Create(ctx context.Context, args repoargs.BidCreate) (*domain.BidRecord, error)
	GetByItem(ctx context.Context, itemID int64) ([]domain.BidRecord, error)
}

type RoomRepository interface {
	FindOpenBySlot(ctx context.Context, slot time.Time) (*domain.AuctionRoom, error)
	CountBySlot(ctx context.Context, slot time.Time) (int, error)
	Create(ctx context.Context, args repoargs.RoomCreate) (*domain.AuctionRoom, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.AuctionRoom, error)
	CountItems(ctx context.Context, roomID int64) (int, error)
	AttachItem(ctx context.Context, roomID, itemID int64) error
	DetachItem(ctx context.Context, roomID, itemID int64) error
	UpdateRoomStatus(ctx context.Context, id int64, status domain.RoomStatusType) error
	UpdateAuctionStatus(ctx context.Context, id int64, status domain.RoomAuctionStatusType) error
	FindDueScheduledIDs(ctx context.Context, deadline time.Time) ([]int64, error)
}

type DealRepository interface {
	Create(ctx context.Context, args repoargs.DealCreate) (*domain.Deal, error)
	FindByItemID(ctx context.Context, itemID int64) (*domain.Deal, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	FindByOrderIDForUpdate(ctx context.Context, orderID string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatusType) error
	MarkSuccess(ctx context.Context, id int64, externalKey string) error
	MarkCancelPending(ctx context.Context, id int64, externalKey string) error
	ScheduleCancelRetry(ctx context.Context, args repoargs.CancelRetryUpdate) error
	FindCancelRetryDue(ctx context.Context, limit uint) ([]string, error)
}

// WalletLedger операции кошелька, выполняемые в транзакции вызывающей стороны.
// Изменение баланса и породившее его бизнес-событие (блокировка ставки,
// зачисление платежа) коммитятся или откатываются как одно целое.
type WalletLedger interface {
	Increase(
		ctx context.Context,
		tx uow.TX,
		userID int64,
		amount int64,
		reason domain.WalletReasonType,
	) (*domain.Wallet, error)
	Decrease(
		ctx context.Context,
		tx uow.TX,
		userID int64,
		amount int64,
		reason domain.WalletReasonType,
	) (*domain.Wallet, error)
	Balance(ctx context.Context, tx uow.TX, userID int64) (int64, error)
}

// Gateway клиент внешнего платежного шлюза. Любой не-успех (включая
// транспортную ошибку) возвращается ошибкой и никогда не трактуется как успех.
type Gateway interface {
	Confirm(ctx context.Context, externalKey, orderID string, amount int64) (*domain.GatewayConfirmation, error)
	Cancel(ctx context.Context, externalKey, reason string) error
}
