package domain

import (
	"time"
)

// Wallet хранит доступный баланс юзера. Создается лениво при первой операции,
// никогда не удаляется. Баланс не может быть отрицательным (ограничение на уровне БД).
type Wallet struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Balance   int64
}

// WalletEntry запись аудита изменения баланса. Пишется в той же транзакции,
// что и само изменение баланса.
type WalletEntry struct {
	ID            int64
	CreatedAt     time.Time
	WalletID      int64
	UserID        int64
	Amount        int64 // со знаком: положительное - пополнение, отрицательное - списание
	BalanceBefore int64
	BalanceAfter  int64
	Reason        WalletReasonType
}

// AuctionItem лот отложенного аукциона. Цена меняется только через принятую
// ставку или выкуп, и только пока лот открыт.
type AuctionItem struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	SellerID     int64
	Title        string
	StartPrice   int64
	CurrentPrice int64
	BuyNowPrice  *int64
	EndTime      time.Time
	Status       ItemStatusType
	RoomID       *int64
}

// BidRecord ставка по лоту. Неизменяема после создания, кроме флага Highest,
// который сбрасывается в момент принятия строго большей ставки.
type BidRecord struct {
	ID        int64
	CreatedAt time.Time
	ItemID    int64
	BidderID  int64
	Amount    int64
	Highest   bool
}

// AuctionRoom комната live-аукциона на временной слот. Вмещает до
// RoomCapacity лотов.
type AuctionRoom struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SlotTime      time.Time
	RoomIndex     int
	RoomStatus    RoomStatusType
	AuctionStatus RoomAuctionStatusType
}

// Deal сделка по завершенному лоту. Создается не более одной на лот
// (уникальный индекс по item_id).
type Deal struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ItemID       int64
	BuyerID      int64
	Price        int64
	Status       DealStatusType
	Carrier      *string
	TrackingCode *string
}

// Payment платеж через внешний шлюз. Сумма неизменяема после создания,
// статусы переходят строго по state machine реконсилиатора.
type Payment struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         int64
	OrderID        string
	ExternalKey    *string
	Amount         int64
	Status         PaymentStatusType
	CancelAttempts int
	NextRetryAt    *time.Time
}

// GatewayConfirmation ответ внешнего платежного шлюза на подтверждение списания.
type GatewayConfirmation struct {
	Status     string
	Method     string
	ApprovedAt time.Time
}
