package domain

// RoomCapacity максимальное число лотов в комнате live-аукциона.
const RoomCapacity = 6

type ItemStatusType string

const (
	ItemStatusBeforeBidding     ItemStatusType = "BEFORE_BIDDING"
	ItemStatusInProgress        ItemStatusType = "IN_PROGRESS"
	ItemStatusEnded             ItemStatusType = "ENDED"
	ItemStatusFailed            ItemStatusType = "FAILED"
	ItemStatusInDeal            ItemStatusType = "IN_DEAL"
	ItemStatusPurchaseConfirmed ItemStatusType = "PURCHASE_CONFIRMED"
)

// Open сообщает, принимает ли лот ставки (без учета времени окончания).
func (s ItemStatusType) Open() bool {
	return s == ItemStatusBeforeBidding || s == ItemStatusInProgress
}

type RoomStatusType string

const (
	RoomStatusOpen RoomStatusType = "OPEN"
	RoomStatusFull RoomStatusType = "FULL"
)

type RoomAuctionStatusType string

const (
	RoomAuctionScheduled RoomAuctionStatusType = "SCHEDULED"
	RoomAuctionLive      RoomAuctionStatusType = "LIVE"
	RoomAuctionEnded     RoomAuctionStatusType = "ENDED"
)

type DealStatusType string

const (
	DealStatusPending         DealStatusType = "PENDING"
	DealStatusPaid            DealStatusType = "PAID"
	DealStatusShipping        DealStatusType = "SHIPPING"
	DealStatusCompleted       DealStatusType = "COMPLETED"
	DealStatusCancelled       DealStatusType = "CANCELLED"
	DealStatusRefundRequested DealStatusType = "REFUND_REQUESTED"
	DealStatusRefunded        DealStatusType = "REFUNDED"
)

type PaymentStatusType string

const (
	PaymentStatusPending       PaymentStatusType = "PENDING"
	PaymentStatusLocked        PaymentStatusType = "LOCKED"
	PaymentStatusSuccess       PaymentStatusType = "SUCCESS"
	PaymentStatusFailed        PaymentStatusType = "FAILED"
	PaymentStatusCancelPending PaymentStatusType = "CANCEL_PENDING"
	PaymentStatusCanceled      PaymentStatusType = "CANCELED"
	PaymentStatusCancelFail    PaymentStatusType = "CANCEL_FAIL"
)

// WalletReasonType код причины для записи аудита кошелька.
type WalletReasonType string

const (
	ReasonBidLock       WalletReasonType = "BID_LOCK"
	ReasonBidRefund     WalletReasonType = "BID_REFUND"
	ReasonBuyNowLock    WalletReasonType = "BUY_NOW_LOCK"
	ReasonPaymentCredit WalletReasonType = "PAYMENT_CREDIT"
)
