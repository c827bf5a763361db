// Package events описывает исходящие события ядра аукциона. Ядро только
// публикует событие и продолжает работу; гарантии доставки лежат на
// подписчике (push-канал, нотификации).
package events

import "time"

type KindType string

const (
	KindAuctionSettled KindType = "auction_settled"
	KindBidOutbid      KindType = "bid_outbid"
	KindPriceChanged   KindType = "price_changed"
	KindPaymentState   KindType = "payment_state"
	KindRoomState      KindType = "room_state"
)

// Event исходящее событие. Payload - одна из структур ниже.
type Event struct {
	Kind       KindType
	OccurredAt time.Time
	Payload    any
}

// AuctionSettled результат закрытия лота: либо сделка с победителем,
// либо закрытие без ставок.
type AuctionSettled struct {
	ItemID     int64
	Success    bool
	WinnerID   int64
	FinalPrice int64
}

// BidOutbid уведомление перебитому лидеру: его ставка возвращена на кошелек.
type BidOutbid struct {
	ItemID         int64
	BidderID       int64
	RefundedAmount int64
	NewPrice       int64
}

type PriceChanged struct {
	ItemID   int64
	NewPrice int64
}

type PaymentState struct {
	OrderID string
	Status  string
}

type RoomState struct {
	RoomID        int64
	AuctionStatus string
}
