package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// Ошибки бизнес-правил. Транспортный слой различает их по errors.Is,
	// поэтому каждая - отдельный sentinel.
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBidTooLow            = errors.New("bid too low")
	ErrAlreadyHighestBidder = errors.New("already highest bidder")
	ErrForbiddenOwnBid      = errors.New("own bid forbidden")
	ErrAuctionClosed        = errors.New("auction closed")
	ErrBuyNowUnavailable    = errors.New("buy now unavailable")
	ErrFullAuctionRoom      = errors.New("auction room is full")
	ErrInvalidAuctionStatus = errors.New("invalid auction status")
	ErrNotPendingPayment    = errors.New("payment is not pending")
	ErrInvalidAmount        = errors.New("invalid amount")
)

// InvalidTransitionError ошибка недопустимого перехода статуса платежа.
// Оборачивает ErrNotPendingPayment чтобы транспортный слой мог матчить по errors.Is.
type InvalidTransitionError struct {
	OrderID string
	From    PaymentStatusType
	To      PaymentStatusType
}

func NewInvalidTransitionError(orderID string, from, to PaymentStatusType) error {
	return &InvalidTransitionError{OrderID: orderID, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("payment %s: transition %s -> %s is not allowed", e.OrderID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrNotPendingPayment
}
