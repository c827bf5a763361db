package repoargs

import "time"

type PaymentCreate struct {
	UserID  int64
	OrderID string
	Amount  int64
}

// CancelRetryUpdate перевод платежа на следующую попытку отмены.
type CancelRetryUpdate struct {
	PaymentID   int64
	Attempts    int
	NextRetryAt time.Time
}
