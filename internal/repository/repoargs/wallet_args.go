package repoargs

import "github.com/fsdevblog/groph-auction/internal/domain"

// WalletAdjust атомарное изменение баланса. Amount со знаком: положительное -
// пополнение, отрицательное - списание. Запись аудита создается в том же запросе.
type WalletAdjust struct {
	UserID int64
	Amount int64
	Reason domain.WalletReasonType
}
