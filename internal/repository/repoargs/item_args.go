package repoargs

import "github.com/fsdevblog/groph-auction/internal/domain"

// ItemAccept результат принятой ставки или выкупа: новая цена и статус лота.
type ItemAccept struct {
	ItemID int64
	Price  int64
	Status domain.ItemStatusType
}
