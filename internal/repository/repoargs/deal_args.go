package repoargs

type DealCreate struct {
	ItemID  int64
	BuyerID int64
	Price   int64
}
