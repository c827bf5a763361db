package repoargs

type BidCreate struct {
	ItemID   int64
	BidderID int64
	Amount   int64
}
