package repoargs

type RepositoryName string

const (
	WalletRepoName  RepositoryName = "wallet"
	ItemRepoName    RepositoryName = "auction_item"
	BidRepoName     RepositoryName = "bid_record"
	RoomRepoName    RepositoryName = "auction_room"
	DealRepoName    RepositoryName = "deal"
	PaymentRepoName RepositoryName = "payment"
)
