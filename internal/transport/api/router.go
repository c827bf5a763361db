package api

import (
	"time"

	"github.com/fsdevblog/groph-auction/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// ConfirmServiceTimeout таймаут для подтверждения оплаты: внутри
	// синхронный поход во внешний шлюз.
	ConfirmServiceTimeout = 10 * time.Second
)

const (
	RouteGroup = "/api"

	ItemRoute       = "/items/:id"
	ItemBidsRoute   = "/items/:id/bids"
	ItemBuyNowRoute = "/items/:id/buy-now"

	RoomsAssignRoute   = "/rooms/assign"
	RoomItemsRoute     = "/rooms/:id/items"
	RoomItemRoute      = "/rooms/:id/items/:itemID"
	RoomStartLiveRoute = "/rooms/:id/start-live"
	RoomEndLiveRoute   = "/rooms/:id/end-live"

	PaymentsRoute       = "/payments"
	PaymentLockRoute    = "/payments/:orderID/lock"
	PaymentConfirmRoute = "/payments/:orderID/confirm"

	BalanceRoute       = "/user/balance"
	WalletEntriesRoute = "/user/balance/entries"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	BidService     BidServicer
	RoomService    RoomServicer
	PaymentService PaymentServicer
	WalletService  WalletServicer
	ItemReader     ItemReader
	BidReader      HighestBidReader
	JWTSecretKey   []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	bidsHandler := NewBidsHandler(args.BidService, args.ItemReader, args.BidReader)
	roomsHandler := NewRoomsHandler(args.RoomService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService)
	walletHandler := NewWalletHandler(args.WalletService)

	api := r.Group(RouteGroup)

	// Карточка лота публичная, колбэк подтверждения приходит от шлюза и
	// авторизуется своим ключом внутри сервиса.
	api.GET(ItemRoute, bidsHandler.Show)
	api.POST(PaymentConfirmRoute, paymentsHandler.Confirm)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(ItemBidsRoute, bidsHandler.PlaceBid)
	api.POST(ItemBuyNowRoute, bidsHandler.BuyNow)

	api.POST(RoomsAssignRoute, roomsHandler.Assign)
	api.POST(RoomItemsRoute, roomsHandler.AddItem)
	api.DELETE(RoomItemRoute, roomsHandler.RemoveItem)
	api.POST(RoomStartLiveRoute, roomsHandler.StartLive)
	api.POST(RoomEndLiveRoute, roomsHandler.EndLive)

	api.POST(PaymentsRoute, paymentsHandler.CreateIntent)
	api.POST(PaymentLockRoute, paymentsHandler.Lock)

	api.GET(BalanceRoute, walletHandler.Balance)
	api.GET(WalletEntriesRoute, walletHandler.Entries)
	return r
}
