package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-auction/internal/events"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

type AppServices struct {
	WalletService  *WalletService
	BidService     *BidService
	RoomService    *RoomService
	CloserService  *CloserService
	PaymentService *PaymentService
}

func Factory(unitOfWork uow.UOW, gateway Gateway, pub events.Publisher, l *logrus.Logger) (*AppServices, error) {
	walletService, walletServiceErr := NewWalletService(unitOfWork)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	bidService := NewBidService(unitOfWork, walletService, pub)

	roomService, roomServiceErr := NewRoomService(unitOfWork, pub, l)
	if roomServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", roomServiceErr.Error())
	}

	closerService, closerServiceErr := NewCloserService(unitOfWork, pub, l)
	if closerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", closerServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork, walletService, gateway, pub, l)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	return &AppServices{
		WalletService:  walletService,
		BidService:     bidService,
		RoomService:    roomService,
		CloserService:  closerService,
		PaymentService: paymentService,
	}, nil
}
