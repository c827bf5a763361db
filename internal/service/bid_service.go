package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/events"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

// BidService принимает ставки и выкупы по лотам отложенного аукциона.
// Все мутации одного лота сериализуются через блокировку его строки:
// конкурентные ставки на один лот выполняются по очереди (в порядке захвата
// блокировки), ставки на разные лоты - независимо.
type BidService struct {
	uow    uow.UOW
	wallet WalletLedger
	pub    events.Publisher
}

func NewBidService(u uow.UOW, wallet WalletLedger, pub events.Publisher) *BidService {
	return &BidService{
		uow:    u,
		wallet: wallet,
		pub:    pub,
	}
}

// PlaceBid размещает ставку по лоту.
//
// Алгоритм работы (одна транзакция, либо все эффекты, либо ни одного):
//  1. Блокировка строки лота.
//  2. Проверки: не своя ли ставка, открыт ли лот и не истек ли срок,
//     выше ли сумма текущей цены, хватает ли средств (совещательно).
//  3. Если есть текущий лидер - возврат его заблокированной суммы на кошелек
//     и сброс флага лидирующей ставки. Перебить собственную ставку нельзя.
//  4. Списание суммы с кошелька ставящего (авторитетная проверка средств).
//  5. Новая лидирующая ставка + обновление текущей цены лота.
//
// После коммита публикуются события для перебитого лидера и смены цены.
func (s *BidService) PlaceBid(ctx context.Context, itemID, bidderID, amount int64) (*domain.BidRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("placing bid on item %d: %w", itemID, domain.ErrInvalidAmount)
	}

	var bid *domain.BidRecord
	var outbid *events.BidOutbid

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		itemRepo, itemRepoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
		if itemRepoErr != nil {
			return itemRepoErr //nolint:wrapcheck
		}

		item, itemErr := itemRepo.FindByIDForUpdate(c, itemID)
		if itemErr != nil {
			return itemErr //nolint:wrapcheck
		}

		if validateErr := s.validateBid(c, tx, item, bidderID, amount); validateErr != nil {
			return validateErr
		}

		var displaceErr error
		outbid, displaceErr = s.displaceHighest(c, tx, item, bidderID, amount)
		if displaceErr != nil {
			return displaceErr
		}

		// Авторитетное списание: если средств не хватает, транзакция
		// откатится целиком, включая возврат перебитому лидеру выше.
		if _, decErr := s.wallet.Decrease(c, tx, bidderID, amount, domain.ReasonBidLock); decErr != nil {
			return decErr //nolint:wrapcheck
		}

		bidRepo, bidRepoErr := uow.GetAs[BidRepository](tx, uow.RepositoryName(repoargs.BidRepoName))
		if bidRepoErr != nil {
			return bidRepoErr //nolint:wrapcheck
		}

		var createErr error
		bid, createErr = bidRepo.Create(c, repoargs.BidCreate{
			ItemID:   itemID,
			BidderID: bidderID,
			Amount:   amount,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return itemRepo.Accept(c, repoargs.ItemAccept{ //nolint:wrapcheck
			ItemID: itemID,
			Price:  amount,
			Status: domain.ItemStatusInProgress,
		})
	})
	if txErr != nil {
		return nil, fmt.Errorf("placing bid on item %d: %w", itemID, txErr)
	}

	if outbid != nil {
		s.pub.Publish(events.Event{Kind: events.KindBidOutbid, Payload: *outbid})
	}
	s.pub.Publish(events.Event{Kind: events.KindPriceChanged, Payload: events.PriceChanged{
		ItemID:   itemID,
		NewPrice: amount,
	}})

	return bid, nil
}

// BuyNow выкупает лот по фиксированной цене выкупа. Проверки те же, что и у
// ставки, но вместо новой записи ставки лот сразу уходит в сделку.
func (s *BidService) BuyNow(ctx context.Context, itemID, buyerID int64) (*domain.Deal, error) {
	var deal *domain.Deal
	var outbid *events.BidOutbid
	var price int64

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		itemRepo, itemRepoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
		if itemRepoErr != nil {
			return itemRepoErr //nolint:wrapcheck
		}

		item, itemErr := itemRepo.FindByIDForUpdate(c, itemID)
		if itemErr != nil {
			return itemErr //nolint:wrapcheck
		}

		if item.BuyNowPrice == nil {
			return domain.ErrBuyNowUnavailable
		}
		price = *item.BuyNowPrice

		if validateErr := s.validateBuyNow(c, tx, item, buyerID, price); validateErr != nil {
			return validateErr
		}

		var displaceErr error
		outbid, displaceErr = s.displaceHighest(c, tx, item, buyerID, price)
		if displaceErr != nil {
			return displaceErr
		}

		if _, decErr := s.wallet.Decrease(c, tx, buyerID, price, domain.ReasonBuyNowLock); decErr != nil {
			return decErr //nolint:wrapcheck
		}

		dealRepo, dealRepoErr := uow.GetAs[DealRepository](tx, uow.RepositoryName(repoargs.DealRepoName))
		if dealRepoErr != nil {
			return dealRepoErr //nolint:wrapcheck
		}

		var createErr error
		deal, createErr = dealRepo.Create(c, repoargs.DealCreate{
			ItemID:  itemID,
			BuyerID: buyerID,
			Price:   price,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return itemRepo.Accept(c, repoargs.ItemAccept{ //nolint:wrapcheck
			ItemID: itemID,
			Price:  price,
			Status: domain.ItemStatusInDeal,
		})
	})
	if txErr != nil {
		return nil, fmt.Errorf("buying item %d: %w", itemID, txErr)
	}

	if outbid != nil {
		s.pub.Publish(events.Event{Kind: events.KindBidOutbid, Payload: *outbid})
	}
	s.pub.Publish(events.Event{Kind: events.KindAuctionSettled, Payload: events.AuctionSettled{
		ItemID:     itemID,
		Success:    true,
		WinnerID:   buyerID,
		FinalPrice: price,
	}})

	return deal, nil
}

// FindByID read-only карточка лота, вне транзакции.
func (s *BidService) FindByID(ctx context.Context, itemID int64) (*domain.AuctionItem, error) {
	itemRepo, itemRepoErr := uow.GetRepositoryAs[ItemRepository](s.uow, uow.RepositoryName(repoargs.ItemRepoName))
	if itemRepoErr != nil {
		return nil, itemRepoErr //nolint:wrapcheck
	}
	item, itemErr := itemRepo.FindByID(ctx, itemID)
	if itemErr != nil {
		return nil, fmt.Errorf("finding item %d: %w", itemID, itemErr)
	}
	return item, nil
}

// FindHighest текущая лидирующая ставка лота, вне транзакции.
func (s *BidService) FindHighest(ctx context.Context, itemID int64) (*domain.BidRecord, error) {
	bidRepo, bidRepoErr := uow.GetRepositoryAs[BidRepository](s.uow, uow.RepositoryName(repoargs.BidRepoName))
	if bidRepoErr != nil {
		return nil, bidRepoErr //nolint:wrapcheck
	}
	bid, bidErr := bidRepo.FindHighest(ctx, itemID)
	if bidErr != nil {
		return nil, fmt.Errorf("finding highest bid for item %d: %w", itemID, bidErr)
	}
	return bid, nil
}

func (s *BidService) validateBid(
	ctx context.Context,
	tx uow.TX,
	item *domain.AuctionItem,
	bidderID int64,
	amount int64,
) error {
	if item.SellerID == bidderID {
		return domain.ErrForbiddenOwnBid
	}
	if !item.Status.Open() || time.Now().After(item.EndTime) {
		return domain.ErrAuctionClosed
	}
	if amount <= item.CurrentPrice {
		return fmt.Errorf("%w: current price is %d", domain.ErrBidTooLow, item.CurrentPrice)
	}

	// Совещательная проверка средств - чтобы не делать возврат лидеру ради
	// заведомо провального списания. Авторитетна только проверка в Decrease.
	balance, balanceErr := s.wallet.Balance(ctx, tx, bidderID)
	if balanceErr != nil {
		return balanceErr //nolint:wrapcheck
	}
	if balance < amount {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// validateBuyNow повторяет проверки ставки, но без требования превышения
// текущей цены: цена выкупа фиксирована.
func (s *BidService) validateBuyNow(
	ctx context.Context,
	tx uow.TX,
	item *domain.AuctionItem,
	buyerID int64,
	price int64,
) error {
	if item.SellerID == buyerID {
		return domain.ErrForbiddenOwnBid
	}
	if !item.Status.Open() || time.Now().After(item.EndTime) {
		return domain.ErrAuctionClosed
	}

	balance, balanceErr := s.wallet.Balance(ctx, tx, buyerID)
	if balanceErr != nil {
		return balanceErr //nolint:wrapcheck
	}
	if balance < price {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// displaceHighest возвращает текущему лидеру его заблокированную сумму и
// сбрасывает флаг лидирующей ставки. Возврат и принятие новой ставки - одна
// транзакция: состояние "оба списаны" или "никто не возвращен" невозможно.
func (s *BidService) displaceHighest(
	ctx context.Context,
	tx uow.TX,
	item *domain.AuctionItem,
	userID int64,
	newPrice int64,
) (*events.BidOutbid, error) {
	bidRepo, bidRepoErr := uow.GetAs[BidRepository](tx, uow.RepositoryName(repoargs.BidRepoName))
	if bidRepoErr != nil {
		return nil, bidRepoErr //nolint:wrapcheck
	}

	prev, prevErr := bidRepo.FindHighest(ctx, item.ID)
	if prevErr != nil {
		if errors.Is(prevErr, domain.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, prevErr //nolint:wrapcheck
	}

	if prev.BidderID == userID {
		return nil, domain.ErrAlreadyHighestBidder
	}

	if _, incErr := s.wallet.Increase(ctx, tx, prev.BidderID, prev.Amount, domain.ReasonBidRefund); incErr != nil {
		return nil, incErr //nolint:wrapcheck
	}
	if clearErr := bidRepo.ClearHighest(ctx, prev.ID); clearErr != nil {
		return nil, clearErr //nolint:wrapcheck
	}

	return &events.BidOutbid{
		ItemID:         item.ID,
		BidderID:       prev.BidderID,
		RefundedAmount: prev.Amount,
		NewPrice:       newPrice,
	}, nil
}
