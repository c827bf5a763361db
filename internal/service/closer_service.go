package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/events"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

// CloserService закрывает просроченные лоты: лот с хотя бы одной ставкой
// уходит в сделку с текущим лидером, лот без ставок помечается FAILED.
type CloserService struct {
	uow      uow.UOW
	itemRepo ItemRepository
	pub      events.Publisher
	l        *logrus.Entry
}

func NewCloserService(u uow.UOW, pub events.Publisher, l *logrus.Logger) (*CloserService, error) {
	itemRepo, repoErr := uow.GetRepositoryAs[ItemRepository](u, uow.RepositoryName(repoargs.ItemRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &CloserService{
		uow:      u,
		itemRepo: itemRepo,
		pub:      pub,
		l:        l.WithField("component", "closer_service"),
	}, nil
}

// CloseExpired закрывает лоты, чье время окончания прошло.
//
// Алгоритм работы:
//  1. Выборка кандидатов без блокировок (список может устареть).
//  2. Каждый лот - в собственной транзакции: блокировка строки, перепроверка
//     "все еще открыт и действительно просрочен". Лот, уже закрытый
//     конкурентным проходом или ставкой buy-now, молча пропускается -
//     повторное закрытие дает ноль эффектов.
//  3. Ошибка по одному лоту логируется и не прерывает обработку остальных:
//     следующий проход переоценит его заново.
//
// Возвращает количество успешно закрытых лотов.
func (s *CloserService) CloseExpired(ctx context.Context, limit uint) (int, error) {
	ids, idsErr := s.itemRepo.FindExpiredIDs(ctx, limit)
	if idsErr != nil {
		return 0, fmt.Errorf("closing expired items: %w", idsErr)
	}

	var closed int
	for _, id := range ids {
		settled, closeErr := s.closeOne(ctx, id)
		if closeErr != nil {
			s.l.WithError(closeErr).WithField("itemID", id).Error("close expired item")
			continue
		}
		if settled != nil {
			s.pub.Publish(events.Event{Kind: events.KindAuctionSettled, Payload: *settled})
			closed++
		}
	}
	return closed, nil
}

// closeOne закрывает один лот в собственной транзакции. Возвращает nil без
// ошибки, если лот оказался уже обработанным (идемпотентный no-op).
func (s *CloserService) closeOne(ctx context.Context, itemID int64) (*events.AuctionSettled, error) {
	var settled *events.AuctionSettled

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		itemRepo, itemRepoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
		if itemRepoErr != nil {
			return itemRepoErr //nolint:wrapcheck
		}

		item, itemErr := itemRepo.FindByIDForUpdate(c, itemID)
		if itemErr != nil {
			return itemErr //nolint:wrapcheck
		}

		// Перепроверка под блокировкой: кандидат мог быть закрыт конкурентным
		// проходом, выкуплен или продлен, пока мы ждали блокировку.
		if !item.Status.Open() || time.Now().Before(item.EndTime) {
			return nil
		}

		bidRepo, bidRepoErr := uow.GetAs[BidRepository](tx, uow.RepositoryName(repoargs.BidRepoName))
		if bidRepoErr != nil {
			return bidRepoErr //nolint:wrapcheck
		}

		highest, highestErr := bidRepo.FindHighest(c, item.ID)
		if highestErr != nil {
			if errors.Is(highestErr, domain.ErrRecordNotFound) {
				// Ставок не было - лот не продан.
				if failErr := itemRepo.UpdateStatus(c, item.ID, domain.ItemStatusFailed); failErr != nil {
					return failErr //nolint:wrapcheck
				}
				settled = &events.AuctionSettled{ItemID: item.ID, Success: false}
				return nil
			}
			return highestErr //nolint:wrapcheck
		}

		dealRepo, dealRepoErr := uow.GetAs[DealRepository](tx, uow.RepositoryName(repoargs.DealRepoName))
		if dealRepoErr != nil {
			return dealRepoErr //nolint:wrapcheck
		}

		if _, dealErr := dealRepo.Create(c, repoargs.DealCreate{
			ItemID:  item.ID,
			BuyerID: highest.BidderID,
			Price:   item.CurrentPrice,
		}); dealErr != nil {
			return dealErr //nolint:wrapcheck
		}

		if statusErr := itemRepo.UpdateStatus(c, item.ID, domain.ItemStatusInDeal); statusErr != nil {
			return statusErr //nolint:wrapcheck
		}

		settled = &events.AuctionSettled{
			ItemID:     item.ID,
			Success:    true,
			WinnerID:   highest.BidderID,
			FinalPrice: item.CurrentPrice,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return settled, nil
}
