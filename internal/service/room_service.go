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

// liveStartLead за сколько до начала слота комната переводится в LIVE.
const liveStartLead = 10 * time.Minute

// RoomService распределяет лоты по комнатам live-аукциона и ведет их
// жизненный цикл SCHEDULED -> LIVE -> ENDED.
type RoomService struct {
	uow      uow.UOW
	roomRepo RoomRepository
	pub      events.Publisher
	l        *logrus.Entry
}

func NewRoomService(u uow.UOW, pub events.Publisher, l *logrus.Logger) (*RoomService, error) {
	roomRepo, repoErr := uow.GetRepositoryAs[RoomRepository](u, uow.RepositoryName(repoargs.RoomRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &RoomService{
		uow:      u,
		roomRepo: roomRepo,
		pub:      pub,
		l:        l.WithField("component", "room_service"),
	}, nil
}

// AssignRoom возвращает открытую комнату на слот, создавая новую, если
// открытых нет. Между проверкой "открытых нет" и созданием есть окно гонки:
// два одновременных вызова могут создать две открытые комнаты на один слот.
// Это принятый риск - AddItem в любом случае перепроверяет вместимость под
// блокировкой, поэтому переполнения комнаты гонка не дает.
func (s *RoomService) AssignRoom(ctx context.Context, slot time.Time) (*domain.AuctionRoom, error) {
	room, findErr := s.roomRepo.FindOpenBySlot(ctx, slot)
	if findErr == nil {
		return room, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("assigning room for slot %s: %w", slot, findErr)
	}

	count, countErr := s.roomRepo.CountBySlot(ctx, slot)
	if countErr != nil {
		return nil, fmt.Errorf("assigning room for slot %s: %w", slot, countErr)
	}

	created, createErr := s.roomRepo.Create(ctx, repoargs.RoomCreate{
		SlotTime:  slot,
		RoomIndex: count + 1,
	})
	if createErr != nil {
		return nil, fmt.Errorf("assigning room for slot %s: %w", slot, createErr)
	}
	return created, nil
}

// AddItem добавляет лот в комнату. Вместимость проверяется под блокировкой
// строки комнаты; ровно на шестом лоте комната переходит в FULL.
func (s *RoomService) AddItem(ctx context.Context, roomID, itemID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[RoomRepository](tx, uow.RepositoryName(repoargs.RoomRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		room, roomErr := repo.FindByIDForUpdate(c, roomID)
		if roomErr != nil {
			return roomErr //nolint:wrapcheck
		}

		count, countErr := repo.CountItems(c, room.ID)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}
		if count >= domain.RoomCapacity {
			return domain.ErrFullAuctionRoom
		}

		if attachErr := repo.AttachItem(c, room.ID, itemID); attachErr != nil {
			return attachErr //nolint:wrapcheck
		}

		if count+1 >= domain.RoomCapacity {
			return repo.UpdateRoomStatus(c, room.ID, domain.RoomStatusFull) //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("adding item %d to room %d: %w", itemID, roomID, txErr)
	}
	return nil
}

// RemoveItem убирает лот из комнаты и пересчитывает ее статус.
func (s *RoomService) RemoveItem(ctx context.Context, roomID, itemID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[RoomRepository](tx, uow.RepositoryName(repoargs.RoomRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		room, roomErr := repo.FindByIDForUpdate(c, roomID)
		if roomErr != nil {
			return roomErr //nolint:wrapcheck
		}

		if detachErr := repo.DetachItem(c, room.ID, itemID); detachErr != nil {
			return detachErr //nolint:wrapcheck
		}

		count, countErr := repo.CountItems(c, room.ID)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}

		status := domain.RoomStatusFull
		if count < domain.RoomCapacity {
			status = domain.RoomStatusOpen
		}
		return repo.UpdateRoomStatus(c, room.ID, status) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("removing item %d from room %d: %w", itemID, roomID, txErr)
	}
	return nil
}

// StartLive переводит комнату SCHEDULED -> LIVE. Статус перепроверяется под
// блокировкой непосредственно перед мутацией: защита от гонки с ручным
// запуском или дублем планировщика.
func (s *RoomService) StartLive(ctx context.Context, roomID int64) error {
	return s.transition(ctx, roomID, domain.RoomAuctionScheduled, domain.RoomAuctionLive)
}

// EndLive переводит комнату LIVE -> ENDED.
func (s *RoomService) EndLive(ctx context.Context, roomID int64) error {
	return s.transition(ctx, roomID, domain.RoomAuctionLive, domain.RoomAuctionEnded)
}

func (s *RoomService) transition(
	ctx context.Context,
	roomID int64,
	from, to domain.RoomAuctionStatusType,
) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[RoomRepository](tx, uow.RepositoryName(repoargs.RoomRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		room, roomErr := repo.FindByIDForUpdate(c, roomID)
		if roomErr != nil {
			return roomErr //nolint:wrapcheck
		}
		if room.AuctionStatus != from {
			return fmt.Errorf("%w: room %d is %s", domain.ErrInvalidAuctionStatus, roomID, room.AuctionStatus)
		}
		return repo.UpdateAuctionStatus(c, room.ID, to) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("transitioning room %d to %s: %w", roomID, to, txErr)
	}

	s.pub.Publish(events.Event{Kind: events.KindRoomState, Payload: events.RoomState{
		RoomID:        roomID,
		AuctionStatus: string(to),
	}})
	return nil
}

// StartDueRooms запускает комнаты, до начала слота которых осталось не более
// liveStartLead и которые все еще SCHEDULED. Каждая комната обрабатывается в
// собственной транзакции: сбой одной не блокирует запуск остальных.
// Комнату, уже запущенную кем-то между выборкой и блокировкой, пропускаем.
func (s *RoomService) StartDueRooms(ctx context.Context) (int, error) {
	ids, idsErr := s.roomRepo.FindDueScheduledIDs(ctx, time.Now().Add(liveStartLead))
	if idsErr != nil {
		return 0, fmt.Errorf("starting due rooms: %w", idsErr)
	}

	var started int
	for _, id := range ids {
		if startErr := s.StartLive(ctx, id); startErr != nil {
			if errors.Is(startErr, domain.ErrInvalidAuctionStatus) {
				continue
			}
			s.l.WithError(startErr).WithField("roomID", id).Error("start live room")
			continue
		}
		started++
	}
	return started, nil
}
