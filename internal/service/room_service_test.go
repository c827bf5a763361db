package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/events"
	eventmocks "github.com/fsdevblog/groph-auction/internal/events/mocks"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/internal/service/mocks"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-auction/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type RoomServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockRoomRepo *mocks.MockRoomRepository
	mockPub      *eventmocks.MockPublisher
	roomService  *RoomService
}

func TestRoomServiceSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}

func (s *RoomServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockRoomRepo = mocks.NewMockRoomRepository(s.mockCtrl)
	s.mockPub = eventmocks.NewMockPublisher(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RoomRepoName)).
		Return(s.mockRoomRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.RoomRepoName)).
		Return(s.mockRoomRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	l := logrus.New()
	roomService, servErr := NewRoomService(s.mockUOW, s.mockPub, l)
	s.Require().NoError(servErr)
	s.roomService = roomService
}

func (s *RoomServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoomServiceTestSuite) scheduledRoom() *domain.AuctionRoom {
	return &domain.AuctionRoom{
		ID:            1,
		SlotTime:      time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC),
		RoomIndex:     1,
		RoomStatus:    domain.RoomStatusOpen,
		AuctionStatus: domain.RoomAuctionScheduled,
	}
}

func (s *RoomServiceTestSuite) TestAssignRoomExisting() {
	room := s.scheduledRoom()
	s.mockRoomRepo.EXPECT().FindOpenBySlot(gomock.Any(), room.SlotTime).Return(room, nil)

	got, err := s.roomService.AssignRoom(context.Background(), room.SlotTime)
	s.NoError(err)
	s.Equal(room.ID, got.ID)
}

// Открытых комнат на слот нет - создается новая со следующим порядковым номером.
func (s *RoomServiceTestSuite) TestAssignRoomCreates() {
	slot := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)

	s.mockRoomRepo.EXPECT().FindOpenBySlot(gomock.Any(), slot).Return(nil, domain.ErrRecordNotFound)
	s.mockRoomRepo.EXPECT().CountBySlot(gomock.Any(), slot).Return(2, nil)
	s.mockRoomRepo.EXPECT().
		Create(gomock.Any(), repoargs.RoomCreate{SlotTime: slot, RoomIndex: 3}).
		Return(&domain.AuctionRoom{ID: 7, SlotTime: slot, RoomIndex: 3}, nil)

	got, err := s.roomService.AssignRoom(context.Background(), slot)
	s.NoError(err)
	s.Equal(int64(7), got.ID)
	s.Equal(3, got.RoomIndex)
}

func (s *RoomServiceTestSuite) TestAddItemFullRoom() {
	room := s.scheduledRoom()
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID).Return(room, nil)
	s.mockRoomRepo.EXPECT().CountItems(gomock.Any(), room.ID).Return(domain.RoomCapacity, nil)

	err := s.roomService.AddItem(context.Background(), room.ID, 10)
	s.ErrorIs(err, domain.ErrFullAuctionRoom)
}

// Ровно на шестом лоте комната переходит в FULL.
func (s *RoomServiceTestSuite) TestAddItemFlipsFull() {
	room := s.scheduledRoom()
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID).Return(room, nil)
	s.mockRoomRepo.EXPECT().CountItems(gomock.Any(), room.ID).Return(domain.RoomCapacity-1, nil)
	s.mockRoomRepo.EXPECT().AttachItem(gomock.Any(), room.ID, int64(10)).Return(nil)
	s.mockRoomRepo.EXPECT().UpdateRoomStatus(gomock.Any(), room.ID, domain.RoomStatusFull).Return(nil)

	err := s.roomService.AddItem(context.Background(), room.ID, 10)
	s.NoError(err)
}

func (s *RoomServiceTestSuite) TestAddItemStaysOpen() {
	room := s.scheduledRoom()
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID).Return(room, nil)
	s.mockRoomRepo.EXPECT().CountItems(gomock.Any(), room.ID).Return(2, nil)
	s.mockRoomRepo.EXPECT().AttachItem(gomock.Any(), room.ID, int64(10)).Return(nil)

	err := s.roomService.AddItem(context.Background(), room.ID, 10)
	s.NoError(err)
}

// Удаление лота из полной комнаты возвращает ее в OPEN.
func (s *RoomServiceTestSuite) TestRemoveItemReopens() {
	room := s.scheduledRoom()
	room.RoomStatus = domain.RoomStatusFull

	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID).Return(room, nil)
	s.mockRoomRepo.EXPECT().DetachItem(gomock.Any(), room.ID, int64(10)).Return(nil)
	s.mockRoomRepo.EXPECT().CountItems(gomock.Any(), room.ID).Return(domain.RoomCapacity-1, nil)
	s.mockRoomRepo.EXPECT().UpdateRoomStatus(gomock.Any(), room.ID, domain.RoomStatusOpen).Return(nil)

	err := s.roomService.RemoveItem(context.Background(), room.ID, 10)
	s.NoError(err)
}

func (s *RoomServiceTestSuite) TestStartLive() {
	room := s.scheduledRoom()
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID).Return(room, nil)
	s.mockRoomRepo.EXPECT().UpdateAuctionStatus(gomock.Any(), room.ID, domain.RoomAuctionLive).Return(nil)

	s.mockPub.EXPECT().Publish(gomock.Any()).Do(func(event events.Event) {
		s.Equal(events.KindRoomState, event.Kind)
		payload, ok := event.Payload.(events.RoomState)
		s.Require().True(ok)
		s.Equal(string(domain.RoomAuctionLive), payload.AuctionStatus)
	})

	err := s.roomService.StartLive(context.Background(), room.ID)
	s.NoError(err)
}

// Запуск уже идущей комнаты отбивается без публикации события.
func (s *RoomServiceTestSuite) TestStartLiveWrongStatus() {
	room := s.scheduledRoom()
	room.AuctionStatus = domain.RoomAuctionLive
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID).Return(room, nil)

	err := s.roomService.StartLive(context.Background(), room.ID)
	s.ErrorIs(err, domain.ErrInvalidAuctionStatus)
}

func (s *RoomServiceTestSuite) TestEndLiveWrongStatus() {
	room := s.scheduledRoom()
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), room.ID).Return(room, nil)

	err := s.roomService.EndLive(context.Background(), room.ID)
	s.ErrorIs(err, domain.ErrInvalidAuctionStatus)
}

// Комната, запущенная кем-то между выборкой и блокировкой, не считается
// ошибкой прохода.
func (s *RoomServiceTestSuite) TestStartDueRooms() {
	scheduled := s.scheduledRoom()
	alreadyLive := s.scheduledRoom()
	alreadyLive.ID = 2
	alreadyLive.AuctionStatus = domain.RoomAuctionLive

	s.mockRoomRepo.EXPECT().FindDueScheduledIDs(gomock.Any(), gomock.Any()).Return([]int64{1, 2}, nil)
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(scheduled, nil)
	s.mockRoomRepo.EXPECT().UpdateAuctionStatus(gomock.Any(), int64(1), domain.RoomAuctionLive).Return(nil)
	s.mockRoomRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(2)).Return(alreadyLive, nil)

	s.mockPub.EXPECT().Publish(gomock.Any()).Times(1)

	started, err := s.roomService.StartDueRooms(context.Background())
	s.NoError(err)
	s.Equal(1, started)
}
