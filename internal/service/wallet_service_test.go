package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/internal/service/mocks"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-auction/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockWalletRepo *mocks.MockWalletRepository
	walletService  *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()

	walletService, servErr := NewWalletService(s.mockUOW)
	s.Require().NoError(servErr)
	s.walletService = walletService
}

func (s *WalletServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WalletServiceTestSuite) TestDecrease() {
	var userID int64 = 10

	s.mockWalletRepo.EXPECT().
		Adjust(gomock.Any(), repoargs.WalletAdjust{
			UserID: userID,
			Amount: -500,
			Reason: domain.ReasonBidLock,
		}).
		Return(&domain.Wallet{UserID: userID, Balance: 1500}, nil)

	wallet, err := s.walletService.Decrease(context.Background(), s.mockTX, userID, 500, domain.ReasonBidLock)
	s.NoError(err)
	s.Equal(int64(1500), wallet.Balance)
}

func (s *WalletServiceTestSuite) TestIncrease() {
	var userID int64 = 10

	s.mockWalletRepo.EXPECT().
		Adjust(gomock.Any(), repoargs.WalletAdjust{
			UserID: userID,
			Amount: 12000,
			Reason: domain.ReasonBidRefund,
		}).
		Return(&domain.Wallet{UserID: userID, Balance: 12000}, nil)

	wallet, err := s.walletService.Increase(context.Background(), s.mockTX, userID, 12000, domain.ReasonBidRefund)
	s.NoError(err)
	s.Equal(int64(12000), wallet.Balance)
}

// Нулевые и отрицательные суммы отбиваются до обращения к репозиторию.
func (s *WalletServiceTestSuite) TestInvalidAmount() {
	_, incErr := s.walletService.Increase(context.Background(), s.mockTX, 1, 0, domain.ReasonBidRefund)
	s.ErrorIs(incErr, domain.ErrInvalidAmount)

	_, decErr := s.walletService.Decrease(context.Background(), s.mockTX, 1, -5, domain.ReasonBidLock)
	s.ErrorIs(decErr, domain.ErrInvalidAmount)
}

func (s *WalletServiceTestSuite) TestDecreaseInsufficient() {
	s.mockWalletRepo.EXPECT().
		Adjust(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInsufficientBalance)

	_, err := s.walletService.Decrease(context.Background(), s.mockTX, 1, 999, domain.ReasonBidLock)
	s.ErrorIs(err, domain.ErrInsufficientBalance)
}

// Кошелек создается лениво: пока его нет, баланс считается нулевым.
func (s *WalletServiceTestSuite) TestBalanceMissingWallet() {
	s.mockWalletRepo.EXPECT().
		GetByUserID(gomock.Any(), int64(42)).
		Return(nil, domain.ErrRecordNotFound)

	balance, err := s.walletService.Balance(context.Background(), s.mockTX, 42)
	s.NoError(err)
	s.Equal(int64(0), balance)
}

func (s *WalletServiceTestSuite) TestGetBalance() {
	s.mockWalletRepo.EXPECT().
		GetByUserID(gomock.Any(), int64(42)).
		Return(&domain.Wallet{UserID: 42, Balance: 7000}, nil)

	balance, err := s.walletService.GetBalance(context.Background(), 42)
	s.NoError(err)
	s.Equal(int64(7000), balance)
}

func (s *WalletServiceTestSuite) TestHasSufficientBalance() {
	s.mockWalletRepo.EXPECT().
		GetByUserID(gomock.Any(), int64(42)).
		Return(&domain.Wallet{UserID: 42, Balance: 7000}, nil).
		Times(2)

	ok, err := s.walletService.HasSufficientBalance(context.Background(), 42, 7000)
	s.NoError(err)
	s.True(ok)

	ok, err = s.walletService.HasSufficientBalance(context.Background(), 42, 7001)
	s.NoError(err)
	s.False(ok)
}

func (s *WalletServiceTestSuite) TestEntries() {
	entries := []domain.WalletEntry{
		{UserID: 42, Amount: 5000, BalanceBefore: 0, BalanceAfter: 5000, Reason: domain.ReasonPaymentCredit},
		{UserID: 42, Amount: -3000, BalanceBefore: 5000, BalanceAfter: 2000, Reason: domain.ReasonBidLock},
	}

	s.mockWalletRepo.EXPECT().
		Entries(gomock.Any(), int64(42)).
		Return(entries, nil)

	got, err := s.walletService.Entries(context.Background(), 42)
	s.NoError(err)
	s.Len(got, 2)
	s.Equal(entries, got)
}
