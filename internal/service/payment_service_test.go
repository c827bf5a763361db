package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockPaymentRepo *mocks.MockPaymentRepository
	mockLedger      *mocks.MockWalletLedger
	mockGateway     *mocks.MockGateway
	mockPub         *eventmocks.MockPublisher
	paymentService  *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)
	s.mockLedger = mocks.NewMockWalletLedger(s.mockCtrl)
	s.mockGateway = mocks.NewMockGateway(s.mockCtrl)
	s.mockPub = eventmocks.NewMockPublisher(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	paymentService, servErr := NewPaymentService(s.mockUOW, s.mockLedger, s.mockGateway, s.mockPub, logrus.New())
	s.Require().NoError(servErr)
	s.paymentService = paymentService
}

func (s *PaymentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PaymentServiceTestSuite) payment(status domain.PaymentStatusType) *domain.Payment {
	return &domain.Payment{
		ID:      1,
		UserID:  42,
		OrderID: "order-1",
		Amount:  5000,
		Status:  status,
	}
}

func (s *PaymentServiceTestSuite) TestCreateIntent() {
	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.PaymentCreate) (*domain.Payment, error) {
			s.Equal(int64(42), args.UserID)
			s.Equal(int64(5000), args.Amount)
			// Идентификатор заказа - валидный uuid.
			_, parseErr := uuid.Parse(args.OrderID)
			s.NoError(parseErr)
			return &domain.Payment{
				ID:      1,
				UserID:  args.UserID,
				OrderID: args.OrderID,
				Amount:  args.Amount,
				Status:  domain.PaymentStatusPending,
			}, nil
		})

	payment, err := s.paymentService.CreateIntent(context.Background(), 42, 5000)
	s.NoError(err)
	s.Equal(domain.PaymentStatusPending, payment.Status)
}

func (s *PaymentServiceTestSuite) TestCreateIntentInvalidAmount() {
	_, err := s.paymentService.CreateIntent(context.Background(), 42, 0)
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *PaymentServiceTestSuite) TestLock() {
	payment := s.payment(domain.PaymentStatusPending)

	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockPaymentRepo.EXPECT().UpdateStatus(gomock.Any(), payment.ID, domain.PaymentStatusLocked).Return(nil)
	s.mockPub.EXPECT().Publish(gomock.Any()).Do(func(event events.Event) {
		s.Equal(events.KindPaymentState, event.Kind)
	})

	err := s.paymentService.Lock(context.Background(), payment.OrderID, payment.Amount)
	s.NoError(err)
}

// Повторный Lock уже заблокированного платежа отбивается: LOCKED берет
// только один из конкурентных колбэков.
func (s *PaymentServiceTestSuite) TestLockWrongStatus() {
	payment := s.payment(domain.PaymentStatusLocked)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)

	err := s.paymentService.Lock(context.Background(), payment.OrderID, payment.Amount)
	s.ErrorIs(err, domain.ErrNotPendingPayment)

	var transitionErr *domain.InvalidTransitionError
	s.ErrorAs(err, &transitionErr)
	s.Equal(domain.PaymentStatusLocked, transitionErr.From)
}

func (s *PaymentServiceTestSuite) TestLockAmountMismatch() {
	payment := s.payment(domain.PaymentStatusPending)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)

	err := s.paymentService.Lock(context.Background(), payment.OrderID, payment.Amount+1)
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *PaymentServiceTestSuite) TestConfirmAndCredit() {
	payment := s.payment(domain.PaymentStatusLocked)

	s.mockPaymentRepo.EXPECT().FindByOrderID(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().
		Confirm(gomock.Any(), "ext-key", payment.OrderID, payment.Amount).
		Return(&domain.GatewayConfirmation{Status: "DONE"}, nil)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockLedger.EXPECT().
		Increase(gomock.Any(), s.mockTX, payment.UserID, payment.Amount, domain.ReasonPaymentCredit).
		Return(&domain.Wallet{UserID: payment.UserID, Balance: payment.Amount}, nil)
	s.mockPaymentRepo.EXPECT().MarkSuccess(gomock.Any(), payment.ID, "ext-key").Return(nil)

	s.mockPub.EXPECT().Publish(gomock.Any()).Do(func(event events.Event) {
		payload, ok := event.Payload.(events.PaymentState)
		s.Require().True(ok)
		s.Equal(string(domain.PaymentStatusSuccess), payload.Status)
	})

	err := s.paymentService.ConfirmAndCredit(context.Background(), payment.OrderID, "ext-key", payment.Amount)
	s.NoError(err)
}

// Повторный confirm уже успешного платежа отбивается до обращения к шлюзу:
// двойного зачисления не бывает.
func (s *PaymentServiceTestSuite) TestConfirmAlreadySuccess() {
	payment := s.payment(domain.PaymentStatusSuccess)
	s.mockPaymentRepo.EXPECT().FindByOrderID(gomock.Any(), payment.OrderID).Return(payment, nil)

	err := s.paymentService.ConfirmAndCredit(context.Background(), payment.OrderID, "ext-key", payment.Amount)
	s.ErrorIs(err, domain.ErrNotPendingPayment)
}

// Отказ шлюза переводит платеж в FAILED, ошибка отдается вызывающему.
func (s *PaymentServiceTestSuite) TestConfirmGatewayFailure() {
	payment := s.payment(domain.PaymentStatusLocked)
	gatewayErr := errors.New("gateway status CANCELED")

	s.mockPaymentRepo.EXPECT().FindByOrderID(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().
		Confirm(gomock.Any(), "ext-key", payment.OrderID, payment.Amount).
		Return(nil, gatewayErr)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockPaymentRepo.EXPECT().UpdateStatus(gomock.Any(), payment.ID, domain.PaymentStatusFailed).Return(nil)

	s.mockPub.EXPECT().Publish(gomock.Any()).Do(func(event events.Event) {
		payload, ok := event.Payload.(events.PaymentState)
		s.Require().True(ok)
		s.Equal(string(domain.PaymentStatusFailed), payload.Status)
	})

	err := s.paymentService.ConfirmAndCredit(context.Background(), payment.OrderID, "ext-key", payment.Amount)
	s.ErrorIs(err, gatewayErr)
}

// Сбой зачисления после одобрения шлюзом: платеж уходит в CANCEL_PENDING,
// чтобы ретраи отмены развернули внешнее списание.
func (s *PaymentServiceTestSuite) TestConfirmCreditFailure() {
	payment := s.payment(domain.PaymentStatusLocked)
	creditErr := errors.New("connection reset")

	s.mockPaymentRepo.EXPECT().FindByOrderID(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().
		Confirm(gomock.Any(), "ext-key", payment.OrderID, payment.Amount).
		Return(&domain.GatewayConfirmation{Status: "DONE"}, nil)
	// Первая блокировка - транзакция зачисления, вторая - перевод в CANCEL_PENDING.
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil).Times(2)
	s.mockLedger.EXPECT().
		Increase(gomock.Any(), s.mockTX, payment.UserID, payment.Amount, domain.ReasonPaymentCredit).
		Return(nil, creditErr)
	s.mockPaymentRepo.EXPECT().MarkCancelPending(gomock.Any(), payment.ID, "ext-key").Return(nil)

	s.mockPub.EXPECT().Publish(gomock.Any()).Do(func(event events.Event) {
		payload, ok := event.Payload.(events.PaymentState)
		s.Require().True(ok)
		s.Equal(string(domain.PaymentStatusCancelPending), payload.Status)
	})

	err := s.paymentService.ConfirmAndCredit(context.Background(), payment.OrderID, "ext-key", payment.Amount)
	s.ErrorIs(err, creditErr)
}

// Гонка двух confirm: проигравший прошел нестрогую предпроверку и дернул шлюз,
// но под блокировкой платеж уже SUCCESS - зачисление состоялось у победителя.
// Проигравший выходит с ошибкой, не трогая платеж: ни CANCEL_PENDING
// (иначе ретраи отменят во внешнем шлюзе уже зачисленные деньги), ни событий.
func (s *PaymentServiceTestSuite) TestConfirmRaceAlreadyCredited() {
	payment := s.payment(domain.PaymentStatusLocked)
	credited := s.payment(domain.PaymentStatusSuccess)

	s.mockPaymentRepo.EXPECT().FindByOrderID(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().
		Confirm(gomock.Any(), "ext-key", payment.OrderID, payment.Amount).
		Return(&domain.GatewayConfirmation{Status: "DONE"}, nil)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(credited, nil)

	err := s.paymentService.ConfirmAndCredit(context.Background(), payment.OrderID, "ext-key", payment.Amount)
	s.ErrorIs(err, domain.ErrNotPendingPayment)
}

// Перевод в FAILED не состоялся (статус под блокировкой уже не LOCKED) -
// событие о FAILED не публикуется: наружу не уходит состояние, которого
// строка не достигала.
func (s *PaymentServiceTestSuite) TestConfirmGatewayFailureMarkSkipped() {
	payment := s.payment(domain.PaymentStatusLocked)
	gatewayErr := errors.New("gateway status CANCELED")

	s.mockPaymentRepo.EXPECT().FindByOrderID(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().
		Confirm(gomock.Any(), "ext-key", payment.OrderID, payment.Amount).
		Return(nil, gatewayErr)
	s.mockPaymentRepo.EXPECT().
		FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).
		Return(s.payment(domain.PaymentStatusFailed), nil)

	err := s.paymentService.ConfirmAndCredit(context.Background(), payment.OrderID, "ext-key", payment.Amount)
	s.ErrorIs(err, gatewayErr)
}

func (s *PaymentServiceTestSuite) cancelPending(attempts int) *domain.Payment {
	extKey := "ext-key"
	payment := s.payment(domain.PaymentStatusCancelPending)
	payment.ExternalKey = &extKey
	payment.CancelAttempts = attempts
	return payment
}

func (s *PaymentServiceTestSuite) TestRetryCancelSucceeds() {
	payment := s.cancelPending(1)

	s.mockPaymentRepo.EXPECT().FindCancelRetryDue(gomock.Any(), uint(50)).Return([]string{payment.OrderID}, nil)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().Cancel(gomock.Any(), "ext-key", gomock.Any()).Return(nil)
	s.mockPaymentRepo.EXPECT().UpdateStatus(gomock.Any(), payment.ID, domain.PaymentStatusCanceled).Return(nil)
	s.mockPub.EXPECT().Publish(gomock.Any()).Times(1)

	settled, err := s.paymentService.ProcessCancelRetries(context.Background(), 50)
	s.NoError(err)
	s.Equal(1, settled)
}

// Неудачная попытка до исчерпания лимита планирует следующий ретрай по
// расписанию пауз.
func (s *PaymentServiceTestSuite) TestRetryCancelSchedulesNext() {
	payment := s.cancelPending(0)

	s.mockPaymentRepo.EXPECT().FindCancelRetryDue(gomock.Any(), uint(50)).Return([]string{payment.OrderID}, nil)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().Cancel(gomock.Any(), "ext-key", gomock.Any()).Return(errors.New("gateway 5xx"))
	s.mockPaymentRepo.EXPECT().
		ScheduleCancelRetry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CancelRetryUpdate) error {
			s.Equal(payment.ID, args.PaymentID)
			s.Equal(1, args.Attempts)
			s.WithinDuration(time.Now().Add(30*time.Second), args.NextRetryAt, 2*time.Second)
			return nil
		})
	s.mockPub.EXPECT().Publish(gomock.Any()).Times(1)

	settled, err := s.paymentService.ProcessCancelRetries(context.Background(), 50)
	s.NoError(err)
	s.Equal(0, settled)
}

// Четвертая неудачная попытка терминальна: CANCEL_FAIL, дальше оператор.
func (s *PaymentServiceTestSuite) TestRetryCancelTerminalFailure() {
	payment := s.cancelPending(3)

	s.mockPaymentRepo.EXPECT().FindCancelRetryDue(gomock.Any(), uint(50)).Return([]string{payment.OrderID}, nil)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)
	s.mockGateway.EXPECT().Cancel(gomock.Any(), "ext-key", gomock.Any()).Return(errors.New("gateway 5xx"))
	s.mockPaymentRepo.EXPECT().UpdateStatus(gomock.Any(), payment.ID, domain.PaymentStatusCancelFail).Return(nil)
	s.mockPub.EXPECT().Publish(gomock.Any()).Do(func(event events.Event) {
		payload, ok := event.Payload.(events.PaymentState)
		s.Require().True(ok)
		s.Equal(string(domain.PaymentStatusCancelFail), payload.Status)
	})

	settled, err := s.paymentService.ProcessCancelRetries(context.Background(), 50)
	s.NoError(err)
	s.Equal(1, settled)
}

// Платеж, до срока ретрая которого еще не дошло, пропускается без вызова шлюза.
func (s *PaymentServiceTestSuite) TestRetryCancelNotDueYet() {
	payment := s.cancelPending(1)
	nextRetry := time.Now().Add(time.Minute)
	payment.NextRetryAt = &nextRetry

	s.mockPaymentRepo.EXPECT().FindCancelRetryDue(gomock.Any(), uint(50)).Return([]string{payment.OrderID}, nil)
	s.mockPaymentRepo.EXPECT().FindByOrderIDForUpdate(gomock.Any(), payment.OrderID).Return(payment, nil)

	settled, err := s.paymentService.ProcessCancelRetries(context.Background(), 50)
	s.NoError(err)
	s.Equal(0, settled)
}

// Расписание пауз между попытками отмены.
func (s *PaymentServiceTestSuite) TestCancelBackoffSchedule() {
	s.Equal(30*time.Second, cancelBackoff(1))
	s.Equal(120*time.Second, cancelBackoff(2))
	s.Equal(300*time.Second, cancelBackoff(3))
}
