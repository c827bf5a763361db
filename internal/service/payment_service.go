package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/events"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

// maxCancelAttempts после скольких неудачных попыток отмена признается
// безнадежной (CANCEL_FAIL) и уходит оператору.
const maxCancelAttempts = 4

// PaymentService реконсилиатор платежей: подтверждает одобренные шлюзом
// платежи в зачисления на кошелек и гоняет state machine ретраев отмены,
// когда одобренный платеж нужно развернуть.
//
// Переходы: PENDING -> LOCKED -> SUCCESS; PENDING -> FAILED;
// SUCCESS -> CANCEL_PENDING -> CANCELED | CANCEL_FAIL.
type PaymentService struct {
	uow         uow.UOW
	paymentRepo PaymentRepository
	wallet      WalletLedger
	gateway     Gateway
	pub         events.Publisher
	l           *logrus.Entry
}

func NewPaymentService(
	u uow.UOW,
	wallet WalletLedger,
	gateway Gateway,
	pub events.Publisher,
	l *logrus.Logger,
) (*PaymentService, error) {
	rName := uow.RepositoryName(repoargs.PaymentRepoName)
	paymentRepo, repoErr := uow.GetRepositoryAs[PaymentRepository](u, rName)
	if repoErr != nil {
		return nil, repoErr
	}
	return &PaymentService{
		uow:         u,
		paymentRepo: paymentRepo,
		wallet:      wallet,
		gateway:     gateway,
		pub:         pub,
		l:           l.WithField("component", "payment_service"),
	}, nil
}

// CreateIntent создает намерение платежа в статусе PENDING с уникальным
// идентификатором заказа. Сумма после создания неизменяема.
func (s *PaymentService) CreateIntent(ctx context.Context, userID, amount int64) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("creating payment intent: %w", domain.ErrInvalidAmount)
	}
	payment, err := s.paymentRepo.Create(ctx, repoargs.PaymentCreate{
		UserID:  userID,
		OrderID: uuid.NewString(),
		Amount:  amount,
	})
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}
	return payment, nil
}

// Lock переводит платеж PENDING -> LOCKED при точном совпадении суммы.
// Блокировка существует ровно затем, чтобы два конкурентных confirm-колбэка
// не зачислили кошелек дважды по одному заказу: LOCKED возьмет только один.
func (s *PaymentService) Lock(ctx context.Context, orderID string, amount int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		payment, findErr := repo.FindByOrderIDForUpdate(c, orderID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if payment.Status != domain.PaymentStatusPending {
			return domain.NewInvalidTransitionError(orderID, payment.Status, domain.PaymentStatusLocked)
		}
		if payment.Amount != amount {
			return fmt.Errorf("%w: expected %d, got %d", domain.ErrInvalidAmount, payment.Amount, amount)
		}
		return repo.UpdateStatus(c, payment.ID, domain.PaymentStatusLocked) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("locking payment %s: %w", orderID, txErr)
	}

	s.publishState(orderID, domain.PaymentStatusLocked)
	return nil
}

// ConfirmAndCredit подтверждает платеж во внешнем шлюзе и зачисляет сумму на
// кошелек владельца.
//
// Алгоритм работы:
//  1. Предварительная проверка: платеж LOCKED и сумма совпадает. Без этого не
//     дергаем шлюз зря; повторный confirm уже успешного платежа отбивается
//     здесь же, без двойного зачисления.
//  2. Вызов шлюза. Любой не-успех - платеж помечается FAILED и ошибка
//     отдается вызывающему; молчаливого успеха не бывает.
//  3. Одна транзакция: перепроверка LOCKED под блокировкой строки, зачисление
//     кошелька и переход в SUCCESS.
//  4. Если шаг 3 упал уже после одобрения шлюзом - платеж уходит в
//     CANCEL_PENDING, чтобы ретраи отмены развернули внешнее списание. Деньги
//     не зависают: либо SUCCESS с зачислением, либо отмена. Исключение -
//     гонка двух confirm: проигравший видит под блокировкой уже не LOCKED
//     статус и выходит с ошибкой, не трогая зачисленный платеж.
func (s *PaymentService) ConfirmAndCredit(ctx context.Context, orderID, externalKey string, amount int64) error {
	payment, findErr := s.paymentRepo.FindByOrderID(ctx, orderID)
	if findErr != nil {
		return fmt.Errorf("confirming payment %s: %w", orderID, findErr)
	}
	if payment.Status != domain.PaymentStatusLocked {
		return fmt.Errorf("confirming payment %s: %w",
			orderID, domain.NewInvalidTransitionError(orderID, payment.Status, domain.PaymentStatusSuccess))
	}
	if payment.Amount != amount {
		return fmt.Errorf("confirming payment %s: %w: expected %d, got %d",
			orderID, domain.ErrInvalidAmount, payment.Amount, amount)
	}

	if _, confirmErr := s.gateway.Confirm(ctx, externalKey, orderID, amount); confirmErr != nil {
		failed, failErr := s.markFailed(ctx, orderID)
		if failErr != nil {
			s.l.WithError(failErr).WithField("orderID", orderID).Error("mark payment failed")
		}
		// Событие уходит только когда строка реально перешла в FAILED.
		if failed {
			s.publishState(orderID, domain.PaymentStatusFailed)
		}
		return fmt.Errorf("confirming payment %s: %w", orderID, confirmErr)
	}

	creditErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		locked, lockErr := repo.FindByOrderIDForUpdate(c, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status != domain.PaymentStatusLocked {
			return domain.NewInvalidTransitionError(orderID, locked.Status, domain.PaymentStatusSuccess)
		}

		if _, incErr := s.wallet.Increase(
			c, tx, locked.UserID, locked.Amount, domain.ReasonPaymentCredit,
		); incErr != nil {
			return incErr //nolint:wrapcheck
		}
		return repo.MarkSuccess(c, locked.ID, externalKey) //nolint:wrapcheck
	})
	if creditErr != nil {
		// Конкурентный confirm успел зачислить платеж: строка уже SUCCESS,
		// кошелек пополнен, компенсировать нечего.
		if errors.Is(creditErr, domain.ErrNotPendingPayment) {
			return fmt.Errorf("crediting payment %s: %w", orderID, creditErr)
		}
		// Шлюз уже одобрил списание. Оставить платеж SUCCESS без зачисления
		// нельзя - переводим в CANCEL_PENDING, дальше разберутся ретраи.
		moved, cpErr := s.markCancelPending(ctx, orderID, externalKey)
		if cpErr != nil {
			s.l.WithError(cpErr).WithField("orderID", orderID).Error("mark payment cancel pending")
		}
		if moved {
			s.publishState(orderID, domain.PaymentStatusCancelPending)
		}
		return fmt.Errorf("crediting payment %s: %w", orderID, creditErr)
	}

	s.publishState(orderID, domain.PaymentStatusSuccess)
	return nil
}

// ProcessCancelRetries прогоняет назревшие ретраи отмены. Каждый платеж
// обрабатывается в собственной транзакции: сбой одного не блокирует
// остальные. Возвращает число платежей, дошедших до терминального статуса.
func (s *PaymentService) ProcessCancelRetries(ctx context.Context, limit uint) (int, error) {
	orderIDs, dueErr := s.paymentRepo.FindCancelRetryDue(ctx, limit)
	if dueErr != nil {
		return 0, fmt.Errorf("processing cancel retries: %w", dueErr)
	}

	var settled int
	for _, orderID := range orderIDs {
		terminal, retryErr := s.retryCancel(ctx, orderID)
		if retryErr != nil {
			s.l.WithError(retryErr).WithField("orderID", orderID).Error("cancel retry")
			continue
		}
		if terminal {
			settled++
		}
	}
	return settled, nil
}

// retryCancel одна попытка отмены платежа. Строка платежа перечитывается под
// блокировкой и условия перепроверяются: платеж мог быть отменен конкурентным
// проходом, пока этот ждал блокировку. Возвращает true, если платеж дошел до
// терминального статуса (CANCELED или CANCEL_FAIL).
func (s *PaymentService) retryCancel(ctx context.Context, orderID string) (bool, error) {
	var terminal bool
	var resultStatus domain.PaymentStatusType

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		payment, findErr := repo.FindByOrderIDForUpdate(c, orderID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if payment.Status != domain.PaymentStatusCancelPending {
			return nil
		}
		if payment.NextRetryAt != nil && payment.NextRetryAt.After(time.Now()) {
			return nil
		}

		var externalKey string
		if payment.ExternalKey != nil {
			externalKey = *payment.ExternalKey
		}

		cancelErr := s.gateway.Cancel(c, externalKey, "settlement reconciliation")
		if cancelErr == nil {
			terminal = true
			resultStatus = domain.PaymentStatusCanceled
			return repo.UpdateStatus(c, payment.ID, domain.PaymentStatusCanceled) //nolint:wrapcheck
		}

		attempts := payment.CancelAttempts + 1
		if attempts >= maxCancelAttempts {
			// Терминальный провал: автоматика исчерпана, дальше только
			// ручное вмешательство оператора.
			s.l.WithFields(logrus.Fields{
				"orderID":  orderID,
				"attempts": attempts,
			}).WithError(cancelErr).Error("payment cancel failed permanently, operator action required")
			terminal = true
			resultStatus = domain.PaymentStatusCancelFail
			return repo.UpdateStatus(c, payment.ID, domain.PaymentStatusCancelFail) //nolint:wrapcheck
		}

		s.l.WithFields(logrus.Fields{
			"orderID":  orderID,
			"attempts": attempts,
		}).WithError(cancelErr).Warn("payment cancel failed, scheduling retry")
		resultStatus = domain.PaymentStatusCancelPending
		return repo.ScheduleCancelRetry(c, repoargs.CancelRetryUpdate{ //nolint:wrapcheck
			PaymentID:   payment.ID,
			Attempts:    attempts,
			NextRetryAt: time.Now().Add(cancelBackoff(attempts)),
		})
	})
	if txErr != nil {
		return false, txErr
	}

	if resultStatus != "" {
		s.publishState(orderID, resultStatus)
	}
	return terminal, nil
}

// cancelBackoff пауза перед следующей попыткой отмены. Ветка default
// недостижима при maxCancelAttempts = 4, но оставлена как страховочный
// контракт расписания.
func cancelBackoff(attempt int) time.Duration {
	switch attempt {
	case 1:
		return 30 * time.Second
	case 2:
		return 120 * time.Second
	case 3:
		return 300 * time.Second
	default:
		return 120 * time.Second
	}
}

// markFailed переводит платеж LOCKED -> FAILED. Возвращает true только если
// переход реально произошел: под блокировкой статус перепроверяется, чужие
// статусы не трогаются.
func (s *PaymentService) markFailed(ctx context.Context, orderID string) (bool, error) {
	var changed bool
	doErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		payment, findErr := repo.FindByOrderIDForUpdate(c, orderID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if payment.Status != domain.PaymentStatusLocked {
			return nil
		}
		if updErr := repo.UpdateStatus(c, payment.ID, domain.PaymentStatusFailed); updErr != nil {
			return updErr //nolint:wrapcheck
		}
		changed = true
		return nil
	})
	return changed, doErr //nolint:wrapcheck
}

// markCancelPending переводит платеж LOCKED -> CANCEL_PENDING. Переход только
// из LOCKED: уже зачисленный SUCCESS в движок отмен не попадает.
func (s *PaymentService) markCancelPending(ctx context.Context, orderID, externalKey string) (bool, error) {
	var changed bool
	doErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		payment, findErr := repo.FindByOrderIDForUpdate(c, orderID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if payment.Status != domain.PaymentStatusLocked {
			return nil
		}
		if markErr := repo.MarkCancelPending(c, payment.ID, externalKey); markErr != nil {
			return markErr //nolint:wrapcheck
		}
		changed = true
		return nil
	})
	return changed, doErr //nolint:wrapcheck
}

func (s *PaymentService) publishState(orderID string, status domain.PaymentStatusType) {
	s.pub.Publish(events.Event{Kind: events.KindPaymentState, Payload: events.PaymentState{
		OrderID: orderID,
		Status:  string(status),
	}})
}
