package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

// WalletService реализует леджер кошельков: единственный мутабельный баланс
// на юзера плюс append-only аудит. Мутации выполняются только внутри
// транзакции вызывающей стороны (через uow.TX), чтобы изменение баланса
// коммитилось атомарно с породившим его бизнес-событием.
type WalletService struct {
	uow        uow.UOW
	walletRepo WalletRepository
}

func NewWalletService(u uow.UOW) (*WalletService, error) {
	rName := uow.RepositoryName(repoargs.WalletRepoName)
	walletRepo, repoErr := uow.GetRepositoryAs[WalletRepository](u, rName)
	if repoErr != nil {
		return nil, repoErr
	}
	return &WalletService{
		uow:        u,
		walletRepo: walletRepo,
	}, nil
}

// Increase пополняет баланс юзера на amount в рамках транзакции tx.
// Amount должен быть положительным.
func (w *WalletService) Increase(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount int64,
	reason domain.WalletReasonType,
) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("increasing wallet for user %d: %w", userID, domain.ErrInvalidAmount)
	}
	return w.adjust(ctx, tx, userID, amount, reason)
}

// Decrease списывает amount с баланса юзера в рамках транзакции tx. Это
// авторитетная проверка достаточности средств: при нехватке вернется
// domain.ErrInsufficientBalance и вся транзакция вызывающей стороны откатится.
func (w *WalletService) Decrease(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount int64,
	reason domain.WalletReasonType,
) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("decreasing wallet for user %d: %w", userID, domain.ErrInvalidAmount)
	}
	return w.adjust(ctx, tx, userID, -amount, reason)
}

// Balance возвращает баланс юзера через транзакцию tx. Кошелек, еще не
// созданный лениво, трактуется как нулевой баланс.
func (w *WalletService) Balance(ctx context.Context, tx uow.TX, userID int64) (int64, error) {
	repo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return 0, repoErr //nolint:wrapcheck
	}
	wallet, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err //nolint:wrapcheck
	}
	return wallet.Balance, nil
}

// GetBalance возвращает баланс юзера вне транзакции (для read-only запросов).
func (w *WalletService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	wallet, err := w.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err //nolint:wrapcheck
	}
	return wallet.Balance, nil
}

// HasSufficientBalance предварительная проверка достаточности средств.
// Результат сугубо совещательный: под конкуренцией правду знает только
// атомарный Decrease.
func (w *WalletService) HasSufficientBalance(ctx context.Context, userID int64, amount int64) (bool, error) {
	balance, err := w.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

// Entries возвращает аудиторский след кошелька.
func (w *WalletService) Entries(ctx context.Context, userID int64) ([]domain.WalletEntry, error) {
	entries, err := w.walletRepo.Entries(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}

func (w *WalletService) adjust(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	delta int64,
	reason domain.WalletReasonType,
) (*domain.Wallet, error) {
	repo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	wallet, err := repo.Adjust(ctx, repoargs.WalletAdjust{
		UserID: userID,
		Amount: delta,
		Reason: reason,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return wallet, nil
}
