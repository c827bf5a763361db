package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

type WalletRepository struct {
	db uow.DBTX
}

func NewWalletRepository(db uow.DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

const walletColumns = `id, created_at, updated_at, user_id, balance`

func (w *WalletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := w.db.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "getting wallet for user %d", userID)
	}
	return wallet, nil
}

// Adjust атомарно меняет баланс и пишет запись аудита в той же транзакции.
// Amount со знаком. Guard `balance + delta >= 0` в самом UPDATE - это
// авторитетная проверка достаточности средств: если условие не выполнено,
// строка не обновляется и возвращается domain.ErrInsufficientBalance.
// Кошелек создается лениво при первом обращении.
func (w *WalletRepository) Adjust(ctx context.Context, args repoargs.WalletAdjust) (*domain.Wallet, error) {
	if _, err := w.db.Exec(ctx,
		`INSERT INTO wallets (user_id, balance) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING`,
		args.UserID,
	); err != nil {
		return nil, convertErr(err, "ensuring wallet for user %d", args.UserID)
	}

	row := w.db.QueryRow(ctx,
		`UPDATE wallets SET balance = balance + $2, updated_at = now()
		 WHERE user_id = $1 AND balance + $2 >= 0
		 RETURNING `+walletColumns,
		args.UserID, args.Amount,
	)
	wallet, scanErr := scanWallet(row)
	if scanErr != nil {
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return nil, fmt.Errorf(
				"[repository/adjusting wallet for user %d] %w", args.UserID, domain.ErrInsufficientBalance)
		}
		return nil, convertErr(scanErr, "adjusting wallet for user %d", args.UserID)
	}

	if _, err := w.db.Exec(ctx,
		`INSERT INTO wallet_entries (wallet_id, user_id, amount, balance_before, balance_after, reason)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		wallet.ID, args.UserID, args.Amount, wallet.Balance-args.Amount, wallet.Balance, string(args.Reason),
	); err != nil {
		return nil, convertErr(err, "writing wallet entry for user %d", args.UserID)
	}

	return wallet, nil
}

// Entries возвращает записи аудита кошелька по убыванию даты создания.
func (w *WalletRepository) Entries(ctx context.Context, userID int64) ([]domain.WalletEntry, error) {
	rows, err := w.db.Query(ctx,
		`SELECT id, created_at, wallet_id, user_id, amount, balance_before, balance_after, reason
		 FROM wallet_entries WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting wallet entries for user %d", userID)
	}
	defer rows.Close()

	var entries []domain.WalletEntry
	for rows.Next() {
		var e domain.WalletEntry
		var reason string
		if scanErr := rows.Scan(
			&e.ID, &e.CreatedAt, &e.WalletID, &e.UserID,
			&e.Amount, &e.BalanceBefore, &e.BalanceAfter, &reason,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning wallet entry for user %d", userID)
		}
		e.Reason = domain.WalletReasonType(reason)
		entries = append(entries, e)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting wallet entries for user %d", userID)
	}
	return entries, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.UserID, &w.Balance); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}
