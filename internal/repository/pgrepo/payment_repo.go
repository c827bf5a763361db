package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

type PaymentRepository struct {
	db uow.DBTX
}

func NewPaymentRepository(db uow.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, created_at, updated_at, user_id, order_id, external_key,
	amount, status, cancel_attempts, next_retry_at`

func (r *PaymentRepository) Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO payments (user_id, order_id, amount, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+paymentColumns,
		args.UserID, args.OrderID, args.Amount, string(domain.PaymentStatusPending),
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment %s", args.OrderID)
	}
	return payment, nil
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment %s", orderID)
	}
	return payment, nil
}

// FindByOrderIDForUpdate берет блокировку строки платежа. Через нее
// сериализуются конкурентные confirm-колбэки и проходы ретраев отмены.
func (r *PaymentRepository) FindByOrderIDForUpdate(ctx context.Context, orderID string) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 FOR UPDATE`, orderID)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "locking payment %s", orderID)
	}
	return payment, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatusType) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE payments SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	); err != nil {
		return convertErr(err, "updating status for payment %d", id)
	}
	return nil
}

// MarkSuccess фиксирует успешное подтверждение: статус SUCCESS и ключ
// внешнего шлюза одним запросом.
func (r *PaymentRepository) MarkSuccess(ctx context.Context, id int64, externalKey string) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE payments SET status = $2, external_key = $3, updated_at = now() WHERE id = $1`,
		id, string(domain.PaymentStatusSuccess), externalKey,
	); err != nil {
		return convertErr(err, "marking payment %d success", id)
	}
	return nil
}

// ScheduleCancelRetry оставляет платеж в CANCEL_PENDING, увеличивая счетчик
// попыток и назначая время следующей попытки.
func (r *PaymentRepository) ScheduleCancelRetry(ctx context.Context, args repoargs.CancelRetryUpdate) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE payments SET status = $2, cancel_attempts = $3, next_retry_at = $4, updated_at = now()
		 WHERE id = $1`,
		args.PaymentID, string(domain.PaymentStatusCancelPending), args.Attempts, args.NextRetryAt,
	); err != nil {
		return convertErr(err, "scheduling cancel retry for payment %d", args.PaymentID)
	}
	return nil
}

// FindCancelRetryDue возвращает order_id платежей в CANCEL_PENDING, чье время
// следующей попытки прошло или не назначено.
func (r *PaymentRepository) FindCancelRetryDue(ctx context.Context, limit uint) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT order_id FROM payments
		 WHERE status = $1 AND (next_retry_at IS NULL OR next_retry_at <= now())
		 ORDER BY updated_at LIMIT $2`,
		string(domain.PaymentStatusCancelPending), int64(limit))
	if err != nil {
		return nil, convertErr(err, "finding due cancel retries")
	}
	defer rows.Close()

	var orderIDs []string
	for rows.Next() {
		var orderID string
		if scanErr := rows.Scan(&orderID); scanErr != nil {
			return nil, convertErr(scanErr, "scanning due payment order id")
		}
		orderIDs = append(orderIDs, orderID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding due cancel retries")
	}
	return orderIDs, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	var status string
	if err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.UserID, &p.OrderID, &p.ExternalKey,
		&p.Amount, &status, &p.CancelAttempts, &p.NextRetryAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	p.Status = domain.PaymentStatusType(status)
	return &p, nil
}

// MarkCancelPending переводит платеж в CANCEL_PENDING с обнулением счетчика
// попыток; ключ шлюза сохраняется для последующих вызовов отмены.
func (r *PaymentRepository) MarkCancelPending(ctx context.Context, id int64, externalKey string) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE payments SET status = $2, external_key = $3, cancel_attempts = 0,
		        next_retry_at = NULL, updated_at = now()
		 WHERE id = $1`,
		id, string(domain.PaymentStatusCancelPending), externalKey,
	); err != nil {
		return convertErr(err, "marking payment %d cancel pending", id)
	}
	return nil
}
