package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
)

// convertErr приводит ошибку к стандартному виду слоя репозитория.
// Особенности:
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound.
//   - Нарушение уникального индекса (23505) - в domain.ErrDuplicateKey.
//   - Все остальное - domain.ErrUnknown с оригинальным сообщением.
//
// Сервисный слой матчит результат через errors.Is.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		if isUniqueViolationErr(pgErr) {
			errType = domain.ErrDuplicateKey
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}
