package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	connectMaxAttempts   uint = 30
	connectRetryInterval      = 3 * time.Second
)

// Connect подключается к postgres с ретраями (БД может подниматься дольше
// приложения) и накатывает миграции.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	var attempts uint

	var conn *pgxpool.Pool
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("init postgres connection: %w", ctxErr)
		}

		pool, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			conn = pool
			break
		}

		attempts++
		if attempts > connectMaxAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", connectMaxAttempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, connectMaxAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", connectRetryInterval.Seconds())
		time.Sleep(connectRetryInterval)
	}

	if err := postgresMigrate(migrationsDir, dsn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
