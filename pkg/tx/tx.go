package tx

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgErrSerializationFailure = "40001"

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
	retrier  retrier
}

type Option func(*Manager)

// WithRetrier повторяет транзакцию целиком, если Postgres откатил её
// из-за конфликта сериализации. Остальные ошибки не ретраятся.
func WithRetrier(r retrier) Option {
	return func(m *Manager) {
		m.retrier = r
	}
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)

	if m.retrier == nil {
		return m.internal.DoWithSettings(ctx, txSettings, fn)
	}

	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.internal.DoWithSettings(ctx, txSettings, fn)
	})
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
}

// IsSerializationFailure подходит как ShouldRetry для retrier.Config.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure
	}
	return false
}
