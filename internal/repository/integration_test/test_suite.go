package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"orders/internal/pkg/config"
	pgpool "orders/internal/pkg/postgres"
	"orders/migrations"
	"orders/pkg/logger/zap_adapter"
	"orders/pkg/querier"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier поднимает Postgres один раз на пакет тестов. Если POSTGRES_HOST
// задан (например, Makefile подгрузил .env.test), контейнер не запускается.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		cfg := databaseFromEnv()
		if cfg.Host == "" {
			cfg = startContainer(ctx)
		}

		connPool, err := pgpool.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := migrations.Up(ctx, connPool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func databaseFromEnv() *config.Database {
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func startContainer(ctx context.Context) *config.Database {
	container, err := postgres.Run(
		ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("orders_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to get postgres container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to get postgres container port: %v", err)
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     "test_user",
		Password: "test_password",
		DBName:   "orders_test",
		SSLMode:  "disable",
	}
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

// TeardownDB чистит данные заказов, справочники статусов и сообщений
// остаются как после миграций.
func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_logs, order_products, order_customers, orders, shop_products CASCADE;
	`)
	require.NoError(t, err)
}

// Фикстура заказа O1: статус new, один покупатель, одна позиция amount=2 price=100,
// остаток товара 3.
const (
	StatusNewID      = "6a1d9c2e-0000-4000-8000-000000000001"
	StatusConfirmID  = "6a1d9c2e-0000-4000-8000-000000000002"
	StatusCanceledID = "6a1d9c2e-0000-4000-8000-000000000004"

	OrderID        = "7c0e1a52-0000-4000-8000-000000000001"
	OrderProductID = "7c0e1a52-0000-4000-8000-000000000002"
	ShopProductID  = "7c0e1a52-0000-4000-8000-000000000003"
	CustomerID     = "7c0e1a52-0000-4000-8000-000000000004"
	ShopID         = "7c0e1a52-0000-4000-8000-000000000005"
	CompanyID      = "7c0e1a52-0000-4000-8000-000000000006"
)

const OrderFixtureSQL = `
	INSERT INTO shop_products (id, available) VALUES ('` + ShopProductID + `', 3);

	INSERT INTO orders (id, item_id, shop_id, company_id, customer_id, status_id, total_price, created_at, updated_at)
	VALUES ('` + OrderID + `', 1001, '` + ShopID + `', '` + CompanyID + `', '` + CustomerID + `', '` + StatusNewID + `', 200,
		'2026-01-15 11:00:00', '2026-01-15 11:00:00');

	INSERT INTO order_customers (id, order_id, name, last_name, email, phone)
	VALUES ('` + CustomerID + `', '` + OrderID + `', 'Анна', 'Смирнова', 'anna@example.com', '+79990000000');

	INSERT INTO order_products (id, order_id, shop_product_id, status_id, amount, price, total_price, created_at, updated_at)
	VALUES ('` + OrderProductID + `', '` + OrderID + `', '` + ShopProductID + `', '` + StatusNewID + `', 2, 100, 200,
		'2026-01-15 11:00:00', '2026-01-15 11:00:00');

	INSERT INTO order_logs (order_id, prev_status_id, status_id, variant)
	VALUES ('` + OrderID + `', '` + StatusNewID + `', '` + StatusNewID + `', 'status');
`
