//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=messages_refresh_test
package messages_refresh

import (
	"context"

	"orders/pkg/logger"
)

type Catalogue interface {
	Refresh(ctx context.Context) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}
