//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=messages_test
package messages

import (
	"context"

	"orders/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Message, error)
}
