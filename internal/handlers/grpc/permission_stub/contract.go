//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=permission_stub_test
package permission_stub

import "orders/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
}
