package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"orders/internal/entities"
	"orders/internal/pkg/messages"
	"orders/pkg/logger"
)

var tracer = otel.Tracer("orders/internal/service/order")

type Service struct {
	orders    OrderRepository
	products  OrderProductRepository
	statuses  OrderStatusRepository
	logs      OrderLogRepository
	gate      PermissionGate
	messages  Messages
	txManager TxManager
	log       serviceLogger
}

func New(
	orders OrderRepository,
	products OrderProductRepository,
	statuses OrderStatusRepository,
	logs OrderLogRepository,
	gate PermissionGate,
	messages Messages,
	txManager TxManager,
	log serviceLogger,
) *Service {
	return &Service{
		orders:    orders,
		products:  products,
		statuses:  statuses,
		logs:      logs,
		gate:      gate,
		messages:  messages,
		txManager: txManager,
		log:       log,
	}
}

type operation struct {
	name string
	// проверять права через PermissionGate
	guarded bool
	// выполнять в одной транзакции
	transactional bool
}

var (
	opCancelOrder        = operation{name: OperationCancelOrder, guarded: true, transactional: true}
	opDeleteOrder        = operation{name: OperationDeleteOrder, guarded: true, transactional: true}
	opUpdateOrder        = operation{name: OperationUpdateOrder, guarded: true, transactional: true}
	opUpdateOrderProduct = operation{name: OperationUpdateOrderProduct, guarded: true, transactional: true}
	opUpdateOrderStatus  = operation{name: OperationUpdateOrderStatus, guarded: true, transactional: true}
	opGetOrder           = operation{name: OperationGetOrder, guarded: true}
	opGetOrderLogs       = operation{name: OperationGetOrderLogs, guarded: true}
	opGetOrderStatuses   = operation{name: OperationGetOrderStatuses}
)

type handlerFunc func(ctx context.Context, user entities.Identity, result *Payload) error

// handle - общая граница всех операций: права, транзакция, перевод ошибок
// в локализованный Payload. Паника внутри fn тоже превращается в Payload.
func (s *Service) handle(ctx context.Context, op operation, targetID uuid.UUID, fn handlerFunc) (payload Payload) {
	start := time.Now()
	locale := localeFrom(ctx)

	ctx, span := tracer.Start(ctx, "order."+op.name,
		trace.WithAttributes(attribute.String("order.target_id", targetID.String())),
	)

	defer func() {
		if r := recover(); r != nil {
			payload = s.failure(ctx, op, targetID, locale, fmt.Errorf("%w: recovered panic: %v", ErrInternal, r))
		}

		if !payload.Success {
			span.SetStatus(codes.Error, payload.Err.Error())
		}
		span.End()

		OperationsTotal.WithLabelValues(op.name, resultLabel(payload)).Inc()
		OperationDuration.WithLabelValues(op.name).Observe(time.Since(start).Seconds())
	}()

	var user entities.Identity
	if op.guarded {
		grant, err := s.gate.Check(ctx, op.name)
		if err != nil {
			s.log.Warn("permission check failed",
				append(logger.TraceFields(ctx),
					logger.NewField("operation", op.name),
					logger.NewField("target_id", targetID.String()),
					logger.NewField("error", err),
				)...,
			)
			return Payload{
				Message: s.messages.Get(messages.PermissionUnavailable, locale),
				Err:     ErrPermissionDenied,
			}
		}
		if !grant.Allow {
			return Payload{Message: grant.Message, Err: ErrPermissionDenied}
		}
		if grant.User != nil {
			user = *grant.User
		}
	}

	result := Payload{}
	run := func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: recovered panic: %v", ErrInternal, r)
			}
		}()
		// транзакция может повториться, результат прошлой попытки не нужен
		result = Payload{}
		return fn(ctx, user, &result)
	}

	var err error
	if op.transactional {
		err = s.txManager.Do(ctx, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return s.failure(ctx, op, targetID, locale, err)
	}

	result.Success = true
	result.Message = s.messages.Get(messages.Success(op.name), locale)
	return result
}

// invalid - отказ на шаге проверки входа, до похода в сервис прав и БД.
func (s *Service) invalid(ctx context.Context, op operation, err error) Payload {
	kind, slug := classify(op, err)
	payload := Payload{Message: s.messages.Get(slug, localeFrom(ctx)), Err: kind}
	OperationsTotal.WithLabelValues(op.name, resultLabel(payload)).Inc()
	return payload
}

var operationsByName = map[string]operation{
	OperationCancelOrder:        opCancelOrder,
	OperationDeleteOrder:        opDeleteOrder,
	OperationUpdateOrder:        opUpdateOrder,
	OperationUpdateOrderProduct: opUpdateOrderProduct,
	OperationUpdateOrderStatus:  opUpdateOrderStatus,
	OperationGetOrder:           opGetOrder,
	OperationGetOrderLogs:       opGetOrderLogs,
	OperationGetOrderStatuses:   opGetOrderStatuses,
}

// Reject - ответ на запрос, который транспорт не смог разобрать.
func (s *Service) Reject(ctx context.Context, operationName string) Payload {
	op, ok := operationsByName[operationName]
	if !ok {
		op = operation{name: operationName}
	}
	return s.invalid(ctx, op, ErrInvalidInput)
}

func (s *Service) failure(ctx context.Context, op operation, targetID uuid.UUID, locale string, err error) Payload {
	kind, slug := classify(op, err)

	fields := append(logger.TraceFields(ctx),
		logger.NewField("operation", op.name),
		logger.NewField("target_id", targetID.String()),
		logger.NewField("error", err),
	)
	if kind == ErrInternal || kind == ErrWriteFailed {
		s.log.Error("order operation failed", fields...)
	} else {
		s.log.Info("order operation rejected", fields...)
	}

	return Payload{Message: s.messages.Get(slug, locale), Err: kind}
}

var knownErrors = []struct {
	err  error
	slug string
}{
	{ErrInvalidInput, messages.InvalidInput},
	{ErrInvalidAmount, messages.InvalidAmount},
	{ErrInvalidPrice, messages.InvalidPrice},
	{ErrNotEnoughStock, messages.NotEnoughStock},
	{ErrOrderNotFound, messages.OrderNotFound},
	{ErrOrderProductNotFound, messages.OrderProductNotFound},
	{ErrOrderStatusNotFound, messages.OrderStatusNotFound},
	{ErrShopProductNotFound, messages.ShopProductNotFound},
}

// classify сводит ошибку к одному из видов и ключу сообщения.
// Всё неизвестное становится ErrInternal с общим сообщением операции.
func classify(op operation, err error) (error, string) {
	for _, known := range knownErrors {
		if errors.Is(err, known.err) {
			return known.err, known.slug
		}
	}

	if errors.Is(err, ErrWriteFailed) {
		return ErrWriteFailed, messages.Failure(op.name)
	}
	return ErrInternal, messages.Failure(op.name)
}

func localeFrom(ctx context.Context) string {
	caller, _ := entities.CallerFromContext(ctx)
	return caller.Locale
}

func (s *Service) loadAggregate(ctx context.Context, order *entities.Order) (*entities.OrderAggregate, error) {
	status, err := s.statuses.GetByID(ctx, order.StatusID)
	if err != nil {
		return nil, fmt.Errorf("get order status: %w", err)
	}

	// покупателя может не быть, тогда customer == nil
	customer, err := s.orders.GetCustomer(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order customer: %w", err)
	}

	products, err := s.products.GetByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order products: %w", err)
	}

	return &entities.OrderAggregate{
		Order:    *order,
		Status:   *status,
		Customer: customer,
		Products: products,
	}, nil
}

func (s *Service) reloadAggregate(ctx context.Context, orderID uuid.UUID) (*entities.OrderAggregate, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}
	return s.loadAggregate(ctx, order)
}

func (s *Service) writeLog(ctx context.Context, orderLog entities.OrderLog) error {
	if _, err := s.logs.Create(ctx, orderLog); err != nil {
		return fmt.Errorf("create order log: %w", err)
	}
	return nil
}
