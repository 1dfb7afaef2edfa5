package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"orders/internal/entities"
	"orders/pkg/logger"
)

const tracerName = "orders/kafka-consumer"

type Handler struct {
	statusHandlers           StatusHandlers
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, statusHandlers StatusHandlers, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		statusHandlers:           statusHandlers,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. true - прервать ConsumeClaim,
// сообщение остаётся непрочитанным и придёт снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil || event.OrderID == uuid.Nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID.String()),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	execute, err := h.statusHandlers.GetHandler(entities.OrderStatusSlug(event.Status))
	if err != nil {
		msgLog.With(logger.NewField("error", err)).Warn("order.status.changed handler skipped message")
		sess.MarkMessage(message, "")
		return false
	}

	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	ctx, span := startSpan(ctx, message)
	defer span.End()
	ctx = entities.WithCaller(ctx, entities.Caller{Token: event.Token, Locale: event.Locale})

	msgLog.Info("order.status.changed processing")

	result := execute(ctx, event.OrderID, event.Comment)
	if !result.Success {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) || errors.Is(ctxErr, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", ctxErr),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", result.Err),
			logger.NewField("message", result.Message),
		).Warn("order.status.changed handler failed to process order")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed: processed")
	sess.MarkMessage(message, "")
	return false
}

// startSpan продолжает трейс продюсера из заголовков сообщения.
func startSpan(ctx context.Context, message *sarama.ConsumerMessage) (context.Context, trace.Span) {
	carrier := propagation.MapCarrier{}
	for _, header := range message.Headers {
		if header != nil {
			carrier[string(header.Key)] = string(header.Value)
		}
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	return otel.Tracer(tracerName).Start(ctx, "order.status.changed",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.destination", message.Topic),
			attribute.Int64("messaging.offset", message.Offset),
		),
	)
}
