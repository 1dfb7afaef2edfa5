package messages_refresh

import (
	"context"
	"time"

	"orders/pkg/logger"
)

type MessagesRefresh struct {
	log       taskLogger
	catalogue Catalogue
	interval  time.Duration
}

func New(log taskLogger, catalogue Catalogue, interval time.Duration) *MessagesRefresh {
	return &MessagesRefresh{
		log:       log,
		catalogue: catalogue,
		interval:  interval,
	}
}

func (m *MessagesRefresh) TTL() time.Duration {
	return m.interval
}

func (m *MessagesRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	loaded, err := m.catalogue.Refresh(ctxWithTimeout)
	if err != nil {
		return err
	}

	m.log.Info("messages catalogue refreshed", logger.NewField("messages", loaded))
	return nil
}

func (m *MessagesRefresh) Info() string {
	return "messages refresh"
}
