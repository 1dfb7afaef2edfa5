package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TxRetriesTotal - повторы транзакций после конфликта сериализации.
var TxRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "order_tx_retries_total",
	Help: "Transactions retried after a serialization failure",
})
