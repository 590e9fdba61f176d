package metrics

import "github.com/prometheus/client_golang/prometheus"

// DomainMetrics counts business events of the POS.
type DomainMetrics struct {
	TransactionsRecorded *prometheus.CounterVec
	TransactionAmount    *prometheus.CounterVec
	ProductCache         *prometheus.CounterVec
	OutboxPublished      *prometheus.CounterVec
}

func NewDomainMetrics(reg prometheus.Registerer) *DomainMetrics {
	m := &DomainMetrics{
		TransactionsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pos_transactions_recorded_total",
				Help: "Transactions recorded, by payment type",
			},
			[]string{"payment_type"},
		),
		TransactionAmount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pos_transaction_amount_minor_total",
				Help: "Sum of recorded transaction amounts in minor currency units",
			},
			[]string{"payment_type"},
		),
		ProductCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pos_product_cache_total",
				Help: "Product cache lookups by result (hit, miss)",
			},
			[]string{"result"},
		),
		OutboxPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pos_outbox_events_total",
				Help: "Outbox events relayed to Kafka by result (sent, failed)",
			},
			[]string{"topic", "result"},
		),
	}
	reg.MustRegister(m.TransactionsRecorded, m.TransactionAmount, m.ProductCache, m.OutboxPublished)
	return m
}
