package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Trade metrics
	TradesSettled *prometheus.CounterVec
	TradeErrors   *prometheus.CounterVec
	TradeDuration prometheus.Histogram
	TradeNotional prometheus.Histogram

	// Account metrics
	AccountsOpened prometheus.Counter

	// Oracle metrics
	OracleLookups *prometheus.CounterVec

	// Price feed metrics
	FeedTicks prometheus.Counter

	// Outbox metrics
	EventsPublished    prometheus.Counter
	EventPublishErrors prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TradesSettled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "papertrade_trades_settled_total",
				Help: "Total number of settled trades by side",
			},
			[]string{"side"},
		),
		TradeErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "papertrade_trade_errors_total",
				Help: "Total number of rejected or failed orders by reason",
			},
			[]string{"reason"},
		),
		TradeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "papertrade_trade_duration_seconds",
			Help:    "Duration of order settlement",
			Buckets: prometheus.DefBuckets,
		}),
		TradeNotional: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "papertrade_trade_notional",
			Help:    "Notional value (quantity x price) of settled trades",
			Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
		}),

		AccountsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "papertrade_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),

		OracleLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "papertrade_oracle_lookups_total",
				Help: "Price oracle lookups by outcome",
			},
			[]string{"outcome"},
		),

		FeedTicks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "papertrade_feed_ticks_total",
			Help: "Total number of price ticks written by the feed",
		}),

		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "papertrade_events_published_total",
			Help: "Total number of outbox events published",
		}),
		EventPublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "papertrade_event_publish_errors_total",
			Help: "Total number of outbox publish failures",
		}),
	}
}
