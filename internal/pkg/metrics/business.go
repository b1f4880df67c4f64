package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_published_total",
			Help: "Notification events published to Kafka",
		},
		[]string{"event"},
	)

	NotificationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_failed_total",
			Help: "Notification events that could not be published",
		},
		[]string{"event"},
	)

	StaleNewOrders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "orders_stale_new_total",
			Help: "Orders sitting in new/pending longer than the configured threshold",
		},
	)

	AssignmentConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assignment_conflicts_total",
			Help: "Claim and accept attempts lost to a concurrent winner",
		},
		[]string{"operation"},
	)

	WalletEventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_events_processed_total",
			Help: "Wallet balance events consumed from Kafka",
		},
		[]string{"result"},
	)
)
