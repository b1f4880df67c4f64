package stale_orders

import (
	"context"
	"time"

	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/logger"
)

type Service interface {
	CountStaleOrders(ctx context.Context, olderThan time.Duration) (int64, error)
}

type StaleOrders struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	threshold time.Duration
}

func NewStaleOrders(log logger.Logger, service Service, interval, threshold time.Duration) *StaleOrders {
	return &StaleOrders{
		log:       log,
		service:   service,
		interval:  interval,
		threshold: threshold,
	}
}

func (s *StaleOrders) TTL() time.Duration {
	return s.interval
}

func (s *StaleOrders) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	count, err := s.service.CountStaleOrders(ctxWithTimeout, s.threshold)
	if err != nil {
		return err
	}

	metrics.StaleNewOrders.Set(float64(count))

	if count > 0 {
		s.log.With(
			logger.NewField("stale_orders", count),
			logger.NewField("threshold", s.threshold),
		).Warn("orders waiting for a driver too long")
	}

	return nil
}

func (s *StaleOrders) Info() string {
	return "stale orders watch"
}
