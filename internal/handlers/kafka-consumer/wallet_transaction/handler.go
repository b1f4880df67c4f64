package wallet_transaction

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/metrics"
	driverservice "marketplace/internal/service/driver"
	"marketplace/pkg/logger"
)

// walletEvent - срез баланса кошелька после транзакции в биллинге.
// Несем абсолютное значение, а не дельту: повторная доставка безопасна.
type walletEvent struct {
	EventID  string  `json:"event_id"`
	DriverID int64   `json:"driver_id"`
	Balance  float64 `json:"balance"`
}

type Handler struct {
	driverService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, driverService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		driverService:            driverService,
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
				// Messages() закрыт — выходим
				h.log.Info("wallet.transaction: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("wallet.transaction: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event walletEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("wallet.transaction handler received bad message")
		metrics.WalletEventsProcessed.WithLabelValues("bad_message").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("driver", event.DriverID),
		logger.NewField("balance", event.Balance),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("wallet.transaction processing")

	err = h.driverService.UpdateWalletBalance(ctx, event.DriverID, event.Balance)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("wallet.transaction handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, driverservice.ErrDriverNotFound):
			// событие биллинга может опережать регистрацию - пропускаем
			msgLog.With(
				logger.NewField("error", err),
			).Warn("wallet.transaction handler driver not found")
			metrics.WalletEventsProcessed.WithLabelValues("driver_not_found").Inc()

		case errors.Is(err, driverservice.ErrInvalidBalance):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("wallet.transaction handler invalid balance in event")
			metrics.WalletEventsProcessed.WithLabelValues("invalid_balance").Inc()

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("wallet.transaction handler failed to update balance")
			metrics.WalletEventsProcessed.WithLabelValues("error").Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	metrics.WalletEventsProcessed.WithLabelValues("ok").Inc()
	msgLog.Info("wallet.transaction: processed")

	sess.MarkMessage(message, "")
	return false
}
