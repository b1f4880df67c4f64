package notifier

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/logger"
)

// Producer - синхронный отправитель в Kafka. Ключ сообщения задает
// партицию, события одного заказа ложатся в одну партицию по порядку.
type Producer interface {
	Send(topic string, key string, value []byte) error
}

// Notifier публикует доменные события в топик уведомлений.
// Доставка - best effort: ошибка публикации логируется и считается
// в метрике, но не откатывает уже зафиксированную операцию.
type Notifier struct {
	log      logger.Logger
	producer Producer
	topic    string
}

func New(log logger.Logger, producer Producer, topic string) *Notifier {
	return &Notifier{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		topic:    topic,
	}
}

func (n *Notifier) OrderAssigned(_ context.Context, orderID, driverID int64) {
	n.publish(eventOrderAssigned, orderID, orderAssignedEvent{
		envelope: newEnvelope(eventOrderAssigned),
		OrderID:  orderID,
		DriverID: driverID,
	})
}

func (n *Notifier) OfferReceived(_ context.Context, orderID, offerID int64) {
	n.publish(eventOfferReceived, orderID, offerReceivedEvent{
		envelope: newEnvelope(eventOfferReceived),
		OrderID:  orderID,
		OfferID:  offerID,
	})
}

func (n *Notifier) OrderStatusChanged(_ context.Context, orderID int64, from, to entities.OrderStatusType) {
	n.publish(eventOrderStatusChanged, orderID, orderStatusChangedEvent{
		envelope: newEnvelope(eventOrderStatusChanged),
		OrderID:  orderID,
		From:     from.String(),
		To:       to.String(),
	})
}

func (n *Notifier) OrderCancelled(_ context.Context, orderID int64, actor entities.ActorType) {
	n.publish(eventOrderCancelled, orderID, orderCancelledEvent{
		envelope: newEnvelope(eventOrderCancelled),
		OrderID:  orderID,
		Actor:    actor.String(),
	})
}

func (n *Notifier) publish(eventType string, orderID int64, event interface{}) {
	value, err := json.Marshal(event)
	if err != nil {
		n.failed(eventType, orderID, err)
		return
	}

	err = n.producer.Send(n.topic, strconv.FormatInt(orderID, 10), value)
	if err != nil {
		n.failed(eventType, orderID, err)
		return
	}

	metrics.NotificationsPublished.WithLabelValues(eventType).Inc()
}

func (n *Notifier) failed(eventType string, orderID int64, err error) {
	metrics.NotificationsFailed.WithLabelValues(eventType).Inc()
	n.log.With(
		logger.NewField("event", eventType),
		logger.NewField("order", orderID),
		logger.NewField("error", err),
	).Error("failed to publish notification")
}

func newEnvelope(eventType string) envelope {
	return envelope{
		EventID:   uuid.NewString(),
		EventType: eventType,
		OccuredAt: time.Now().UTC(),
	}
}
