package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"courierhub/internal/adapters/out/kafka"
	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/pkg/clock"
	"courierhub/internal/pkg/ddd"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsTopic = "delivery-events"

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func producerConfig() *sarama.Config {
	config := mocks.NewTestConfig()
	config.Producer.Return.Successes = true
	return config
}

func pickedUpDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	courier, err := user.NewUser(kernel.NewUUID(), "Sami", user.Courier)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "12 Rue de Rome", nil, 30, 3)
	require.NoError(t, err)
	d, err := delivery.NewDelivery(kernel.NewUUID(), courier, o, delivery.NewRestaurantSnapshot("Chez Ali", "", nil), testNow)
	require.NoError(t, err)
	require.NoError(t, d.TransitionTo(delivery.PickedUp, testNow.Add(time.Minute)))
	return d
}

func TestEventPublisher_Publish(t *testing.T) {
	d := pickedUpDelivery(t)
	events := d.DomainEvents()
	require.Len(t, events, 1)

	sp := mocks.NewSyncProducer(t, producerConfig())
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != eventsTopic {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != d.ID().String() {
			return errors.New("message is not keyed by delivery id")
		}
		return nil
	})

	producer := kafka.NewProducerFromSarama(sp, discardLogger())
	publisher := kafka.NewEventPublisher(producer, eventsTopic)

	err := publisher.Publish(context.Background(), events...)

	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestEventPublisher_MessageBody(t *testing.T) {
	d := pickedUpDelivery(t)

	var body kafka.DeliveryEventMessage
	sp := mocks.NewSyncProducer(t, producerConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &body)
	})

	publisher := kafka.NewEventPublisher(kafka.NewProducerFromSarama(sp, discardLogger()), eventsTopic)
	require.NoError(t, publisher.Publish(context.Background(), d.DomainEvents()...))

	assert.Equal(t, delivery.StatusChangedEventName, body.EventName)
	assert.Equal(t, d.ID().String(), body.DeliveryID)
	assert.Equal(t, d.Order().String(), body.OrderID)
	assert.Equal(t, d.Courier().String(), body.CourierID)
	assert.Equal(t, "pending", body.From)
	assert.Equal(t, "picked_up", body.To)
	assert.True(t, testNow.Add(time.Minute).Equal(body.OccurredAt))
	require.NoError(t, sp.Close())
}

func TestEventPublisher_StopsAtFirstFailure(t *testing.T) {
	d := pickedUpDelivery(t)
	require.NoError(t, d.TransitionTo(delivery.Delivering, testNow.Add(2*time.Minute)))
	events := d.DomainEvents()
	require.Len(t, events, 2)

	sp := mocks.NewSyncProducer(t, producerConfig())
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := kafka.NewEventPublisher(kafka.NewProducerFromSarama(sp, discardLogger()), eventsTopic)
	err := publisher.Publish(context.Background(), events...)

	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, sp.Close())
}

type unknownEvent struct{}

func (unknownEvent) EventID() uuid.UUID    { return uuid.Nil }
func (unknownEvent) EventName() string     { return "unknown" }
func (unknownEvent) AggregateID() string   { return "x" }
func (unknownEvent) OccurredAt() time.Time { return testNow }

func TestEventPublisher_UnsupportedEvent(t *testing.T) {
	sp := mocks.NewSyncProducer(t, producerConfig())
	publisher := kafka.NewEventPublisher(kafka.NewProducerFromSarama(sp, discardLogger()), eventsTopic)

	err := publisher.Publish(context.Background(), ddd.DomainEvent(unknownEvent{}))

	require.Error(t, err)
	require.NoError(t, sp.Close())
}

func TestPresenceBroadcaster(t *testing.T) {
	userID := kernel.NewUUID()
	other := kernel.NewUUID()

	var change, online kafka.PresenceMessage
	sp := mocks.NewSyncProducer(t, producerConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &change)
	})
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &online)
	})

	broadcaster := kafka.NewPresenceBroadcaster(
		kafka.NewProducerFromSarama(sp, discardLogger()), "presence", clock.NewFixed(testNow))

	require.NoError(t, broadcaster.BroadcastStatusChange(context.Background(), userID, false))
	require.NoError(t, broadcaster.BroadcastOnlineUsers(context.Background(), []kernel.UUID{userID, other}))

	assert.Equal(t, kafka.PresenceStatusChanged, change.Type)
	assert.Equal(t, userID.String(), change.UserID)
	require.NotNil(t, change.Online)
	assert.False(t, *change.Online)

	assert.Equal(t, kafka.PresenceOnlineUsers, online.Type)
	assert.Equal(t, []string{userID.String(), other.String()}, online.Users)
	assert.True(t, testNow.Equal(online.SentAt))
	require.NoError(t, sp.Close())
}
