package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"forest/config"
	"forest/infras/kafka"
	kafkaMocks "forest/infras/kafka/mocks"
	otelMocks "forest/infras/otel/mocks"
	"forest/internal/domains/notification/model"
	"forest/internal/domains/notification/service"
)

func dispatcherConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Booking.BrandName = "Forest House"
	cfg.Booking.Debug = debug
	cfg.Kafka.Topics.Notification = "notification.requested"

	return cfg
}

func TestDispatcher_OrderPlaced(t *testing.T) {
	tests := []struct {
		name   string
		debug  bool
		sendFn func(t *testing.T) func(context.Context, string, ...kafka.Message) error
	}{
		{
			name: "publishes sms and push",
			sendFn: func(t *testing.T) func(context.Context, string, ...kafka.Message) error {
				return func(_ context.Context, topic string, messages ...kafka.Message) error {
					assert.Equal(t, "notification.requested", topic)
					require.Len(t, messages, 2)

					sms := messages[0].Value.(model.Event)
					assert.Equal(t, model.ChannelSMS, sms.Channel)
					assert.Equal(t, "+79990001122", sms.Phone)
					assert.Equal(t, "Forest House. Подтвердите бронирование. Код верификации: 0420", sms.Body)

					push := messages[1].Value.(model.Event)
					assert.Equal(t, model.ChannelPush, push.Channel)
					assert.Equal(t, "Forest House", push.Title)
					assert.Equal(t, "Поступил новый заказ!", push.Body)

					return nil
				}
			},
		},
		{
			name:  "debug mode skips the sms",
			debug: true,
			sendFn: func(t *testing.T) func(context.Context, string, ...kafka.Message) error {
				return func(_ context.Context, _ string, messages ...kafka.Message) error {
					require.Len(t, messages, 1)
					assert.Equal(t, model.ChannelPush, messages[0].Value.(model.Event).Channel)

					return nil
				}
			},
		},
		{
			name: "publish error is swallowed",
			sendFn: func(_ *testing.T) func(context.Context, string, ...kafka.Message) error {
				return func(context.Context, string, ...kafka.Message) error {
					return errors.New("broker down")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := kafkaMocks.NewMockClient(ctrl)
			client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(tt.sendFn(t))

			dispatcher := service.NewDispatcher(client, dispatcherConfig(tt.debug), otelMocks.NewOtel())

			assert.NotPanics(t, func() {
				dispatcher.OrderPlaced(context.Background(), "+79990001122", "0420")
			})
		})
	}
}

func TestDispatcher_CodeResent(t *testing.T) {
	t.Run("publishes the new code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := kafkaMocks.NewMockClient(ctrl)
		client.EXPECT().SendMessages(gomock.Any(), "notification.requested", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				require.Len(t, messages, 1)
				assert.Equal(t, "+79990001122", messages[0].Key)
				assert.Equal(t, "Forest House. Новый код верификации: 1234", messages[0].Value.(model.Event).Body)

				return nil
			})

		service.NewDispatcher(client, dispatcherConfig(false), otelMocks.NewOtel()).
			CodeResent(context.Background(), "+79990001122", "1234")
	})

	t.Run("debug mode publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := kafkaMocks.NewMockClient(ctrl)

		service.NewDispatcher(client, dispatcherConfig(true), otelMocks.NewOtel()).
			CodeResent(context.Background(), "+79990001122", "1234")
	})
}
