package service

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=../mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"fmt"

	"forest/config"
	"forest/infras/kafka"
	"forest/infras/otel"
	"forest/internal/domains/notification/model"
	"forest/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	textVerification = "%s. Подтвердите бронирование. Код верификации: %s"
	textResend       = "%s. Новый код верификации: %s"
	textNewOrder     = "Поступил новый заказ!"

	pushKey = "push"
)

// Dispatcher requests notifications for order events. Publishing never fails the caller.
type Dispatcher interface {
	OrderPlaced(ctx context.Context, phone, code string)
	CodeResent(ctx context.Context, phone, code string)
}

type dispatcherImpl struct {
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func NewDispatcher(kafka kafka.Client, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

// OrderPlaced asks for the verification SMS and a push to every admin.
func (d *dispatcherImpl) OrderPlaced(ctx context.Context, phone, code string) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".OrderPlaced")
	defer scope.End()

	messages := d.sms(phone, code, textVerification)
	messages = append(messages, kafka.Message{
		Key: pushKey,
		Value: model.Event{
			Channel: model.ChannelPush,
			Title:   d.cfg.Booking.BrandName,
			Body:    textNewOrder,
		},
	})

	d.publish(ctx, scope, messages)
}

func (d *dispatcherImpl) CodeResent(ctx context.Context, phone, code string) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".CodeResent")
	defer scope.End()

	d.publish(ctx, scope, d.sms(phone, code, textResend))
}

// sms builds the verification message. In debug mode the code is only logged.
func (d *dispatcherImpl) sms(phone, code, format string) []kafka.Message {
	if d.cfg.Booking.Debug {
		log.Info().Str("phone", phone).Str("code", code).Msg("sms disabled, verification code")

		return nil
	}

	return []kafka.Message{{
		Key: phone,
		Value: model.Event{
			Channel: model.ChannelSMS,
			Phone:   phone,
			Body:    fmt.Sprintf(format, d.cfg.Booking.BrandName, code),
		},
	}}
}

func (d *dispatcherImpl) publish(ctx context.Context, scope otel.Scope, messages []kafka.Message) {
	if len(messages) == 0 {
		return
	}

	err := d.kafka.SendMessages(ctx, d.cfg.Kafka.Topics.Notification, messages...)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int("count", len(messages)).Msg("failed to publish notifications")
	}
}
