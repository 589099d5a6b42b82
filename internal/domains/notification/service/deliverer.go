package service

//go:generate go run go.uber.org/mock/mockgen -source=./deliverer.go -destination=../mocks/deliverer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"forest/infras/otel"
	"forest/infras/push"
	"forest/infras/sms"
	"forest/internal/domains/notification/model"
	"forest/internal/domains/notification/repository"
	"forest/shared/constant"
	gDto "forest/shared/dto"

	"github.com/rs/zerolog/log"
)

// Deliverer hands a consumed event to the SMS gateway or fans it out to every push token.
type Deliverer interface {
	Deliver(ctx context.Context, event model.Event) error
}

type delivererImpl struct {
	repo   repository.PushToken
	sender sms.Sender
	pusher push.Pusher
	otel   otel.Otel
}

func NewDeliverer(repo repository.PushToken, sender sms.Sender, pusher push.Pusher, otel otel.Otel) Deliverer {
	return &delivererImpl{
		repo:   repo,
		sender: sender,
		pusher: pusher,
		otel:   otel,
	}
}

// Deliver returns an error only for events it cannot interpret or tokens it cannot read.
// Failed sends are logged and dropped.
func (d *delivererImpl) Deliver(ctx context.Context, event model.Event) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Deliver")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("notification.channel", string(event.Channel))

	switch event.Channel {
	case model.ChannelSMS:
		if err := d.sender.Send(ctx, event.Phone, event.Body); err != nil {
			log.Warn().Err(err).Str("phone", event.Phone).Msg("failed to send sms")
		}

		return nil
	case model.ChannelPush:
		return d.notifyAll(ctx, event)
	default:
		return fmt.Errorf("unknown notification channel %q", event.Channel)
	}
}

func (d *delivererImpl) notifyAll(ctx context.Context, event model.Event) error {
	tokens, err := d.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get push tokens")

		return fmt.Errorf("failed to get push tokens: %w", err)
	}

	for _, token := range tokens {
		err = d.pusher.Push(ctx, push.Notification{
			To:    token.PushToken,
			Title: event.Title,
			Body:  event.Body,
		})
		if err != nil {
			log.Warn().Err(err).Str("userID", token.UserID).Msg("failed to send push")
		}
	}

	return nil
}
