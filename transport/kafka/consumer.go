package kafka

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"forest/config"
	"forest/infras/kafka"
	"forest/internal/domains/notification/model"
	"forest/internal/domains/notification/service"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker consumes notification events and hands them to the deliverer.
type Worker struct {
	Config    *config.Config
	Kafka     kafka.Client
	Deliverer service.Deliverer
}

func New(cfg *config.Config, client kafka.Client, deliverer service.Deliverer) *Worker {
	return &Worker{
		Config:    cfg,
		Kafka:     client,
		Deliverer: deliverer,
	}
}

// Serve blocks until SIGINT or SIGTERM.
func (w *Worker) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Notification worker stopped")
	}

	if err := w.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	log.Info().Msg("Notification worker shut down")
}

// Run reads the notification topic until ctx is done. A message is committed once it was handled,
// including undecodable ones, so one bad payload never blocks the partition.
func (w *Worker) Run(ctx context.Context) error {
	topic := w.Config.Kafka.Topics.Notification

	reader := w.Kafka.Reader("", topic)
	if reader == nil {
		return errors.New("failed to create Kafka reader")
	}

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader")
		}
	}()

	log.Info().Str("topic", topic).Msg("Notification worker started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to read message from Kafka")

			continue
		}

		w.Handle(ctx, msg)

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to commit Kafka message")
		}
	}
}

// Handle decodes one message and delivers it. Failures are logged, never retried.
func (w *Worker) Handle(ctx context.Context, msg kafkaGo.Message) {
	event, err := kafka.Decode[model.Event](msg)
	if err != nil {
		return
	}

	if err := w.Deliverer.Deliver(ctx, event); err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Str("channel", string(event.Channel)).Msg("Failed to deliver notification")
	}
}
