package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=PushToken=MockPushTokenService

import (
	"context"
	"fmt"

	"forest/infras/otel"
	"forest/internal/domains/notification/model"
	"forest/internal/domains/notification/model/dto"
	"forest/internal/domains/notification/repository"
	"forest/shared/constant"
	"forest/shared/failure"
	"forest/shared/timezone"

	"github.com/rs/zerolog/log"
)

type PushToken interface {
	Register(ctx context.Context, req dto.PushTokenRequest) (dto.PushTokenResponse, error)
	Me(ctx context.Context) (dto.PushTokenResponse, error)
	Unregister(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.PushToken
	otel otel.Otel
}

func New(repo repository.PushToken, otel otel.Otel) PushToken {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Register stores the caller's token, replacing the one registered before.
func (s *serviceImpl) Register(ctx context.Context, req dto.PushTokenRequest) (res dto.PushTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := repository.FilterByUser(userID)

	token, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get push token")

		return res, fmt.Errorf("failed to get push token: %w", err)
	}

	if token.ID == constant.Empty {
		token = req.ToModel(userID)
		if err = s.repo.Insert(ctx, token); err != nil {
			log.Error().Err(err).Msg("failed to create push token")

			return res, fmt.Errorf("failed to create push token: %w", err)
		}

		res.FromModel(token)

		return res, nil
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldPushToken:     req.PushToken,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update push token")

		return res, fmt.Errorf("failed to update push token: %w", err)
	}

	token.PushToken = req.PushToken
	token.ModifiedAt = now
	token.ModifiedBy = userID

	res.FromModel(token)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.PushTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err := s.get(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(token)

	return res, nil
}

func (s *serviceImpl) Unregister(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unregister")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err := s.get(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, repository.FilterByUser(token.UserID)); err != nil {
		log.Error().Err(err).Msg("failed to delete push token")

		return fmt.Errorf("failed to delete push token: %w", err)
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context) (model.PushToken, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	token, err := s.repo.Get(ctx, repository.FilterByUser(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get push token")

		return token, fmt.Errorf("failed to get push token: %w", err)
	}

	if token.ID == constant.Empty {
		return token, failure.NotFound("push token not registered")
	}

	return token, nil
}
