package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=SpecialInterval=MockSpecialIntervalService

import (
	"context"
	"fmt"
	"time"

	"forest/config"
	"forest/infras/otel"
	productModel "forest/internal/domains/product/model"
	productRepo "forest/internal/domains/product/repository"
	"forest/internal/domains/specialinterval/model"
	"forest/internal/domains/specialinterval/model/dto"
	"forest/internal/domains/specialinterval/repository"
	"forest/shared"
	"forest/shared/cache"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"

	"github.com/rs/zerolog/log"
)

type SpecialInterval interface {
	Create(ctx context.Context, productID string, req dto.SpecialIntervalRequest) (string, error)
	GetAll(ctx context.Context, productID string) ([]dto.SpecialIntervalResponse, error)
	Get(ctx context.Context, productID, id string) (dto.SpecialIntervalResponse, error)
	Update(ctx context.Context, productID, id string, req dto.SpecialIntervalRequest) error
	Delete(ctx context.Context, productID, id string) error
	DeleteIDs(ctx context.Context, productID string, req dto.DeleteSpecialIntervalsRequest) error
}

type serviceImpl struct {
	repo        repository.SpecialInterval
	productRepo productRepo.Product
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.SpecialInterval, productRepo productRepo.Product, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) SpecialInterval {
	return &serviceImpl{
		repo:        repo,
		productRepo: productRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, productID string, req dto.SpecialIntervalRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureProduct(ctx, productID); err != nil {
		return "", err
	}

	if err = req.Normalize(); err != nil {
		return "", err
	}

	if err = s.ensureNoClash(ctx, productID, constant.Empty, req); err != nil {
		return "", err
	}

	specialInterval := req.ToModel(productID, user)
	if err = s.repo.Insert(ctx, specialInterval); err != nil {
		log.Error().Err(err).Msg("failed to create special interval")

		return "", fmt.Errorf("failed to create special interval: %w", err)
	}

	s.invalidate(ctx, productID)

	return specialInterval.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, productID string) (res []dto.SpecialIntervalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheGetAllSpecialInterval, productID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for special intervals")

		return res, nil
	}

	if err = s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	params := gDto.QueryParams{SortBy: model.FieldStartDatetime, SortDir: gDto.SortDirAsc}

	intervals, err := s.repo.GetAll(ctx, params, repository.FilterByProduct(productID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get special intervals")

		return nil, fmt.Errorf("failed to get special intervals: %w", err)
	}

	res = dto.FromModels(intervals)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save special intervals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, productID, id string) (res dto.SpecialIntervalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	specialInterval, err := s.repo.Get(ctx, filterByProductAndID(productID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get special interval")

		return res, fmt.Errorf("failed to get special interval: %w", err)
	}

	if specialInterval.ID == constant.Empty {
		return res, failure.NotFound("special interval not found")
	}

	res.FromModel(specialInterval)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, productID, id string, req dto.SpecialIntervalRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := filterByProductAndID(productID, id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check special interval existence")

		return fmt.Errorf("failed to check special interval existence: %w", err)
	}

	if !exist {
		return failure.NotFound("special interval not found")
	}

	if err = req.Normalize(); err != nil {
		return err
	}

	if err = s.ensureNoClash(ctx, productID, id, req); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToUpdateMap(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update special interval")

		return fmt.Errorf("failed to update special interval: %w", err)
	}

	s.invalidate(ctx, productID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, productID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := filterByProductAndID(productID, id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check special interval existence")

		return fmt.Errorf("failed to check special interval existence: %w", err)
	}

	if !exist {
		return failure.NotFound("special interval not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete special interval")

		return fmt.Errorf("failed to delete special interval: %w", err)
	}

	s.invalidate(ctx, productID)

	return nil
}

func (s *serviceImpl) DeleteIDs(ctx context.Context, productID string, req dto.DeleteSpecialIntervalsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureProduct(ctx, productID); err != nil {
		return err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			repository.FilterByProduct(productID),
			shared.FilterByIDs(req.IntervalsIDs, model.FieldID, model.TableName),
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete special intervals")

		return fmt.Errorf("failed to delete special intervals: %w", err)
	}

	s.invalidate(ctx, productID)

	return nil
}

func (s *serviceImpl) ensureProduct(ctx context.Context, productID string) error {
	exist, err := s.productRepo.Exist(ctx, shared.FilterByID(productID, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check product existence")

		return fmt.Errorf("failed to check product existence: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found")
	}

	return nil
}

func (s *serviceImpl) ensureNoClash(ctx context.Context, productID, excludeID string, req dto.SpecialIntervalRequest) error {
	var start, end time.Time
	if !req.IsWeekends {
		start, end = *req.StartDatetime, *req.EndDatetime
	}

	clash, err := s.repo.Exist(ctx, repository.FilterConflicting(productID, excludeID, req.IsWeekends, start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to check special interval clashes")

		return fmt.Errorf("failed to check special interval clashes: %w", err)
	}

	if clash {
		return failure.Validation("a similar special interval already exists")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, productID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGetAllSpecialInterval, productID)); err != nil {
			log.Error().Err(err).Msg("failed to delete special intervals cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(productModel.CacheGetProduct, productID)); err != nil {
			log.Error().Err(err).Msg("failed to delete product cache")
		}

		shared.InvalidateCaches(c, s.cache, productModel.CacheGetAllProduct)
	}()
}

func filterByProductAndID(productID, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			repository.FilterByProduct(productID),
			shared.FilterByID(id, model.FieldID, model.TableName),
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
