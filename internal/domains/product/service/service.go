package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Product=MockProductService

import (
	"context"
	"fmt"

	"forest/config"
	"forest/infras/otel"
	"forest/internal/domains/product/model"
	"forest/internal/domains/product/model/dto"
	"forest/internal/domains/product/repository"
	fileDto "forest/internal/domains/productfile/model/dto"
	fileRepo "forest/internal/domains/productfile/repository"
	fileService "forest/internal/domains/productfile/service"
	intervalModel "forest/internal/domains/specialinterval/model"
	intervalDto "forest/internal/domains/specialinterval/model/dto"
	intervalRepo "forest/internal/domains/specialinterval/repository"
	"forest/shared"
	"forest/shared/cache"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"

	"github.com/rs/zerolog/log"
)

type Product interface {
	Create(ctx context.Context, req dto.ProductRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProductsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ProductResponse, error)
	Update(ctx context.Context, req dto.ProductRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Product
	fileRepo     fileRepo.ProductFile
	intervalRepo intervalRepo.SpecialInterval
	files        fileService.ProductFile
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Product,
	fileRepo fileRepo.ProductFile,
	intervalRepo intervalRepo.SpecialInterval,
	files fileService.ProductFile,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Product {
	return &serviceImpl{
		repo:         repo,
		fileRepo:     fileRepo,
		intervalRepo: intervalRepo,
		files:        files,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ProductRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	product := req.ToModel(user)

	if err = s.validateRequired(ctx, product.ID, product.RequiredProductID); err != nil {
		return "", err
	}

	if err = s.repo.Insert(ctx, product); err != nil {
		log.Error().Err(err).Msg("failed to create product")

		return "", fmt.Errorf("failed to create product: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CacheGetAllProduct)
		shared.InvalidateCaches(c, s.cache, model.CacheCountProduct)
	}()

	return product.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProductsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAllProduct, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for products")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return res, err
	}

	products, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get products")

		return res, fmt.Errorf("failed to get products: %w", err)
	}

	res.FromModels(products, total, req.Limit)

	if err = s.embed(ctx, res.Products); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save products to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCountProduct, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return total, fmt.Errorf("failed to count products: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheGetProduct, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product")

		return res, nil
	}

	product, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return res, failure.NotFound("product not found")
	}

	res.FromModel(product)

	products := []dto.ProductResponse{res}
	if err = s.embed(ctx, products); err != nil {
		return res, err
	}

	res = products[0]

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.ProductRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check product existence")

		return fmt.Errorf("failed to check product existence: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found")
	}

	if err = s.validateRequired(ctx, id, req.RequiredID()); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToUpdateMap(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update product")

		return fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check product existence")

		return fmt.Errorf("failed to check product existence: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found")
	}

	files, err := s.fileRepo.GetAll(ctx, gDto.QueryParams{}, fileRepo.FilterByProduct(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product files")

		return fmt.Errorf("failed to get product files: %w", err)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("product is referenced by bookings or carts and cannot be deleted")
		}

		log.Error().Err(err).Msg("failed to delete product")

		return fmt.Errorf("failed to delete product: %w", err)
	}

	urls := make([]string, len(files))
	for i, file := range files {
		urls[i] = file.URL
	}

	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(intervalModel.CacheGetAllSpecialInterval, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete special intervals cache")
		}

		if len(urls) == 0 {
			return
		}

		if err := s.files.ReleaseBlobs(c, urls); err != nil {
			log.Error().Err(err).Msg("failed to release product blobs")
		}
	}()

	return nil
}

// validateRequired keeps required products a single level deep.
func (s *serviceImpl) validateRequired(ctx context.Context, id string, requiredID *string) error {
	if requiredID == nil {
		return nil
	}

	if *requiredID == id {
		return failure.Validation("a product cannot require itself")
	}

	required, err := s.repo.Get(ctx, shared.FilterByID(*requiredID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get required product")

		return fmt.Errorf("failed to get required product: %w", err)
	}

	if required.ID == constant.Empty {
		return failure.Validation("required product does not exist")
	}

	if required.HasRequiredProduct() {
		return failure.Validation("required product cannot itself require another product")
	}

	dependents, err := s.repo.Exist(ctx, repository.FilterByRequiredProduct(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check dependent products")

		return fmt.Errorf("failed to check dependent products: %w", err)
	}

	if dependents {
		return failure.Validation("a product other products depend on cannot require another product")
	}

	return nil
}

// embed attaches files, special intervals and required product summaries with one query per kind.
func (s *serviceImpl) embed(ctx context.Context, products []dto.ProductResponse) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	requiredIDs := []string{}
	index := make(map[string]int, len(products))

	for i, product := range products {
		ids[i] = product.ID
		index[product.ID] = i

		if product.RequiredProductID != nil {
			requiredIDs = append(requiredIDs, *product.RequiredProductID)
		}
	}

	files, err := s.fileRepo.GetAll(ctx, gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}, fileRepo.FilterByProducts(ids))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product files")

		return fmt.Errorf("failed to get product files: %w", err)
	}

	for _, file := range files {
		var res fileDto.FileResponse
		res.FromModel(file)

		product := &products[index[file.ProductID]]
		product.Files = append(product.Files, res)
	}

	intervals, err := s.intervalRepo.GetAll(ctx, gDto.QueryParams{}, intervalRepo.FilterByProducts(ids))
	if err != nil {
		log.Error().Err(err).Msg("failed to get special intervals")

		return fmt.Errorf("failed to get special intervals: %w", err)
	}

	for _, specialInterval := range intervals {
		var res intervalDto.SpecialIntervalResponse
		res.FromModel(specialInterval)

		product := &products[index[specialInterval.ProductID]]
		product.SpecialIntervals = append(product.SpecialIntervals, res)
	}

	if len(requiredIDs) == 0 {
		return nil
	}

	required, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(requiredIDs, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get required products")

		return fmt.Errorf("failed to get required products: %w", err)
	}

	summaries := make(map[string]dto.ProductSummary, len(required))
	for _, product := range required {
		var summary dto.ProductSummary
		summary.FromModel(product)
		summaries[product.ID] = summary
	}

	for i := range products {
		if products[i].RequiredProductID == nil {
			continue
		}

		if summary, ok := summaries[*products[i].RequiredProductID]; ok {
			products[i].RequiredProduct = &summary
		}
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGetProduct, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete product cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheGetAllProduct)
		shared.InvalidateCaches(c, s.cache, model.CacheCountProduct)
	}()
}
