package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=ProductFile=MockProductFileService

import (
	"context"
	"fmt"
	"mime/multipart"
	"slices"

	"forest/config"
	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/infras/s3"
	productModel "forest/internal/domains/product/model"
	productRepo "forest/internal/domains/product/repository"
	"forest/internal/domains/productfile/model"
	"forest/internal/domains/productfile/model/dto"
	"forest/internal/domains/productfile/repository"
	"forest/shared"
	"forest/shared/cache"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductFile interface {
	Upload(ctx context.Context, productID string, req dto.UploadFilesRequest) ([]dto.FileResponse, error)
	GetAll(ctx context.Context, productID string) ([]dto.FileResponse, error)
	DeleteIDs(ctx context.Context, productID string, req dto.DeleteFilesRequest) error
	SetPrimary(ctx context.Context, productID, fileID string) error
	Replace(ctx context.Context, productID, fileID string, req dto.ReplaceFileRequest) (dto.FileResponse, error)
	ReleaseBlobs(ctx context.Context, urls []string) error
}

type serviceImpl struct {
	repo        repository.ProductFile
	productRepo productRepo.Product
	transaction postgres.Transaction
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(
	repo repository.ProductFile,
	productRepo productRepo.Product,
	transaction postgres.Transaction,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) ProductFile {
	return &serviceImpl{
		repo:        repo,
		productRepo: productRepo,
		transaction: transaction,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, productID string, req dto.UploadFilesRequest) (res []dto.FileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	hasPrimary, err := s.repo.Exist(ctx, repository.FilterPrimary(productID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check primary file")

		return nil, fmt.Errorf("failed to check primary file: %w", err)
	}

	files := make([]model.ProductFile, 0, len(req.Files))
	uploaded := make([]string, 0, len(req.Files))

	for i, header := range req.Files {
		url, err := s.upload(ctx, header)
		if err != nil {
			s.releaseAsync(ctx, uploaded)

			return nil, err
		}

		uploaded = append(uploaded, url)
		files = append(files, dto.NewModel(productID, url, !hasPrimary && i == 0, user))
	}

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.InsertBulkTx(ctx, tx, files)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save product files")
		s.releaseAsync(ctx, uploaded)

		return nil, fmt.Errorf("failed to save product files: %w", err)
	}

	s.invalidateProduct(ctx, productID)

	return dto.FromModels(files), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, productID string) (res []dto.FileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	files, err := s.repo.GetAll(ctx, orderByCreation(), repository.FilterByProduct(productID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product files")

		return nil, fmt.Errorf("failed to get product files: %w", err)
	}

	return dto.FromModels(files), nil
}

func (s *serviceImpl) DeleteIDs(ctx context.Context, productID string, req dto.DeleteFilesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureProduct(ctx, productID); err != nil {
		return err
	}

	var released []string

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		filter := repository.FilterByProductAndIDs(productID, req.FilesIDs)

		files, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, filter)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			return nil
		}

		if err = s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}

		primaryDeleted := false
		for _, file := range files {
			released = append(released, file.URL)
			primaryDeleted = primaryDeleted || file.IsPrimary
		}

		if primaryDeleted {
			return s.promoteOldest(ctx, tx, productID)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete product files")

		return fmt.Errorf("failed to delete product files: %w", err)
	}

	s.releaseAsync(ctx, released)
	s.invalidateProduct(ctx, productID)

	return nil
}

func (s *serviceImpl) SetPrimary(ctx context.Context, productID, fileID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPrimary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := repository.FilterByProductAndIDs(productID, []string{fileID})

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		exist, err := s.repo.ExistTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if !exist {
			return failure.NotFound("product file not found")
		}

		if err = s.repo.UpdateTx(ctx, tx, primaryFields(false, user), repository.FilterPrimary(productID)); err != nil {
			return err
		}

		return s.repo.UpdateTx(ctx, tx, primaryFields(true, user), filter)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to set primary product file")

		return err
	}

	s.invalidateProduct(ctx, productID)

	return nil
}

func (s *serviceImpl) Replace(ctx context.Context, productID, fileID string, req dto.ReplaceFileRequest) (res dto.FileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Replace")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := repository.FilterByProductAndIDs(productID, []string{fileID})

	file, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get product file")

		return res, fmt.Errorf("failed to get product file: %w", err)
	}

	if file.ID == constant.Empty {
		return res, failure.NotFound("product file not found")
	}

	previous := file.URL

	url, err := s.upload(ctx, req.File)
	if err != nil {
		return res, err
	}

	fields := map[string]any{
		model.FieldURL:           url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return err
		}

		file, err = s.repo.GetTx(ctx, tx, filter)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to replace product file")
		s.releaseAsync(ctx, []string{url})

		return res, fmt.Errorf("failed to replace product file: %w", err)
	}

	s.releaseAsync(ctx, []string{previous})
	s.invalidateProduct(ctx, productID)

	res.FromModel(file)

	return res, nil
}

// ReleaseBlobs deletes each blob that no product file row references any more.
func (s *serviceImpl) ReleaseBlobs(ctx context.Context, urls []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseBlobs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var failed int

	for _, url := range compactURLs(urls) {
		referenced, err := s.repo.Exist(ctx, repository.FilterByURL(url))
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to check blob references")

			failed++

			continue
		}

		if referenced {
			continue
		}

		if err := s.s3.Delete(ctx, url); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete blob")

			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to release %d blobs", failed)
	}

	return nil
}

func (s *serviceImpl) upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	body, err := header.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")

		return constant.Empty, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer body.Close()

	contentType := header.Header.Get(constant.RequestHeaderContentType)

	url, err := s.s3.Upload(ctx, model.Directory, dto.ObjectName(header), contentType, body, header.Size)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload product file: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) promoteOldest(ctx context.Context, tx *sqlx.Tx, productID string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := orderByCreation()
	params.Limit = 1

	remaining, err := s.repo.GetAllTx(ctx, tx, params, repository.FilterByProduct(productID))
	if err != nil {
		return err
	}

	if len(remaining) == 0 {
		return nil
	}

	return s.repo.UpdateTx(ctx, tx, primaryFields(true, user), shared.FilterByID(remaining[0].ID, model.FieldID, model.TableName))
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

func (s *serviceImpl) releaseAsync(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}

	go func() {
		if err := s.ReleaseBlobs(context.WithoutCancel(ctx), urls); err != nil {
			log.Error().Err(err).Msg("failed to release product file blobs")
		}
	}()
}

func (s *serviceImpl) invalidateProduct(ctx context.Context, productID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(productModel.CacheGetProduct, productID)); err != nil {
			log.Error().Err(err).Msg("failed to delete product cache")
		}

		shared.InvalidateCaches(c, s.cache, productModel.CacheGetAllProduct)
	}()
}

func orderByCreation() gDto.QueryParams {
	return gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}
}

func primaryFields(isPrimary bool, user string) map[string]any {
	return map[string]any{
		model.FieldIsPrimary:     isPrimary,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

func compactURLs(urls []string) []string {
	res := slices.Clone(urls)
	slices.Sort(res)

	return slices.Compact(res)
}
