package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Pricing=MockPricingService

import (
	"context"
	"fmt"
	"time"

	"forest/config"
	"forest/infras/otel"
	availabilityModel "forest/internal/domains/availability/model"
	availabilityService "forest/internal/domains/availability/service"
	"forest/internal/domains/pricing/model"
	"forest/internal/domains/pricing/model/dto"
	productModel "forest/internal/domains/product/model"
	productRepo "forest/internal/domains/product/repository"
	intervalRepo "forest/internal/domains/specialinterval/repository"
	"forest/shared"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Pricing interface {
	Normalize(product productModel.Product, start, end time.Time) model.Window
	Quote(ctx context.Context, sqltx *sqlx.Tx, input model.QuoteInput) (model.Quote, error)
	QuoteProduct(ctx context.Context, productID string, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	productRepo  productRepo.Product
	intervalRepo intervalRepo.SpecialInterval
	availability availabilityService.Availability
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	productRepo productRepo.Product,
	intervalRepo intervalRepo.SpecialInterval,
	availability availabilityService.Availability,
	cfg *config.Config,
	otel otel.Otel,
) Pricing {
	return &serviceImpl{
		productRepo:  productRepo,
		intervalRepo: intervalRepo,
		availability: availability,
		cfg:          cfg,
		otel:         otel,
	}
}

// Normalize reads times in the application timezone before applying hotel hours.
func (s *serviceImpl) Normalize(product productModel.Product, start, end time.Time) model.Window {
	return Normalize(product, timezone.ToAppTime(start), timezone.ToAppTime(end), s.cfg.Booking.CheckinHour, s.cfg.Booking.CheckoutHour)
}

// Quote normalizes the interval, rejects conflicting bookings and prices the rest.
// Reads go through sqltx when one is given. Nothing is written.
func (s *serviceImpl) Quote(ctx context.Context, sqltx *sqlx.Tx, input model.QuoteInput) (res model.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if input.Quantity < 1 {
		return res, failure.Validation("quantity must be greater than or equal to 1")
	}

	product := input.Product
	window := s.Normalize(product, input.Start, input.End)

	conflict, err := s.availability.HasConflict(ctx, sqltx, product.ID, window.Start, window.End, input.Scope)
	if err != nil {
		return res, err
	}

	if conflict {
		return res, failure.BookingConflict(product.ID, "the product is already booked for this time")
	}

	rules, err := s.intervalRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, intervalRepo.FilterByProduct(product.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get special intervals")

		return res, fmt.Errorf("failed to get special intervals: %w", err)
	}

	return Compute(product, window, input.Quantity, rules)
}

func (s *serviceImpl) QuoteProduct(ctx context.Context, productID string, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteProduct")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	product, err := s.productRepo.Get(ctx, shared.FilterByID(productID, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return res, failure.NotFound("product not found")
	}

	quote, err := s.Quote(ctx, nil, model.QuoteInput{
		Product:  product,
		Start:    req.StartDatetime,
		End:      req.EndDatetime,
		Quantity: req.Quantity,
		Scope:    availabilityModel.Scope{ExcludeOrderItemID: req.ExcludeOrderItemID},
	})
	if err != nil {
		return res, err
	}

	res.FromModel(quote)

	return res, nil
}
