package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"time"

	"forest/config"
	"forest/infras/otel"
	"forest/internal/domains/availability/model"
	"forest/internal/domains/availability/model/dto"
	cartRepo "forest/internal/domains/cart/repository"
	orderModel "forest/internal/domains/order/model"
	orderRepo "forest/internal/domains/order/repository"
	productModel "forest/internal/domains/product/model"
	productRepo "forest/internal/domains/product/repository"
	"forest/shared"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/interval"
	"forest/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Availability interface {
	HasConflict(ctx context.Context, sqltx *sqlx.Tx, productID string, start, end time.Time, scope model.Scope) (bool, error)
	BusyIntervals(ctx context.Context, productID string, req dto.BusyIntervalsRequest) ([]dto.BusyIntervalResponse, error)
}

type serviceImpl struct {
	orderItemRepo orderRepo.OrderItem
	cartItemRepo  cartRepo.CartItem
	productRepo   productRepo.Product
	cfg           *config.Config
	otel          otel.Otel
}

func New(orderItemRepo orderRepo.OrderItem, cartItemRepo cartRepo.CartItem, productRepo productRepo.Product, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		orderItemRepo: orderItemRepo,
		cartItemRepo:  cartItemRepo,
		productRepo:   productRepo,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) guard() time.Duration {
	return time.Duration(s.cfg.Booking.GuardMarginMinutes) * time.Minute
}

// HasConflict checks bookings of non-failed orders and, when scope names a cart, the cart's other items.
// Candidates come from a strict overlap query and are then compared with the guard margin applied.
func (s *serviceImpl) HasConflict(ctx context.Context, sqltx *sqlx.Tx, productID string, start, end time.Time, scope model.Scope) (conflict bool, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasConflict")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	guard := s.guard()

	items, err := s.orderItemRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{},
		orderRepo.FilterOverlappingItems(productID, start, end, scope.ExcludeOrderItemID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping order items")

		return false, fmt.Errorf("failed to get overlapping order items: %w", err)
	}

	for _, item := range items {
		if interval.OverlapsWithGuard(start, end, item.StartDatetime, item.EndDatetime, guard) {
			return true, nil
		}
	}

	if scope.CartID == constant.Empty {
		return false, nil
	}

	siblings, err := s.cartItemRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{},
		cartRepo.FilterOverlappingSiblings(scope.CartID, productID, start, end, scope.ExcludeCartItemID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping cart items")

		return false, fmt.Errorf("failed to get overlapping cart items: %w", err)
	}

	for _, sibling := range siblings {
		if interval.OverlapsWithGuard(start, end, sibling.StartDatetime, sibling.EndDatetime, guard) {
			return true, nil
		}
	}

	return false, nil
}

func (s *serviceImpl) BusyIntervals(ctx context.Context, productID string, req dto.BusyIntervalsRequest) (res []dto.BusyIntervalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BusyIntervals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.productRepo.Exist(ctx, shared.FilterByID(productID, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check product existence")

		return nil, fmt.Errorf("failed to check product existence: %w", err)
	}

	if !exist {
		return nil, failure.NotFound("product not found")
	}

	after := req.After
	if after.IsZero() {
		after = timezone.Now()
	}

	params := gDto.QueryParams{SortBy: orderModel.ItemTableName + "." + orderModel.FieldItemStartDatetime, SortDir: gDto.SortDirAsc}

	items, err := s.orderItemRepo.GetAll(ctx, params, orderRepo.FilterActiveItems(productID, after, req.ExcludeOrderItemID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get busy intervals")

		return nil, fmt.Errorf("failed to get busy intervals: %w", err)
	}

	busy := make([]model.BusyInterval, len(items))
	for i, item := range items {
		busy[i] = model.BusyInterval{
			Start: timezone.ToAppTime(item.StartDatetime),
			End:   timezone.ToAppTime(item.EndDatetime),
		}
	}

	return dto.FromModels(busy), nil
}
