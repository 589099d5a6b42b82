package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Cart=MockCartService

import (
	"context"
	"errors"
	"fmt"

	"forest/config"
	"forest/infras/otel"
	"forest/infras/postgres"
	availabilityModel "forest/internal/domains/availability/model"
	"forest/internal/domains/cart/model"
	"forest/internal/domains/cart/model/dto"
	"forest/internal/domains/cart/repository"
	pricingModel "forest/internal/domains/pricing/model"
	pricingDto "forest/internal/domains/pricing/model/dto"
	pricingService "forest/internal/domains/pricing/service"
	productModel "forest/internal/domains/product/model"
	productRepo "forest/internal/domains/product/repository"
	"forest/shared"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Cart interface {
	Create(ctx context.Context, req dto.CartRequest) (dto.CartResponse, error)
	Get(ctx context.Context, id string) (dto.CartResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCartsResponse, error)
	UpdatePersons(ctx context.Context, id string, req dto.CartRequest) error
	Delete(ctx context.Context, id string) error

	GetItems(ctx context.Context, cartID string) ([]dto.CartItemResponse, error)
	AddItem(ctx context.Context, cartID string, req dto.CartItemRequest) (dto.CartItemResponse, error)
	UpdateItem(ctx context.Context, cartID, itemID string, req dto.CartItemRequest) (dto.CartItemResponse, error)
	DeleteItem(ctx context.Context, cartID, itemID string) error

	AllowedInterval(ctx context.Context, cartID string, req dto.AllowedIntervalRequest) (pricingDto.AllowedIntervalResponse, error)
	CheckAffected(ctx context.Context, cartID string) error
}

type serviceImpl struct {
	repo        repository.Cart
	itemRepo    repository.CartItem
	productRepo productRepo.Product
	pricing     pricingService.Pricing
	transaction postgres.Transaction
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Cart,
	itemRepo repository.CartItem,
	productRepo productRepo.Product,
	pricing pricingService.Pricing,
	transaction postgres.Transaction,
	cfg *config.Config,
	otel otel.Otel,
) Cart {
	return &serviceImpl{
		repo:        repo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		pricing:     pricing,
		transaction: transaction,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CartRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureCapacity(ctx, req.Persons); err != nil {
		return res, err
	}

	cart := req.ToModel()
	if err = s.repo.Insert(ctx, cart); err != nil {
		log.Error().Err(err).Msg("failed to create cart")

		return res, fmt.Errorf("failed to create cart: %w", err)
	}

	res.FromModel(cart, nil)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cart, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart.ID == constant.Empty {
		return res, failure.NotFound("cart not found")
	}

	items, err := s.itemRepo.GetAll(ctx, byStart(), repository.FilterItemsByCart(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart items")

		return res, fmt.Errorf("failed to get cart items: %w", err)
	}

	res.FromModel(cart, items)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCartsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count carts")

		return res, fmt.Errorf("failed to count carts: %w", err)
	}

	carts, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get carts")

		return res, fmt.Errorf("failed to get carts: %w", err)
	}

	res.FromModels(carts, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdatePersons(ctx context.Context, id string, req dto.CartRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePersons")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureCart(ctx, nil, id); err != nil {
		return err
	}

	if err = s.ensureCapacity(ctx, req.Persons); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldPersons:       req.Persons,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update cart")

		return fmt.Errorf("failed to update cart: %w", err)
	}

	return nil
}

// Delete removes the cart. Its items go with it through the foreign key cascade.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureCart(ctx, nil, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete cart")

		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetItems(ctx context.Context, cartID string) (res []dto.CartItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureCart(ctx, nil, cartID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetAll(ctx, byStart(), repository.FilterItemsByCart(cartID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart items")

		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	return dto.ItemsFromModels(items), nil
}

func (s *serviceImpl) AddItem(ctx context.Context, cartID string, req dto.CartItemRequest) (res dto.CartItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var item model.CartItem

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.ensureCart(ctx, tx, cartID); err != nil {
			return err
		}

		item, err = s.addItem(ctx, tx, cartID, req)

		return err
	})
	if err != nil {
		return res, txError(err, req.ProductID)
	}

	res.FromModel(item)

	return res, nil
}

// UpdateItem replaces the item so the new interval goes through every check an added item does.
func (s *serviceImpl) UpdateItem(ctx context.Context, cartID, itemID string, req dto.CartItemRequest) (res dto.CartItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.FilterItemByCartAndID(cartID, itemID)

	var item model.CartItem

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.itemRepo.GetTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get cart item: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("cart item not found")
		}

		if err = s.itemRepo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}

		item, err = s.addItem(ctx, tx, cartID, req)

		return err
	})
	if err != nil {
		return res, txError(err, req.ProductID)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, cartID, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.FilterItemByCartAndID(cartID, itemID)

	item, err := s.itemRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart item")

		return fmt.Errorf("failed to get cart item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("cart item not found")
	}

	if err = s.itemRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete cart item")

		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return nil
}

func (s *serviceImpl) AllowedInterval(ctx context.Context, cartID string, req dto.AllowedIntervalRequest) (res pricingDto.AllowedIntervalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllowedInterval")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureCart(ctx, nil, cartID); err != nil {
		return res, err
	}

	product, err := s.productRepo.Get(ctx, shared.FilterByID(req.ProductID, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return res, failure.NotFound("product not found")
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, repository.FilterItemsByCart(cartID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart items")

		return res, fmt.Errorf("failed to get cart items: %w", err)
	}

	required, err := pricingService.RequiredBooking(product, dto.ToBookings(items))
	if err != nil {
		return res, err
	}

	window := pricingService.AllowedInterval(product, pricingModel.Booking{
		ID:        required.ID,
		ProductID: required.ProductID,
		Start:     timezone.ToAppTime(required.Start),
		End:       timezone.ToAppTime(required.End),
	})

	res.StartDatetime = window.Start
	res.EndDatetime = window.End

	return res, nil
}

func (s *serviceImpl) CheckAffected(ctx context.Context, cartID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAffected")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureCart(ctx, nil, cartID); err != nil {
		return err
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, repository.FilterItemsByCart(cartID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart items")

		return fmt.Errorf("failed to get cart items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}

	products, err := s.productRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(ids, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart products")

		return fmt.Errorf("failed to get cart products: %w", err)
	}

	byID := make(map[string]productModel.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	return pricingService.CheckAffected(byID, dto.ToBookings(items))
}

// addItem runs the availability gate, the required-product containment check and the quote,
// which covers guarded overlap with orders and with the cart's other items.
func (s *serviceImpl) addItem(ctx context.Context, tx *sqlx.Tx, cartID string, req dto.CartItemRequest) (model.CartItem, error) {
	product, err := s.productRepo.GetTx(ctx, tx, shared.FilterByID(req.ProductID, productModel.FieldID, productModel.TableName))
	if err != nil {
		return model.CartItem{}, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return model.CartItem{}, failure.NotFound("product not found")
	}

	if !product.IsAvailable {
		return model.CartItem{}, failure.ProductUnavailable(product.ID)
	}

	if product.HasRequiredProduct() {
		siblings, err := s.itemRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, repository.FilterItemsByCart(cartID))
		if err != nil {
			return model.CartItem{}, fmt.Errorf("failed to get cart items: %w", err)
		}

		window := s.pricing.Normalize(product, req.StartDatetime, req.EndDatetime)
		if err = pricingService.CheckRequired(product, window, dto.ToBookings(siblings)); err != nil {
			return model.CartItem{}, err
		}
	}

	quote, err := s.pricing.Quote(ctx, tx, pricingModel.QuoteInput{
		Product:  product,
		Start:    req.StartDatetime,
		End:      req.EndDatetime,
		Quantity: req.Quantity,
		Scope:    availabilityModel.Scope{CartID: cartID},
	})
	if err != nil {
		return model.CartItem{}, err
	}

	item := dto.NewItem(cartID, req, quote)
	if err = s.itemRepo.InsertTx(ctx, tx, item); err != nil {
		return model.CartItem{}, fmt.Errorf("failed to create cart item: %w", err)
	}

	return item, nil
}

func (s *serviceImpl) ensureCart(ctx context.Context, tx *sqlx.Tx, id string) error {
	exist, err := s.repo.ExistTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check cart existence")

		return fmt.Errorf("failed to check cart existence: %w", err)
	}

	if !exist {
		return failure.NotFound("cart not found")
	}

	return nil
}

// ensureCapacity caps persons by the capacity of the whole catalogue.
func (s *serviceImpl) ensureCapacity(ctx context.Context, persons int) error {
	products, err := s.productRepo.GetAll(ctx, gDto.QueryParams{}, productRepo.FilterCapacityProducts())
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity products")

		return fmt.Errorf("failed to get capacity products: %w", err)
	}

	maxPersons := productModel.SumMaxPersons(products)
	if persons > maxPersons {
		return failure.InsufficientCapacity(
			fmt.Sprintf("maximum possible occupancy is %d persons", maxPersons),
			map[string]any{failure.DetailMaxPersons: maxPersons},
		)
	}

	return nil
}

// txError logs infrastructure faults from a cart transaction and keeps domain failures as they are.
func txError(err error, productID string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if shared.IsPqError(err, constant.PqErrorCodeSerializationFailure) {
		return failure.BookingConflict(productID, "the product was booked concurrently, please try again")
	}

	log.Error().Err(err).Msg("failed to save cart item")

	return err
}

func byStart() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldItemStartDatetime, SortDir: gDto.SortDirAsc}
}
