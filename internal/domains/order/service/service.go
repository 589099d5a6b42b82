package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Order=MockOrderService

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"forest/config"
	"forest/infras/otel"
	"forest/infras/postgres"
	availabilityModel "forest/internal/domains/availability/model"
	cartModel "forest/internal/domains/cart/model"
	cartDto "forest/internal/domains/cart/model/dto"
	cartRepo "forest/internal/domains/cart/repository"
	notificationService "forest/internal/domains/notification/service"
	"forest/internal/domains/order/model"
	"forest/internal/domains/order/model/dto"
	"forest/internal/domains/order/repository"
	pricingModel "forest/internal/domains/pricing/model"
	pricingDto "forest/internal/domains/pricing/model/dto"
	pricingService "forest/internal/domains/pricing/service"
	productModel "forest/internal/domains/product/model"
	productDto "forest/internal/domains/product/model/dto"
	productRepo "forest/internal/domains/product/repository"
	"forest/shared"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/secret"
	"forest/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Order interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest, ip string) (dto.StatusResponse, error)
	Verify(ctx context.Context, id string, req dto.VerifyRequest) (dto.StatusResponse, error)
	ResendCode(ctx context.Context, id string, req dto.ResendCodeRequest) error
	Lookup(ctx context.Context, id string, req dto.LookupRequest) (dto.OrderResponse, error)
	MarkFailed(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)

	GetItems(ctx context.Context, orderID string) ([]dto.OrderItemResponse, error)
	GetAllItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrderItemsResponse, error)
	AddItem(ctx context.Context, orderID string, req dto.OrderItemRequest) (dto.OrderItemResponse, error)
	UpdateItem(ctx context.Context, orderID, itemID string, req dto.OrderItemRequest) (dto.OrderItemResponse, error)
	DeleteItems(ctx context.Context, orderID string, req dto.DeleteItemsRequest) error

	AllowedInterval(ctx context.Context, orderID string, req dto.AllowedIntervalRequest) (pricingDto.AllowedIntervalResponse, error)
	CheckAffected(ctx context.Context, orderID string) error
}

type serviceImpl struct {
	repo         repository.Order
	itemRepo     repository.OrderItem
	cartRepo     cartRepo.Cart
	cartItemRepo cartRepo.CartItem
	productRepo  productRepo.Product
	pricing      pricingService.Pricing
	dispatcher   notificationService.Dispatcher
	transaction  postgres.Transaction
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Order,
	itemRepo repository.OrderItem,
	cartRepo cartRepo.Cart,
	cartItemRepo cartRepo.CartItem,
	productRepo productRepo.Product,
	pricing pricingService.Pricing,
	dispatcher notificationService.Dispatcher,
	transaction postgres.Transaction,
	cfg *config.Config,
	otel otel.Otel,
) Order {
	return &serviceImpl{
		repo:         repo,
		itemRepo:     itemRepo,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		pricing:      pricing,
		dispatcher:   dispatcher,
		transaction:  transaction,
		cfg:          cfg,
		otel:         otel,
	}
}

// Checkout turns a cart into an order awaiting verification. Every line is re-validated and
// re-quoted inside one transaction; notifications go out only after it commits.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest, ip string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Agreement {
		return res, failure.Validation("agreement must be accepted")
	}

	var (
		order model.Order
		code  string
	)

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		cart, err := s.cartRepo.GetTx(ctx, tx, shared.FilterByID(req.CartID, cartModel.FieldID, cartModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get cart: %w", err)
		}

		if cart.ID == constant.Empty {
			return failure.NotFound("cart not found")
		}

		cartItems, err := s.cartItemRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, cartRepo.FilterItemsByCart(cart.ID))
		if err != nil {
			return fmt.Errorf("failed to get cart items: %w", err)
		}

		if len(cartItems) == 0 {
			return failure.Validation("cart is empty")
		}

		products, err := s.products(ctx, tx, cartItems)
		if err != nil {
			return err
		}

		items, err := s.snapshot(ctx, tx, cartItems, products)
		if err != nil {
			return err
		}

		if err = s.checkCapacity(ctx, tx, cart.Persons, cartItems, products); err != nil {
			return err
		}

		code, order, err = s.newOrder(req, ip, cart.Persons)
		if err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}

		order.TotalPrice = dto.TotalPrice(items)

		if err = s.repo.InsertTx(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if err = s.itemRepo.InsertBulkTx(ctx, tx, items); err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		if err = s.cartRepo.DeleteTx(ctx, tx, shared.FilterByID(cart.ID, cartModel.FieldID, cartModel.TableName)); err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, txError(err, "", "failed to checkout cart")
	}

	s.dispatcher.OrderPlaced(context.WithoutCancel(ctx), order.Phone, code)

	res.ID = order.ID
	res.Status = order.Status

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, id string, req dto.VerifyRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.FilterWaiting(id, req.Phone)

	// A wrong code still commits the spent attempt, so the verdict travels outside the transaction.
	var verdict error

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		order, err := s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		if order.ID == constant.Empty {
			return failure.NotFound("order awaiting verification not found")
		}

		status := order.Status
		fields := map[string]any{constant.FieldModifiedAt: timezone.Now()}

		switch {
		case secret.Matches(req.Code, order.CodeHash):
			status = model.StatusPending
		case order.AttemptsLeft <= 1:
			status = model.StatusFailed
			fields[model.FieldAttemptsLeft] = 0
			verdict = failure.CodeAttemptsExhausted()
		default:
			fields[model.FieldAttemptsLeft] = order.AttemptsLeft - 1
			verdict = failure.WrongCode()
		}

		fields[model.FieldStatus] = status
		res = dto.StatusResponse{ID: order.ID, Status: status}

		if err = s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		return nil
	})
	if err != nil {
		return dto.StatusResponse{}, txError(err, "", "failed to verify order")
	}

	if verdict != nil {
		return dto.StatusResponse{}, verdict
	}

	return res, nil
}

func (s *serviceImpl) ResendCode(ctx context.Context, id string, req dto.ResendCodeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResendCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.FilterWaiting(id, req.Phone)

	var code string

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		order, err := s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		if order.ID == constant.Empty {
			return failure.NotFound("order awaiting verification not found")
		}

		if order.ResendsLeft <= 0 {
			return failure.ResendLimitExceeded()
		}

		var hash string

		code, hash, err = secret.GenerateHashedCode()
		if err != nil {
			return fmt.Errorf("failed to generate verification code: %w", err)
		}

		fields := map[string]any{
			model.FieldCodeHash:      hash,
			model.FieldResendsLeft:   order.ResendsLeft - 1,
			constant.FieldModifiedAt: timezone.Now(),
		}

		if err = s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		return nil
	})
	if err != nil {
		return txError(err, "", "failed to resend verification code")
	}

	s.dispatcher.CodeResent(context.WithoutCancel(ctx), req.Phone, code)

	return nil
}

// Lookup returns the order to whoever holds its code, in any state.
func (s *serviceImpl) Lookup(ctx context.Context, id string, req dto.LookupRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return res, err
	}

	if !secret.Matches(req.Code, order.CodeHash) {
		return res, failure.NotFound("order not found")
	}

	return s.withItems(ctx, order)
}

func (s *serviceImpl) MarkFailed(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkFailed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return err
	}

	if order.Status.IsTerminal() {
		return failure.Conflict(fmt.Sprintf("order is already %s", order.Status))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        model.StatusFailed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark order as failed")

		return fmt.Errorf("failed to mark order as failed: %w", err)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return res, err
	}

	return s.withItems(ctx, order)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(orders, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetItems(ctx context.Context, orderID string) (res []dto.OrderItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getOrder(ctx, orderID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetAll(ctx, byStart(), repository.FilterItemsByOrder(orderID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return dto.ItemsFromModels(items), nil
}

func (s *serviceImpl) GetAllItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrderItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.itemRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count order items")

		return res, fmt.Errorf("failed to count order items: %w", err)
	}

	items, err := s.itemRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModels(items, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) AddItem(ctx context.Context, orderID string, req dto.OrderItemRequest) (res dto.OrderItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var item model.OrderItem

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.ensureOrder(ctx, tx, orderID); err != nil {
			return err
		}

		quote, err := s.quote(ctx, tx, req, availabilityModel.Scope{})
		if err != nil {
			return err
		}

		item = dto.NewItem(orderID, req.ProductID, req.Quantity, quote, user)
		if err = s.itemRepo.InsertTx(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}

		return s.refreshTotal(ctx, tx, orderID)
	})
	if err != nil {
		return res, txError(err, req.ProductID, "failed to save order item")
	}

	res.FromModel(item)

	return res, nil
}

// UpdateItem re-quotes the line with the item itself left out of the conflict check.
func (s *serviceImpl) UpdateItem(ctx context.Context, orderID, itemID string, req dto.OrderItemRequest) (res dto.OrderItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := repository.FilterItemsByOrderAndIDs(orderID, []string{itemID})

	var item model.OrderItem

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.itemRepo.GetTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get order item: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("order item not found")
		}

		quote, err := s.quote(ctx, tx, req, availabilityModel.Scope{ExcludeOrderItemID: itemID})
		if err != nil {
			return err
		}

		now := timezone.Now()
		fields := map[string]any{
			model.FieldItemProductID:     req.ProductID,
			model.FieldItemStartDatetime: quote.Window.Start,
			model.FieldItemEndDatetime:   quote.Window.End,
			model.FieldItemQuantity:      req.Quantity,
			model.FieldItemTotalPrice:    quote.TotalPrice,
			constant.FieldModifiedAt:     now,
			constant.FieldModifiedBy:     user,
		}

		if err = s.itemRepo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update order item: %w", err)
		}

		item = current
		item.ProductID = req.ProductID
		item.StartDatetime = quote.Window.Start
		item.EndDatetime = quote.Window.End
		item.Quantity = req.Quantity
		item.TotalPrice = quote.TotalPrice
		item.ModifiedAt = now
		item.ModifiedBy = user

		return s.refreshTotal(ctx, tx, orderID)
	})
	if err != nil {
		return res, txError(err, req.ProductID, "failed to save order item")
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) DeleteItems(ctx context.Context, orderID string, req dto.DeleteItemsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.FilterItemsByOrderAndIDs(orderID, req.ItemsIDs)

	err = s.transaction.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.ensureOrder(ctx, tx, orderID); err != nil {
			return err
		}

		count, err := s.itemRepo.CountTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to count order items: %w", err)
		}

		if count != len(req.ItemsIDs) {
			return failure.NotFound("some order items not found")
		}

		if err = s.itemRepo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		return s.refreshTotal(ctx, tx, orderID)
	})
	if err != nil {
		return txError(err, "", "failed to delete order items")
	}

	return nil
}

func (s *serviceImpl) AllowedInterval(ctx context.Context, orderID string, req dto.AllowedIntervalRequest) (res pricingDto.AllowedIntervalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllowedInterval")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getOrder(ctx, orderID); err != nil {
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

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, repository.FilterItemsByOrder(orderID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
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

func (s *serviceImpl) CheckAffected(ctx context.Context, orderID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAffected")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getOrder(ctx, orderID); err != nil {
		return err
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, repository.FilterItemsByOrder(orderID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return fmt.Errorf("failed to get order items: %w", err)
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
		log.Error().Err(err).Msg("failed to get order products")

		return fmt.Errorf("failed to get order products: %w", err)
	}

	byID := make(map[string]productModel.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	return pricingService.CheckAffected(byID, dto.ToBookings(items))
}

// products loads every product the cart references, keyed by id.
func (s *serviceImpl) products(ctx context.Context, tx *sqlx.Tx, items []cartModel.CartItem) (map[string]productModel.Product, error) {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}

	products, err := s.productRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, shared.FilterByIDs(ids, productModel.FieldID, productModel.TableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get cart products: %w", err)
	}

	byID := make(map[string]productModel.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	return byID, nil
}

// snapshot re-validates every cart line against current rules and freezes the fresh quotes.
// A total that differs from the cached cart prices is stale.
func (s *serviceImpl) snapshot(
	ctx context.Context,
	tx *sqlx.Tx,
	cartItems []cartModel.CartItem,
	products map[string]productModel.Product,
) ([]model.OrderItem, error) {
	siblings := cartDto.ToBookings(cartItems)
	items := make([]model.OrderItem, 0, len(cartItems))

	var quoted, cached int64

	for _, cartItem := range cartItems {
		product, ok := products[cartItem.ProductID]
		if !ok {
			return nil, failure.NotFound("product not found")
		}

		if !product.IsAvailable {
			return nil, failure.ProductUnavailable(product.ID)
		}

		if product.HasRequiredProduct() {
			window := s.pricing.Normalize(product, cartItem.StartDatetime, cartItem.EndDatetime)
			if err := pricingService.CheckRequired(product, window, siblings); err != nil {
				return nil, err
			}
		}

		quote, err := s.pricing.Quote(ctx, tx, pricingModel.QuoteInput{
			Product:  product,
			Start:    cartItem.StartDatetime,
			End:      cartItem.EndDatetime,
			Quantity: cartItem.Quantity,
		})
		if err != nil {
			return nil, err
		}

		quoted += quote.TotalPrice
		cached += cartItem.Price

		items = append(items, dto.NewItem("", product.ID, cartItem.Quantity, quote, ""))
	}

	if quoted != cached {
		return nil, failure.StalePricing()
	}

	return items, nil
}

// checkCapacity compares the party size with the capacity the cart books. When the catalogue
// could seat everyone, the products not yet in the cart are offered.
func (s *serviceImpl) checkCapacity(
	ctx context.Context,
	tx *sqlx.Tx,
	persons int,
	cartItems []cartModel.CartItem,
	products map[string]productModel.Product,
) error {
	booked := 0
	selected := make(map[string]bool, len(cartItems))

	for _, item := range cartItems {
		if product := products[item.ProductID]; product.MaxPersons > 0 {
			booked += product.MaxPersons
		}

		selected[item.ProductID] = true
	}

	if persons <= booked {
		return nil
	}

	catalogue, err := s.productRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, productRepo.FilterCapacityProducts())
	if err != nil {
		return fmt.Errorf("failed to get capacity products: %w", err)
	}

	maxPersons := productModel.SumMaxPersons(catalogue)
	details := map[string]any{failure.DetailMaxPersons: maxPersons}

	if persons > maxPersons {
		return failure.InsufficientCapacity(fmt.Sprintf("maximum possible occupancy is %d persons", maxPersons), details)
	}

	offers := make([]productDto.ProductSummary, 0, len(catalogue))

	for _, product := range catalogue {
		if selected[product.ID] {
			continue
		}

		var summary productDto.ProductSummary
		summary.FromModel(product)
		offers = append(offers, summary)
	}

	details[failure.DetailProducts] = offers

	return failure.InsufficientCapacity("the order does not have enough places, consider adding products", details)
}

func (s *serviceImpl) newOrder(req dto.CheckoutRequest, ip string, persons int) (string, model.Order, error) {
	code, hash, err := secret.GenerateHashedCode()
	if err != nil {
		return "", model.Order{}, fmt.Errorf("failed to generate verification code: %w", err)
	}

	return code, req.ToModel(ip, persons, hash, s.cfg.Booking.CodeAttempts, s.cfg.Booking.CodeResends), nil
}

func (s *serviceImpl) quote(ctx context.Context, tx *sqlx.Tx, req dto.OrderItemRequest, scope availabilityModel.Scope) (pricingModel.Quote, error) {
	product, err := s.productRepo.GetTx(ctx, tx, shared.FilterByID(req.ProductID, productModel.FieldID, productModel.TableName))
	if err != nil {
		return pricingModel.Quote{}, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return pricingModel.Quote{}, failure.NotFound("product not found")
	}

	return s.pricing.Quote(ctx, tx, pricingModel.QuoteInput{
		Product:  product,
		Start:    req.StartDatetime,
		End:      req.EndDatetime,
		Quantity: req.Quantity,
		Scope:    scope,
	})
}

// refreshTotal keeps the order total equal to the sum of its lines after an admin edit.
func (s *serviceImpl) refreshTotal(ctx context.Context, tx *sqlx.Tx, orderID string) error {
	items, err := s.itemRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, repository.FilterItemsByOrder(orderID))
	if err != nil {
		return fmt.Errorf("failed to get order items: %w", err)
	}

	fields := map[string]any{
		model.FieldTotalPrice:    dto.TotalPrice(items),
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(orderID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureOrder(ctx context.Context, tx *sqlx.Tx, id string) error {
	order, err := s.repo.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("order not found")
	}

	return nil
}

func (s *serviceImpl) getOrder(ctx context.Context, id string) (model.Order, error) {
	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return order, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return order, failure.NotFound("order not found")
	}

	return order, nil
}

func (s *serviceImpl) withItems(ctx context.Context, order model.Order) (res dto.OrderResponse, err error) {
	items, err := s.itemRepo.GetAll(ctx, byStart(), repository.FilterItemsByOrder(order.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModel(order, items)

	return res, nil
}

// txError logs infrastructure faults from an order transaction and keeps domain failures as they are.
// A serialization failure means a concurrent writer won the race.
func txError(err error, productID, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if shared.IsPqError(err, constant.PqErrorCodeSerializationFailure) {
		if productID == "" {
			return failure.New(http.StatusConflict, failure.KindBookingConflict, "the order was changed concurrently, please try again", nil)
		}

		return failure.BookingConflict(productID, "the product was booked concurrently, please try again")
	}

	log.Error().Err(err).Msg(msg)

	return err
}

func byStart() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldItemStartDatetime, SortDir: gDto.SortDirAsc}
}
