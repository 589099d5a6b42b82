package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"forest/config"
	otelMocks "forest/infras/otel/mocks"
	postgresMocks "forest/infras/postgres/mocks"
	cartMocks "forest/internal/domains/cart/mocks"
	cartModel "forest/internal/domains/cart/model"
	notificationMocks "forest/internal/domains/notification/mocks"
	orderMocks "forest/internal/domains/order/mocks"
	"forest/internal/domains/order/model"
	"forest/internal/domains/order/model/dto"
	"forest/internal/domains/order/service"
	pricingMocks "forest/internal/domains/pricing/mocks"
	pricingModel "forest/internal/domains/pricing/model"
	productMocks "forest/internal/domains/product/mocks"
	productDto "forest/internal/domains/product/model/dto"
	productModel "forest/internal/domains/product/model"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/interval"
	"forest/shared/secret"
	"forest/shared/timezone"
)

const phone = "+79990001122"

func at(day, hour int) time.Time {
	return time.Date(2024, time.June, day, hour, 0, 0, 0, time.UTC)
}

type fixture struct {
	repo         *orderMocks.MockOrder
	itemRepo     *orderMocks.MockOrderItem
	cartRepo     *cartMocks.MockCart
	cartItemRepo *cartMocks.MockCartItem
	productRepo  *productMocks.MockProduct
	pricing      *pricingMocks.MockPricingService
	dispatcher   *notificationMocks.MockDispatcher
	svc          service.Order
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Booking.CodeAttempts = 3
	cfg.Booking.CodeResends = 3

	f := fixture{
		repo:         orderMocks.NewMockOrder(ctrl),
		itemRepo:     orderMocks.NewMockOrderItem(ctrl),
		cartRepo:     cartMocks.NewMockCart(ctrl),
		cartItemRepo: cartMocks.NewMockCartItem(ctrl),
		productRepo:  productMocks.NewMockProduct(ctrl),
		pricing:      pricingMocks.NewMockPricingService(ctrl),
		dispatcher:   notificationMocks.NewMockDispatcher(ctrl),
	}

	f.svc = service.New(
		f.repo, f.itemRepo, f.cartRepo, f.cartItemRepo, f.productRepo,
		f.pricing, f.dispatcher, postgresMocks.NewTransaction(), cfg, otelMocks.NewOtel(),
	)

	return f
}

func house() productModel.Product {
	return productModel.Product{
		ID:                  "house",
		UnitPrice:           1000,
		TimeUnit:            interval.UnitDay,
		MinUnit:             1,
		MaxUnit:             14,
		UseHotelBookingTime: true,
		IsAvailable:         true,
		MaxPersons:          3,
	}
}

func cabin() productModel.Product {
	return productModel.Product{ID: "cabin", UnitPrice: 800, TimeUnit: interval.UnitDay, IsAvailable: true, MaxPersons: 4}
}

func sauna() productModel.Product {
	required := "house"

	return productModel.Product{
		ID:                "sauna",
		UnitPrice:         100,
		TimeUnit:          interval.UnitHour,
		MinUnit:           1,
		MaxUnit:           6,
		RequiredProductID: &required,
		IsAvailable:       true,
	}
}

func cartItem(id, productID string, price int64) cartModel.CartItem {
	return cartModel.CartItem{
		ID:            id,
		CartID:        "cart-1",
		ProductID:     productID,
		StartDatetime: at(3, 14),
		EndDatetime:   at(5, 12),
		Quantity:      1,
		Price:         price,
	}
}

func quote(total int64) pricingModel.Quote {
	return pricingModel.Quote{
		Window:      pricingModel.Window{Start: at(3, 14), End: at(5, 12), FixedEnd: at(5, 14)},
		Units:       2,
		NormalPrice: total,
		TotalPrice:  total,
	}
}

func checkoutRequest() dto.CheckoutRequest {
	return dto.CheckoutRequest{CartID: "cart-1", Phone: phone, Name: "иВАН", Agreement: true}
}

func TestOrderService_Checkout(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CheckoutRequest
		setupMock func(f fixture)
		wantKind  string
		check     func(t *testing.T, err error)
	}{
		{
			name: "agreement not accepted",
			req: func() dto.CheckoutRequest {
				req := checkoutRequest()
				req.Agreement = false

				return req
			}(),
			setupMock: func(fixture) {},
			wantKind:  failure.KindValidation,
		},
		{
			name: "cart not found",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "empty cart",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 2}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "unavailable product",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				unavailable := house()
				unavailable.IsAvailable = false

				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 2}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cartModel.CartItem{cartItem("item-1", "house", 2000)}, nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{unavailable}, nil)
			},
			wantKind: failure.KindProductUnavailable,
		},
		{
			name: "dependent product without its required booking",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 2}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cartModel.CartItem{cartItem("item-1", "sauna", 200)}, nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{sauna()}, nil)
				f.pricing.EXPECT().Normalize(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pricingModel.Window{Start: at(3, 18), End: at(3, 20), FixedEnd: at(3, 20)})
			},
			wantKind: failure.KindMissingRequiredBooking,
		},
		{
			name: "conflict found while re-quoting",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 2}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cartModel.CartItem{cartItem("item-1", "house", 2000)}, nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{house()}, nil)
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pricingModel.Quote{}, failure.BookingConflict("house", "the product is already booked for this time"))
			},
			wantKind: failure.KindBookingConflict,
		},
		{
			name: "stale pricing leaves the cart untouched",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 2}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cartModel.CartItem{cartItem("item-1", "house", 2000)}, nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{house()}, nil)
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote(2500), nil)
			},
			wantKind: failure.KindStalePricing,
		},
		{
			name: "not enough places offers the products not in the cart",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 5}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cartModel.CartItem{cartItem("item-1", "house", 2000)}, nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{house()}, nil)
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote(2000), nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{house(), cabin()}, nil)
			},
			wantKind: failure.KindInsufficientCapacity,
			check: func(t *testing.T, err error) {
				var fail *failure.Failure
				require.ErrorAs(t, err, &fail)
				assert.Equal(t, 7, fail.Details[failure.DetailMaxPersons])

				offers, ok := fail.Details[failure.DetailProducts].([]productDto.ProductSummary)
				require.True(t, ok)
				require.Len(t, offers, 1)
				assert.Equal(t, "cabin", offers[0].ID)
			},
		},
		{
			name: "party larger than the whole catalogue",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 9}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cartModel.CartItem{cartItem("item-1", "house", 2000)}, nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{house()}, nil)
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote(2000), nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{house(), cabin()}, nil)
			},
			wantKind: failure.KindInsufficientCapacity,
			check: func(t *testing.T, err error) {
				var fail *failure.Failure
				require.ErrorAs(t, err, &fail)
				assert.Equal(t, 7, fail.Details[failure.DetailMaxPersons])
				assert.NotContains(t, fail.Details, failure.DetailProducts)
			},
		},
		{
			name: "serialization failure is a booking conflict",
			req:  checkoutRequest(),
			setupMock: func(f fixture) {
				f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 2}, nil)
				f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cartModel.CartItem{cartItem("item-1", "house", 2000)}, nil)
				f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]productModel.Product{house()}, nil)
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote(2000), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeSerializationFailure})
			},
			wantKind: failure.KindBookingConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Checkout(context.Background(), tt.req, "10.0.0.1")

			require.Error(t, err)
			assert.True(t, failure.Is(err, tt.wantKind), "got %v", err)

			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	f := newFixture(t)

	items := []cartModel.CartItem{
		cartItem("item-1", "house", 2000),
		{ID: "item-2", CartID: "cart-1", ProductID: "sauna", StartDatetime: at(3, 18), EndDatetime: at(3, 20), Quantity: 1, Price: 200},
	}

	var created model.Order

	f.cartRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cartModel.Cart{ID: "cart-1", Persons: 3}, nil)
	f.cartItemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(items, nil)
	f.productRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]productModel.Product{house(), sauna()}, nil)
	f.pricing.EXPECT().Normalize(gomock.Any(), at(3, 18), at(3, 20)).
		Return(pricingModel.Window{Start: at(3, 18), End: at(3, 20), FixedEnd: at(3, 20)})

	gomock.InOrder(
		f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, input pricingModel.QuoteInput) (pricingModel.Quote, error) {
				assert.Equal(t, "house", input.Product.ID)
				assert.Empty(t, input.Scope.CartID)

				return quote(2000), nil
			}),
		f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(pricingModel.Quote{
			Window:     pricingModel.Window{Start: at(3, 18), End: at(3, 20), FixedEnd: at(3, 20)},
			Units:      2,
			TotalPrice: 200,
		}, nil),
	)

	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, order model.Order) error {
			created = order

			return nil
		})
	f.itemRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, lines []model.OrderItem) error {
			require.Len(t, lines, 2)

			for _, line := range lines {
				assert.Equal(t, created.ID, line.OrderID)
			}

			assert.Equal(t, int64(2000), lines[0].TotalPrice)
			assert.Equal(t, at(3, 18), lines[1].StartDatetime)

			return nil
		})
	f.cartRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().OrderPlaced(gomock.Any(), phone, gomock.Any()).
		Do(func(_ context.Context, _ string, code string) {
			assert.Len(t, code, secret.CodeLength)
			assert.True(t, secret.Matches(code, created.CodeHash))
		})

	res, err := f.svc.Checkout(context.Background(), checkoutRequest(), "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, created.ID, res.ID)
	assert.Equal(t, model.StatusWaitingVerification, res.Status)
	assert.Equal(t, "Иван", created.Name)
	assert.Equal(t, int64(2200), created.TotalPrice)
	assert.Equal(t, 3, created.AttemptsLeft)
	assert.Equal(t, 3, created.ResendsLeft)
	assert.Equal(t, 3, created.Persons)
	assert.Equal(t, "10.0.0.1", created.IPAddress)
}

func TestOrderService_Verify(t *testing.T) {
	hash, err := secret.Hash("1234")
	require.NoError(t, err)

	waiting := func(attempts int) model.Order {
		return model.Order{ID: "order-1", Phone: phone, Status: model.StatusWaitingVerification, CodeHash: hash, AttemptsLeft: attempts}
	}

	tests := []struct {
		name       string
		code       string
		setupMock  func(f fixture)
		wantStatus model.Status
		wantKind   string
		wantErr    bool
	}{
		{
			name: "matching code moves the order to pending",
			code: "1234",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(waiting(3), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusPending, fields[model.FieldStatus])
						assert.NotContains(t, fields, model.FieldAttemptsLeft)

						return nil
					})
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "wrong code spends an attempt",
			code: "0000",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(waiting(3), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
						assert.Equal(t, 2, fields[model.FieldAttemptsLeft])
						assert.Equal(t, model.StatusWaitingVerification, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr:  true,
			wantKind: failure.KindWrongCode,
		},
		{
			name: "last wrong attempt fails the order",
			code: "0000",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(waiting(1), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
						assert.Equal(t, 0, fields[model.FieldAttemptsLeft])
						assert.Equal(t, model.StatusFailed, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr:  true,
			wantKind: failure.KindCodeAttemptsExhausted,
		},
		{
			name: "no order awaiting verification",
			code: "1234",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "update error",
			code: "1234",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(waiting(3), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Verify(context.Background(), "order-1", dto.VerifyRequest{Phone: phone, Code: tt.code})
			if tt.wantErr {
				require.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.Is(err, tt.wantKind), "got %v", err)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestOrderService_ResendCode(t *testing.T) {
	t.Run("new code is stored and sent", func(t *testing.T) {
		f := newFixture(t)

		var storedHash string

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Order{ID: "order-1", Phone: phone, Status: model.StatusWaitingVerification, ResendsLeft: 3}, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, 2, fields[model.FieldResendsLeft])
				storedHash, _ = fields[model.FieldCodeHash].(string)

				return nil
			})
		f.dispatcher.EXPECT().CodeResent(gomock.Any(), phone, gomock.Any()).
			Do(func(_ context.Context, _ string, code string) {
				assert.True(t, secret.Matches(code, storedHash))
			})

		require.NoError(t, f.svc.ResendCode(context.Background(), "order-1", dto.ResendCodeRequest{Phone: phone}))
	})

	t.Run("no resends left", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Order{ID: "order-1", Phone: phone, Status: model.StatusWaitingVerification}, nil)

		err := f.svc.ResendCode(context.Background(), "order-1", dto.ResendCodeRequest{Phone: phone})

		assert.True(t, failure.Is(err, failure.KindResendLimitExceeded))
		assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(err))
	})

	t.Run("order not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

		err := f.svc.ResendCode(context.Background(), "order-1", dto.ResendCodeRequest{Phone: phone})

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestOrderService_Lookup(t *testing.T) {
	hash, err := secret.Hash("4321")
	require.NoError(t, err)

	order := model.Order{ID: "order-1", Phone: phone, Status: model.StatusPending, CodeHash: hash, TotalPrice: 2000}

	t.Run("matching code returns the order with items", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)
		f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.OrderItem{{ID: "line-1", OrderID: "order-1", ProductID: "house", TotalPrice: 2000}}, nil)

		res, err := f.svc.Lookup(context.Background(), "order-1", dto.LookupRequest{Code: "4321"})

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "line-1", res.Items[0].ID)
	})

	t.Run("wrong code hides the order", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)

		_, err := f.svc.Lookup(context.Background(), "order-1", dto.LookupRequest{Code: "1111"})

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestOrderService_MarkFailed(t *testing.T) {
	tests := []struct {
		name      string
		order     model.Order
		update    bool
		wantCode  int
		wantError bool
	}{
		{name: "pending order", order: model.Order{ID: "order-1", Status: model.StatusPending}, update: true},
		{name: "waiting order", order: model.Order{ID: "order-1", Status: model.StatusWaitingVerification}, update: true},
		{name: "already failed", order: model.Order{ID: "order-1", Status: model.StatusFailed}, wantError: true, wantCode: http.StatusConflict},
		{name: "complete", order: model.Order{ID: "order-1", Status: model.StatusComplete}, wantError: true, wantCode: http.StatusConflict},
		{name: "not found", order: model.Order{}, wantError: true, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.order, nil)

			if tt.update {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusFailed, fields[model.FieldStatus])

						return nil
					})
			}

			err := f.svc.MarkFailed(context.Background(), "order-1")
			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestOrderService_AddItem(t *testing.T) {
	req := dto.OrderItemRequest{ProductID: "house", StartDatetime: at(3, 9), EndDatetime: at(5, 9), Quantity: 1}

	t.Run("quoted line is stored and the total refreshed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{ID: "order-1"}, nil)
		f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(house(), nil)
		f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote(2000), nil)
		f.itemRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.OrderItem{{TotalPrice: 1500}, {TotalPrice: 2000}}, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, int64(3500), fields[model.FieldTotalPrice])

				return nil
			})

		res, err := f.svc.AddItem(context.Background(), "order-1", req)

		require.NoError(t, err)
		assert.Equal(t, "order-1", res.OrderID)
		assert.Equal(t, int64(2000), res.TotalPrice)
		assert.True(t, at(3, 14).Equal(res.StartDatetime))
	})

	t.Run("order not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

		_, err := f.svc.AddItem(context.Background(), "order-1", req)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("product not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{ID: "order-1"}, nil)
		f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(productModel.Product{}, nil)

		_, err := f.svc.AddItem(context.Background(), "order-1", req)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestOrderService_UpdateItem(t *testing.T) {
	req := dto.OrderItemRequest{ProductID: "house", StartDatetime: at(3, 9), EndDatetime: at(5, 9), Quantity: 2}

	t.Run("the edited line is excluded from the conflict check", func(t *testing.T) {
		f := newFixture(t)

		f.itemRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.OrderItem{ID: "line-1", OrderID: "order-1", ProductID: "house"}, nil)
		f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(house(), nil)
		f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, input pricingModel.QuoteInput) (pricingModel.Quote, error) {
				assert.Equal(t, "line-1", input.Scope.ExcludeOrderItemID)
				assert.Equal(t, 2, input.Quantity)

				return quote(2000), nil
			})
		f.itemRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.OrderItem{{TotalPrice: 2000}}, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UpdateItem(context.Background(), "order-1", "line-1", req)

		require.NoError(t, err)
		assert.Equal(t, "line-1", res.ID)
		assert.Equal(t, 2, res.Quantity)
	})

	t.Run("line not found", func(t *testing.T) {
		f := newFixture(t)

		f.itemRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.OrderItem{}, nil)

		_, err := f.svc.UpdateItem(context.Background(), "order-1", "line-1", req)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestOrderService_DeleteItems(t *testing.T) {
	req := dto.DeleteItemsRequest{ItemsIDs: []string{"line-1", "line-2"}}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{ID: "order-1"}, nil)
		f.itemRepo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)
		f.itemRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, int64(0), fields[model.FieldTotalPrice])

				return nil
			})

		require.NoError(t, f.svc.DeleteItems(context.Background(), "order-1", req))
	})

	t.Run("foreign line ids", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{ID: "order-1"}, nil)
		f.itemRepo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)

		err := f.svc.DeleteItems(context.Background(), "order-1", req)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestOrderService_GetAllItems(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: gDto.SortDirDesc}

	f.itemRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.itemRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.OrderItem{{ID: "line-1"}}, nil)

	res, err := f.svc.GetAllItems(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 11, res.TotalData)
	require.Len(t, res.Items, 1)
}

func TestOrderService_AllowedInterval(t *testing.T) {
	f := newFixture(t)

	minHour := interval.NewClock(10, 0)
	dependent := sauna()
	dependent.MinHour = &minHour

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{ID: "order-1"}, nil)
	f.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(dependent, nil)
	f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.OrderItem{{ID: "line-1", ProductID: "house", StartDatetime: at(3, 14), EndDatetime: at(5, 12)}}, nil)

	res, err := f.svc.AllowedInterval(context.Background(), "order-1", dto.AllowedIntervalRequest{ProductID: "sauna"})

	local := timezone.ToAppTime(at(3, 14))

	require.NoError(t, err)
	assert.True(t, time.Date(local.Year(), local.Month(), local.Day(), 10, 0, 0, 0, local.Location()).Equal(res.StartDatetime))
	assert.True(t, at(5, 12).Equal(res.EndDatetime))
}

func TestOrderService_CheckAffected(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{ID: "order-1"}, nil)
	f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.OrderItem{
		{ID: "line-1", ProductID: "house", StartDatetime: at(3, 14), EndDatetime: at(5, 12)},
		{ID: "line-2", ProductID: "sauna", StartDatetime: at(5, 10), EndDatetime: at(5, 14)},
	}, nil)
	f.productRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]productModel.Product{house(), sauna()}, nil)

	err := f.svc.CheckAffected(context.Background(), "order-1")

	assert.True(t, failure.Is(err, failure.KindStrictContainmentViolation))
}
