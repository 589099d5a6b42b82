package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"forest/config"
	otelMocks "forest/infras/otel/mocks"
	postgresMocks "forest/infras/postgres/mocks"
	availabilityModel "forest/internal/domains/availability/model"
	cartMocks "forest/internal/domains/cart/mocks"
	"forest/internal/domains/cart/model"
	"forest/internal/domains/cart/model/dto"
	"forest/internal/domains/cart/service"
	pricingMocks "forest/internal/domains/pricing/mocks"
	pricingModel "forest/internal/domains/pricing/model"
	productMocks "forest/internal/domains/product/mocks"
	productModel "forest/internal/domains/product/model"
	"forest/shared/constant"
	"forest/shared/failure"
	"forest/shared/interval"
)

func at(day, hour int) time.Time {
	return time.Date(2024, time.June, day, hour, 0, 0, 0, time.UTC)
}

type fixture struct {
	repo        *cartMocks.MockCart
	itemRepo    *cartMocks.MockCartItem
	productRepo *productMocks.MockProduct
	pricing     *pricingMocks.MockPricingService
	svc         service.Cart
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixture{
		repo:        cartMocks.NewMockCart(ctrl),
		itemRepo:    cartMocks.NewMockCartItem(ctrl),
		productRepo: productMocks.NewMockProduct(ctrl),
		pricing:     pricingMocks.NewMockPricingService(ctrl),
	}

	f.svc = service.New(f.repo, f.itemRepo, f.productRepo, f.pricing, postgresMocks.NewTransaction(), &config.Config{}, otelMocks.NewOtel())

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
		MaxPersons:          4,
	}
}

func sauna() productModel.Product {
	required := "house"
	minHour := interval.NewClock(10, 0)

	return productModel.Product{
		ID:                "sauna",
		UnitPrice:         100,
		TimeUnit:          interval.UnitHour,
		MinUnit:           1,
		MaxUnit:           6,
		MinHour:           &minHour,
		RequiredProductID: &required,
		IsAvailable:       true,
	}
}

func TestCartService_Create(t *testing.T) {
	f := newFixture(t)

	capacity := []productModel.Product{{ID: "house", MaxPersons: 4}, {ID: "cabin", MaxPersons: 2}}

	t.Run("persons within catalogue capacity", func(t *testing.T) {
		f.productRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(capacity, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), dto.CartRequest{Persons: 6})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, 6, res.Persons)
		assert.Empty(t, res.Items)
	})

	t.Run("persons above catalogue capacity", func(t *testing.T) {
		f.productRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(capacity, nil)

		_, err := f.svc.Create(context.Background(), dto.CartRequest{Persons: 7})

		require.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindInsufficientCapacity))

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, 6, fail.Details[failure.DetailMaxPersons])
	})
}

func TestCartService_Get(t *testing.T) {
	f := newFixture(t)

	t.Run("cart with items and total", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Cart{ID: "cart-1", Persons: 2}, nil)
		f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.CartItem{
			{ID: "item-1", CartID: "cart-1", ProductID: "house", Price: 2000},
			{ID: "item-2", CartID: "cart-1", ProductID: "sauna", Price: 300},
		}, nil)

		res, err := f.svc.Get(context.Background(), "cart-1")

		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, int64(2300), res.TotalPrice)
	})

	t.Run("not found", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Cart{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestCartService_AddItem(t *testing.T) {
	f := newFixture(t)

	stay := model.CartItem{ID: "item-1", CartID: "cart-1", ProductID: "house", StartDatetime: at(3, 14), EndDatetime: at(5, 12)}

	tests := []struct {
		name      string
		req       dto.CartItemRequest
		setupMock func()
		wantPrice int64
		wantStart time.Time
		wantKind  string
	}{
		{
			name: "stores the normalized window and quoted price",
			req:  dto.CartItemRequest{ProductID: "house", StartDatetime: at(3, 0), EndDatetime: at(5, 0), Quantity: 1},
			setupMock: func() {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
				f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(house(), nil)
				f.pricing.EXPECT().
					Quote(gomock.Any(), gomock.Nil(), pricingModel.QuoteInput{
						Product:  house(),
						Start:    at(3, 0),
						End:      at(5, 0),
						Quantity: 1,
						Scope:    availabilityModel.Scope{CartID: "cart-1"},
					}).
					Return(pricingModel.Quote{
						Window:     pricingModel.Window{Start: at(3, 14), End: at(5, 12), FixedEnd: at(5, 14)},
						Units:      2,
						TotalPrice: 2000,
					}, nil)
				f.itemRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, item model.CartItem) error {
						assert.Equal(t, "cart-1", item.CartID)
						assert.Equal(t, int64(2000), item.Price)

						return nil
					})
			},
			wantPrice: 2000,
			wantStart: at(3, 14),
		},
		{
			name: "dependent product inside the required stay",
			req:  dto.CartItemRequest{ProductID: "sauna", StartDatetime: at(4, 10), EndDatetime: at(4, 12), Quantity: 1},
			setupMock: func() {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
				f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(sauna(), nil)
				f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return([]model.CartItem{stay}, nil)
				f.pricing.EXPECT().Normalize(sauna(), at(4, 10), at(4, 12)).
					Return(pricingModel.Window{Start: at(4, 10), End: at(4, 12), FixedEnd: at(4, 12)})
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(pricingModel.Quote{Window: pricingModel.Window{Start: at(4, 10), End: at(4, 12)}, TotalPrice: 200}, nil)
				f.itemRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantPrice: 200,
			wantStart: at(4, 10),
		},
		{
			name: "dependent product outside the required stay",
			req:  dto.CartItemRequest{ProductID: "sauna", StartDatetime: at(5, 10), EndDatetime: at(5, 13), Quantity: 1},
			setupMock: func() {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
				f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(sauna(), nil)
				f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return([]model.CartItem{stay}, nil)
				f.pricing.EXPECT().Normalize(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pricingModel.Window{Start: at(5, 10), End: at(5, 13), FixedEnd: at(5, 13)})
			},
			wantKind: failure.KindStrictContainmentViolation,
		},
		{
			name: "dependent product without the required stay",
			req:  dto.CartItemRequest{ProductID: "sauna", StartDatetime: at(4, 10), EndDatetime: at(4, 12), Quantity: 1},
			setupMock: func() {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
				f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(sauna(), nil)
				f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.pricing.EXPECT().Normalize(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pricingModel.Window{Start: at(4, 10), End: at(4, 12), FixedEnd: at(4, 12)})
			},
			wantKind: failure.KindMissingRequiredBooking,
		},
		{
			name: "unavailable product",
			req:  dto.CartItemRequest{ProductID: "house", StartDatetime: at(3, 0), EndDatetime: at(5, 0), Quantity: 1},
			setupMock: func() {
				p := house()
				p.IsAvailable = false

				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
				f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(p, nil)
			},
			wantKind: failure.KindProductUnavailable,
		},
		{
			name: "booked by someone else",
			req:  dto.CartItemRequest{ProductID: "house", StartDatetime: at(3, 0), EndDatetime: at(5, 0), Quantity: 1},
			setupMock: func() {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
				f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(house(), nil)
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(pricingModel.Quote{}, failure.BookingConflict("house", "taken"))
			},
			wantKind: failure.KindBookingConflict,
		},
		{
			name: "concurrent writer",
			req:  dto.CartItemRequest{ProductID: "house", StartDatetime: at(3, 0), EndDatetime: at(5, 0), Quantity: 1},
			setupMock: func() {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
				f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(house(), nil)
				f.pricing.EXPECT().Quote(gomock.Any(), gomock.Nil(), gomock.Any()).Return(pricingModel.Quote{TotalPrice: 2000}, nil)
				f.itemRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeSerializationFailure})
			},
			wantKind: failure.KindBookingConflict,
		},
		{
			name: "unknown cart",
			req:  dto.CartItemRequest{ProductID: "house", StartDatetime: at(3, 0), EndDatetime: at(5, 0), Quantity: 1},
			setupMock: func() {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(false, nil)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.AddItem(context.Background(), "cart-1", tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.Is(err, tt.wantKind), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, res.Price)
			assert.True(t, res.StartDatetime.Equal(tt.wantStart))
		})
	}
}

func TestCartService_UpdateItem(t *testing.T) {
	f := newFixture(t)

	req := dto.CartItemRequest{ProductID: "house", StartDatetime: at(10, 0), EndDatetime: at(12, 0), Quantity: 1}

	t.Run("replaces the item", func(t *testing.T) {
		gomock.InOrder(
			f.itemRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(model.CartItem{ID: "item-1", CartID: "cart-1"}, nil),
			f.itemRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil),
			f.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(house(), nil),
			f.pricing.EXPECT().Quote(gomock.Any(), gomock.Nil(), gomock.Any()).
				Return(pricingModel.Quote{Window: pricingModel.Window{Start: at(10, 14), End: at(12, 12)}, TotalPrice: 2000}, nil),
			f.itemRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil),
		)

		res, err := f.svc.UpdateItem(context.Background(), "cart-1", "item-1", req)

		require.NoError(t, err)
		assert.NotEqual(t, "item-1", res.ID)
		assert.Equal(t, int64(2000), res.Price)
	})

	t.Run("unknown item", func(t *testing.T) {
		f.itemRepo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(model.CartItem{}, nil)

		_, err := f.svc.UpdateItem(context.Background(), "cart-1", "item-9", req)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestCartService_DeleteItem(t *testing.T) {
	f := newFixture(t)

	t.Run("deleted", func(t *testing.T) {
		f.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CartItem{ID: "item-1"}, nil)
		f.itemRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.DeleteItem(context.Background(), "cart-1", "item-1"))
	})

	t.Run("repository error", func(t *testing.T) {
		f.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CartItem{}, errors.New("database error"))

		assert.Error(t, f.svc.DeleteItem(context.Background(), "cart-1", "item-1"))
	})
}

func TestCartService_AllowedInterval(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
	f.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sauna(), nil)
	f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.CartItem{
		{ID: "item-1", ProductID: "house", StartDatetime: at(3, 14), EndDatetime: at(5, 12)},
	}, nil)

	res, err := f.svc.AllowedInterval(context.Background(), "cart-1", dto.AllowedIntervalRequest{ProductID: "sauna"})

	require.NoError(t, err)
	assert.True(t, res.StartDatetime.Equal(at(3, 10)))
	assert.True(t, res.EndDatetime.Equal(at(5, 12)))
}

func TestCartService_CheckAffected(t *testing.T) {
	f := newFixture(t)

	t.Run("dependent item left outside a shortened stay", func(t *testing.T) {
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
		f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.CartItem{
			{ID: "item-1", ProductID: "house", StartDatetime: at(3, 14), EndDatetime: at(4, 12)},
			{ID: "item-2", ProductID: "sauna", StartDatetime: at(4, 18), EndDatetime: at(4, 20)},
		}, nil)
		f.productRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]productModel.Product{house(), sauna()}, nil)

		err := f.svc.CheckAffected(context.Background(), "cart-1")

		assert.True(t, failure.Is(err, failure.KindStrictContainmentViolation))
	})

	t.Run("empty cart", func(t *testing.T) {
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil)
		f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		assert.NoError(t, f.svc.CheckAffected(context.Background(), "cart-1"))
	})
}
