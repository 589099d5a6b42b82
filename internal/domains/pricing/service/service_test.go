package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"forest/config"
	"forest/infras/otel"
	otelMocks "forest/infras/otel/mocks"
	availabilityMocks "forest/internal/domains/availability/mocks"
	availabilityModel "forest/internal/domains/availability/model"
	"forest/internal/domains/pricing/model"
	"forest/internal/domains/pricing/model/dto"
	"forest/internal/domains/pricing/service"
	productMocks "forest/internal/domains/product/mocks"
	productModel "forest/internal/domains/product/model"
	intervalMocks "forest/internal/domains/specialinterval/mocks"
	intervalModel "forest/internal/domains/specialinterval/model"
	"forest/shared/failure"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.GuardMarginMinutes = 29
	cfg.Booking.CheckinHour = checkinHour
	cfg.Booking.CheckoutHour = checkoutHour

	return cfg
}

func TestPricingService_QuoteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := productMocks.NewMockProduct(ctrl)
	mockIntervalRepo := intervalMocks.NewMockSpecialInterval(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)

	svc := service.New(mockProductRepo, mockIntervalRepo, mockAvailability, newConfig(), otelMocks.NewOtel())

	saturday := dto.QuoteRequest{StartDatetime: at(8, 10), EndDatetime: at(8, 12), Quantity: 1}

	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func()
		wantTotal int64
		wantExtra int64
		wantKind  string
		wantErr   bool
	}{
		{
			name: "weekend surcharge applied",
			req:  saturday,
			setupMock: func() {
				mockProductRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourly(), nil)
				mockAvailability.EXPECT().
					HasConflict(gomock.Any(), gomock.Nil(), "sauna", at(8, 10), at(8, 12), availabilityModel.Scope{}).
					Return(false, nil)
				mockIntervalRepo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					Return([]intervalModel.SpecialInterval{weekendRule(50)}, nil)
			},
			wantTotal: 300,
			wantExtra: 100,
		},
		{
			name: "excluded order item is passed to the conflict check",
			req: dto.QuoteRequest{
				StartDatetime:      at(3, 10),
				EndDatetime:        at(3, 12),
				Quantity:           1,
				ExcludeOrderItemID: "item-1",
			},
			setupMock: func() {
				mockProductRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourly(), nil)
				mockAvailability.EXPECT().
					HasConflict(gomock.Any(), gomock.Nil(), "sauna", gomock.Any(), gomock.Any(), availabilityModel.Scope{ExcludeOrderItemID: "item-1"}).
					Return(false, nil)
				mockIntervalRepo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantTotal: 200,
		},
		{
			name: "product not found",
			req:  saturday,
			setupMock: func() {
				mockProductRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(productModel.Product{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "already booked",
			req:  saturday,
			setupMock: func() {
				mockProductRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourly(), nil)
				mockAvailability.EXPECT().
					HasConflict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantKind: failure.KindBookingConflict,
		},
		{
			name: "interval outside bookable hours",
			req:  dto.QuoteRequest{StartDatetime: at(3, 10), EndDatetime: at(3, 12), Quantity: 1},
			setupMock: func() {
				p := hourly()
				p.MinHour, p.MaxHour = clock(14, 0), clock(20, 0)

				mockProductRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(p, nil)
				mockAvailability.EXPECT().
					HasConflict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockIntervalRepo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantKind: failure.KindInvalidInterval,
		},
		{
			name: "repository error",
			req:  saturday,
			setupMock: func() {
				mockProductRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(productModel.Product{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.QuoteProduct(context.Background(), "sauna", tt.req)

			switch {
			case tt.wantKind != "":
				require.Error(t, err)
				assert.True(t, failure.Is(err, tt.wantKind), "unexpected error: %v", err)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalPrice)
				assert.Equal(t, tt.wantExtra, res.ExtraPrice)
			}
		})
	}
}

func TestPricingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := productMocks.NewMockProduct(ctrl)
	mockIntervalRepo := intervalMocks.NewMockSpecialInterval(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)

	svc := service.New(mockProductRepo, mockIntervalRepo, mockAvailability, newConfig(), otelMocks.NewOtel())

	t.Run("hotel booking is checked and priced on normalized hours", func(t *testing.T) {
		scope := availabilityModel.Scope{CartID: "cart-1", ExcludeCartItemID: "item-1"}

		mockAvailability.EXPECT().
			HasConflict(gomock.Any(), gomock.Nil(), "house", at(3, 14), at(5, 12), scope).
			Return(false, nil)
		mockIntervalRepo.EXPECT().
			GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		quote, err := svc.Quote(context.Background(), nil, model.QuoteInput{
			Product:  nightly(),
			Start:    at(3, 9),
			End:      at(5, 18),
			Quantity: 2,
			Scope:    scope,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2), quote.Units)
		assert.Equal(t, int64(2000), quote.TotalPrice)
		assert.True(t, quote.Window.Start.Equal(at(3, 14)))
		assert.True(t, quote.Window.End.Equal(at(5, 12)))
	})

	t.Run("zero quantity is rejected before any lookup", func(t *testing.T) {
		_, err := svc.Quote(context.Background(), nil, model.QuoteInput{Product: hourly(), Start: at(3, 10), End: at(3, 12)})

		assert.True(t, failure.Is(err, failure.KindValidation))
	})

	t.Run("special interval lookup fails", func(t *testing.T) {
		mockAvailability.EXPECT().
			HasConflict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockIntervalRepo.EXPECT().
			GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Quote(context.Background(), nil, model.QuoteInput{Product: hourly(), Start: at(3, 10), End: at(3, 12), Quantity: 1})

		assert.Error(t, err)
	})
}

func TestPricingService_QuoteProductRecordsSpanStatus(t *testing.T) {
	tests := []struct {
		name       string
		product    productModel.Product
		setupMock  func(availability *availabilityMocks.MockAvailabilityService, intervals *intervalMocks.MockSpecialInterval)
		wantStatus codes.Code
		wantEvents int
	}{
		{
			name:       "missing product marks the span as failed",
			product:    productModel.Product{},
			setupMock:  func(*availabilityMocks.MockAvailabilityService, *intervalMocks.MockSpecialInterval) {},
			wantStatus: codes.Error,
			wantEvents: 1,
		},
		{
			name:    "successful quote leaves the status unset",
			product: hourly(),
			setupMock: func(availability *availabilityMocks.MockAvailabilityService, intervals *intervalMocks.MockSpecialInterval) {
				availability.EXPECT().HasConflict(gomock.Any(), gomock.Nil(), "sauna", gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				intervals.EXPECT().GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantStatus: codes.Unset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := productMocks.NewMockProduct(ctrl)
			mockIntervalRepo := intervalMocks.NewMockSpecialInterval(ctrl)
			mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)

			recorder := tracetest.NewSpanRecorder()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			svc := service.New(mockProductRepo, mockIntervalRepo, mockAvailability, newConfig(), otel.NewWithProvider(provider))

			mockProductRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.product, nil)
			tt.setupMock(mockAvailability, mockIntervalRepo)

			_, _ = svc.QuoteProduct(context.Background(), "sauna", dto.QuoteRequest{StartDatetime: at(3, 10), EndDatetime: at(3, 12), Quantity: 1})

			var quoteSpan sdktrace.ReadOnlySpan

			for _, span := range recorder.Ended() {
				if span.Name() == "service.QuoteProduct" {
					quoteSpan = span
				}
			}

			require.NotNil(t, quoteSpan)
			assert.Equal(t, tt.wantStatus, quoteSpan.Status().Code)
			assert.Len(t, quoteSpan.Events(), tt.wantEvents)
		})
	}
}
