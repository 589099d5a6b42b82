package product

import (
	"net/http"
	"time"

	"forest/infras/otel"
	availabilityDto "forest/internal/domains/availability/model/dto"
	availabilityService "forest/internal/domains/availability/service"
	pricingDto "forest/internal/domains/pricing/model/dto"
	pricingService "forest/internal/domains/pricing/service"
	"forest/internal/domains/product/model"
	"forest/internal/domains/product/model/dto"
	"forest/internal/domains/product/service"
	"forest/shared"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/timezone"
	"forest/shared/validator"
	"forest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamAfter              = "after"
	queryParamExcludeOrderItemID = "exclude_order_item_id"
)

type Handler struct {
	service      service.Product
	pricing      pricingService.Pricing
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Product, pricing pricingService.Pricing, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		pricing:      pricing,
		availability: availability,
		otel:         otel,
	}
}

// Router registers on the /products subtree.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateProduct)
	router.Get("/", handler.GetProducts)
	router.Get("/{id}", handler.GetProductByID)
	router.Put("/{id}", handler.UpdateProduct)
	router.Delete("/{id}", handler.DeleteProduct)
	router.Post("/{id}/quote", handler.Quote)
	router.Get("/{id}/availability", handler.Availability)
}

// CreateProduct handles the creation of a new product.
// @Summary Create a product
// @Description Create a bookable product. A dependent product names its required product.
// @Tags Product
// @Accept json
// @Produce json
// @Param request body dto.ProductRequest true "Product"
// @Success 201 {object} response.Data[dto.CreateProductResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products [post]
// @Security BearerAuth
func (handler *Handler) CreateProduct(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProduct")
	defer scope.End()

	var req dto.ProductRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create product")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product created by user " + user)

	response.WithJSON(writer, http.StatusCreated, dto.CreateProductResponse{ID: id})
}

// GetProducts lists the catalogue.
// @Summary Get all products
// @Description Retrieve products with files, special intervals and the required product summary.
// @Tags Product
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param time_unit query string false "Filter by time unit" Enums(HOUR, DAY)
// @Param is_available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetProductsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products [get]
func (handler *Handler) GetProducts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProducts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if title := query.Get(model.FieldTitle); title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	if unit := query.Get(model.FieldTimeUnit); unit != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTimeUnit,
			Operator: gDto.FilterOperatorEq,
			Value:    unit,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(query.Get(model.FieldIsAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	products, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get products")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, products)
}

// GetProductByID retrieves a product by its ID.
// @Summary Get a product
// @Tags Product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Data[dto.ProductResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id} [get]
func (handler *Handler) GetProductByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProductByID")
	defer scope.End()

	product, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get product")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, product)
}

// UpdateProduct replaces a product's attributes.
// @Summary Update a product
// @Tags Product
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.ProductRequest true "Product"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateProduct(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProduct")
	defer scope.End()

	var req dto.ProductRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update product")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Product updated successfully")
}

// DeleteProduct deletes a product that no order item references.
// @Summary Delete a product
// @Tags Product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProduct(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProduct")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete product")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product deleted by user " + user)

	response.WithMessage(writer, http.StatusOK, "Product deleted successfully")
}

// Quote prices a booking interval without reserving it.
// @Summary Quote a booking
// @Description Normalizes the interval, checks conflicts and returns the price breakdown.
// @Tags Product
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body pricingDto.QuoteRequest true "Interval"
// @Success 200 {object} response.Data[pricingDto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/products/{id}/quote [post]
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	var req pricingDto.QuoteRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	quote, err := handler.pricing.QuoteProduct(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote product")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, quote)
}

// Availability lists the busy intervals of a product.
// @Summary Get busy intervals
// @Description Intervals held by non-failed orders that end after the given moment.
// @Tags Product
// @Produce json
// @Param id path string true "Product ID"
// @Param after query string false "RFC3339 timestamp, defaults to now"
// @Param exclude_order_item_id query string false "Order item to leave out"
// @Success 200 {object} response.Data[[]availabilityDto.BusyIntervalResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/availability [get]
func (handler *Handler) Availability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Availability")
	defer scope.End()

	req := availabilityDto.BusyIntervalsRequest{
		After:              timezone.Now(),
		ExcludeOrderItemID: request.URL.Query().Get(queryParamExcludeOrderItemID),
	}

	if after := request.URL.Query().Get(queryParamAfter); after != "" {
		parsed, err := time.Parse(constant.DateFormat, after)
		if err != nil {
			err = failure.Validation("after must be an RFC3339 timestamp")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		req.After = parsed
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	intervals, err := handler.availability.BusyIntervals(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get busy intervals")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, intervals)
}
