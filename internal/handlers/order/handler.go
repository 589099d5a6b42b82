package order

import (
	"net/http"

	"forest/infras/otel"
	"forest/internal/domains/order/model"
	"forest/internal/domains/order/model/dto"
	"forest/internal/domains/order/service"
	"forest/shared"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/validator"
	"forest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Checkout)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/{id}", handler.GetOrder)
		routerGroup.Post("/{id}/verify", handler.Verify)
		routerGroup.Post("/{id}/resend-code", handler.ResendCode)
		routerGroup.Post("/{id}/lookup", handler.Lookup)
		routerGroup.Post("/{id}/mark-failed", handler.MarkFailed)

		routerGroup.Get("/{id}/items", handler.GetItems)
		routerGroup.Post("/{id}/items", handler.AddItem)
		routerGroup.Put("/{id}/items/{itemId}", handler.UpdateItem)
		routerGroup.Post("/{id}/items/delete-ids", handler.DeleteItems)

		routerGroup.Post("/{id}/allowed-interval", handler.AllowedInterval)
		routerGroup.Post("/{id}/check-affected", handler.CheckAffected)
	})

	router.Get("/order-items", handler.GetAllItems)
}

// Checkout turns a cart into an order awaiting SMS verification.
// @Summary Checkout a cart
// @Description Re-validates and re-quotes every item, checks party capacity and sends the verification code.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Checkout"
// @Success 201 {object} response.Data[dto.StatusResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/orders [post]
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	var req dto.CheckoutRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	order, err := handler.service.Checkout(ctx, req, shared.ClientIP(request))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("cart_id", req.CartID).Msg("failed to checkout")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Order placed " + order.ID)

	response.WithJSON(writer, http.StatusCreated, order)
}

// GetOrders
// @Summary Get all orders
// @Tags Order
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status" Enums(WAITING_VERIFICATION, PENDING, COMPLETE, FAILED)
// @Param phone query string false "Filter by phone"
// @Success 200 {object} response.Data[dto.GetOrdersResponse]
// @Failure 401 {object} response.Error
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := query.Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if phone := query.Get(model.FieldPhone); phone != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorLike,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, orders)
}

// GetOrder
// @Summary Get an order with its items
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrder")
	defer scope.End()

	order, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, order)
}

// Verify confirms an order with the SMS code.
// @Summary Verify an order
// @Description A wrong code spends an attempt. The last wrong attempt fails the order.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.VerifyRequest true "Phone and code"
// @Success 200 {object} response.Data[dto.StatusResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 410 {object} response.Error
// @Router /v1/orders/{id}/verify [post]
func (handler *Handler) Verify(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()

	var req dto.VerifyRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	order, err := handler.service.Verify(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, order)
}

// ResendCode
// @Summary Resend the verification code
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.ResendCodeRequest true "Phone"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /v1/orders/{id}/resend-code [post]
func (handler *Handler) ResendCode(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResendCode")
	defer scope.End()

	var req dto.ResendCodeRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.ResendCode(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Verification code sent")
}

// Lookup lets the customer read an order with its code.
// @Summary Look up an order by code
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.LookupRequest true "Code"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/lookup [post]
func (handler *Handler) Lookup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Lookup")
	defer scope.End()

	var req dto.LookupRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	order, err := handler.service.Lookup(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, order)
}

// MarkFailed
// @Summary Mark an order as failed
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/orders/{id}/mark-failed [post]
// @Security BearerAuth
func (handler *Handler) MarkFailed(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkFailed")
	defer scope.End()

	if err := handler.service.MarkFailed(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark order as failed")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order marked as failed by user " + user)

	response.WithMessage(writer, http.StatusOK, "Order marked as failed")
}

// GetItems
// @Summary Get order items
// @Tags OrderItem
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[[]dto.OrderItemResponse]
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/items [get]
// @Security BearerAuth
func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	items, err := handler.service.GetItems(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// GetAllItems lists order items across orders.
// @Summary Get all order items
// @Tags OrderItem
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param product_id query string false "Filter by product"
// @Success 200 {object} response.Data[dto.GetOrderItemsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/order-items [get]
// @Security BearerAuth
func (handler *Handler) GetAllItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if productID := request.URL.Query().Get(model.FieldItemProductID); productID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldItemProductID,
			Operator: gDto.FilterOperatorEq,
			Value:    productID,
			Table:    model.ItemTableName,
		})
	}

	items, err := handler.service.GetAllItems(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// AddItem books a product directly into an order.
// @Summary Add an order item
// @Tags OrderItem
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.OrderItemRequest true "Booking"
// @Success 201 {object} response.Data[dto.OrderItemResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/orders/{id}/items [post]
// @Security BearerAuth
func (handler *Handler) AddItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	var req dto.OrderItemRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.AddItem(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to add order item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, item)
}

// UpdateItem re-quotes an order item. The item itself does not conflict with its new interval.
// @Summary Update an order item
// @Tags OrderItem
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param itemId path string true "Order item ID"
// @Param request body dto.OrderItemRequest true "Booking"
// @Success 200 {object} response.Data[dto.OrderItemResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/orders/{id}/items/{itemId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	var req dto.OrderItemRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.UpdateItem(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, constant.RequestParamItemID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to update order item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

// DeleteItems
// @Summary Delete order items
// @Tags OrderItem
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.DeleteItemsRequest true "Item ids"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/items/delete-ids [post]
// @Security BearerAuth
func (handler *Handler) DeleteItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItems")
	defer scope.End()

	var req dto.DeleteItemsRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteItems(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete order items")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Order items deleted successfully")
}

// AllowedInterval
// @Summary Get allowed interval in an order
// @Tags OrderItem
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.AllowedIntervalRequest true "Dependent product"
// @Success 200 {object} response.Data[pricingDto.AllowedIntervalResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/allowed-interval [post]
// @Security BearerAuth
func (handler *Handler) AllowedInterval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AllowedInterval")
	defer scope.End()

	var req dto.AllowedIntervalRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	window, err := handler.service.AllowedInterval(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, window)
}

// CheckAffected
// @Summary Check dependent order items
// @Tags OrderItem
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/check-affected [post]
// @Security BearerAuth
func (handler *Handler) CheckAffected(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAffected")
	defer scope.End()

	if err := handler.service.CheckAffected(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Order items are consistent")
}
