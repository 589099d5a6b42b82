package cart

import (
	"net/http"

	"forest/infras/otel"
	"forest/internal/domains/cart/model/dto"
	"forest/internal/domains/cart/service"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/validator"
	"forest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cart
	otel    otel.Otel
}

func New(service service.Cart, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/carts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCart)
		routerGroup.Get("/", handler.GetCarts)
		routerGroup.Get("/{id}", handler.GetCart)
		routerGroup.Patch("/{id}", handler.UpdateCart)
		routerGroup.Delete("/{id}", handler.DeleteCart)

		routerGroup.Get("/{id}/items", handler.GetItems)
		routerGroup.Post("/{id}/items", handler.AddItem)
		routerGroup.Put("/{id}/items/{itemId}", handler.UpdateItem)
		routerGroup.Delete("/{id}/items/{itemId}", handler.DeleteItem)

		routerGroup.Post("/{id}/allowed-interval", handler.AllowedInterval)
		routerGroup.Post("/{id}/check-affected", handler.CheckAffected)
	})
}

// CreateCart opens an anonymous cart. The cart id is the only credential the client holds.
// @Summary Create a cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.CartRequest true "Party size"
// @Success 201 {object} response.Data[dto.CartResponse]
// @Failure 400 {object} response.Error
// @Router /v1/carts [post]
func (handler *Handler) CreateCart(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCart")
	defer scope.End()

	var req dto.CartRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	cart, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create cart")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cart created " + cart.ID)

	response.WithJSON(writer, http.StatusCreated, cart)
}

// GetCarts
// @Summary Get all carts
// @Tags Cart
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCartsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/carts [get]
// @Security BearerAuth
func (handler *Handler) GetCarts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCarts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	carts, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get carts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, carts)
}

// GetCart
// @Summary Get a cart with its items
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id} [get]
func (handler *Handler) GetCart(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	cart, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cart")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, cart)
}

// UpdateCart sets the party size.
// @Summary Update cart persons
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.CartRequest true "Party size"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id} [patch]
func (handler *Handler) UpdateCart(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCart")
	defer scope.End()

	var req dto.CartRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdatePersons(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cart")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Cart updated successfully")
}

// DeleteCart
// @Summary Delete a cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id} [delete]
func (handler *Handler) DeleteCart(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCart")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete cart")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Cart deleted successfully")
}

// GetItems
// @Summary Get cart items
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Data[[]dto.CartItemResponse]
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id}/items [get]
func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	items, err := handler.service.GetItems(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cart items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// AddItem quotes a booking and puts it into the cart.
// @Summary Add a cart item
// @Description Checks availability, required-product containment and overlap with the other items.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.CartItemRequest true "Booking"
// @Success 201 {object} response.Data[dto.CartItemResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/carts/{id}/items [post]
func (handler *Handler) AddItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	var req dto.CartItemRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.AddItem(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to add cart item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, item)
}

// UpdateItem
// @Summary Update a cart item
// @Description Replaces the item with a freshly checked and quoted one.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param itemId path string true "Cart item ID"
// @Param request body dto.CartItemRequest true "Booking"
// @Success 200 {object} response.Data[dto.CartItemResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/carts/{id}/items/{itemId} [put]
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	var req dto.CartItemRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.UpdateItem(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, constant.RequestParamItemID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to update cart item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

// DeleteItem
// @Summary Delete a cart item
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id}/items/{itemId} [delete]
func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	if err := handler.service.DeleteItem(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, constant.RequestParamItemID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete cart item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Cart item deleted successfully")
}

// AllowedInterval returns the window a dependent product may occupy in this cart.
// @Summary Get allowed interval
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.AllowedIntervalRequest true "Dependent product"
// @Success 200 {object} response.Data[pricingDto.AllowedIntervalResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id}/allowed-interval [post]
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

// CheckAffected re-validates required-product containment across the cart.
// @Summary Check dependent items
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id}/check-affected [post]
func (handler *Handler) CheckAffected(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAffected")
	defer scope.End()

	if err := handler.service.CheckAffected(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Cart items are consistent")
}
