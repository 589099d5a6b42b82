package notification

import (
	"net/http"

	"forest/infras/otel"
	"forest/internal/domains/notification/model/dto"
	"forest/internal/domains/notification/service"
	"forest/shared/constant"
	"forest/shared/validator"
	"forest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PushToken
	otel    otel.Otel
}

func New(service service.PushToken, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/push-tokens", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Register)
		routerGroup.Get("/me", handler.Me)
		routerGroup.Delete("/me", handler.Unregister)
	})
}

// Register stores the caller's push token. A second call replaces it.
// @Summary Register a push token
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.PushTokenRequest true "Push token"
// @Success 200 {object} response.Data[dto.PushTokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/push-tokens [post]
// @Security BearerAuth
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	var req dto.PushTokenRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	token, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register push token")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, token)
}

// Me
// @Summary Get my push token
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Data[dto.PushTokenResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/push-tokens/me [get]
// @Security BearerAuth
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	token, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, token)
}

// Unregister
// @Summary Remove my push token
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/push-tokens/me [delete]
// @Security BearerAuth
func (handler *Handler) Unregister(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Unregister")
	defer scope.End()

	if err := handler.service.Unregister(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unregister push token")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Push token removed")
}
