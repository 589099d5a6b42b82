package specialinterval

import (
	"net/http"

	"forest/infras/otel"
	"forest/internal/domains/specialinterval/model/dto"
	"forest/internal/domains/specialinterval/service"
	"forest/shared/constant"
	"forest/shared/validator"
	"forest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamIntervalID = "intervalId"

type Handler struct {
	service service.SpecialInterval
	otel    otel.Otel
}

func New(service service.SpecialInterval, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers on /products/{id}/special-intervals.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateSpecialInterval)
	router.Get("/", handler.GetSpecialIntervals)
	router.Post("/delete-ids", handler.DeleteSpecialIntervals)
	router.Get("/{intervalId}", handler.GetSpecialInterval)
	router.Put("/{intervalId}", handler.UpdateSpecialInterval)
	router.Delete("/{intervalId}", handler.DeleteSpecialInterval)
}

// CreateSpecialInterval adds a surcharge rule to a product.
// @Summary Create a special interval
// @Description Either a weekend rule or a date range. Date ranges of one product may not overlap.
// @Tags SpecialInterval
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.SpecialIntervalRequest true "Special interval"
// @Success 201 {object} response.Data[dto.CreateSpecialIntervalResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/special-intervals [post]
// @Security BearerAuth
func (handler *Handler) CreateSpecialInterval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSpecialInterval")
	defer scope.End()

	var req dto.SpecialIntervalRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create special interval")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, dto.CreateSpecialIntervalResponse{ID: id})
}

// GetSpecialIntervals lists a product's surcharge rules.
// @Summary Get special intervals
// @Tags SpecialInterval
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Data[[]dto.SpecialIntervalResponse]
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/special-intervals [get]
func (handler *Handler) GetSpecialIntervals(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecialIntervals")
	defer scope.End()

	intervals, err := handler.service.GetAll(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get special intervals")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, intervals)
}

// GetSpecialInterval
// @Summary Get a special interval
// @Tags SpecialInterval
// @Produce json
// @Param id path string true "Product ID"
// @Param intervalId path string true "Special interval ID"
// @Success 200 {object} response.Data[dto.SpecialIntervalResponse]
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/special-intervals/{intervalId} [get]
func (handler *Handler) GetSpecialInterval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecialInterval")
	defer scope.End()

	interval, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, requestParamIntervalID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get special interval")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, interval)
}

// UpdateSpecialInterval
// @Summary Update a special interval
// @Description The record itself is left out of the overlap and single-weekend checks.
// @Tags SpecialInterval
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param intervalId path string true "Special interval ID"
// @Param request body dto.SpecialIntervalRequest true "Special interval"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/special-intervals/{intervalId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSpecialInterval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSpecialInterval")
	defer scope.End()

	var req dto.SpecialIntervalRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	err := handler.service.Update(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, requestParamIntervalID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update special interval")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Special interval updated successfully")
}

// DeleteSpecialInterval
// @Summary Delete a special interval
// @Tags SpecialInterval
// @Produce json
// @Param id path string true "Product ID"
// @Param intervalId path string true "Special interval ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/special-intervals/{intervalId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSpecialInterval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSpecialInterval")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, requestParamIntervalID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete special interval")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Special interval deleted successfully")
}

// DeleteSpecialIntervals removes several rules of one product at once.
// @Summary Bulk delete special intervals
// @Tags SpecialInterval
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.DeleteSpecialIntervalsRequest true "Interval ids"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/special-intervals/delete-ids [post]
// @Security BearerAuth
func (handler *Handler) DeleteSpecialIntervals(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSpecialIntervals")
	defer scope.End()

	var req dto.DeleteSpecialIntervalsRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteIDs(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete special intervals")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Special intervals deleted successfully")
}
