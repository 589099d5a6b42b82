package productfile

import (
	"net/http"

	"forest/infras/otel"
	"forest/internal/domains/productfile/model/dto"
	"forest/internal/domains/productfile/service"
	"forest/shared/constant"
	"forest/shared/failure"
	"forest/shared/validator"
	"forest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFiles = "files"

type Handler struct {
	service service.ProductFile
	otel    otel.Otel
}

func New(service service.ProductFile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers on /products/{id}/files.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.UploadFiles)
	router.Get("/", handler.GetFiles)
	router.Post("/delete-ids", handler.DeleteFiles)
	router.Post("/{fileId}/primary", handler.SetPrimary)
	router.Put("/{fileId}", handler.ReplaceFile)
}

// UploadFiles stores images for a product.
// @Summary Upload product files
// @Description The first file becomes primary when the product has none.
// @Tags ProductFile
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param files formData file true "Images (png, jpeg, webp)"
// @Success 201 {object} response.Data[[]dto.FileResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/files [post]
// @Security BearerAuth
func (handler *Handler) UploadFiles(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFiles")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.UploadFilesRequest{Files: request.MultipartForm.File[formFiles]}
	if err := req.Validate(); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	files, err := handler.service.Upload(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload product files")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, files)
}

// GetFiles
// @Summary Get product files
// @Tags ProductFile
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Data[[]dto.FileResponse]
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/files [get]
func (handler *Handler) GetFiles(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFiles")
	defer scope.End()

	files, err := handler.service.GetAll(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get product files")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, files)
}

// DeleteFiles removes files by id. A deleted primary is replaced by the oldest remaining file.
// @Summary Delete product files
// @Tags ProductFile
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.DeleteFilesRequest true "File ids"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/files/delete-ids [post]
// @Security BearerAuth
func (handler *Handler) DeleteFiles(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFiles")
	defer scope.End()

	var req dto.DeleteFilesRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteIDs(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete product files")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Files deleted successfully")
}

// SetPrimary
// @Summary Make a file primary
// @Tags ProductFile
// @Produce json
// @Param id path string true "Product ID"
// @Param fileId path string true "File ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/files/{fileId}/primary [post]
// @Security BearerAuth
func (handler *Handler) SetPrimary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPrimary")
	defer scope.End()

	err := handler.service.SetPrimary(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, constant.RequestParamFileID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set primary file")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Primary file updated successfully")
}

// ReplaceFile uploads a new blob for an existing file row.
// @Summary Replace a product file
// @Tags ProductFile
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param fileId path string true "File ID"
// @Param file formData file true "Image (png, jpeg, webp)"
// @Success 200 {object} response.Data[dto.FileResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id}/files/{fileId} [put]
// @Security BearerAuth
func (handler *Handler) ReplaceFile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceFile")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	var req dto.ReplaceFileRequest
	if files := request.MultipartForm.File[constant.FormFile]; len(files) > 0 {
		req.File = files[0]
	}

	if err := req.Validate(); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	file, err := handler.service.Replace(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, constant.RequestParamFileID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace product file")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, file)
}
