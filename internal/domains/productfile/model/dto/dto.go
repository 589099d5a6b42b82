package dto

import (
	"mime/multipart"
	"path"

	"forest/internal/domains/productfile/model"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	gModel "forest/shared/model"
	"forest/shared/timezone"
	"forest/shared/validator"

	"github.com/google/uuid"
)

const allowedContentTypes = "oneof=image/png image/jpeg image/webp"

type UploadFilesRequest struct {
	Files []*multipart.FileHeader `json:"files" swaggerignore:"true" validate:"required,min=1,max=10,dive,required"`
}

func (r *UploadFilesRequest) Validate() error {
	if err := validator.ValidateStruct(r); err != nil {
		return err
	}

	for _, file := range r.Files {
		if err := ValidateFile(file); err != nil {
			return err
		}
	}

	return nil
}

type ReplaceFileRequest struct {
	File *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required"`
}

func (r *ReplaceFileRequest) Validate() error {
	if err := validator.ValidateStruct(r); err != nil {
		return err
	}

	return ValidateFile(r.File)
}

// ValidateFile restricts uploads to images of at most 10 MB.
func ValidateFile(file *multipart.FileHeader) error {
	if err := validator.ValidateVar(file.Header.Get(constant.RequestHeaderContentType), allowedContentTypes); err != nil {
		return err
	}

	return validator.ValidateVar(file.Size, "gt=0,lte=10485760")
}

// ObjectName gives every upload a unique key so replaced blobs never collide.
func ObjectName(file *multipart.FileHeader) string {
	return uuid.NewString() + path.Ext(file.Filename)
}

type DeleteFilesRequest struct {
	FilesIDs []string `json:"files_ids" validate:"required,min=1,dive,uuid"`
}

func NewModel(productID, url string, isPrimary bool, user string) model.ProductFile {
	return model.ProductFile{
		ID:        uuid.NewString(),
		ProductID: productID,
		URL:       url,
		IsPrimary: isPrimary,
		Metadata:  gModel.NewMetadata(timezone.Now(), user),
	}
}

type FileResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
	gDto.Metadata
}

func (r *FileResponse) FromModel(m model.ProductFile) {
	r.ID = m.ID
	r.ProductID = m.ProductID
	r.URL = m.URL
	r.IsPrimary = m.IsPrimary
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.ProductFile) []FileResponse {
	res := make([]FileResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
