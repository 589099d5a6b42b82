package dto

import (
	"forest/internal/domains/product/model"
	fileDto "forest/internal/domains/productfile/model/dto"
	intervalDto "forest/internal/domains/specialinterval/model/dto"
	"forest/shared"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/interval"
	gModel "forest/shared/model"
	"forest/shared/timezone"

	"github.com/google/uuid"
)

// ProductRequest is used for both create and full update.
type ProductRequest struct {
	Title               string          `json:"title"                  validate:"required,max=255"`
	Description         string          `json:"description"            validate:"omitempty"`
	UnitPrice           int64           `json:"unit_price"             validate:"gte=0"`
	TimeUnit            interval.Unit   `json:"time_unit"              validate:"required,enum"`
	MinUnit             int             `json:"min_unit"               validate:"gte=1"`
	MaxUnit             int             `json:"max_unit"               validate:"gtefield=MinUnit"`
	MinHour             *interval.Clock `json:"min_hour"               validate:"omitempty,enum" swaggertype:"string" example:"10:00"`
	MaxHour             *interval.Clock `json:"max_hour"               validate:"omitempty,enum" swaggertype:"string" example:"23:00"`
	UseHotelBookingTime bool            `json:"use_hotel_booking_time"`
	RequiredProductID   *string         `json:"required_product_id"    validate:"omitempty,uuid"`
	IsAvailable         *bool           `json:"is_available"`
	MaxPersons          int             `json:"max_persons"            validate:"gte=0"`
	QuantityMultiplier  bool            `json:"quantity_multiplier"`
}

func (r *ProductRequest) available() bool {
	return r.IsAvailable == nil || *r.IsAvailable
}

// RequiredID treats an empty string as no required product.
func (r *ProductRequest) RequiredID() *string {
	if r.RequiredProductID == nil || *r.RequiredProductID == constant.Empty {
		return nil
	}

	return r.RequiredProductID
}

func (r *ProductRequest) ToModel(user string) model.Product {
	return model.Product{
		ID:                  uuid.NewString(),
		Title:               r.Title,
		Description:         r.Description,
		UnitPrice:           r.UnitPrice,
		TimeUnit:            r.TimeUnit,
		MinUnit:             r.MinUnit,
		MaxUnit:             r.MaxUnit,
		MinHour:             r.MinHour,
		MaxHour:             r.MaxHour,
		UseHotelBookingTime: r.UseHotelBookingTime,
		RequiredProductID:   r.RequiredID(),
		IsAvailable:         r.available(),
		MaxPersons:          r.MaxPersons,
		QuantityMultiplier:  r.QuantityMultiplier,
		Metadata:            gModel.NewMetadata(timezone.Now(), user),
	}
}

// ToUpdateMap lists every column so that nulls and false values are written too.
func (r *ProductRequest) ToUpdateMap(user string) map[string]any {
	return map[string]any{
		model.FieldTitle:               r.Title,
		model.FieldDescription:         r.Description,
		model.FieldUnitPrice:           r.UnitPrice,
		model.FieldTimeUnit:            r.TimeUnit,
		model.FieldMinUnit:             r.MinUnit,
		model.FieldMaxUnit:             r.MaxUnit,
		model.FieldMinHour:             r.MinHour,
		model.FieldMaxHour:             r.MaxHour,
		model.FieldUseHotelBookingTime: r.UseHotelBookingTime,
		model.FieldRequiredProductID:   r.RequiredID(),
		model.FieldIsAvailable:         r.available(),
		model.FieldMaxPersons:          r.MaxPersons,
		model.FieldQuantityMultiplier:  r.QuantityMultiplier,
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       user,
	}
}

type ProductSummary struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	TimeUnit    interval.Unit `json:"time_unit"`
	IsAvailable bool          `json:"is_available"`
	MaxPersons  int           `json:"max_persons"`
}

func (r *ProductSummary) FromModel(m model.Product) {
	r.ID = m.ID
	r.Title = m.Title
	r.TimeUnit = m.TimeUnit
	r.IsAvailable = m.IsAvailable
	r.MaxPersons = m.MaxPersons
}

type ProductResponse struct {
	ID                  string                                `json:"id"`
	Title               string                                `json:"title"`
	Description         string                                `json:"description"`
	UnitPrice           int64                                 `json:"unit_price"`
	TimeUnit            interval.Unit                         `json:"time_unit"`
	MinUnit             int                                   `json:"min_unit"`
	MaxUnit             int                                   `json:"max_unit"`
	MinHour             *interval.Clock                       `json:"min_hour"               validate:"omitempty,enum" swaggertype:"string"`
	MaxHour             *interval.Clock                       `json:"max_hour"               validate:"omitempty,enum" swaggertype:"string"`
	UseHotelBookingTime bool                                  `json:"use_hotel_booking_time"`
	RequiredProductID   *string                               `json:"required_product_id"`
	RequiredProduct     *ProductSummary                       `json:"required_product"`
	IsAvailable         bool                                  `json:"is_available"`
	MaxPersons          int                                   `json:"max_persons"`
	QuantityMultiplier  bool                                  `json:"quantity_multiplier"`
	Files               []fileDto.FileResponse                `json:"files"`
	SpecialIntervals    []intervalDto.SpecialIntervalResponse `json:"special_intervals"`
	gDto.Metadata
}

func (r *ProductResponse) FromModel(m model.Product) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.UnitPrice = m.UnitPrice
	r.TimeUnit = m.TimeUnit
	r.MinUnit = m.MinUnit
	r.MaxUnit = m.MaxUnit
	r.MinHour = m.MinHour
	r.MaxHour = m.MaxHour
	r.UseHotelBookingTime = m.UseHotelBookingTime
	r.RequiredProductID = m.RequiredProductID
	r.IsAvailable = m.IsAvailable
	r.MaxPersons = m.MaxPersons
	r.QuantityMultiplier = m.QuantityMultiplier
	r.Files = []fileDto.FileResponse{}
	r.SpecialIntervals = []intervalDto.SpecialIntervalResponse{}
	r.Metadata.FromModel(m.Metadata)
}

type GetProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProductsResponse) FromModels(models []model.Product, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Products = make([]ProductResponse, len(models))
	for i, m := range models {
		r.Products[i].FromModel(m)
	}
}

type CreateProductResponse struct {
	ID string `json:"id"`
}
