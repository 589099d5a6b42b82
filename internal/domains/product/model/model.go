package model

import (
	"forest/shared/interval"
	"forest/shared/model"
)

const (
	TableName  = "products"
	EntityName = "product"

	FieldID                  = "id"
	FieldTitle               = "title"
	FieldDescription         = "description"
	FieldUnitPrice           = "unit_price"
	FieldTimeUnit            = "time_unit"
	FieldMinUnit             = "min_unit"
	FieldMaxUnit             = "max_unit"
	FieldMinHour             = "min_hour"
	FieldMaxHour             = "max_hour"
	FieldUseHotelBookingTime = "use_hotel_booking_time"
	FieldRequiredProductID   = "required_product_id"
	FieldIsAvailable         = "is_available"
	FieldMaxPersons          = "max_persons"
	FieldQuantityMultiplier  = "quantity_multiplier"
)

// Cache prefixes for product reads. Special interval and file writes clear them too,
// because product responses embed both.
const (
	CacheGetProduct    = "product:get"
	CacheGetAllProduct = "product:get_all"
	CacheCountProduct  = "product:count"
)

type Product struct {
	ID                  string          `db:"id"`
	Title               string          `db:"title"`
	Description         string          `db:"description"`
	UnitPrice           int64           `db:"unit_price"`
	TimeUnit            interval.Unit   `db:"time_unit"`
	MinUnit             int             `db:"min_unit"`
	MaxUnit             int             `db:"max_unit"`
	MinHour             *interval.Clock `db:"min_hour"`
	MaxHour             *interval.Clock `db:"max_hour"`
	UseHotelBookingTime bool            `db:"use_hotel_booking_time"`
	RequiredProductID   *string         `db:"required_product_id"`
	IsAvailable         bool            `db:"is_available"`
	MaxPersons          int             `db:"max_persons"`
	QuantityMultiplier  bool            `db:"quantity_multiplier"`
	model.Metadata
}

func (p Product) HasRequiredProduct() bool {
	return p.RequiredProductID != nil && *p.RequiredProductID != ""
}

// Multiplier is the quantity a quote is scaled by.
func (p Product) Multiplier(quantity int) int64 {
	if p.QuantityMultiplier {
		return int64(quantity)
	}

	return 1
}

// SumMaxPersons adds up the capacity of the products that gate occupancy.
func SumMaxPersons(products []Product) int {
	total := 0

	for _, product := range products {
		if product.MaxPersons > 0 {
			total += product.MaxPersons
		}
	}

	return total
}
