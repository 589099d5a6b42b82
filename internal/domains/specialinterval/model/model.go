package model

import (
	"time"

	"forest/shared/model"
)

const (
	TableName  = "product_special_intervals"
	EntityName = "special_interval"

	FieldID                     = "id"
	FieldProductID              = "product_id"
	FieldStartDatetime          = "start_datetime"
	FieldEndDatetime            = "end_datetime"
	FieldIsWeekends             = "is_weekends"
	FieldAdditionalPricePerUnit = "additional_price_per_unit"
)

const (
	CacheGetAllSpecialInterval = "special_interval:get_all"
)

// SpecialInterval is a per-unit surcharge over either a date range or every weekend.
type SpecialInterval struct {
	ID                     string     `db:"id"`
	ProductID              string     `db:"product_id"`
	StartDatetime          *time.Time `db:"start_datetime"`
	EndDatetime            *time.Time `db:"end_datetime"`
	IsWeekends             bool       `db:"is_weekends"`
	AdditionalPricePerUnit int64      `db:"additional_price_per_unit"`
	model.Metadata
}

func (s SpecialInterval) IsDateRange() bool {
	return !s.IsWeekends && s.StartDatetime != nil && s.EndDatetime != nil
}
