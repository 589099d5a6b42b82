package dto

import (
	"time"

	"forest/internal/domains/specialinterval/model"
	"forest/shared/constant"
	gDto "forest/shared/dto"
	"forest/shared/failure"
	"forest/shared/interval"
	gModel "forest/shared/model"
	"forest/shared/timezone"

	"github.com/google/uuid"
)

type SpecialIntervalRequest struct {
	StartDatetime          *time.Time `json:"start_datetime"            validate:"omitempty"`
	EndDatetime            *time.Time `json:"end_datetime"              validate:"omitempty"`
	IsWeekends             bool       `json:"is_weekends"`
	AdditionalPricePerUnit int64      `json:"additional_price_per_unit" validate:"gte=0"`
}

// Normalize checks the weekend/date-range exclusivity and truncates dates to whole days.
func (r *SpecialIntervalRequest) Normalize() error {
	hasStart := r.StartDatetime != nil
	hasEnd := r.EndDatetime != nil

	switch {
	case !hasStart && !hasEnd && !r.IsWeekends:
		return failure.Validation("either is_weekends or both dates are required")
	case (hasStart || hasEnd) && r.IsWeekends:
		return failure.Validation("is_weekends cannot be combined with dates")
	case hasStart != hasEnd:
		return failure.Validation("both start_datetime and end_datetime are required")
	}

	if r.IsWeekends {
		return nil
	}

	start := interval.TruncateDay(timezone.ToAppTime(*r.StartDatetime))
	end := interval.TruncateDay(timezone.ToAppTime(*r.EndDatetime))

	if !start.Before(end) {
		return failure.Validation("end_datetime must be at least one day after start_datetime")
	}

	r.StartDatetime = &start
	r.EndDatetime = &end

	return nil
}

func (r *SpecialIntervalRequest) ToModel(productID, user string) model.SpecialInterval {
	return model.SpecialInterval{
		ID:                     uuid.NewString(),
		ProductID:              productID,
		StartDatetime:          r.StartDatetime,
		EndDatetime:            r.EndDatetime,
		IsWeekends:             r.IsWeekends,
		AdditionalPricePerUnit: r.AdditionalPricePerUnit,
		Metadata:               gModel.NewMetadata(timezone.Now(), user),
	}
}

// ToUpdateMap writes every column, so switching a rule between kinds clears the stale dates.
func (r *SpecialIntervalRequest) ToUpdateMap(user string) map[string]any {
	return map[string]any{
		model.FieldStartDatetime:          r.StartDatetime,
		model.FieldEndDatetime:            r.EndDatetime,
		model.FieldIsWeekends:             r.IsWeekends,
		model.FieldAdditionalPricePerUnit: r.AdditionalPricePerUnit,
		constant.FieldModifiedAt:          timezone.Now(),
		constant.FieldModifiedBy:          user,
	}
}

type DeleteSpecialIntervalsRequest struct {
	IntervalsIDs []string `json:"intervals_ids" validate:"required,min=1,dive,uuid"`
}

type SpecialIntervalResponse struct {
	ID                     string     `json:"id"`
	ProductID              string     `json:"product_id"`
	StartDatetime          *time.Time `json:"start_datetime"`
	EndDatetime            *time.Time `json:"end_datetime"`
	IsWeekends             bool       `json:"is_weekends"`
	AdditionalPricePerUnit int64      `json:"additional_price_per_unit"`
	gDto.Metadata
}

func (r *SpecialIntervalResponse) FromModel(m model.SpecialInterval) {
	r.ID = m.ID
	r.ProductID = m.ProductID
	r.StartDatetime = m.StartDatetime
	r.EndDatetime = m.EndDatetime
	r.IsWeekends = m.IsWeekends
	r.AdditionalPricePerUnit = m.AdditionalPricePerUnit
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.SpecialInterval) []SpecialIntervalResponse {
	res := make([]SpecialIntervalResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type CreateSpecialIntervalResponse struct {
	ID string `json:"id"`
}
