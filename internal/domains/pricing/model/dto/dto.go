package dto

import (
	"time"

	"forest/internal/domains/pricing/model"
)

type QuoteRequest struct {
	StartDatetime      time.Time `json:"start_datetime"        validate:"required"`
	EndDatetime        time.Time `json:"end_datetime"          validate:"required"`
	Quantity           int       `json:"quantity"              validate:"required,gte=1"`
	ExcludeOrderItemID string    `json:"exclude_order_item_id" validate:"omitempty,uuid"`
}

type QuoteResponse struct {
	NormalPrice   int64     `json:"normal_price"`
	ExtraPrice    int64     `json:"extra_price"`
	TotalPrice    int64     `json:"total_price"`
	Units         int64     `json:"units"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

func (r *QuoteResponse) FromModel(m model.Quote) {
	r.NormalPrice = m.NormalPrice
	r.ExtraPrice = m.ExtraPrice
	r.TotalPrice = m.TotalPrice
	r.Units = m.Units
	r.StartDatetime = m.Window.Start
	r.EndDatetime = m.Window.End
}

type AllowedIntervalResponse struct {
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}
