package dto

import (
	"time"

	"forest/internal/domains/availability/model"
)

type BusyIntervalsRequest struct {
	After              time.Time `json:"after"`
	ExcludeOrderItemID string    `json:"exclude_order_item_id" validate:"omitempty,uuid"`
}

type BusyIntervalResponse struct {
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

func FromModels(models []model.BusyInterval) []BusyIntervalResponse {
	res := make([]BusyIntervalResponse, len(models))
	for i, m := range models {
		res[i] = BusyIntervalResponse{StartDatetime: m.Start, EndDatetime: m.End}
	}

	return res
}
