package dto

import (
	"forest/shared/constant"
	"forest/shared/model"
	"forest/shared/timezone"
)

// Metadata is the audit block of a response. Timestamps are rendered in the booking location.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = timezone.Format(metadata.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(metadata.ModifiedAt, constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}
