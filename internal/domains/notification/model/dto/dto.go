package dto

import (
	"forest/internal/domains/notification/model"
	gDto "forest/shared/dto"
	gModel "forest/shared/model"
	"forest/shared/timezone"

	"github.com/google/uuid"
)

type PushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required,max=255"`
}

func (r *PushTokenRequest) ToModel(userID string) model.PushToken {
	return model.PushToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		PushToken: r.PushToken,
		Metadata:  gModel.NewMetadata(timezone.Now(), userID),
	}
}

type PushTokenResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	PushToken string `json:"push_token"`
	gDto.Metadata
}

func (r *PushTokenResponse) FromModel(m model.PushToken) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.PushToken = m.PushToken
	r.Metadata.FromModel(m.Metadata)
}
