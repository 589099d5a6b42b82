package model

import "forest/shared/model"

const (
	TableName  = "push_tokens"
	EntityName = "push_token"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldPushToken = "push_token"
)

// PushToken is the single device token an admin receives order pushes on.
type PushToken struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	PushToken string `db:"push_token"`
	model.Metadata
}

type Channel string

const (
	ChannelSMS  Channel = "SMS"
	ChannelPush Channel = "PUSH"
)

// Event is a delivery request published to the notification topic.
// Push events carry no recipient: they go to every registered token.
type Event struct {
	Channel Channel `json:"channel"`
	Phone   string  `json:"phone,omitempty"`
	Title   string  `json:"title,omitempty"`
	Body    string  `json:"body"`
}
