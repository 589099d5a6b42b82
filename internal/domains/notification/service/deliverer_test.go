package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "forest/infras/otel/mocks"
	"forest/infras/push"
	pushMocks "forest/infras/push/mocks"
	smsMocks "forest/infras/sms/mocks"
	"forest/internal/domains/notification/mocks"
	"forest/internal/domains/notification/model"
	"forest/internal/domains/notification/service"
)

func TestDeliverer_Deliver(t *testing.T) {
	tokens := []model.PushToken{
		{ID: "1", UserID: "admin-1", PushToken: "ExponentPushToken[a]"},
		{ID: "2", UserID: "admin-2", PushToken: "ExponentPushToken[b]"},
	}

	tests := []struct {
		name      string
		event     model.Event
		setupMock func(repo *mocks.MockPushToken, sender *smsMocks.MockSender, pusher *pushMocks.MockPusher)
		wantErr   bool
	}{
		{
			name:  "sms",
			event: model.Event{Channel: model.ChannelSMS, Phone: "+79990001122", Body: "code"},
			setupMock: func(_ *mocks.MockPushToken, sender *smsMocks.MockSender, _ *pushMocks.MockPusher) {
				sender.EXPECT().Send(gomock.Any(), "+79990001122", "code").Return(nil)
			},
		},
		{
			name:  "sms failure is dropped",
			event: model.Event{Channel: model.ChannelSMS, Phone: "+79990001122", Body: "code"},
			setupMock: func(_ *mocks.MockPushToken, sender *smsMocks.MockSender, _ *pushMocks.MockPusher) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway down"))
			},
		},
		{
			name:  "push fans out to every token",
			event: model.Event{Channel: model.ChannelPush, Title: "Forest House", Body: "new order"},
			setupMock: func(repo *mocks.MockPushToken, _ *smsMocks.MockSender, pusher *pushMocks.MockPusher) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokens, nil)
				pusher.EXPECT().Push(gomock.Any(), push.Notification{To: "ExponentPushToken[a]", Title: "Forest House", Body: "new order"}).
					Return(errors.New("expired token"))
				pusher.EXPECT().Push(gomock.Any(), push.Notification{To: "ExponentPushToken[b]", Title: "Forest House", Body: "new order"}).
					Return(nil)
			},
		},
		{
			name:  "token read failure",
			event: model.Event{Channel: model.ChannelPush, Body: "new order"},
			setupMock: func(repo *mocks.MockPushToken, _ *smsMocks.MockSender, _ *pushMocks.MockPusher) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name:      "unknown channel",
			event:     model.Event{Channel: "FAX"},
			setupMock: func(*mocks.MockPushToken, *smsMocks.MockSender, *pushMocks.MockPusher) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPushToken(ctrl)
			sender := smsMocks.NewMockSender(ctrl)
			pusher := pushMocks.NewMockPusher(ctrl)
			tt.setupMock(repo, sender, pusher)

			err := service.NewDeliverer(repo, sender, pusher, otelMocks.NewOtel()).Deliver(context.Background(), tt.event)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
