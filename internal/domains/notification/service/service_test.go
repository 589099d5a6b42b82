package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "forest/infras/otel/mocks"
	"forest/internal/domains/notification/mocks"
	"forest/internal/domains/notification/model"
	"forest/internal/domains/notification/model/dto"
	"forest/internal/domains/notification/service"
	"forest/shared/constant"
	"forest/shared/failure"
)

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestPushTokenService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockPushToken)
		wantErr   bool
		check     func(t *testing.T, res dto.PushTokenResponse)
	}{
		{
			name: "first registration inserts",
			setupMock: func(repo *mocks.MockPushToken) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PushToken{}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.PushToken) error {
					assert.Equal(t, "admin-1", m.UserID)
					assert.Equal(t, "ExponentPushToken[new]", m.PushToken)
					assert.NotEmpty(t, m.ID)

					return nil
				})
			},
			check: func(t *testing.T, res dto.PushTokenResponse) {
				assert.Equal(t, "ExponentPushToken[new]", res.PushToken)
				assert.Equal(t, "admin-1", res.UserID)
			},
		},
		{
			name: "existing registration is replaced",
			setupMock: func(repo *mocks.MockPushToken) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PushToken{ID: "token-1", UserID: "admin-1", PushToken: "ExponentPushToken[old]"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					assert.Equal(t, "ExponentPushToken[new]", fields[model.FieldPushToken])

					return nil
				})
			},
			check: func(t *testing.T, res dto.PushTokenResponse) {
				assert.Equal(t, "token-1", res.ID)
				assert.Equal(t, "ExponentPushToken[new]", res.PushToken)
			},
		},
		{
			name: "repository error",
			setupMock: func(repo *mocks.MockPushToken) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PushToken{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPushToken(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, otelMocks.NewOtel())

			res, err := svc.Register(adminCtx(), dto.PushTokenRequest{PushToken: "ExponentPushToken[new]"})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestPushTokenService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPushToken(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PushToken{}, nil)

	svc := service.New(repo, otelMocks.NewOtel())

	_, err := svc.Me(adminCtx())
	assert.True(t, failure.Is(err, failure.KindNotFound))
}

func TestPushTokenService_Unregister(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockPushToken)
		wantKind  string
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(repo *mocks.MockPushToken) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PushToken{ID: "token-1", UserID: "admin-1"}, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not registered",
			setupMock: func(repo *mocks.MockPushToken) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PushToken{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "delete error",
			setupMock: func(repo *mocks.MockPushToken) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PushToken{ID: "token-1", UserID: "admin-1"}, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPushToken(ctrl)
			tt.setupMock(repo)

			err := service.New(repo, otelMocks.NewOtel()).Unregister(adminCtx())
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			if tt.wantKind != "" {
				assert.True(t, failure.Is(err, tt.wantKind))
			}
		})
	}
}
