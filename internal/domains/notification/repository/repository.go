package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/internal/domains/notification/model"
	gDto "forest/shared/dto"
	gRepo "forest/shared/repository"
)

type PushToken interface {
	Insert(ctx context.Context, model model.PushToken) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PushToken, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PushToken, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PushToken]
}

func New(db *postgres.Connection, otel otel.Otel) PushToken {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PushToken](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func FilterByUser(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
