package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/internal/domains/product/model"
	gDto "forest/shared/dto"
	gRepo "forest/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Product interface {
	Insert(ctx context.Context, model model.Product) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Product, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Product, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Product, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Product, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Product]
}

func New(db *postgres.Connection, otel otel.Otel) Product {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Product](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FilterCapacityProducts selects the products that contribute to party-size checks.
func FilterCapacityProducts() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldMaxPersons,
				Value:    0,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsAvailable,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// FilterByRequiredProduct matches the products that depend on requiredID.
func FilterByRequiredProduct(requiredID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequiredProductID,
				Value:    requiredID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
