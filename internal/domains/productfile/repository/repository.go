package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/internal/domains/productfile/model"
	gDto "forest/shared/dto"
	gRepo "forest/shared/repository"

	"github.com/jmoiron/sqlx"
)

type ProductFile interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.ProductFile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ProductFile, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.ProductFile, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ProductFile, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ProductFile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ProductFile]
}

func New(db *postgres.Connection, otel otel.Otel) ProductFile {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ProductFile](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func FilterByProduct(productID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProductID,
				Value:    productID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// FilterByProducts matches the files of the given products. ids must not be empty.
func FilterByProducts(productIDs []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProductID,
				Value:    productIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}
}

// FilterByProductAndIDs scopes ids to one product.
func FilterByProductAndIDs(productID string, ids []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProductID,
				Value:    productID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func FilterByURL(url string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldURL,
				Value:    url,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// FilterPrimary uses its own argument name so it can guard an update of is_primary.
func FilterPrimary(productID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProductID,
				Value:    productID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "primary_flag",
				Field:    model.FieldIsPrimary,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
