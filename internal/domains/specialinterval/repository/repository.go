package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/internal/domains/specialinterval/model"
	gDto "forest/shared/dto"
	gRepo "forest/shared/repository"

	"github.com/jmoiron/sqlx"
)

type SpecialInterval interface {
	Insert(ctx context.Context, model model.SpecialInterval) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SpecialInterval, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SpecialInterval, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SpecialInterval, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SpecialInterval]
}

func New(db *postgres.Connection, otel otel.Otel) SpecialInterval {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SpecialInterval](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FilterByProduct matches every rule of a product.
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

// FilterByProducts matches every rule of the given products. ids must not be empty.
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

// FilterConflicting finds rules of a product that would clash with a new one.
// Date ranges clash on strict overlap, weekend rules clash with any other weekend rule.
func FilterConflicting(productID, excludeID string, isWeekends bool, start, end time.Time) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldProductID,
			Value:    productID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldIsWeekends,
			Value:    isWeekends,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if !isWeekends {
		filters = append(filters,
			gDto.Filter{
				ArgName:  "range_end",
				Field:    model.FieldStartDatetime,
				Value:    end,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_start",
				Field:    model.FieldEndDatetime,
				Value:    start,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		)
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
