package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/internal/domains/cart/model"
	gDto "forest/shared/dto"
	gRepo "forest/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Cart interface {
	Insert(ctx context.Context, model model.Cart) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Cart, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Cart, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Cart, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type CartItem interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.CartItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CartItem, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.CartItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CartItem, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CartItem, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type cartRepositoryImpl struct {
	gRepo.Repository[model.Cart]
}

type cartItemRepositoryImpl struct {
	gRepo.Repository[model.CartItem]
}

func New(db *postgres.Connection, otel otel.Otel) Cart {
	return &cartRepositoryImpl{
		Repository: gRepo.NewRepository[model.Cart](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func NewItem(db *postgres.Connection, otel otel.Otel) CartItem {
	return &cartItemRepositoryImpl{
		Repository: gRepo.NewRepository[model.CartItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
	}
}

func FilterItemsByCart(cartID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemCartID,
				Value:    cartID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	}
}

func FilterItemByCartAndID(cartID, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemCartID,
				Value:    cartID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldItemID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// FilterOverlappingSiblings matches items of the same cart and product strictly overlapping [start, end).
func FilterOverlappingSiblings(cartID, productID string, start, end time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldItemCartID,
			Value:    cartID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.ItemTableName,
		},
		gDto.Filter{
			Field:    model.FieldItemProductID,
			Value:    productID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.ItemTableName,
		},
		gDto.Filter{
			ArgName:  "range_end",
			Field:    model.FieldItemStartDatetime,
			Value:    end,
			Operator: gDto.FilterOperatorLess,
			Table:    model.ItemTableName,
		},
		gDto.Filter{
			ArgName:  "range_start",
			Field:    model.FieldItemEndDatetime,
			Value:    start,
			Operator: gDto.FilterOperatorGreater,
			Table:    model.ItemTableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldItemID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.ItemTableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
