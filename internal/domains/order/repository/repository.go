package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/internal/domains/order/model"
	gDto "forest/shared/dto"
	gRepo "forest/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Order interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type OrderItem interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.OrderItem) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.OrderItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OrderItem, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.OrderItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OrderItem, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OrderItem, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type orderRepositoryImpl struct {
	gRepo.Repository[model.Order]
}

type orderItemRepositoryImpl struct {
	gRepo.Repository[model.OrderItem]
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &orderRepositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func NewItem(db *postgres.Connection, otel otel.Otel) OrderItem {
	return &orderItemRepositoryImpl{
		Repository: gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
	}
}

// FilterWaiting matches an order awaiting verification by id and phone.
func FilterWaiting(id, phone string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPhone,
				Value:    phone,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Value:    model.StatusWaitingVerification,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func FilterItemsByOrder(orderID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemOrderID,
				Value:    orderID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	}
}

func FilterItemsByProduct(productID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemProductID,
				Value:    productID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	}
}

// FilterItemsByOrderAndIDs scopes item ids to one order.
func FilterItemsByOrderAndIDs(orderID string, ids []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemOrderID,
				Value:    orderID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldItemID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    model.ItemTableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// FilterActiveItems matches the product's items of non-failed orders ending after after.
// A zero after matches every item; a non-empty excludeID skips that item.
func FilterActiveItems(productID string, after time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldItemProductID,
			Value:    productID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.ItemTableName,
		},
		gDto.Filter{
			ArgName:  "order_status",
			Field:    model.FieldStatus,
			Value:    model.StatusFailed,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		},
	}

	if !after.IsZero() {
		filters = append(filters, gDto.Filter{
			ArgName:  "after",
			Field:    model.FieldItemEndDatetime,
			Value:    after,
			Operator: gDto.FilterOperatorGreater,
			Table:    model.ItemTableName,
		})
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

// FilterOverlappingItems narrows FilterActiveItems to items strictly overlapping [start, end).
func FilterOverlappingItems(productID string, start, end time.Time, excludeID string) gDto.FilterGroup {
	filter := FilterActiveItems(productID, time.Time{}, excludeID)
	filter.Filters = append(filter.Filters,
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
	)

	return filter
}
