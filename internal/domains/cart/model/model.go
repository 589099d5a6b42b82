package model

import (
	"time"

	"forest/shared/model"
)

const (
	TableName  = "carts"
	EntityName = "cart"

	FieldID      = "id"
	FieldPersons = "persons"
)

const (
	ItemTableName  = "cart_items"
	ItemEntityName = "cart_item"

	FieldItemID            = "id"
	FieldItemCartID        = "cart_id"
	FieldItemProductID     = "product_id"
	FieldItemStartDatetime = "start_datetime"
	FieldItemEndDatetime   = "end_datetime"
	FieldItemQuantity      = "quantity"
	FieldItemPrice         = "price"
)

type Cart struct {
	ID      string `db:"id"`
	Persons int    `db:"persons"`
	model.Metadata
}

// CartItem stores the normalized interval and the price quoted when it was added.
type CartItem struct {
	ID            string    `db:"id"`
	CartID        string    `db:"cart_id"`
	ProductID     string    `db:"product_id"`
	StartDatetime time.Time `db:"start_datetime"`
	EndDatetime   time.Time `db:"end_datetime"`
	Quantity      int       `db:"quantity"`
	Price         int64     `db:"price"`
	model.Metadata
}
