package model

import (
	"time"

	"forest/shared/model"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID           = "id"
	FieldPhone        = "phone"
	FieldName         = "name"
	FieldStatus       = "status"
	FieldCodeHash     = "code_hash"
	FieldAttemptsLeft = "attempts_left"
	FieldResendsLeft  = "resends_left"
	FieldPersons      = "persons"
	FieldTotalPrice   = "total_price"
	FieldIPAddress    = "ip_address"
)

const (
	ItemTableName  = "order_items"
	ItemEntityName = "order_item"

	FieldItemID            = "id"
	FieldItemOrderID       = "order_id"
	FieldItemProductID     = "product_id"
	FieldItemStartDatetime = "start_datetime"
	FieldItemEndDatetime   = "end_datetime"
	FieldItemQuantity      = "quantity"
	FieldItemTotalPrice    = "total_price"
)

type Status string

const (
	StatusWaitingVerification Status = "WAITING_VERIFICATION"
	StatusPending             Status = "PENDING"
	StatusComplete            Status = "COMPLETE"
	StatusFailed              Status = "FAILED"
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusFailed
}

type Order struct {
	ID           string `db:"id"`
	Phone        string `db:"phone"`
	Name         string `db:"name"`
	Status       Status `db:"status"`
	CodeHash     string `db:"code_hash"`
	AttemptsLeft int    `db:"attempts_left"`
	ResendsLeft  int    `db:"resends_left"`
	Persons      int    `db:"persons"`
	TotalPrice   int64  `db:"total_price"`
	IPAddress    string `db:"ip_address"`
	model.Metadata
}

// OrderItem is a frozen booking line. OrderStatus is read through a join and never written.
type OrderItem struct {
	ID            string    `db:"id"`
	OrderID       string    `db:"order_id"`
	ProductID     string    `db:"product_id"`
	StartDatetime time.Time `db:"start_datetime"`
	EndDatetime   time.Time `db:"end_datetime"`
	Quantity      int       `db:"quantity"`
	TotalPrice    int64     `db:"total_price"`
	OrderStatus   Status    `db:"order_status"   table:"orders" column:"status"`
	model.Metadata
}

func (OrderItem) GetJoinQuery() string {
	return "JOIN orders ON orders.id = order_items.order_id"
}
