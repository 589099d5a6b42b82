package dto

import (
	"strings"
	"time"
	"unicode"

	"forest/internal/domains/order/model"
	pricingModel "forest/internal/domains/pricing/model"
	"forest/shared"
	gDto "forest/shared/dto"
	gModel "forest/shared/model"
	"forest/shared/timezone"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	CartID    string `json:"cart_id"   validate:"required,uuid"`
	Phone     string `json:"phone"     validate:"required,e164"`
	Name      string `json:"name"      validate:"required,max=255"`
	Agreement bool   `json:"agreement"`
}

// ToModel builds a fresh order awaiting verification.
func (r *CheckoutRequest) ToModel(ip string, persons int, codeHash string, attempts, resends int) model.Order {
	return model.Order{
		ID:           uuid.NewString(),
		Phone:        r.Phone,
		Name:         Capitalize(r.Name),
		Status:       model.StatusWaitingVerification,
		CodeHash:     codeHash,
		AttemptsLeft: attempts,
		ResendsLeft:  resends,
		Persons:      persons,
		IPAddress:    ip,
		Metadata:     gModel.NewMetadata(timezone.Now(), ""),
	}
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

type VerifyRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code"  validate:"required,len=4,numeric"`
}

type ResendCodeRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type LookupRequest struct {
	Code string `json:"code" validate:"required,len=4,numeric"`
}

type OrderItemRequest struct {
	ProductID     string    `json:"product_id"     validate:"required,uuid"`
	StartDatetime time.Time `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime"   validate:"required"`
	Quantity      int       `json:"quantity"       validate:"required,gte=1"`
}

type DeleteItemsRequest struct {
	ItemsIDs []string `json:"items_ids" validate:"required,min=1,dive,uuid"`
}

type AllowedIntervalRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// NewItem freezes a quoted booking as an order line.
func NewItem(orderID, productID string, quantity int, quote pricingModel.Quote, user string) model.OrderItem {
	return model.OrderItem{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		ProductID:     productID,
		StartDatetime: quote.Window.Start,
		EndDatetime:   quote.Window.End,
		Quantity:      quantity,
		TotalPrice:    quote.TotalPrice,
		Metadata:      gModel.NewMetadata(timezone.Now(), user),
	}
}

type OrderItemResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	ProductID     string    `json:"product_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Quantity      int       `json:"quantity"`
	TotalPrice    int64     `json:"total_price"`
	gDto.Metadata
}

func (r *OrderItemResponse) FromModel(m model.OrderItem) {
	r.ID = m.ID
	r.OrderID = m.OrderID
	r.ProductID = m.ProductID
	r.StartDatetime = timezone.ToAppTime(m.StartDatetime)
	r.EndDatetime = timezone.ToAppTime(m.EndDatetime)
	r.Quantity = m.Quantity
	r.TotalPrice = m.TotalPrice
	r.Metadata.FromModel(m.Metadata)
}

func ItemsFromModels(models []model.OrderItem) []OrderItemResponse {
	res := make([]OrderItemResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type GetOrderItemsResponse struct {
	Items     []OrderItemResponse `json:"items"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetOrderItemsResponse) FromModels(models []model.OrderItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Items = ItemsFromModels(models)
}

// StatusResponse never carries the verification code.
type StatusResponse struct {
	ID     string       `json:"id"`
	Status model.Status `json:"status"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	Phone        string              `json:"phone"`
	Name         string              `json:"name"`
	Status       model.Status        `json:"status"`
	AttemptsLeft int                 `json:"attempts_left"`
	ResendsLeft  int                 `json:"resends_left"`
	Persons      int                 `json:"persons"`
	TotalPrice   int64               `json:"total_price"`
	IPAddress    string              `json:"ip_address"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(m model.Order, items []model.OrderItem) {
	r.ID = m.ID
	r.Phone = m.Phone
	r.Name = m.Name
	r.Status = m.Status
	r.AttemptsLeft = m.AttemptsLeft
	r.ResendsLeft = m.ResendsLeft
	r.Persons = m.Persons
	r.TotalPrice = m.TotalPrice
	r.IPAddress = m.IPAddress
	r.Metadata.FromModel(m.Metadata)

	if items != nil {
		r.Items = ItemsFromModels(items)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, m := range models {
		r.Orders[i].FromModel(m, nil)
	}
}

// ToBookings exposes order items to the required-product checks.
func ToBookings(items []model.OrderItem) []pricingModel.Booking {
	res := make([]pricingModel.Booking, len(items))
	for i, item := range items {
		res[i] = pricingModel.Booking{
			ID:        item.ID,
			ProductID: item.ProductID,
			Start:     item.StartDatetime,
			End:       item.EndDatetime,
		}
	}

	return res
}

// TotalPrice sums the frozen line totals.
func TotalPrice(items []model.OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.TotalPrice
	}

	return total
}
