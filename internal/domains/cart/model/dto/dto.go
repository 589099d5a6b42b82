package dto

import (
	"time"

	"forest/internal/domains/cart/model"
	pricingModel "forest/internal/domains/pricing/model"
	"forest/shared"
	gDto "forest/shared/dto"
	gModel "forest/shared/model"
	"forest/shared/timezone"

	"github.com/google/uuid"
)

type CartRequest struct {
	Persons int `json:"persons" validate:"gte=1"`
}

func (r *CartRequest) ToModel() model.Cart {
	return model.Cart{
		ID:       uuid.NewString(),
		Persons:  r.Persons,
		Metadata: gModel.NewMetadata(timezone.Now(), ""),
	}
}

type CartItemRequest struct {
	ProductID     string    `json:"product_id"     validate:"required,uuid"`
	StartDatetime time.Time `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime"   validate:"required"`
	Quantity      int       `json:"quantity"       validate:"required,gte=1"`
}

// NewItem stores the quoted window, not the raw request times.
func NewItem(cartID string, req CartItemRequest, quote pricingModel.Quote) model.CartItem {
	return model.CartItem{
		ID:            uuid.NewString(),
		CartID:        cartID,
		ProductID:     req.ProductID,
		StartDatetime: quote.Window.Start,
		EndDatetime:   quote.Window.End,
		Quantity:      req.Quantity,
		Price:         quote.TotalPrice,
		Metadata:      gModel.NewMetadata(timezone.Now(), ""),
	}
}

type AllowedIntervalRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

type CartItemResponse struct {
	ID            string    `json:"id"`
	CartID        string    `json:"cart_id"`
	ProductID     string    `json:"product_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Quantity      int       `json:"quantity"`
	Price         int64     `json:"price"`
	gDto.Metadata
}

func (r *CartItemResponse) FromModel(m model.CartItem) {
	r.ID = m.ID
	r.CartID = m.CartID
	r.ProductID = m.ProductID
	r.StartDatetime = timezone.ToAppTime(m.StartDatetime)
	r.EndDatetime = timezone.ToAppTime(m.EndDatetime)
	r.Quantity = m.Quantity
	r.Price = m.Price
	r.Metadata.FromModel(m.Metadata)
}

func ItemsFromModels(models []model.CartItem) []CartItemResponse {
	res := make([]CartItemResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type CartResponse struct {
	ID         string             `json:"id"`
	Persons    int                `json:"persons"`
	TotalPrice int64              `json:"total_price"`
	Items      []CartItemResponse `json:"items"`
	gDto.Metadata
}

func (r *CartResponse) FromModel(m model.Cart, items []model.CartItem) {
	r.ID = m.ID
	r.Persons = m.Persons
	r.Items = ItemsFromModels(items)
	r.TotalPrice = 0

	for _, item := range items {
		r.TotalPrice += item.Price
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetCartsResponse struct {
	Carts     []CartResponse `json:"carts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetCartsResponse) FromModels(models []model.Cart, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Carts = make([]CartResponse, len(models))
	for i, m := range models {
		r.Carts[i].FromModel(m, nil)
	}
}

// ToBookings exposes cart items to the required-product checks.
func ToBookings(items []model.CartItem) []pricingModel.Booking {
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
