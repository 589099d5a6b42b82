package model

import (
	"time"

	availabilityModel "forest/internal/domains/availability/model"
	productModel "forest/internal/domains/product/model"
)

// Window is a normalized booking interval. FixedEnd differs from End only for hotel
// bookings, where it extends the checkout day to the check-in hour for unit counting.
type Window struct {
	Start    time.Time
	End      time.Time
	FixedEnd time.Time
}

// Quote is a price breakdown. NormalPrice and ExtraPrice are already scaled by the quantity multiplier.
type Quote struct {
	Window      Window
	Units       int64
	NormalPrice int64
	ExtraPrice  int64
	TotalPrice  int64
}

type QuoteInput struct {
	Product  productModel.Product
	Start    time.Time
	End      time.Time
	Quantity int
	Scope    availabilityModel.Scope
}

// Booking is a placed interval of a product, taken from a cart or an order.
type Booking struct {
	ID        string
	ProductID string
	Start     time.Time
	End       time.Time
}
