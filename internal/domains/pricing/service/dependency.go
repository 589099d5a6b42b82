package service

import (
	"slices"
	"time"

	"forest/internal/domains/pricing/model"
	productModel "forest/internal/domains/product/model"
	"forest/shared/failure"
	"forest/shared/interval"
)

// CheckRequired verifies that a booking of the product's required product among siblings
// contains window. Any containing sibling is enough.
func CheckRequired(product productModel.Product, window model.Window, siblings []model.Booking) error {
	if !product.HasRequiredProduct() {
		return nil
	}

	requiredID := *product.RequiredProductID
	found := false

	for _, sibling := range siblings {
		if sibling.ProductID != requiredID {
			continue
		}

		found = true

		if interval.Contains(sibling.Start, sibling.End, window.Start, window.End) {
			return nil
		}
	}

	if !found {
		return failure.MissingRequiredBooking([]string{product.ID}, requiredID)
	}

	return failure.StrictContainmentViolation([]string{product.ID})
}

// CheckAffected re-runs CheckRequired over a whole cart or order. Missing required bookings are
// reported before containment violations and list every dependent of every missing product.
func CheckAffected(products map[string]productModel.Product, bookings []model.Booking) error {
	var (
		missing    []string
		requiredID []string
		violations []string
	)

	for _, booking := range bookings {
		product, ok := products[booking.ProductID]
		if !ok || !product.HasRequiredProduct() {
			continue
		}

		window := model.Window{Start: booking.Start, End: booking.End, FixedEnd: booking.End}

		err := CheckRequired(product, window, bookings)

		switch {
		case err == nil:
		case failure.Is(err, failure.KindMissingRequiredBooking):
			missing = appendUnique(missing, product.ID)
			requiredID = appendUnique(requiredID, *product.RequiredProductID)
		default:
			violations = appendUnique(violations, product.ID)
		}
	}

	if len(missing) > 0 {
		return failure.MissingRequiredBookings(missing, requiredID)
	}

	if len(violations) > 0 {
		return failure.StrictContainmentViolation(violations)
	}

	return nil
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}

	return append(ids, id)
}

// AllowedInterval is the window a dependent product may occupy inside its required booking:
// from the product's earliest hour on the required start day until the required end.
func AllowedInterval(product productModel.Product, required model.Booking) model.Window {
	start := required.Start

	if product.MinHour != nil {
		from := required.Start
		start = time.Date(from.Year(), from.Month(), from.Day(), product.MinHour.Hour(), product.MinHour.Minute(), 0, 0, from.Location())
	}

	return model.Window{Start: start, End: required.End, FixedEnd: required.End}
}

// RequiredBooking picks the earliest booking of the product's required product.
func RequiredBooking(product productModel.Product, bookings []model.Booking) (model.Booking, error) {
	if !product.HasRequiredProduct() {
		return model.Booking{}, failure.Validation("product does not require another product")
	}

	var (
		res   model.Booking
		found bool
	)

	for _, booking := range bookings {
		if booking.ProductID != *product.RequiredProductID {
			continue
		}

		if !found || booking.Start.Before(res.Start) {
			res = booking
			found = true
		}
	}

	if !found {
		return res, failure.MissingRequiredBooking([]string{product.ID}, *product.RequiredProductID)
	}

	return res, nil
}
