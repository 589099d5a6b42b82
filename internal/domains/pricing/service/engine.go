package service

import (
	"errors"
	"fmt"
	"time"

	"forest/internal/domains/pricing/model"
	productModel "forest/internal/domains/product/model"
	intervalModel "forest/internal/domains/specialinterval/model"
	"forest/shared/failure"
	"forest/shared/interval"
	"forest/shared/logger"
)

var ErrOverlappingRules = errors.New("more than one date-range rule overlaps the interval")

// Normalize moves hotel bookings to check-in and check-out hours. Other products keep their
// raw interval. Normalizing an already normalized window returns it unchanged.
func Normalize(product productModel.Product, start, end time.Time, checkinHour, checkoutHour int) model.Window {
	if !product.UseHotelBookingTime {
		return model.Window{Start: start, End: end, FixedEnd: end}
	}

	return model.Window{
		Start:    interval.AtClock(start, checkinHour),
		End:      interval.AtClock(end, checkoutHour),
		FixedEnd: interval.AtClock(end, checkinHour),
	}
}

// Units counts billable units in [Start, FixedEnd) and rejects intervals the product cannot be booked for.
func Units(product productModel.Product, window model.Window) (int64, error) {
	step := product.TimeUnit.Duration()
	span := window.FixedEnd.Sub(window.Start)

	if span%step != 0 {
		return 0, failure.InvalidInterval(product.ID, fmt.Sprintf("interval must be a whole number of %s units", product.TimeUnit))
	}

	if !product.UseHotelBookingTime {
		startClock := interval.ClockOf(window.Start)
		endClock := interval.ClockOf(window.End)

		if !interval.InWindow(startClock, product.MinHour, product.MaxHour) || !interval.InWindow(endClock, product.MinHour, product.MaxHour) {
			return 0, failure.InvalidInterval(product.ID, "interval is outside the bookable hours")
		}
	}

	if !window.Start.Before(window.End) {
		return 0, failure.InvalidInterval(product.ID, "start must be before end")
	}

	units := int64(span / step)
	if units < int64(product.MinUnit) || units > int64(product.MaxUnit) {
		return 0, failure.InvalidInterval(product.ID,
			fmt.Sprintf("duration must be between %d and %d %s units", product.MinUnit, product.MaxUnit, product.TimeUnit))
	}

	return units, nil
}

// Extra resolves the special interval surcharge for one unit of quantity.
// A date-range rule wins over the weekend rule; for daily products the weekend rule still
// charges the weekend days the date range does not cover.
func Extra(product productModel.Product, window model.Window, units int64, rules []intervalModel.SpecialInterval) (int64, error) {
	var (
		dateRange *intervalModel.SpecialInterval
		weekend   *intervalModel.SpecialInterval
	)

	for i := range rules {
		rule := &rules[i]

		switch {
		case rule.IsWeekends:
			if weekend != nil {
				return 0, ErrOverlappingRules
			}

			weekend = rule
		case rule.IsDateRange() && interval.Overlaps(*rule.StartDatetime, *rule.EndDatetime, window.Start, window.FixedEnd):
			if dateRange != nil {
				return 0, ErrOverlappingRules
			}

			dateRange = rule
		}
	}

	var extra int64

	switch {
	case dateRange != nil:
		// rule bounds come back in the session zone; weekdays are counted in the window's zone
		loc := window.Start.Location()
		ruleStart, ruleEnd := dateRange.StartDatetime.In(loc), dateRange.EndDatetime.In(loc)
		extra = interval.OverlapAmount(ruleStart, ruleEnd, window.Start, window.FixedEnd, product.TimeUnit) * dateRange.AdditionalPricePerUnit

		if product.TimeUnit == interval.UnitDay && weekend != nil {
			uncovered := max(0, interval.CountWeekendDays(window.Start, window.FixedEnd)-interval.CountWeekendDays(ruleStart, ruleEnd))
			extra += uncovered * weekend.AdditionalPricePerUnit
		}
	case weekend != nil && product.TimeUnit == interval.UnitHour:
		if interval.IsWeekend(window.Start) {
			extra = units * weekend.AdditionalPricePerUnit
		}
	case weekend != nil:
		extra = interval.CountWeekendDays(window.Start, window.FixedEnd) * weekend.AdditionalPricePerUnit
	}

	return extra, nil
}

// Compute validates the window and prices it. It has no side effects besides logging rule corruption.
func Compute(product productModel.Product, window model.Window, quantity int, rules []intervalModel.SpecialInterval) (model.Quote, error) {
	if quantity < 1 {
		return model.Quote{}, failure.Validation("quantity must be greater than or equal to 1")
	}

	units, err := Units(product, window)
	if err != nil {
		return model.Quote{}, err
	}

	extra, err := Extra(product, window, units, rules)
	if err != nil {
		logger.ErrorWithStack(fmt.Errorf("product %s: %w", product.ID, err))

		return model.Quote{}, failure.DataIntegrity()
	}

	multiplier := product.Multiplier(quantity)
	normal := product.UnitPrice * units * multiplier
	extra *= multiplier

	return model.Quote{
		Window:      window,
		Units:       units,
		NormalPrice: normal,
		ExtraPrice:  extra,
		TotalPrice:  normal + extra,
	}, nil
}
