package failure

import "net/http"

const (
	KindValidation                 = "VALIDATION_ERROR"
	KindInvalidInterval            = "INVALID_INTERVAL"
	KindBookingConflict            = "BOOKING_CONFLICT"
	KindProductUnavailable         = "PRODUCT_UNAVAILABLE"
	KindMissingRequiredBooking     = "MISSING_REQUIRED_BOOKING"
	KindStrictContainmentViolation = "STRICT_CONTAINMENT_VIOLATION"
	KindStalePricing               = "STALE_PRICING"
	KindInsufficientCapacity       = "INSUFFICIENT_CAPACITY"
	KindNotFound                   = "NOT_FOUND"
	KindWrongCode                  = "WRONG_CODE"
	KindCodeAttemptsExhausted      = "CODE_ATTEMPTS_EXHAUSTED"
	KindResendLimitExceeded        = "RESEND_LIMIT_EXCEEDED"
	KindDataIntegrity              = "DATA_INTEGRITY"
)

const (
	DetailProductID         = "product_id"
	DetailProductsIDs       = "products_ids"
	DetailRequiredProductID = "required_product_id"
	DetailRequiredIDs       = "required_products_ids"
	DetailMaxPersons        = "max_persons"
	DetailProducts          = "products"
)

func Validation(message string) error {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func InvalidInterval(productID, message string) error {
	return New(http.StatusBadRequest, KindInvalidInterval, message, map[string]any{DetailProductID: productID})
}

func BookingConflict(productID, message string) error {
	return New(http.StatusConflict, KindBookingConflict, message, map[string]any{DetailProductID: productID})
}

func ProductUnavailable(productID string) error {
	return New(http.StatusConflict, KindProductUnavailable, "product is unavailable", map[string]any{DetailProductID: productID})
}

func MissingRequiredBooking(productIDs []string, requiredProductID string) error {
	return New(http.StatusBadRequest, KindMissingRequiredBooking, "required product is not booked", map[string]any{
		DetailProductsIDs:       productIDs,
		DetailRequiredProductID: requiredProductID,
	})
}

// MissingRequiredBookings reports dependents of several required products at once.
// required_product_id keeps the first required product for single-requirement clients.
func MissingRequiredBookings(productIDs, requiredProductIDs []string) error {
	details := map[string]any{
		DetailProductsIDs: productIDs,
		DetailRequiredIDs: requiredProductIDs,
	}

	if len(requiredProductIDs) > 0 {
		details[DetailRequiredProductID] = requiredProductIDs[0]
	}

	return New(http.StatusBadRequest, KindMissingRequiredBooking, "required product is not booked", details)
}

func StrictContainmentViolation(productIDs []string) error {
	return New(http.StatusBadRequest, KindStrictContainmentViolation, "booking interval exceeds the required product interval", map[string]any{
		DetailProductsIDs: productIDs,
	})
}

func StalePricing() error {
	return New(http.StatusConflict, KindStalePricing, "prices have changed, please review the cart", nil)
}

// InsufficientCapacity carries either the theoretical maximum or the products that could be added.
func InsufficientCapacity(message string, details map[string]any) error {
	return New(http.StatusBadRequest, KindInsufficientCapacity, message, details)
}

func WrongCode() error {
	return New(http.StatusBadRequest, KindWrongCode, "wrong verification code", nil)
}

func CodeAttemptsExhausted() error {
	return New(http.StatusGone, KindCodeAttemptsExhausted,
		"verification attempts exhausted, the order is marked as failed; please call us to verify it", nil)
}

func ResendLimitExceeded() error {
	return New(http.StatusTooManyRequests, KindResendLimitExceeded,
		"verification code resend limit exceeded; please call us if you could not verify the order", nil)
}

// DataIntegrity hides the cause from the client; callers log it first.
func DataIntegrity() error {
	return New(http.StatusInternalServerError, KindDataIntegrity, "internal error", nil)
}
