package validator_test

import (
	"strings"
	"testing"

	"forest/shared/failure"
	"forest/shared/interval"
	"forest/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutRequest struct {
	Phone   string          `json:"phone"     validate:"required,e164"`
	Code    string          `json:"code"      validate:"omitempty,len=4,numeric"`
	Persons int             `json:"persons"   validate:"gt=0,lte=20"`
	Unit    interval.Unit   `json:"time_unit" validate:"required,enum"`
	Hour    *interval.Clock `json:"min_hour"  validate:"omitempty,enum"`
	Status  string          `json:"status"    validate:"omitempty,oneof=PENDING VERIFIED"`
	Note    string          `validate:"omitempty,max=5"`
}

func validRequest() checkoutRequest {
	hour := interval.NewClock(10, 30)

	return checkoutRequest{Phone: "+79990001122", Code: "1234", Persons: 2, Unit: interval.UnitDay, Hour: &hour}
}

func TestValidateStruct(t *testing.T) {
	invalidHour := interval.Clock(-1)

	tests := []struct {
		name    string
		mutate  func(r *checkoutRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*checkoutRequest) {}},
		{name: "missing phone", mutate: func(r *checkoutRequest) { r.Phone = "" }, wantMsg: "phone is required"},
		{name: "local phone", mutate: func(r *checkoutRequest) { r.Phone = "89990001122" }, wantMsg: "phone must be a phone number in international format"},
		{name: "short code", mutate: func(r *checkoutRequest) { r.Code = "123" }, wantMsg: "code must be 4 characters long"},
		{name: "letters in code", mutate: func(r *checkoutRequest) { r.Code = "12a4" }, wantMsg: "code must contain digits only"},
		{name: "no persons", mutate: func(r *checkoutRequest) { r.Persons = 0 }, wantMsg: "persons must be greater than 0"},
		{name: "unknown unit", mutate: func(r *checkoutRequest) { r.Unit = "WEEK" }, wantMsg: "time_unit has an unsupported value"},
		{name: "clock out of range", mutate: func(r *checkoutRequest) { r.Hour = &invalidHour }, wantMsg: "min_hour has an unsupported value"},
		{name: "unknown status", mutate: func(r *checkoutRequest) { r.Status = "LOST" }, wantMsg: "status must be one of PENDING VERIFIED"},
		{name: "field without json tag", mutate: func(r *checkoutRequest) { r.Note = "too long" }, wantMsg: "Note must be less than or equal to 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.Is(err, failure.KindValidation))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateStructJoinsErrors(t *testing.T) {
	req := validRequest()
	req.Phone = ""
	req.Persons = 0

	err := validator.ValidateStruct(&req)

	assert.EqualError(t, err, "phone is required; persons must be greater than 0")
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		req := checkoutRequest{}
		err := validator.Validate(strings.NewReader(`{"phone":"+79990001122","persons":3,"time_unit":"HOUR"}`), &req)

		require.NoError(t, err)
		assert.Equal(t, 3, req.Persons)
		assert.Equal(t, interval.UnitHour, req.Unit)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := checkoutRequest{}
		err := validator.Validate(strings.NewReader(`{"phone":`), &req)

		require.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindValidation))
		assert.Contains(t, err.Error(), "failed to decode request body")
	})

	t.Run("valid json, invalid values", func(t *testing.T) {
		req := checkoutRequest{}
		err := validator.Validate(strings.NewReader(`{"phone":"+79990001122","persons":3,"time_unit":"YEAR"}`), &req)

		assert.EqualError(t, err, "time_unit has an unsupported value")
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("image/png", "oneof=image/png image/jpeg"))
	assert.EqualError(t, validator.ValidateVar("text/html", "oneof=image/png image/jpeg"), "value must be one of image/png image/jpeg")
	assert.NoError(t, validator.ValidateVar(int64(1024), "gt=0,lte=10485760"))
	assert.Error(t, validator.ValidateVar(int64(0), "gt=0,lte=10485760"))
}
