package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the HTTP layer can render as is. Code is the response status,
// Kind names the domain error and Details carries field-tagged context for the client.
type Failure struct {
	Code    int            `json:"code"`
	Kind    string         `json:"kind,omitempty"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// New returns a Failure of the given kind.
func New(code int, kind, message string, details map[string]any) error {
	return &Failure{
		Code:    code,
		Kind:    kind,
		Message: message,
		Details: details,
	}
}

// BadRequest turns err into a validation failure. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, KindValidation, err.Error(), nil)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, KindValidation, msg, nil)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, "", msg, nil)
}

// NotFound reports a missing entity. The message is the entity name.
func NotFound(entityName string) error {
	return New(http.StatusNotFound, KindNotFound, entityName, nil)
}

func Conflict(message string) error {
	return New(http.StatusConflict, "", message, nil)
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind string) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}

// GetCode returns the status of a Failure anywhere in the chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
