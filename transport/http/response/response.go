package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"forest/shared/constant"
	"forest/shared/failure"
	"forest/shared/logger"
)

// Data wraps every successful payload.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every failed request. Kind and Details come from domain failures.
type Error struct {
	Error   *string        `json:"error,omitempty"`
	Kind    string         `json:"kind,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError renders failures as they are. Any other error becomes its status text so internals never leak.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	var fail *failure.Failure
	if !errors.As(err, &fail) {
		text := http.StatusText(code)
		write(writer, code, Error{Error: &text})

		return
	}

	write(writer, code, Error{Error: &fail.Message, Kind: fail.Kind, Details: fail.Details})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
