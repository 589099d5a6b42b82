package push

//go:generate go run go.uber.org/mock/mockgen -source=./push.go -destination=./mocks/push_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"forest/config"
	"forest/infras/otel"
	"forest/shared/constant"
)

const (
	requestTimeout = 15 * time.Second
	statusOK       = "ok"
)

// Notification is a single Expo push message.
type Notification struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound,omitempty"`
}

// Pusher delivers notifications through an Expo-compatible push API.
type Pusher interface {
	Push(ctx context.Context, notification Notification) error
}

type ticket struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type pushResponse struct {
	Data   ticket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

type expo struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Pusher {
	return NewWithClient(cfg, otel, &http.Client{Timeout: requestTimeout})
}

func NewWithClient(cfg *config.Config, otel otel.Otel, client *http.Client) Pusher {
	return &expo{
		config: cfg,
		client: client,
		otel:   otel,
	}
}

func (e *expo) Push(ctx context.Context, notification Notification) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".push.Push")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if notification.Sound == "" {
		notification.Sound = "default"
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("push: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.config.External.Push.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("push: create request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set("Accept", constant.ContentTypeJSON)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("push: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("push: decode response (status %d): %w", resp.StatusCode, err)
	}

	if len(body.Errors) > 0 {
		return fmt.Errorf("push: request rejected: %s", body.Errors[0].Message)
	}

	if resp.StatusCode != http.StatusOK || body.Data.Status != statusOK {
		return fmt.Errorf("push: ticket status %q (status %d): %s", body.Data.Status, resp.StatusCode, body.Data.Message)
	}

	return nil
}
