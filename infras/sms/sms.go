package sms

//go:generate go run go.uber.org/mock/mockgen -source=./sms.go -destination=./mocks/sms_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forest/config"
	"forest/infras/otel"
	"forest/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	requestTimeout = 15 * time.Second
	sendPath       = "/sms/send"
)

// Sender delivers text messages through an SmsAero-compatible gateway.
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}

type gatewayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type smsAero struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Sender {
	return NewWithClient(cfg, otel, &http.Client{Timeout: requestTimeout})
}

func NewWithClient(cfg *config.Config, otel otel.Otel, client *http.Client) Sender {
	return &smsAero{
		config: cfg,
		client: client,
		otel:   otel,
	}
}

func (s *smsAero) Send(ctx context.Context, phone, text string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sms.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	query.Set("number", NormalizePhone(phone))
	query.Set("text", text)
	query.Set("sign", s.config.External.SMS.Sign)

	endpoint := strings.TrimSuffix(s.config.External.SMS.Endpoint, "/") + sendPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("sms: create request: %w", err)
	}

	req.SetBasicAuth(s.config.External.SMS.Login, s.config.External.SMS.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("sms: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !body.Success {
		return fmt.Errorf("sms: gateway rejected message (status %d): %s", resp.StatusCode, body.Message)
	}

	log.Info().Str("phone", maskPhone(phone)).Msg("sms sent")

	return nil
}

// NormalizePhone keeps digits only, which is the number format the gateway accepts.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, phone)
}

func maskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) <= 4 {
		return digits
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
