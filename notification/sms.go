package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	maxSendAttempts = 3
	retryBackoff    = 500 * time.Millisecond
)

// gatewayRequest 短信网关请求体
type gatewayRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// gatewayResponse 短信网关响应体
type gatewayResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HTTPSender sends messages through an HTTP SMS gateway.
type HTTPSender struct {
	gatewayURL        string
	token             string
	overrideRecipient string // 非空时所有短信都发往该号码（演示环境用）
	httpClient        *http.Client
}

// NewHTTPSender creates a gateway-backed sender
func NewHTTPSender(gatewayURL, token, overrideRecipient string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		gatewayURL:        gatewayURL,
		token:             token,
		overrideRecipient: overrideRecipient,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SendSMS delivers one message with bounded retry. The last error is
// wrapped in ErrDispatchFailed so callers can map it without parsing.
func (s *HTTPSender) SendSMS(ctx context.Context, phone string, message string) error {
	if phone == "" {
		return ErrMissingContact
	}
	if s.overrideRecipient != "" {
		phone = s.overrideRecipient
	}

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		lastErr = s.send(ctx, phone, message)
		if lastErr == nil {
			return nil
		}
		log.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Str("phone", phone).
			Msg("sms send attempt failed")

		if attempt < maxSendAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}
	}

	return fmt.Errorf("%w: %v", ErrDispatchFailed, lastErr)
}

func (s *HTTPSender) send(ctx context.Context, phone string, message string) error {
	body, err := json.Marshal(gatewayRequest{Phone: phone, Message: message})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	var gwResp gatewayResponse
	if err := json.Unmarshal(respBody, &gwResp); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if gwResp.Code != 0 {
		return fmt.Errorf("gateway error %d: %s", gwResp.Code, gwResp.Message)
	}

	return nil
}

// LogSender writes messages to the log instead of a gateway.
// Used in development when no SMS gateway is configured.
type LogSender struct{}

// NewLogSender creates a log-only sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// SendSMS logs the message and reports success
func (s *LogSender) SendSMS(ctx context.Context, phone string, message string) error {
	if phone == "" {
		return ErrMissingContact
	}
	log.Info().
		Str("phone", phone).
		Str("message", message).
		Msg("sms (dev mode, not dispatched)")
	return nil
}
