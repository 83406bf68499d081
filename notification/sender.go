package notification

import (
	"context"
	"errors"
)

// 常见发送失败原因
var (
	// ErrMissingContact means the recipient has no usable phone number.
	ErrMissingContact = errors.New("recipient has no phone number")
	// ErrDispatchFailed means every delivery attempt failed.
	ErrDispatchFailed = errors.New("sms dispatch failed after retries")
)

// SMSSender delivers a short message to a phone number.
// Dispatch must succeed before an OTP is persisted, so implementations
// are expected to be synchronous.
type SMSSender interface {
	SendSMS(ctx context.Context, phone string, message string) error
}
