package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPSenderSuccess(t *testing.T) {
	var gotPhone, gotMessage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req gatewayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPhone = req.Phone
		gotMessage = req.Message

		json.NewEncoder(w).Encode(gatewayResponse{Code: 0})
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "test-token", "", 5*time.Second)
	err := sender.SendSMS(context.Background(), "2145550101", "your code is 123456")
	require.NoError(t, err)
	require.Equal(t, "2145550101", gotPhone)
	require.Equal(t, "your code is 123456", gotMessage)
}

func TestHTTPSenderOverrideRecipient(t *testing.T) {
	var gotPhone string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gatewayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPhone = req.Phone
		json.NewEncoder(w).Encode(gatewayResponse{Code: 0})
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "test-token", "2145559999", 5*time.Second)
	err := sender.SendSMS(context.Background(), "2145550101", "hello")
	require.NoError(t, err)
	require.Equal(t, "2145559999", gotPhone)
}

func TestHTTPSenderRetriesThenFails(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "test-token", "", 5*time.Second)
	err := sender.SendSMS(context.Background(), "2145550101", "hello")
	require.ErrorIs(t, err, ErrDispatchFailed)
	require.EqualValues(t, maxSendAttempts, atomic.LoadInt32(&attempts))
}

func TestHTTPSenderRecoversOnRetry(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(gatewayResponse{Code: 0})
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "test-token", "", 5*time.Second)
	err := sender.SendSMS(context.Background(), "2145550101", "hello")
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&attempts))
}

func TestSendSMSMissingContact(t *testing.T) {
	sender := NewHTTPSender("http://localhost:1", "token", "", time.Second)
	err := sender.SendSMS(context.Background(), "", "hello")
	require.ErrorIs(t, err, ErrMissingContact)

	logSender := NewLogSender()
	err = logSender.SendSMS(context.Background(), "", "hello")
	require.ErrorIs(t, err, ErrMissingContact)
}

func TestHTTPSenderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gatewayResponse{Code: 42, Message: "quota exceeded"})
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "test-token", "", 5*time.Second)
	err := sender.SendSMS(context.Background(), "2145550101", "hello")
	require.ErrorIs(t, err, ErrDispatchFailed)
	require.ErrorContains(t, err, "quota exceeded")
}
