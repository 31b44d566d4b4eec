package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"analysis_billing/internal/adapter/http/handlers/mocks"
	"analysis_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newWebhookRouter(uc usecase.IWebhookUseCase) *gin.Engine {
	h := NewWebhookHandler(uc)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.POST("/v1/webhooks/mercadopago", h.HandlePixWebhook)
	return r
}

// signedHeaders computes a valid x-signature for the given body, mirroring
// the gateway's signing scheme.
func signedHeaders(t *testing.T, body []byte, requestID, ts, secret string) (string, string) {
	t.Helper()
	manifest := ""
	// the webhook body in these tests always carries a numeric data.id
	var probe struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Data.ID != 0 {
		manifest += fmt.Sprintf("id:%d;", probe.Data.ID)
	}
	if requestID != "" {
		manifest += "request-id:" + requestID + ";"
	}
	manifest += "ts:" + ts + ";"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	v1 := hex.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("ts=%s,v1=%s", ts, v1), requestID
}

func TestWebhookHandler_HandlePixWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const secret = "test-secret"
	body := []byte(`{"type":"payment","action":"payment.updated","data":{"id":123456}}`)

	t.Run("non-post method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIWebhookUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/mercadopago", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
	})

	t.Run("secret not configured", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIWebhookUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "OK - Internal Server Configuration Error" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIWebhookUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIWebhookUseCase(ctrl))

		header, requestID := signedHeaders(t, body, "req-1", "1700000000", "wrong-secret")
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewReader(body))
		req.Header.Set("x-signature", header)
		req.Header.Set("x-request-id", requestID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if w.Body.String() != "Forbidden: Invalid signature" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("valid signature with unparsable body", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIWebhookUseCase(ctrl))

		// not valid JSON, so the manifest carries no id segment
		raw := []byte(`{"type":`)
		header, requestID := signedHeaders(t, raw, "req-1", "1700000000", secret)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewReader(raw))
		req.Header.Set("x-signature", header)
		req.Header.Set("x-request-id", requestID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("premium unlocked", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(uc)

		uc.EXPECT().ProcessPaymentNotification(gomock.Any(), gomock.Any()).Return(usecase.OutcomeUnlocked)

		header, requestID := signedHeaders(t, body, "req-1", "1700000000", secret)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewReader(body))
		req.Header.Set("x-signature", header)
		req.Header.Set("x-request-id", requestID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "OK" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("fetch failure still answers 200", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(uc)

		uc.EXPECT().ProcessPaymentNotification(gomock.Any(), gomock.Any()).Return(usecase.OutcomeFetchFailed)

		header, requestID := signedHeaders(t, body, "req-1", "1700000000", secret)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewReader(body))
		req.Header.Set("x-signature", header)
		req.Header.Set("x-request-id", requestID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "OK - Failed to fetch payment details" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("persist failure still answers 200", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(uc)

		uc.EXPECT().ProcessPaymentNotification(gomock.Any(), gomock.Any()).Return(usecase.OutcomePersistFailed)

		header, requestID := signedHeaders(t, body, "req-1", "1700000000", secret)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewReader(body))
		req.Header.Set("x-signature", header)
		req.Header.Set("x-request-id", requestID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "OK - Internal error occurred" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("unreadable body still answers 200", func(t *testing.T) {
		t.Setenv("MERCADO_PAGO_WEBHOOK_SECRET", secret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIWebhookUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", failingReadCloser{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
