package veritrans_integration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	viModels "github.com/voxtmault/veritrans-integration/models"
	veritrans_request "github.com/voxtmault/veritrans-integration/veritrans/request"
	veritrans_security "github.com/voxtmault/veritrans-integration/veritrans/security"
)

const (
	testServerKey        = "SB-Mid-server-test"
	testNotificationPath = "/veritrans/notification"
)

func signedNotification(t *testing.T, security *veritrans_security.VTSecurity) string {
	t.Helper()

	signature := security.CreateSignatureKey(context.Background(), "ORDER-101", "200", "145000.00")

	return fmt.Sprintf(`{"status_code":"200","order_id":"ORDER-101","transaction_status":"settlement","gross_amount":"145000.00","signature_key":"%s"}`, signature)
}

func newTestRouter(handler NotificationHandler) (http.Handler, *veritrans_security.VTSecurity) {
	security := &veritrans_security.VTSecurity{ServerKey: testServerKey}
	ingress := veritrans_request.NewVTIngress(security)

	return NewNotificationRouter(testNotificationPath, ingress, handler, true), security
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func TestNotificationAccepted(t *testing.T) {
	var received *viModels.StatusResponse
	router, security := newTestRouter(func(ctx context.Context, notification *viModels.StatusResponse) error {
		received = notification
		return nil
	})

	rec := serve(router, http.MethodPost, testNotificationPath, signedNotification(t, security))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}

	if received == nil || received.OrderID != "ORDER-101" {
		t.Errorf("handler did not receive the notification, got %+v", received)
	}
}

func TestNotificationRejected(t *testing.T) {
	router, security := newTestRouter(func(ctx context.Context, notification *viModels.StatusResponse) error {
		return errors.New("database is down")
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"order_id":`, http.StatusBadRequest},
		{"missing status code", `{"order_id":"ORDER-101"}`, http.StatusBadRequest},
		{"bad signature", strings.Replace(signedNotification(t, security), `"signature_key":"`, `"signature_key":"00`, 1), http.StatusUnauthorized},
		{"handler error", signedNotification(t, security), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, testNotificationPath, tt.body)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestNotificationRouterMethods(t *testing.T) {
	router, _ := newTestRouter(nil)

	if rec := serve(router, http.MethodGet, testNotificationPath, ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET notification, got %d", rec.Code)
	}

	if rec := serve(router, http.MethodPost, testNotificationPath, "not json"); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	rec := serve(router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "veritrans_notifications_total") {
		t.Error("notification counter is not exposed")
	}
}
