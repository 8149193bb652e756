package veritrans_request

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	viConfig "github.com/voxtmault/veritrans-integration/config"
)

const testServerKey = "SB-Mid-server-test"

func newTestConfig(url string) *viConfig.GatewayConfig {
	return &viConfig.GatewayConfig{
		ServerKey:        testServerKey,
		SandboxMode:      true,
		SandboxURL:       url,
		LiveURL:          "https://api.veritrans.co.id/v2",
		RequestTimeout:   5 * time.Second,
		NotificationPath: "/veritrans/notification",
	}
}

func TestSendCharge(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v2/charge" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		user, pass, ok := r.BasicAuth()
		if !ok || user != testServerKey || pass != "" {
			t.Errorf("unexpected basic auth %q:%q", user, pass)
		}
		if r.Header.Get("Content-Type") != "application/json" || r.Header.Get("Accept") != "application/json" {
			t.Errorf("unexpected content headers %v", r.Header)
		}
		if _, err := uuid.Parse(r.Header.Get("X-Request-Id")); err != nil {
			t.Errorf("X-Request-Id is not a uuid: %v", err)
		}

		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Write([]byte(`{"status_code":"201","status_message":"Success"}`))
	}))
	defer server.Close()

	egress := NewVTEgress(newTestConfig(server.URL + "/v2"))

	body, err := egress.Send(context.Background(), http.MethodPost, "charge", []byte(`{"payment_type":"gopay"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotBody != `{"payment_type":"gopay"}` {
		t.Errorf("request body was not forwarded, got %q", gotBody)
	}
	if !strings.Contains(string(body), `"201"`) {
		t.Errorf("unexpected response body %s", body)
	}
}

func TestSendBinsUsesBinsURL(t *testing.T) {
	bins := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/bins/455633" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":{"bin":"455633"}}`))
	}))
	defer bins.Close()

	cfg := newTestConfig("https://api.sandbox.veritrans.co.id/v2")
	cfg.BinsURL = bins.URL + "/v1/"

	egress := NewVTEgress(cfg)
	if _, err := egress.Send(context.Background(), http.MethodGet, "bins/455633", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/empty/status":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status_code":"404","status_message":"Transaction doesn't exist."}`))
		}
	}))
	defer server.Close()

	egress := NewVTEgress(newTestConfig(server.URL))

	if _, err := egress.Send(context.Background(), http.MethodGet, "empty/status", nil); err == nil {
		t.Error("expected an error for a bodiless 502")
	}

	body, err := egress.Send(context.Background(), http.MethodGet, "missing/status", nil)
	if err != nil {
		t.Fatalf("a 404 with a body should be returned as is: %v", err)
	}
	if !strings.Contains(string(body), "404") {
		t.Errorf("unexpected body %s", body)
	}
}

func TestSendInvalidConfig(t *testing.T) {
	cfg := newTestConfig("https://api.sandbox.veritrans.co.id/v2")
	cfg.ServerKey = "bad:key"

	egress := NewVTEgress(cfg)
	if _, err := egress.Send(context.Background(), http.MethodGet, "ORDER-1/status", nil); err == nil {
		t.Error("expected configuration error")
	}
}

func TestEndpointLabel(t *testing.T) {
	cases := map[string]string{
		"charge":            "charge",
		"ORDER-101/status":  "status",
		"ORDER-101/cancel":  "cancel",
		"ORDER-101/approve": "approve",
		"bins/455633":       "bins",
		"/charge":           "charge",
	}

	for path, want := range cases {
		if got := EndpointLabel(path); got != want {
			t.Errorf("EndpointLabel(%q) = %q, want %q", path, got, want)
		}
	}
}
