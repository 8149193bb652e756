package veritrans_integration

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
	viMetrics "github.com/voxtmault/veritrans-integration/metrics"
	viModels "github.com/voxtmault/veritrans-integration/models"
	veritrans_request "github.com/voxtmault/veritrans-integration/veritrans/request"
)

// NotificationHandler receives every notification whose signature key verified. Returning an
// error answers the gateway with a 500 so the notification is retried.
type NotificationHandler func(ctx context.Context, notification *viModels.StatusResponse) error

// Notification outcomes, used as metric labels
const (
	NotificationAccepted         = "accepted"
	NotificationInvalidPayload   = "invalid_payload"
	NotificationInvalidSignature = "invalid_signature"
	NotificationHandlerError     = "handler_error"
)

func NewNotificationRouter(notificationPath string, ingress viInterfaces.RequestIngress, handler NotificationHandler, metricsEnabled bool) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc(notificationPath, notificationEndpoint(ingress, handler)).Methods(http.MethodPost)

	// expose metrics
	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	return r
}

func notificationEndpoint(ingress viInterfaces.RequestIngress, handler NotificationHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notification, err := ingress.ParseNotification(r.Context(), r)
		if err != nil {
			if errors.Is(err, veritrans_request.ErrInvalidSignature) {
				slog.Warn("rejected notification with invalid signature", "remote", r.RemoteAddr)
				viMetrics.IncNotification(NotificationInvalidSignature)
				writeJSON(w, http.StatusUnauthorized, map[string]any{"status": "error", "message": "invalid signature key"})
				return
			}

			slog.Warn("rejected malformed notification", "reason", err)
			viMetrics.IncNotification(NotificationInvalidPayload)
			writeJSON(w, http.StatusBadRequest, map[string]any{"status": "error", "message": "invalid notification payload"})
			return
		}

		if handler != nil {
			if err := handler(r.Context(), notification); err != nil {
				slog.Error("failed to handle notification", "order_id", notification.OrderID, "reason", err)
				viMetrics.IncNotification(NotificationHandlerError)
				writeJSON(w, http.StatusInternalServerError, map[string]any{"status": "error", "message": "failed to handle notification"})
				return
			}
		}

		viMetrics.IncNotification(NotificationAccepted)
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, code int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
