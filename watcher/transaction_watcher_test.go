package veritrans_integration_watcher

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/voxtmault/veritrans-integration/interfaces/mocks"
	viModels "github.com/voxtmault/veritrans-integration/models"
	veritrans_service "github.com/voxtmault/veritrans-integration/veritrans/service"
	"go.uber.org/mock/gomock"
)

func TestPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	egress := mocks.NewMockRequestEgress(ctrl)

	egress.EXPECT().
		Send(gomock.Any(), http.MethodGet, "ORDER-PAID/status", nil).
		Return([]byte(`{"status_code":"200","order_id":"ORDER-PAID","transaction_status":"settlement"}`), nil)
	egress.EXPECT().
		Send(gomock.Any(), http.MethodGet, "ORDER-WAIT/status", nil).
		Return([]byte(`{"status_code":"201","order_id":"ORDER-WAIT","transaction_status":"pending"}`), nil)
	egress.EXPECT().
		Send(gomock.Any(), http.MethodGet, "ORDER-DOWN/status", nil).
		Return(nil, errors.New("connection reset"))

	var finished []string
	watcher := NewTransactionWatcher(veritrans_service.NewVTDirect(egress, nil), time.Minute, func(ctx context.Context, status *viModels.StatusResponse) {
		finished = append(finished, status.OrderID)
	})

	deadline := time.Now().Add(time.Hour)
	watcher.AddWatcher("ORDER-PAID", deadline)
	watcher.AddWatcher("ORDER-WAIT", deadline)
	watcher.AddWatcher("ORDER-DOWN", deadline)
	watcher.AddWatcher("ORDER-OLD", time.Now().Add(-time.Minute))

	watcher.Poll(context.Background())

	if len(finished) != 1 || finished[0] != "ORDER-PAID" {
		t.Errorf("unexpected finished orders %v", finished)
	}

	for _, orderID := range []string{"ORDER-WAIT", "ORDER-DOWN"} {
		if _, ok := watcher.GetWatcher(orderID); !ok {
			t.Errorf("%s should still be watched", orderID)
		}
	}
	for _, orderID := range []string{"ORDER-PAID", "ORDER-OLD"} {
		if _, ok := watcher.GetWatcher(orderID); ok {
			t.Errorf("%s should no longer be watched", orderID)
		}
	}

	if watcher.Len() != 2 {
		t.Errorf("expected 2 watched transactions, got %d", watcher.Len())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	egress := mocks.NewMockRequestEgress(ctrl)

	watcher := NewTransactionWatcher(veritrans_service.NewVTDirect(egress, nil), 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := watcher.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	watcher.Interval = 0
	if err := watcher.Run(context.Background()); err == nil {
		t.Error("expected an error for a zero interval")
	}
}
