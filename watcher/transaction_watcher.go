package veritrans_integration_watcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
	viModels "github.com/voxtmault/veritrans-integration/models"
	"github.com/voxtmault/veritrans-integration/veritrans"
)

// FinalStatusFunc is called once per watched order, when the gateway reports a final status.
type FinalStatusFunc func(ctx context.Context, status *viModels.StatusResponse)

type WatchedTransaction struct {
	OrderID   string
	ExpiredAt time.Time // Watching stops after this moment even when the status is not final
}

// TransactionWatcher polls the status of pending transactions, for payment methods where the
// merchant cannot rely on notifications alone.
type TransactionWatcher struct {
	Gateway  viInterfaces.Gateway
	Interval time.Duration
	OnFinal  FinalStatusFunc

	mutex       sync.Mutex
	watchedList map[string]*WatchedTransaction
}

func NewTransactionWatcher(gateway viInterfaces.Gateway, interval time.Duration, onFinal FinalStatusFunc) *TransactionWatcher {
	return &TransactionWatcher{
		Gateway:     gateway,
		Interval:    interval,
		OnFinal:     onFinal,
		watchedList: make(map[string]*WatchedTransaction),
	}
}

func (s *TransactionWatcher) AddWatcher(orderID string, expiredAt time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.watchedList[orderID] = &WatchedTransaction{OrderID: orderID, ExpiredAt: expiredAt}
}

func (s *TransactionWatcher) RemoveWatcher(orderID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.watchedList, orderID)
}

func (s *TransactionWatcher) GetWatcher(orderID string) (*WatchedTransaction, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	obj, ok := s.watchedList[orderID]
	return obj, ok
}

func (s *TransactionWatcher) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.watchedList)
}

// Run polls every Interval until ctx is cancelled.
func (s *TransactionWatcher) Run(ctx context.Context) error {
	if s.Interval <= 0 {
		return eris.New("watcher interval must be positive")
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("transaction watcher is stopped")
			return ctx.Err()
		case <-ticker.C:
			s.Poll(ctx)
		}
	}
}

// Poll checks every watched transaction once. Orders that reached a final status or expired
// are no longer watched, gateway errors are retried on the next poll.
func (s *TransactionWatcher) Poll(ctx context.Context) {
	s.mutex.Lock()
	watched := make([]WatchedTransaction, 0, len(s.watchedList))
	for _, obj := range s.watchedList {
		watched = append(watched, *obj)
	}
	s.mutex.Unlock()

	now := time.Now()
	for _, obj := range watched {
		if !obj.ExpiredAt.IsZero() && now.After(obj.ExpiredAt) {
			slog.Info("watched transaction expired, killing watcher", "order_id", obj.OrderID)
			s.RemoveWatcher(obj.OrderID)
			continue
		}

		status, err := s.Gateway.SubmitStatusRequest(ctx, &viModels.StatusRequest{OrderID: obj.OrderID})
		if err != nil {
			slog.Warn("failed to poll transaction status", "order_id", obj.OrderID, "reason", err)
			continue
		}

		if !veritrans.TransactionStatus(status.TransactionStatus).IsFinal() {
			continue
		}

		slog.Info("transaction reached final status, killing watcher", "order_id", obj.OrderID, "transaction_status", status.TransactionStatus)
		s.RemoveWatcher(obj.OrderID)

		if s.OnFinal != nil {
			s.OnFinal(ctx, status)
		}
	}
}
