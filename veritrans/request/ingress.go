package veritrans_request

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/rotisserie/eris"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
	viModels "github.com/voxtmault/veritrans-integration/models"
)

// Notifications larger than this are rejected before decoding
const maxNotificationSize = 1 << 20

var ErrInvalidSignature = eris.New("invalid notification signature key")

type VTIngress struct {
	// Security verifies the signature key carried by notifications
	Security viInterfaces.Security
}

var _ viInterfaces.RequestIngress = &VTIngress{}

func NewVTIngress(security viInterfaces.Security) *VTIngress {
	return &VTIngress{
		Security: security,
	}
}

// ParseNotification returns ErrInvalidSignature when the signature key does not match, any
// other error means the payload itself could not be read.
func (s *VTIngress) ParseNotification(ctx context.Context, request *http.Request) (*viModels.StatusResponse, error) {
	if request.Body == nil {
		return nil, eris.New("notification body is empty")
	}
	defer request.Body.Close()

	body, err := io.ReadAll(io.LimitReader(request.Body, maxNotificationSize))
	if err != nil {
		return nil, eris.Wrap(err, "reading notification body")
	}

	data, err := viModels.DecodePayload(body)
	if err != nil {
		return nil, eris.Wrap(err, "decoding notification")
	}

	notification, err := viModels.NewStatusResponse(data)
	if err != nil {
		return nil, eris.Wrap(err, "parsing notification")
	}

	if !s.Security.VerifySignatureKey(ctx, notification.OrderID, notification.RawStatusCode, notification.RawGrossAmount, notification.SignatureKey) {
		slog.Debug("notification signature mismatch", "order_id", notification.OrderID)
		return nil, ErrInvalidSignature
	}

	slog.Debug("notification received", "order_id", notification.OrderID, "transaction_status", notification.TransactionStatus)

	return notification, nil
}
