package interfaces

import (
	"context"
	"net/http"

	viModels "github.com/voxtmault/veritrans-integration/models"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks github.com/voxtmault/veritrans-integration/interfaces RequestEgress,BinCache

type RequestEgress interface {
	// Send performs a single HTTP exchange with the gateway. relativePath is resolved against the
	// configured base url, body may be nil. The raw response body is returned as is.
	Send(ctx context.Context, method, relativePath string, body []byte) ([]byte, error)
}

type RequestIngress interface {
	// ParseNotification decodes a payment notification and rejects it when the signature key
	// does not match.
	ParseNotification(ctx context.Context, request *http.Request) (*viModels.StatusResponse, error)
}

type Security interface {
	// CreateSignatureKey returns the hex encoded SHA512 of order id, status code, gross amount and
	// server key.
	CreateSignatureKey(ctx context.Context, orderID, statusCode, grossAmount string) string

	VerifySignatureKey(ctx context.Context, orderID, statusCode, grossAmount, signatureKey string) bool
}

type BinCache interface {
	// Get returns the cached gateway response for a BIN, found is false on a miss.
	Get(ctx context.Context, binNumber string) (body []byte, found bool, err error)

	Set(ctx context.Context, binNumber string, body []byte) error
}

type Gateway interface {
	SubmitChargeRequest(ctx context.Context, request *viModels.ChargeRequest) (viModels.ChargeResponse, error)
	SubmitStatusRequest(ctx context.Context, request *viModels.StatusRequest) (*viModels.StatusResponse, error)
	SubmitCancelRequest(ctx context.Context, request *viModels.CancelRequest) (*viModels.CancelResponse, error)
	SubmitApprovalRequest(ctx context.Context, request *viModels.ApprovalRequest) (*viModels.ApproveResponse, error)
	RequestBins(ctx context.Context, request *viModels.BinRequest) (*viModels.BinResponse, error)
}
