package veritrans_service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rotisserie/eris"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
	viModels "github.com/voxtmault/veritrans-integration/models"
	"github.com/voxtmault/veritrans-integration/veritrans"
)

// VTDirect submits requests to the VT-Direct API and turns the answers into typed responses.
type VTDirect struct {

	// Dependency Injection
	Egress viInterfaces.RequestEgress

	// Optional, BIN lookups always hit the gateway when nil
	BinCache viInterfaces.BinCache
}

var _ viInterfaces.Gateway = &VTDirect{}

func NewVTDirect(egress viInterfaces.RequestEgress, binCache viInterfaces.BinCache) *VTDirect {
	return &VTDirect{
		Egress:   egress,
		BinCache: binCache,
	}
}

// SubmitChargeRequest validates and sends a charge. The response type follows the payment
// method of the request, e.g. a *GoPay charge yields a *GoPayChargeResponse.
func (s *VTDirect) SubmitChargeRequest(ctx context.Context, request *viModels.ChargeRequest) (viModels.ChargeResponse, error) {
	if request == nil {
		return nil, eris.New("charge request is nil")
	}

	data, err := s.submit(ctx, request, true)
	if err != nil {
		return nil, err
	}

	response, err := viModels.BuildChargeResponse(request, data)
	if err != nil {
		return nil, eris.Wrap(err, "building charge response")
	}

	base := response.GetChargeResponseBase()
	slog.Debug("charge response",
		"order_id", base.OrderID,
		"status_code", base.StatusCode,
		"status", veritrans.StatusDescription(base.StatusCode),
		"transaction_status", base.TransactionStatus,
	)

	return response, nil
}

func (s *VTDirect) SubmitStatusRequest(ctx context.Context, request *viModels.StatusRequest) (*viModels.StatusResponse, error) {
	if request == nil {
		return nil, eris.New("status request is nil")
	}

	data, err := s.submit(ctx, request, false)
	if err != nil {
		return nil, err
	}

	response, err := viModels.NewStatusResponse(data)
	if err != nil {
		return nil, eris.Wrap(err, "building status response")
	}

	logTransactionResult("status response", &response.TransactionResult)

	return response, nil
}

func (s *VTDirect) SubmitCancelRequest(ctx context.Context, request *viModels.CancelRequest) (*viModels.CancelResponse, error) {
	if request == nil {
		return nil, eris.New("cancel request is nil")
	}

	data, err := s.submit(ctx, request, false)
	if err != nil {
		return nil, err
	}

	response, err := viModels.NewCancelResponse(data)
	if err != nil {
		return nil, eris.Wrap(err, "building cancel response")
	}

	logTransactionResult("cancel response", &response.TransactionResult)

	return response, nil
}

func (s *VTDirect) SubmitApprovalRequest(ctx context.Context, request *viModels.ApprovalRequest) (*viModels.ApproveResponse, error) {
	if request == nil {
		return nil, eris.New("approval request is nil")
	}

	data, err := s.submit(ctx, request, false)
	if err != nil {
		return nil, err
	}

	response, err := viModels.NewApproveResponse(data)
	if err != nil {
		return nil, eris.Wrap(err, "building approve response")
	}

	logTransactionResult("approve response", &response.TransactionResult)

	return response, nil
}

// RequestBins looks up a card BIN. Successful lookups are cached, cache failures only cost
// a round trip to the gateway.
func (s *VTDirect) RequestBins(ctx context.Context, request *viModels.BinRequest) (*viModels.BinResponse, error) {
	if request == nil {
		return nil, eris.New("bin request is nil")
	}

	if err := request.ValidateAll(); err != nil {
		return nil, err
	}

	if s.BinCache != nil {
		cached, found, err := s.BinCache.Get(ctx, request.BinNumber)
		if err != nil {
			slog.Warn("failed to read bin cache", "bin", request.BinNumber, "reason", err)
		} else if found {
			slog.Debug("bin cache hit", "bin", request.BinNumber)

			if response, err := decodeBinResponse(cached); err == nil {
				return response, nil
			}
			slog.Warn("discarding unreadable cached bin response", "bin", request.BinNumber)
		}
	}

	body, err := s.Egress.Send(ctx, request.HTTPMethod(), request.RelativePath(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "requesting bins")
	}

	response, err := decodeBinResponse(body)
	if err != nil {
		return nil, err
	}

	if s.BinCache != nil && response.StatusCode == http.StatusOK {
		if err := s.BinCache.Set(ctx, request.BinNumber, body); err != nil {
			slog.Warn("failed to cache bin response", "bin", request.BinNumber, "reason", err)
		}
	}

	return response, nil
}

// Internal Functions

// submit validates and sends request, the decoded body is returned. Validation errors are
// returned as is so callers can tell them apart from transport failures.
func (s *VTDirect) submit(ctx context.Context, request viModels.GatewayRequest, withBody bool) (map[string]any, error) {
	payload, err := request.Serialize()
	if err != nil {
		return nil, err
	}

	var body []byte
	if withBody {
		if body, err = json.Marshal(payload); err != nil {
			return nil, eris.Wrap(err, "marshalling request body")
		}
	}

	raw, err := s.Egress.Send(ctx, request.HTTPMethod(), request.RelativePath(), body)
	if err != nil {
		return nil, eris.Wrap(err, "sending request")
	}

	return viModels.DecodePayload(raw)
}

func decodeBinResponse(body []byte) (*viModels.BinResponse, error) {
	data, err := viModels.DecodePayload(body)
	if err != nil {
		return nil, err
	}

	response, err := viModels.NewBinResponse(data)
	if err != nil {
		return nil, eris.Wrap(err, "building bin response")
	}

	return response, nil
}

func logTransactionResult(msg string, result *viModels.TransactionResult) {
	slog.Debug(msg,
		"order_id", result.OrderID,
		"status_code", result.StatusCode,
		"status", veritrans.StatusDescription(result.StatusCode),
		"transaction_status", result.TransactionStatus,
	)
}
