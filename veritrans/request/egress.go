package veritrans_request

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	viConfig "github.com/voxtmault/veritrans-integration/config"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
	viLogger "github.com/voxtmault/veritrans-integration/logger"
	viMetrics "github.com/voxtmault/veritrans-integration/metrics"
	viModels "github.com/voxtmault/veritrans-integration/models"
	viUtil "github.com/voxtmault/veritrans-integration/utils"
)

const binsPrefix = "bins/"

type VTEgress struct {
	Config *viConfig.GatewayConfig
	Client *http.Client
}

var _ viInterfaces.RequestEgress = &VTEgress{}

func NewVTEgress(cfg *viConfig.GatewayConfig) *VTEgress {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &VTEgress{
		Config: cfg,
		Client: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
	}
}

// GenerateRequestHeader sets the headers the gateway expects on every request. The server key
// is the basic auth username, the password is left empty.
func (s *VTEgress) GenerateRequestHeader(request *http.Request, requestID string) {
	request.SetBasicAuth(s.Config.ServerKey, "")

	// Checks if the caller has set a content-type already
	if request.Header.Get("Content-Type") == "" {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-Id", requestID)
}

func (s *VTEgress) Send(ctx context.Context, method, relativePath string, body []byte) ([]byte, error) {

	// Checks for problematic configurations
	if err := viUtil.ValidateStruct(ctx, s.Config); err != nil {
		return nil, eris.Wrap(err, "invalid gateway configuration")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, s.resolveURL(relativePath), reader)
	if err != nil {
		return nil, eris.Wrap(err, "creating request")
	}

	requestID := viUtil.GenerateRequestID()
	s.GenerateRequestHeader(request, requestID)

	slog.Debug("sending gateway request", "method", method, "path", relativePath, "request_id", requestID)

	return s.RequestHandler(request, relativePath, requestID)
}

// RequestHandler executes the request, records metrics and queues the egress log. Non 2xx
// responses are returned as is when they carry a body, the gateway reports most failures
// through status_code inside a JSON body.
func (s *VTEgress) RequestHandler(request *http.Request, relativePath, requestID string) ([]byte, error) {
	log := viModels.GatewayLog{
		RequestID:    requestID,
		HTTPMethod:   request.Method,
		RelativePath: relativePath,
		BeginAt:      time.Now(),
	}

	response, err := s.Client.Do(request)
	if err != nil {
		s.record(&log, nil, err)
		return nil, eris.Wrap(err, "sending request")
	}
	defer response.Body.Close()

	log.ResponseCode = response.StatusCode

	body, err := io.ReadAll(response.Body)
	if err != nil {
		s.record(&log, nil, err)
		return nil, eris.Wrap(err, "reading response body")
	}

	if response.StatusCode >= http.StatusMultipleChoices && len(bytes.TrimSpace(body)) == 0 {
		err = eris.Errorf("gateway responded with http status %d", response.StatusCode)
		s.record(&log, body, err)
		return nil, err
	}

	s.record(&log, body, nil)

	return body, nil
}

func (s *VTEgress) record(log *viModels.GatewayLog, body []byte, err error) {
	log.EndAt = time.Now()
	log.ResponseBody = string(body)
	if err != nil {
		log.ErrorMessage = err.Error()
	}

	viMetrics.ObserveRequest(EndpointLabel(log.RelativePath), log.HTTPMethod, log.ResponseCode, log.EndAt.Sub(log.BeginAt))
	viLogger.LogRequest(log)
}

func (s *VTEgress) resolveURL(relativePath string) string {
	base := s.Config.BaseURL()
	if strings.HasPrefix(relativePath, binsPrefix) {
		base = s.Config.BinsBaseURL()
	}

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(relativePath, "/")
}

// EndpointLabel maps a relative path to a bounded metric label. Order ids and BIN numbers are
// dropped, "ORDER-1/status" becomes "status".
func EndpointLabel(relativePath string) string {
	relativePath = strings.Trim(relativePath, "/")
	if strings.HasPrefix(relativePath, strings.TrimSuffix(binsPrefix, "/")) {
		return "bins"
	}

	if i := strings.LastIndex(relativePath, "/"); i >= 0 {
		return relativePath[i+1:]
	}

	return relativePath
}
