package veritrans_security

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	viConfig "github.com/voxtmault/veritrans-integration/config"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
)

type VTSecurity struct {
	// Server key of the merchant, appended to every signed string
	ServerKey string
}

// VT Security implements the Security interface
var _ viInterfaces.Security = &VTSecurity{}

func NewVTSecurity(cfg *viConfig.GatewayConfig) *VTSecurity {
	return &VTSecurity{
		ServerKey: cfg.ServerKey,
	}
}

func (s *VTSecurity) CreateSignatureKey(ctx context.Context, orderID, statusCode, grossAmount string) string {
	hashed := sha512.Sum512([]byte(orderID + statusCode + grossAmount + s.ServerKey))

	return hex.EncodeToString(hashed[:])
}

func (s *VTSecurity) VerifySignatureKey(ctx context.Context, orderID, statusCode, grossAmount, signatureKey string) bool {
	expected := s.CreateSignatureKey(ctx, orderID, statusCode, grossAmount)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signatureKey))) == 1
}
