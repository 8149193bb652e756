package veritrans_security

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	viConfig "github.com/voxtmault/veritrans-integration/config"
)

func TestCreateSignatureKey(t *testing.T) {
	security := NewVTSecurity(&viConfig.GatewayConfig{ServerKey: "SB-Mid-server-test"})

	hashed := sha512.Sum512([]byte("C17550" + "200" + "145000.00" + "SB-Mid-server-test"))
	expected := hex.EncodeToString(hashed[:])

	signature := security.CreateSignatureKey(context.Background(), "C17550", "200", "145000.00")
	if signature != expected {
		t.Errorf("expected %s, got %s", expected, signature)
	}
	if len(signature) != 128 {
		t.Errorf("expected a 128 character hex string, got %d", len(signature))
	}
}

func TestVerifySignatureKey(t *testing.T) {
	ctx := context.Background()
	security := NewVTSecurity(&viConfig.GatewayConfig{ServerKey: "SB-Mid-server-test"})
	signature := security.CreateSignatureKey(ctx, "C17550", "200", "145000.00")

	if !security.VerifySignatureKey(ctx, "C17550", "200", "145000.00", signature) {
		t.Error("expected signature to verify")
	}
	if !security.VerifySignatureKey(ctx, "C17550", "200", "145000.00", strings.ToUpper(signature)) {
		t.Error("hex comparison must ignore case")
	}
	if security.VerifySignatureKey(ctx, "C17550", "200", "145000", signature) {
		t.Error("signature is computed over the raw gross amount")
	}

	other := NewVTSecurity(&viConfig.GatewayConfig{ServerKey: "SB-Mid-server-other"})
	if other.VerifySignatureKey(ctx, "C17550", "200", "145000.00", signature) {
		t.Error("signature must depend on the server key")
	}
}
