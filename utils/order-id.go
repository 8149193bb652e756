package veritrans_integration_utils

import (
	"strings"

	"github.com/google/uuid"
)

// MaxOrderIDLength is the longest order id accepted by the gateway.
const MaxOrderIDLength = 50

// GenerateOrderID returns prefix followed by a UUIDv4 without dashes, truncated to the
// gateway limit.
func GenerateOrderID(prefix string) string {
	id := prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	if len(id) > MaxOrderIDLength {
		id = id[:MaxOrderIDLength]
	}

	return id
}

// GenerateRequestID is attached to every outgoing request for log correlation.
func GenerateRequestID() string {
	return uuid.NewString()
}
