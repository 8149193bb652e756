package veritrans

const (
	SandboxBaseURL = "https://api.sandbox.veritrans.co.id/v2" // Sandbox environment
	LiveBaseURL    = "https://api.veritrans.co.id/v2"         // Production environment
)

// Endpoint path formats, relative to the base url
const (
	ChargePath  = "charge"
	StatusPath  = "%s/status"
	CancelPath  = "%s/cancel"
	ApprovePath = "%s/approve"
	BinsPath    = "bins/%s"
)

type TransactionStatus string

const (
	TransactionStatusCapture    TransactionStatus = "capture"    // Card charge captured, waiting for settlement
	TransactionStatusSettlement TransactionStatus = "settlement" // Funds settled to the merchant
	TransactionStatusPending    TransactionStatus = "pending"    // Waiting for the customer to pay
	TransactionStatusDeny       TransactionStatus = "deny"       // Rejected by the bank or fraud detection
	TransactionStatusCancel     TransactionStatus = "cancel"     // Cancelled by the merchant
	TransactionStatusExpire     TransactionStatus = "expire"     // Not paid in time
	TransactionStatusRefund     TransactionStatus = "refund"     // Refunded
)

// IsFinal reports whether no further notification is expected for the transaction.
func (s TransactionStatus) IsFinal() bool {
	switch s {
	case TransactionStatusSettlement, TransactionStatusDeny, TransactionStatusCancel,
		TransactionStatusExpire, TransactionStatusRefund:
		return true
	}

	return false
}

type FraudStatus string

const (
	FraudStatusAccept    FraudStatus = "accept"    // Safe
	FraudStatusChallenge FraudStatus = "challenge" // Needs an approve or cancel from the merchant
	FraudStatusDeny      FraudStatus = "deny"      // Rejected
)
