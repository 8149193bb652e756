package veritrans

// Status codes sent in the status_code field of every gateway response
const (
	StatusSuccess                   = 200
	StatusChallenge                 = 201
	StatusDenied                    = 202
	StatusMovedPermanently          = 300
	StatusValidationError           = 400
	StatusAccessDenied              = 401
	StatusUnavailablePaymentType    = 402
	StatusDuplicateOrderID          = 406
	StatusAccountInactive           = 410
	StatusTokenError                = 411
	StatusServerError               = 500
	StatusFeatureUnavailable        = 501
	StatusBankConnectionProblem     = 502
	StatusServerErrorOther          = 503
	StatusFraudDetectionUnavailable = 504
)

var StatusCodes = map[int]string{
	StatusSuccess:                   "Success",                             // Transaksi berhasil
	StatusChallenge:                 "Challenge / Pending",                 // Transaksi perlu ditinjau atau menunggu pembayaran
	StatusDenied:                    "Denied",                              // Transaksi ditolak
	StatusMovedPermanently:          "Moved Permanently",                   // Endpoint dipindahkan
	StatusValidationError:           "Validation Error",                    // Parameter request tidak valid
	StatusAccessDenied:              "Access Denied",                       // Server key salah atau tidak diizinkan
	StatusUnavailablePaymentType:    "Payment Type Unavailable",            // Metode pembayaran belum diaktifkan
	StatusDuplicateOrderID:          "Duplicate Order ID",                  // Order ID sudah pernah digunakan
	StatusAccountInactive:           "Account Inactive",                    // Akun merchant tidak aktif
	StatusTokenError:                "Token Error",                         // Token kartu tidak valid
	StatusServerError:               "Internal Server Error",               // Kesalahan umum di server
	StatusFeatureUnavailable:        "Feature Unavailable",                 // Fitur tidak tersedia
	StatusBankConnectionProblem:     "Bank Connection Problem",             // Gangguan koneksi ke bank
	StatusServerErrorOther:          "Service Unavailable",                 // Server sedang tidak tersedia
	StatusFraudDetectionUnavailable: "Fraud Detection Service Unavailable", // Layanan fraud detection tidak tersedia
}

// StatusDescription returns a readable description of a gateway status code.
func StatusDescription(code int) string {
	if description, ok := StatusCodes[code]; ok {
		return description
	}

	return "Unknown Status"
}

// IsSuccessful reports whether the gateway accepted the request (2xx).
func IsSuccessful(code int) bool {
	return code >= 200 && code < 300
}
