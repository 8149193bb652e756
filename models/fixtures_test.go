package veritrans_integration_models

// Charge request payload for a BNI credit card charge, as expected by the gateway
const ccRequestJSON = `{
	"payment_type": "credit_card",
	"credit_card": {
		"bank": "bni",
		"token_id": "i-am-a-fake-token"
	},
	"transaction_details": {
		"order_id": "C17550",
		"gross_amount": 145000
	},
	"customer_details": {
		"first_name": "Andri",
		"last_name": "Litani",
		"email": "andri@litani.com",
		"phone": "081122334455",
		"billing_address": {
			"first_name": "Andri",
			"last_name": "Litani",
			"address": "Mangga 20",
			"city": "Jakarta",
			"postal_code": "16602",
			"phone": "081122334455",
			"country_code": "IDN"
		},
		"shipping_address": {
			"first_name": "Obet",
			"last_name": "Supriadi",
			"address": "Manggis 90",
			"city": "Jakarta",
			"postal_code": "16601",
			"phone": "08113366345",
			"country_code": "IDN"
		}
	},
	"item_details": [
		{"id": "a1", "price": 50000, "quantity": 2, "name": "Apel"},
		{"id": "a2", "price": 45000, "quantity": 1, "name": "Jeruk"}
	]
}`

const ccChargeResponseSuccess = `{
	"transaction_id": "1a1a66f7-27a7-4844-ba1f-d86dcc16ab27",
	"order_id": "C17550",
	"gross_amount": "145000.00",
	"payment_type": "credit_card",
	"transaction_time": "2014-08-24 15:39:22",
	"transaction_status": "capture",
	"fraud_status": "accept",
	"masked_card": "481111-1114",
	"status_code": "200",
	"bank": "bni",
	"status_message": "Success, Credit Card transaction is successful",
	"approval_code": "1408869563148"
}`

const goPayChargeResponse = `{
	"status_code": "201",
	"status_message": "GO-PAY billing created",
	"transaction_id": "e48447d1-cfa9-4b02-b163-2e915d4417ac",
	"order_id": "SAMPLE-ORDER-ID-01",
	"gross_amount": "10000.00",
	"payment_type": "gopay",
	"transaction_time": "2017-10-04 12:00:00",
	"transaction_status": "pending",
	"actions": [
		{"name": "generate-qr-code", "method": "GET", "url": "https://api.midtrans.com/v2/gopay/e48447d1-cfa9-4b02-b163-2e915d4417ac/qr-code"},
		{"name": "deeplink-redirect", "method": "GET", "url": "gojek://gopay/merchanttransfer?tref=1509110800474199656LMVO&amount=10000&activity=GP:RR"},
		{"name": "get-status", "method": "GET", "url": "https://api.midtrans.com/v2/e48447d1-cfa9-4b02-b163-2e915d4417ac/status"},
		{"name": "cancel", "method": "POST", "url": "https://api.midtrans.com/v2/e48447d1-cfa9-4b02-b163-2e915d4417ac/cancel", "fields": []}
	],
	"channel_response_code": "200",
	"channel_response_message": "Success",
	"currency": "IDR"
}`

const bniVirtualAccountResponse = `{
	"status_code": "201",
	"status_message": "Success, Bank Transfer transaction is created",
	"transaction_id": "9aed5972-5b6a-401e-894b-a32c91ed1a3a",
	"order_id": "1466323342",
	"gross_amount": "20000.00",
	"payment_type": "bank_transfer",
	"transaction_time": "2016-06-19 15:02:22",
	"transaction_status": "pending",
	"va_numbers": [{"bank": "bni", "va_number": "8578000000111111"}],
	"fraud_status": "accept",
	"currency": "IDR"
}`

func newCCChargeRequest() *ChargeRequest {
	return &ChargeRequest{
		PaymentType: &CreditCard{
			Bank:    "bni",
			TokenID: "i-am-a-fake-token",
		},
		TransactionDetails: &TransactionDetails{
			OrderID:     "C17550",
			GrossAmount: 145000,
		},
		CustomerDetails: &CustomerDetails{
			FirstName: "Andri",
			LastName:  "Litani",
			Email:     "andri@litani.com",
			Phone:     "081122334455",
			BillingAddress: &Address{
				FirstName:   "Andri",
				LastName:    "Litani",
				Address:     "Mangga 20",
				City:        "Jakarta",
				PostalCode:  "16602",
				Phone:       "081122334455",
				CountryCode: "IDN",
			},
			ShippingAddress: &Address{
				FirstName:   "Obet",
				LastName:    "Supriadi",
				Address:     "Manggis 90",
				City:        "Jakarta",
				PostalCode:  "16601",
				Phone:       "08113366345",
				CountryCode: "IDN",
			},
		},
		ItemDetails: []*ItemDetails{
			{ID: "a1", Price: 50000, Quantity: 2, Name: "Apel"},
			{ID: "a2", Price: 45000, Quantity: 1, Name: "Jeruk"},
		},
	}
}
