package veritrans_integration_models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	viUtil "github.com/voxtmault/veritrans-integration/utils"
)

// payload wraps a decoded gateway response. Missing keys read as their zero value.
type payload map[string]any

func (p payload) str(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (p payload) statusCode() (int, error) {
	raw := p.str("status_code")
	if raw == "" {
		return 0, eris.New("status_code is missing")
	}

	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, eris.Wrapf(err, "parsing status_code %s", raw)
	}

	return code, nil
}

func (p payload) dateTime(key string) (*time.Time, error) {
	return viUtil.ParseDateTime(p.str(key))
}

func (p payload) amount(key string) (int64, error) {
	return viUtil.ParseAmount(p.str(key))
}

// decode copies a nested JSON value into target.
func (p payload) decode(key string, target any) error {
	value, ok := p[key]
	if !ok || value == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return eris.Wrapf(err, "marshalling %s", key)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return eris.Wrapf(err, "unmarshalling %s", key)
	}

	return nil
}

// DecodePayload parses a raw gateway response body into the map accepted by the response
// constructors.
func DecodePayload(body []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, eris.Wrap(err, "unmarshalling gateway response")
	}

	return data, nil
}

type ResponseBase struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func newResponseBase(p payload) (ResponseBase, error) {
	code, err := p.statusCode()
	if err != nil {
		return ResponseBase{}, err
	}

	return ResponseBase{
		StatusCode:    code,
		StatusMessage: p.str("status_message"),
	}, nil
}

// ChargeResponse is implemented by every charge response type.
type ChargeResponse interface {
	GetChargeResponseBase() *ChargeResponseBase
}

type ChargeResponseBase struct {
	ResponseBase
	TransactionID     string     `json:"transaction_id"`
	OrderID           string     `json:"order_id"`
	PaymentType       string     `json:"payment_type"`
	TransactionTime   *time.Time `json:"transaction_time"` // Nil when the gateway did not send one
	TransactionStatus string     `json:"transaction_status"`
	FraudStatus       string     `json:"fraud_status"`
	ApprovalCode      string     `json:"approval_code"`
	GrossAmount       int64      `json:"gross_amount"` // Whole IDR, fraction dropped
}

var _ ChargeResponse = &ChargeResponseBase{}

func NewChargeResponseBase(data map[string]any) (*ChargeResponseBase, error) {
	return newChargeResponseBase(payload(data))
}

func newChargeResponseBase(p payload) (*ChargeResponseBase, error) {
	base, err := newResponseBase(p)
	if err != nil {
		return nil, err
	}

	transactionTime, err := p.dateTime("transaction_time")
	if err != nil {
		return nil, err
	}

	grossAmount, err := p.amount("gross_amount")
	if err != nil {
		return nil, err
	}

	return &ChargeResponseBase{
		ResponseBase:      base,
		TransactionID:     p.str("transaction_id"),
		OrderID:           p.str("order_id"),
		PaymentType:       p.str("payment_type"),
		TransactionTime:   transactionTime,
		TransactionStatus: p.str("transaction_status"),
		FraudStatus:       p.str("fraud_status"),
		ApprovalCode:      p.str("approval_code"),
		GrossAmount:       grossAmount,
	}, nil
}

func (r *ChargeResponseBase) GetChargeResponseBase() *ChargeResponseBase {
	return r
}

type CreditCardChargeResponse struct {
	ChargeResponseBase
	MaskedCard            string     `json:"masked_card"`
	Bank                  string     `json:"bank"`
	SavedTokenID          string     `json:"saved_token_id"`
	SavedTokenIDExpiredAt *time.Time `json:"saved_token_id_expired_at"`
}

func NewCreditCardChargeResponse(data map[string]any) (*CreditCardChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	expiredAt, err := p.dateTime("saved_token_id_expired_at")
	if err != nil {
		return nil, err
	}

	return &CreditCardChargeResponse{
		ChargeResponseBase:    *base,
		MaskedCard:            p.str("masked_card"),
		Bank:                  p.str("bank"),
		SavedTokenID:          p.str("saved_token_id"),
		SavedTokenIDExpiredAt: expiredAt,
	}, nil
}

// Display names of the virtual account banks
const (
	PermataDisplayName = "Permata"
	BcaDisplayName     = "Bca"
	BniDisplayName     = "Bni"
	MandiriDisplayName = "Mandiri"
)

type VirtualAccountPermataChargeResponse struct {
	ChargeResponseBase
	PermataVANumber string `json:"permata_va_number"`
	Bank            string `json:"bank"`
}

func NewVirtualAccountPermataChargeResponse(data map[string]any) (*VirtualAccountPermataChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	return &VirtualAccountPermataChargeResponse{
		ChargeResponseBase: *base,
		PermataVANumber:    p.str("permata_va_number"),
		Bank:               PermataDisplayName,
	}, nil
}

type VANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

type VirtualAccountBcaChargeResponse struct {
	ChargeResponseBase
	VANumbers []VANumber `json:"va_numbers"`
	Bank      string     `json:"bank"`
}

func NewVirtualAccountBcaChargeResponse(data map[string]any) (*VirtualAccountBcaChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	obj := VirtualAccountBcaChargeResponse{
		ChargeResponseBase: *base,
		Bank:               BcaDisplayName,
	}
	if err := p.decode("va_numbers", &obj.VANumbers); err != nil {
		return nil, err
	}

	return &obj, nil
}

type VirtualAccountBniChargeResponse struct {
	ChargeResponseBase
	VANumbers []VANumber `json:"va_numbers"`
	Bank      string     `json:"bank"`
}

func NewVirtualAccountBniChargeResponse(data map[string]any) (*VirtualAccountBniChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	obj := VirtualAccountBniChargeResponse{
		ChargeResponseBase: *base,
		Bank:               BniDisplayName,
	}
	if err := p.decode("va_numbers", &obj.VANumbers); err != nil {
		return nil, err
	}

	return &obj, nil
}

type VirtualAccountMandiriChargeResponse struct {
	ChargeResponseBase
	BillKey    string `json:"bill_key"`
	BillerCode string `json:"biller_code"`
	Bank       string `json:"bank"`
}

func NewVirtualAccountMandiriChargeResponse(data map[string]any) (*VirtualAccountMandiriChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	return &VirtualAccountMandiriChargeResponse{
		ChargeResponseBase: *base,
		BillKey:            p.str("bill_key"),
		BillerCode:         p.str("biller_code"),
		Bank:               MandiriDisplayName,
	}, nil
}

type IndomaretChargeResponse struct {
	ChargeResponseBase
	PaymentCode string `json:"payment_code"`
}

func NewIndomaretChargeResponse(data map[string]any) (*IndomaretChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	return &IndomaretChargeResponse{
		ChargeResponseBase: *base,
		PaymentCode:        p.str("payment_code"),
	}, nil
}

// RedirectChargeResponse is shared by the internet banking methods that send the customer to
// the bank's page.
type RedirectChargeResponse struct {
	ChargeResponseBase
	RedirectURL string `json:"redirect_url"`
}

func newRedirectChargeResponse(data map[string]any) (*RedirectChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	return &RedirectChargeResponse{
		ChargeResponseBase: *base,
		RedirectURL:        p.str("redirect_url"),
	}, nil
}

type EpayBriChargeResponse struct {
	RedirectChargeResponse
}

func NewEpayBriChargeResponse(data map[string]any) (*EpayBriChargeResponse, error) {
	r, err := newRedirectChargeResponse(data)
	if err != nil {
		return nil, err
	}

	return &EpayBriChargeResponse{RedirectChargeResponse: *r}, nil
}

type CimbsChargeResponse struct {
	RedirectChargeResponse
}

func NewCimbsChargeResponse(data map[string]any) (*CimbsChargeResponse, error) {
	r, err := newRedirectChargeResponse(data)
	if err != nil {
		return nil, err
	}

	return &CimbsChargeResponse{RedirectChargeResponse: *r}, nil
}

type BCAKlikPayChargeResponse struct {
	RedirectChargeResponse
}

func NewBCAKlikPayChargeResponse(data map[string]any) (*BCAKlikPayChargeResponse, error) {
	r, err := newRedirectChargeResponse(data)
	if err != nil {
		return nil, err
	}

	return &BCAKlikPayChargeResponse{RedirectChargeResponse: *r}, nil
}

type KlikBCAChargeResponse struct {
	RedirectChargeResponse
}

func NewKlikBCAChargeResponse(data map[string]any) (*KlikBCAChargeResponse, error) {
	r, err := newRedirectChargeResponse(data)
	if err != nil {
		return nil, err
	}

	return &KlikBCAChargeResponse{RedirectChargeResponse: *r}, nil
}

type MandiriChargeResponse struct {
	ChargeResponseBase
	MaskedCard string `json:"masked_card"`
}

func NewMandiriChargeResponse(data map[string]any) (*MandiriChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	return &MandiriChargeResponse{
		ChargeResponseBase: *base,
		MaskedCard:         p.str("masked_card"),
	}, nil
}

type GoPayAction struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	URL    string `json:"url"`
	Fields []any  `json:"fields,omitempty"`
}

type GoPayChargeResponse struct {
	ChargeResponseBase
	Actions                []GoPayAction `json:"actions"`
	ChannelResponseCode    string        `json:"channel_response_code"`
	ChannelResponseMessage string        `json:"channel_response_message"`
	Currency               string        `json:"currency"`
}

func NewGoPayChargeResponse(data map[string]any) (*GoPayChargeResponse, error) {
	p := payload(data)
	base, err := newChargeResponseBase(p)
	if err != nil {
		return nil, err
	}

	obj := GoPayChargeResponse{
		ChargeResponseBase:     *base,
		ChannelResponseCode:    p.str("channel_response_code"),
		ChannelResponseMessage: p.str("channel_response_message"),
		Currency:               p.str("currency"),
	}
	if err := p.decode("actions", &obj.Actions); err != nil {
		return nil, err
	}

	return &obj, nil
}

// TransactionResult carries the fields returned by the status, cancel and approve endpoints
// as well as payment notifications.
type TransactionResult struct {
	ResponseBase
	TransactionID     string     `json:"transaction_id"`
	MaskedCard        string     `json:"masked_card"`
	OrderID           string     `json:"order_id"`
	PaymentType       string     `json:"payment_type"`
	TransactionTime   *time.Time `json:"transaction_time"`
	TransactionStatus string     `json:"transaction_status"`
	FraudStatus       string     `json:"fraud_status"`
	ApprovalCode      string     `json:"approval_code"`
	SignatureKey      string     `json:"signature_key"`
	Bank              string     `json:"bank"`
	GrossAmount       int64      `json:"gross_amount"`

	// Raw values as sent by the gateway, the signature key is computed over these
	RawStatusCode  string `json:"-"`
	RawGrossAmount string `json:"-"`
}

func newTransactionResult(data map[string]any) (*TransactionResult, error) {
	p := payload(data)
	base, err := newResponseBase(p)
	if err != nil {
		return nil, err
	}

	transactionTime, err := p.dateTime("transaction_time")
	if err != nil {
		return nil, err
	}

	grossAmount, err := p.amount("gross_amount")
	if err != nil {
		return nil, err
	}

	return &TransactionResult{
		ResponseBase:      base,
		TransactionID:     p.str("transaction_id"),
		MaskedCard:        p.str("masked_card"),
		OrderID:           p.str("order_id"),
		PaymentType:       p.str("payment_type"),
		TransactionTime:   transactionTime,
		TransactionStatus: p.str("transaction_status"),
		FraudStatus:       p.str("fraud_status"),
		ApprovalCode:      p.str("approval_code"),
		SignatureKey:      p.str("signature_key"),
		Bank:              p.str("bank"),
		GrossAmount:       grossAmount,
		RawStatusCode:     p.str("status_code"),
		RawGrossAmount:    p.str("gross_amount"),
	}, nil
}

type StatusResponse struct {
	TransactionResult
}

func NewStatusResponse(data map[string]any) (*StatusResponse, error) {
	r, err := newTransactionResult(data)
	if err != nil {
		return nil, err
	}

	return &StatusResponse{TransactionResult: *r}, nil
}

type CancelResponse struct {
	TransactionResult
}

func NewCancelResponse(data map[string]any) (*CancelResponse, error) {
	r, err := newTransactionResult(data)
	if err != nil {
		return nil, err
	}

	return &CancelResponse{TransactionResult: *r}, nil
}

type ApproveResponse struct {
	TransactionResult
}

func NewApproveResponse(data map[string]any) (*ApproveResponse, error) {
	r, err := newTransactionResult(data)
	if err != nil {
		return nil, err
	}

	return &ApproveResponse{TransactionResult: *r}, nil
}

type BinData struct {
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	Brand       string `json:"brand"`
	BinType     string `json:"bin_type"`
	BinClass    string `json:"bin_class"`
	Bin         string `json:"bin"`
	BankCode    string `json:"bank_code"`
	Bank        string `json:"bank"`
}

type BinResponse struct {
	ResponseBase
	Data BinData `json:"data"`
}

// NewBinResponse accepts payloads without a status_code, the BIN endpoint only sends the data
// section on success.
func NewBinResponse(data map[string]any) (*BinResponse, error) {
	p := payload(data)

	var base ResponseBase
	if p.str("status_code") == "" {
		base = ResponseBase{StatusCode: 200, StatusMessage: p.str("status_message")}
	} else {
		var err error
		if base, err = newResponseBase(p); err != nil {
			return nil, err
		}
	}

	obj := BinResponse{ResponseBase: base}
	if err := p.decode("data", &obj.Data); err != nil {
		return nil, err
	}

	return &obj, nil
}
