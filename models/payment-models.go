package veritrans_integration_models

import (
	"github.com/rotisserie/eris"
)

// Keys used by the gateway to tell payment methods apart
const (
	CreditCardKey      = "credit_card"
	BankTransferKey    = "bank_transfer"
	EChannelKey        = "echannel"
	BriEpayKey         = "bri_epay"
	CStoreKey          = "cstore"
	MandiriClickpayKey = "mandiri_clickpay"
	CimbClicksKey      = "cimb_clicks"
	BCAKlikPayKey      = "bca_klikpay"
	KlikBCAKey         = "bca_klikbca"
	GoPayKey           = "gopay"
	TelkomselCashKey   = "telkomsel_cash"
	XLTunaiKey         = "xl_tunai"
)

var ErrPaymentTypeNotImplemented = eris.New("payment type is not implemented")

// PaymentType is one of the payment method variants of a charge. Serialize returns the
// payment_type discriminator together with the method specific section.
type PaymentType interface {
	Serializable
	PaymentTypeKey() string
}

func paymentFragment(key string, attributes map[string]any) map[string]any {
	return map[string]any{
		"payment_type": key,
		key:            attributes,
	}
}

type CreditCard struct {
	Bank        string   // Acquiring bank, e.g. bni
	TokenID     string   // Token obtained from the client side tokenization
	Bins        []string // Optional, restricts the card to the listed BIN prefixes
	SaveTokenID bool     // Optional, asks the gateway for a reusable token
}

var _ PaymentType = &CreditCard{}

func (p *CreditCard) PaymentTypeKey() string {
	return CreditCardKey
}

func (p *CreditCard) Serialize() (map[string]any, error) {
	attributes := map[string]any{
		"bank":     p.Bank,
		"token_id": p.TokenID,
	}
	if len(p.Bins) > 0 {
		attributes["bins"] = p.Bins
	}
	if p.SaveTokenID {
		attributes["save_token_id"] = true
	}

	return paymentFragment(CreditCardKey, attributes), nil
}

// Virtual account banks
const (
	PermataBank = "permata"
	BcaBank     = "bca"
	BniBank     = "bni"
)

type VirtualAccountPermata struct {
	VANumber string // Optional, custom virtual account number
}

var _ PaymentType = &VirtualAccountPermata{}

func (p *VirtualAccountPermata) PaymentTypeKey() string {
	return BankTransferKey
}

func (p *VirtualAccountPermata) Serialize() (map[string]any, error) {
	return paymentFragment(BankTransferKey, bankTransferAttributes(PermataBank, p.VANumber)), nil
}

type VirtualAccountBca struct {
	VANumber string // Optional, custom virtual account number
}

var _ PaymentType = &VirtualAccountBca{}

func (p *VirtualAccountBca) PaymentTypeKey() string {
	return BankTransferKey
}

func (p *VirtualAccountBca) Serialize() (map[string]any, error) {
	return paymentFragment(BankTransferKey, bankTransferAttributes(BcaBank, p.VANumber)), nil
}

type VirtualAccountBni struct {
	VANumber string // Optional, custom virtual account number
}

var _ PaymentType = &VirtualAccountBni{}

func (p *VirtualAccountBni) PaymentTypeKey() string {
	return BankTransferKey
}

func (p *VirtualAccountBni) Serialize() (map[string]any, error) {
	return paymentFragment(BankTransferKey, bankTransferAttributes(BniBank, p.VANumber)), nil
}

func bankTransferAttributes(bank, vaNumber string) map[string]any {
	attributes := map[string]any{"bank": bank}
	if vaNumber != "" {
		attributes["va_number"] = vaNumber
	}

	return attributes
}

// VirtualAccountMandiri is the Mandiri bill payment (echannel).
type VirtualAccountMandiri struct {
	BillInfo1 string
	BillInfo2 string
}

var _ PaymentType = &VirtualAccountMandiri{}

func (p *VirtualAccountMandiri) PaymentTypeKey() string {
	return EChannelKey
}

func (p *VirtualAccountMandiri) Serialize() (map[string]any, error) {
	return paymentFragment(EChannelKey, map[string]any{
		"bill_info1": p.BillInfo1,
		"bill_info2": p.BillInfo2,
	}), nil
}

type BriEpay struct{}

var _ PaymentType = &BriEpay{}

func (p *BriEpay) PaymentTypeKey() string {
	return BriEpayKey
}

func (p *BriEpay) Serialize() (map[string]any, error) {
	return paymentFragment(BriEpayKey, map[string]any{}), nil
}

// IndomaretStore is the convenience store name sent for Indomaret payments
const IndomaretStore = "Indomaret"

type Indomaret struct {
	Message string // Shown to the customer at the counter
}

var _ PaymentType = &Indomaret{}

func (p *Indomaret) PaymentTypeKey() string {
	return CStoreKey
}

func (p *Indomaret) Serialize() (map[string]any, error) {
	return paymentFragment(CStoreKey, map[string]any{
		"store":   IndomaretStore,
		"message": p.Message,
	}), nil
}

type MandiriClickpay struct {
	CardNumber string
	Input1     string // Last 10 digits of the card number
	Input2     string // Gross amount
	Input3     string // 5 random digits
	Token      string // Response from the customer's token device
}

var _ PaymentType = &MandiriClickpay{}

func (p *MandiriClickpay) PaymentTypeKey() string {
	return MandiriClickpayKey
}

func (p *MandiriClickpay) Serialize() (map[string]any, error) {
	return paymentFragment(MandiriClickpayKey, map[string]any{
		"card_number": p.CardNumber,
		"input1":      p.Input1,
		"input2":      p.Input2,
		"input3":      p.Input3,
		"token":       p.Token,
	}), nil
}

type CimbClicks struct {
	Description string
}

var _ PaymentType = &CimbClicks{}

func (p *CimbClicks) PaymentTypeKey() string {
	return CimbClicksKey
}

func (p *CimbClicks) Serialize() (map[string]any, error) {
	return paymentFragment(CimbClicksKey, map[string]any{
		"description": p.Description,
	}), nil
}

type BCAKlikPay struct {
	TypeID      int // 1 for full payment
	Description string
}

var _ PaymentType = &BCAKlikPay{}

func (p *BCAKlikPay) PaymentTypeKey() string {
	return BCAKlikPayKey
}

func (p *BCAKlikPay) Serialize() (map[string]any, error) {
	return paymentFragment(BCAKlikPayKey, map[string]any{
		"type":        p.TypeID,
		"description": p.Description,
	}), nil
}

type KlikBCA struct {
	UserID      string // KlikBCA user id of the customer
	Description string
}

var _ PaymentType = &KlikBCA{}

func (p *KlikBCA) PaymentTypeKey() string {
	return KlikBCAKey
}

func (p *KlikBCA) Serialize() (map[string]any, error) {
	return paymentFragment(KlikBCAKey, map[string]any{
		"user_id":     p.UserID,
		"description": p.Description,
	}), nil
}

type GoPay struct {
	EnableCallback bool
	CallbackURL    string // Optional, deeplink the customer returns to after paying
}

var _ PaymentType = &GoPay{}

func (p *GoPay) PaymentTypeKey() string {
	return GoPayKey
}

func (p *GoPay) Serialize() (map[string]any, error) {
	attributes := map[string]any{
		"enable_callback": p.EnableCallback,
	}
	if p.CallbackURL != "" {
		attributes["callback_url"] = p.CallbackURL
	}

	return paymentFragment(GoPayKey, attributes), nil
}

// TelkomselCash is not offered by the gateway yet, constructing or serializing it fails.
type TelkomselCash struct{}

var _ PaymentType = &TelkomselCash{}

func NewTelkomselCash(token, customer string) (*TelkomselCash, error) {
	return nil, eris.Wrap(ErrPaymentTypeNotImplemented, TelkomselCashKey)
}

func (p *TelkomselCash) PaymentTypeKey() string {
	return TelkomselCashKey
}

func (p *TelkomselCash) Serialize() (map[string]any, error) {
	return nil, eris.Wrap(ErrPaymentTypeNotImplemented, TelkomselCashKey)
}

// XLTunai is not offered by the gateway yet, constructing or serializing it fails.
type XLTunai struct{}

var _ PaymentType = &XLTunai{}

func NewXLTunai(msisdn string) (*XLTunai, error) {
	return nil, eris.Wrap(ErrPaymentTypeNotImplemented, XLTunaiKey)
}

func (p *XLTunai) PaymentTypeKey() string {
	return XLTunaiKey
}

func (p *XLTunai) Serialize() (map[string]any, error) {
	return nil, eris.Wrap(ErrPaymentTypeNotImplemented, XLTunaiKey)
}
