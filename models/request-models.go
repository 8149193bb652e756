package veritrans_integration_models

import (
	"fmt"
	"net/http"
	"net/url"

	viUtil "github.com/voxtmault/veritrans-integration/utils"
	viValidators "github.com/voxtmault/veritrans-integration/validators"
	"github.com/voxtmault/veritrans-integration/veritrans"
)

type Address struct {
	FirstName   string // Optional
	LastName    string // Optional
	Address     string
	City        string
	PostalCode  string
	Phone       string // Optional
	CountryCode string // Optional, ISO 3166-1 alpha-3 e.g. IDN
}

var addressFields = []field[*Address]{
	{"address", func(a *Address) any { return a.Address }, viValidators.NewAddressValidator(true)},
	{"city", func(a *Address) any { return a.City }, viValidators.NewCityValidator(true)},
	{"postal_code", func(a *Address) any { return a.PostalCode }, viValidators.NewPostalcodeValidator(true)},
	{"first_name", func(a *Address) any { return optional(a.FirstName) }, viValidators.NewNameValidator(false)},
	{"last_name", func(a *Address) any { return optional(a.LastName) }, viValidators.NewNameValidator(false)},
	{"phone", func(a *Address) any { return optional(a.Phone) }, viValidators.NewPhoneValidator(false)},
	{"country_code", func(a *Address) any { return optional(a.CountryCode) }, viValidators.NewCountrycodeValidator(false)},
}

var _ viValidators.Validatable = &Address{}

func (a *Address) ValidateAll() error {
	return validateFields(a, addressFields)
}

func (a *Address) Serialize() (map[string]any, error) {
	if err := a.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(a, addressFields)
}

type TransactionDetails struct {
	OrderID     string // Unique per merchant, at most 50 characters
	GrossAmount int64  // Total amount in IDR
}

var transactionDetailsFields = []field[*TransactionDetails]{
	{"order_id", func(t *TransactionDetails) any { return t.OrderID }, viValidators.MustStringValidator(true, viValidators.WithMaxLength(50))},
	{"gross_amount", func(t *TransactionDetails) any { return t.GrossAmount }, viValidators.NewNumericValidator(true)},
}

func (t *TransactionDetails) ValidateAll() error {
	return validateFields(t, transactionDetailsFields)
}

func (t *TransactionDetails) Serialize() (map[string]any, error) {
	if err := t.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(t, transactionDetailsFields)
}

type CustomerDetails struct {
	FirstName       string
	LastName        string // Optional
	Email           string
	Phone           string
	BillingAddress  *Address // Optional
	ShippingAddress *Address // Optional
}

var customerDetailsFields = []field[*CustomerDetails]{
	{"first_name", func(c *CustomerDetails) any { return c.FirstName }, viValidators.NewNameValidator(true)},
	{"last_name", func(c *CustomerDetails) any { return optional(c.LastName) }, viValidators.NewNameValidator(false)},
	{"email", func(c *CustomerDetails) any { return c.Email }, viValidators.NewEmailValidator(true)},
	{"phone", func(c *CustomerDetails) any { return c.Phone }, viValidators.NewPhoneValidator(true)},
	{"billing_address", func(c *CustomerDetails) any { return c.BillingAddress }, viValidators.NewPassthroughValidator(false)},
	{"shipping_address", func(c *CustomerDetails) any { return c.ShippingAddress }, viValidators.NewPassthroughValidator(false)},
}

func (c *CustomerDetails) ValidateAll() error {
	return validateFields(c, customerDetailsFields)
}

func (c *CustomerDetails) Serialize() (map[string]any, error) {
	if err := c.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(c, customerDetailsFields)
}

type ItemDetails struct {
	ID       string
	Price    int64
	Quantity int64
	Name     string
}

var itemDetailsFields = []field[*ItemDetails]{
	{"id", func(i *ItemDetails) any { return i.ID }, viValidators.MustStringValidator(true, viValidators.WithMaxLength(50))},
	{"price", func(i *ItemDetails) any { return i.Price }, viValidators.NewNumericValidator(true)},
	{"quantity", func(i *ItemDetails) any { return i.Quantity }, viValidators.NewNumericValidator(true)},
	{"name", func(i *ItemDetails) any { return i.Name }, viValidators.MustStringValidator(true, viValidators.WithMaxLength(50))},
}

func (i *ItemDetails) ValidateAll() error {
	return validateFields(i, itemDetailsFields)
}

func (i *ItemDetails) Serialize() (map[string]any, error) {
	if err := i.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(i, itemDetailsFields)
}

// ChargeRequest bundles a payment method with the transaction, customer and line items of a
// single charge.
type ChargeRequest struct {
	PaymentType        PaymentType
	TransactionDetails *TransactionDetails
	CustomerDetails    *CustomerDetails
	ItemDetails        []*ItemDetails // Optional, left out of the payload when empty
}

var chargeRequestFields = []field[*ChargeRequest]{
	{"charge_type", func(c *ChargeRequest) any { return c.PaymentType }, viValidators.NewRequiredValidator(true)},
	{"transaction_details", func(c *ChargeRequest) any { return c.TransactionDetails }, viValidators.NewPassthroughValidator(true)},
	{"customer_details", func(c *ChargeRequest) any { return c.CustomerDetails }, viValidators.NewPassthroughValidator(true)},
	{"item_details", func(c *ChargeRequest) any { return c.ItemDetails }, viValidators.NewPassthroughValidator(true)},
}

var _ GatewayRequest = &ChargeRequest{}

func (c *ChargeRequest) ValidateAll() error {
	return validateFields(c, chargeRequestFields)
}

// Serialize validates the whole request and merges the payment method fragment with the
// transaction, customer and item sections.
func (c *ChargeRequest) Serialize() (map[string]any, error) {
	if err := c.ValidateAll(); err != nil {
		return nil, err
	}

	result, err := c.PaymentType.Serialize()
	if err != nil {
		return nil, err
	}

	if result["transaction_details"], err = c.TransactionDetails.Serialize(); err != nil {
		return nil, err
	}
	if result["customer_details"], err = c.CustomerDetails.Serialize(); err != nil {
		return nil, err
	}

	if len(c.ItemDetails) > 0 {
		items, err := serializeValue(c.ItemDetails)
		if err != nil {
			return nil, err
		}
		result["item_details"] = items
	}

	return result, nil
}

func (c *ChargeRequest) HTTPMethod() string {
	return http.MethodPost
}

func (c *ChargeRequest) RelativePath() string {
	return veritrans.ChargePath
}

// orderIDSegmentValidator applies the vtOrderID rule, the order id has to stay a single path
// segment of the status, cancel and approve endpoints.
type orderIDSegmentValidator struct{}

var _ viValidators.Validator = &orderIDSegmentValidator{}

func (v *orderIDSegmentValidator) Validate(value any) error {
	if viValidators.IsAbsent(value) {
		return nil
	}

	if err := viUtil.GetValidator().Var(value, string(viUtil.VTOrderID)); err != nil {
		return viValidators.NewValidationError("%v contains characters not allowed in an order id", value)
	}

	return nil
}

var orderIDFields = []field[string]{
	{"order_id", func(orderID string) any { return orderID }, viValidators.Chain(true,
		viValidators.MustStringValidator(true, viValidators.WithMaxLength(viUtil.MaxOrderIDLength)),
		&orderIDSegmentValidator{},
	)},
}

// StatusRequest queries the current state of a transaction.
type StatusRequest struct {
	OrderID string
}

var _ GatewayRequest = &StatusRequest{}

func (r *StatusRequest) ValidateAll() error {
	return validateFields(r.OrderID, orderIDFields)
}

func (r *StatusRequest) Serialize() (map[string]any, error) {
	if err := r.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(r.OrderID, orderIDFields)
}

func (r *StatusRequest) HTTPMethod() string {
	return http.MethodGet
}

func (r *StatusRequest) RelativePath() string {
	return fmt.Sprintf(veritrans.StatusPath, url.PathEscape(r.OrderID))
}

// CancelRequest cancels a transaction that has not been settled yet.
type CancelRequest struct {
	OrderID string
}

var _ GatewayRequest = &CancelRequest{}

func (r *CancelRequest) ValidateAll() error {
	return validateFields(r.OrderID, orderIDFields)
}

func (r *CancelRequest) Serialize() (map[string]any, error) {
	if err := r.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(r.OrderID, orderIDFields)
}

func (r *CancelRequest) HTTPMethod() string {
	return http.MethodPost
}

func (r *CancelRequest) RelativePath() string {
	return fmt.Sprintf(veritrans.CancelPath, url.PathEscape(r.OrderID))
}

// ApprovalRequest accepts a transaction flagged as challenge by fraud detection.
type ApprovalRequest struct {
	OrderID string
}

var _ GatewayRequest = &ApprovalRequest{}

func (r *ApprovalRequest) ValidateAll() error {
	return validateFields(r.OrderID, orderIDFields)
}

func (r *ApprovalRequest) Serialize() (map[string]any, error) {
	if err := r.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(r.OrderID, orderIDFields)
}

func (r *ApprovalRequest) HTTPMethod() string {
	return http.MethodPost
}

func (r *ApprovalRequest) RelativePath() string {
	return fmt.Sprintf(veritrans.ApprovePath, url.PathEscape(r.OrderID))
}

// BinRequest looks up the issuer of a card from its first 6 to 8 digits.
type BinRequest struct {
	BinNumber string
}

var binRequestFields = []field[*BinRequest]{
	{"bin_number", func(r *BinRequest) any { return r.BinNumber }, viValidators.Chain(true, viValidators.MustRegexValidator(`^\d{6,8}$`))},
}

var _ GatewayRequest = &BinRequest{}

func (r *BinRequest) ValidateAll() error {
	return validateFields(r, binRequestFields)
}

func (r *BinRequest) Serialize() (map[string]any, error) {
	if err := r.ValidateAll(); err != nil {
		return nil, err
	}

	return serializeFields(r, binRequestFields)
}

func (r *BinRequest) HTTPMethod() string {
	return http.MethodGet
}

func (r *BinRequest) RelativePath() string {
	return fmt.Sprintf(veritrans.BinsPath, r.BinNumber)
}
