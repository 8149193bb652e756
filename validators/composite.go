package veritrans_integration_validators

// ChainValidator runs the required check first and then every member in order, stopping at
// the first failure. An absent value that passed the required check ends the chain.
type ChainValidator struct {
	Required   *RequiredValidator
	Validators []Validator
}

var _ Validator = &ChainValidator{}

func Chain(isRequired bool, validators ...Validator) *ChainValidator {
	return &ChainValidator{
		Required:   NewRequiredValidator(isRequired),
		Validators: validators,
	}
}

func (v *ChainValidator) Validate(value any) error {
	if err := v.Required.Validate(value); err != nil {
		return err
	}

	if IsAbsent(value) {
		return nil
	}

	for _, validator := range v.Validators {
		if err := validator.Validate(value); err != nil {
			return err
		}
	}

	return nil
}

// Patterns used by the composite validators
const (
	PostalcodePattern = `^[\d\-\s]*$`
	PhonePattern      = `^[\d+\-() ]*$`
	EmailPattern      = `^.+@.+$`
)

func NewAddressValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, mustLength(WithMaxLength(200)))
}

func NewPostalcodeValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, MustRegexValidator(PostalcodePattern), mustLength(WithMaxLength(10)))
}

func NewNameValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, mustLength(WithMaxLength(20)))
}

func NewCityValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, mustLength(WithMaxLength(20)))
}

func NewPhoneValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, MustRegexValidator(PhonePattern), mustLength(WithMinLength(5), WithMaxLength(19)))
}

func NewEmailValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, MustRegexValidator(EmailPattern), mustLength(WithMaxLength(45)))
}

func NewCountrycodeValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, mustLength(WithMaxLength(10)))
}

// NewStringValidator checks the type before the length so a non string never reaches the
// length check.
func NewStringValidator(isRequired bool, opts ...LengthOption) (*ChainValidator, error) {
	length, err := NewLengthValidator(opts...)
	if err != nil {
		return nil, err
	}

	return Chain(isRequired, &StringTypeValidator{}, length), nil
}

// MustStringValidator is NewStringValidator for bounds known at compile time.
func MustStringValidator(isRequired bool, opts ...LengthOption) *ChainValidator {
	v, err := NewStringValidator(isRequired, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

func NewNumericValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, &NumericTypeValidator{})
}

func NewPassthroughValidator(isRequired bool) *ChainValidator {
	return Chain(isRequired, &PassthroughValidator{})
}
