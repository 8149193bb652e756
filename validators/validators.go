package veritrans_integration_validators

import (
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/rotisserie/eris"
)

// Validator checks a single field value. A nil return means the value is acceptable.
type Validator interface {
	Validate(value any) error
}

// Validatable is implemented by every entity that knows how to validate its own fields.
type Validatable interface {
	ValidateAll() error
}

// IsAbsent reports whether value carries no value at all. Slices are never absent, a nil
// slice is treated as an empty collection.
func IsAbsent(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}

	return false
}

// deref unwraps pointers to scalar values so optional fields (*string, *int64) are checked
// the same way as their plain counterparts.
func deref(value any) any {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() != reflect.Struct {
		v = v.Elem()
	}
	if !v.IsValid() {
		return value
	}

	return v.Interface()
}

type RequiredValidator struct {
	IsRequired bool
}

var _ Validator = &RequiredValidator{}

func NewRequiredValidator(isRequired bool) *RequiredValidator {
	return &RequiredValidator{
		IsRequired: isRequired,
	}
}

func (v *RequiredValidator) Validate(value any) error {
	if v.IsRequired && IsAbsent(value) {
		return NewValidationError("required value is missing")
	}

	return nil
}

type LengthValidator struct {
	minLength int
	maxLength int
	hasMin    bool
	hasMax    bool
}

var _ Validator = &LengthValidator{}

type LengthOption func(*LengthValidator)

func WithMinLength(n int) LengthOption {
	return func(v *LengthValidator) {
		v.minLength = n
		v.hasMin = true
	}
}

func WithMaxLength(n int) LengthOption {
	return func(v *LengthValidator) {
		v.maxLength = n
		v.hasMax = true
	}
}

func NewLengthValidator(opts ...LengthOption) (*LengthValidator, error) {
	v := &LengthValidator{}
	for _, opt := range opts {
		opt(v)
	}

	if v.hasMin && v.hasMax && v.maxLength < v.minLength {
		return nil, eris.Wrapf(ErrInvalidLengthBounds, "min %d, max %d", v.minLength, v.maxLength)
	}

	return v, nil
}

func mustLength(opts ...LengthOption) *LengthValidator {
	v, err := NewLengthValidator(opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate skips the upper bound for absent values but counts them as zero length for the
// lower bound, so an absent value never satisfies a minimum.
func (v *LengthValidator) Validate(value any) error {
	absent := IsAbsent(value)
	value = deref(value)

	if v.hasMax && v.maxLength > 0 && !absent {
		length, err := lengthOf(value)
		if err != nil {
			return err
		}
		if length > v.maxLength {
			return NewValidationError("%v longer than max_length %d", value, v.maxLength)
		}
	}

	if v.hasMin && v.minLength > 0 {
		length := 0
		if !absent {
			var err error
			if length, err = lengthOf(value); err != nil {
				return err
			}
		}
		if length < v.minLength {
			return NewValidationError("%v shorter than min_length %d", value, v.minLength)
		}
	}

	return nil
}

func lengthOf(value any) (int, error) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), nil
	}

	return 0, eris.Errorf("%v (%T) has no length", value, value)
}

type RegexValidator struct {
	Pattern string

	re *regexp.Regexp
}

var _ Validator = &RegexValidator{}

// NewRegexValidator anchors the pattern at both ends of the value and lets '.' match
// newlines.
func NewRegexValidator(pattern string) (*RegexValidator, error) {
	re, err := regexp.Compile(`(?s)^(?:` + pattern + `)$`)
	if err != nil {
		return nil, eris.Wrapf(ErrInvalidPattern, "compiling %s: %s", pattern, err.Error())
	}

	return &RegexValidator{
		Pattern: pattern,
		re:      re,
	}, nil
}

// MustRegexValidator is NewRegexValidator for patterns known at compile time.
func MustRegexValidator(pattern string) *RegexValidator {
	v, err := NewRegexValidator(pattern)
	if err != nil {
		panic(err)
	}

	return v
}

func (v *RegexValidator) Validate(value any) error {
	if IsAbsent(value) {
		return nil
	}

	s, ok := deref(value).(string)
	if !ok {
		return eris.Errorf("cannot match %v (%T) against a pattern", value, value)
	}

	if !v.re.MatchString(s) {
		return NewValidationError("%s did not match expected pattern %s", s, v.Pattern)
	}

	return nil
}

type StringTypeValidator struct{}

var _ Validator = &StringTypeValidator{}

func (v *StringTypeValidator) Validate(value any) error {
	if IsAbsent(value) {
		return nil
	}

	value = deref(value)
	if _, ok := value.(string); !ok {
		return NewValidationError("%v (%T) is not a string", value, value)
	}

	return nil
}

type NumericTypeValidator struct{}

var _ Validator = &NumericTypeValidator{}

// Validate accepts integer and floating point kinds only. Numbers encoded as strings are
// rejected.
func (v *NumericTypeValidator) Validate(value any) error {
	if IsAbsent(value) {
		return nil
	}

	value = deref(value)
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	}

	return NewValidationError("%v (%T) is not numeric", value, value)
}

// PassthroughValidator hands validation over to the value itself, element by element when
// the value is a collection.
type PassthroughValidator struct{}

var _ Validator = &PassthroughValidator{}

func (v *PassthroughValidator) Validate(value any) error {
	if IsAbsent(value) {
		return nil
	}

	if entity, ok := value.(Validatable); ok {
		return entity.ValidateAll()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return eris.Errorf("%T does not support validation", value)
	}

	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		entity, ok := item.(Validatable)
		if !ok || IsAbsent(item) {
			return eris.Errorf("element %d (%T) does not support validation", i, item)
		}
		if err := entity.ValidateAll(); err != nil {
			return err
		}
	}

	return nil
}

// DummyValidator accepts everything.
type DummyValidator struct{}

var _ Validator = &DummyValidator{}

func (v *DummyValidator) Validate(value any) error {
	return nil
}
