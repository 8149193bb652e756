package veritrans_integration_validators

import (
	"errors"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
)

func isValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func TestRequiredValidator(t *testing.T) {
	var nilString *string
	empty := ""

	tests := []struct {
		name       string
		isRequired bool
		value      any
		wantErr    bool
	}{
		{"nil required", true, nil, true},
		{"nil pointer required", true, nilString, true},
		{"nil optional", false, nil, false},
		{"empty string", true, "", false},
		{"empty string pointer", true, &empty, false},
		{"zero", true, 0, false},
		{"false", true, false, false},
		{"empty slice", true, []string{}, false},
		{"nil slice", true, []string(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequiredValidator(tt.isRequired).Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !isValidationError(err) {
				t.Errorf("expected a ValidationError, got %T", err)
			}
		})
	}
}

func TestLengthValidatorBounds(t *testing.T) {
	_, err := NewLengthValidator(WithMinLength(10), WithMaxLength(5))
	if err == nil {
		t.Fatal("expected construction error when max < min")
	}
	if !eris.Is(err, ErrInvalidLengthBounds) {
		t.Errorf("expected ErrInvalidLengthBounds, got %v", err)
	}
	if isValidationError(err) {
		t.Error("construction error must not be a ValidationError")
	}

	if _, err := NewLengthValidator(WithMinLength(5), WithMaxLength(5)); err != nil {
		t.Errorf("equal bounds should be accepted, got %v", err)
	}
}

func TestLengthValidator(t *testing.T) {
	maxOnly, _ := NewLengthValidator(WithMaxLength(5))
	minOnly, _ := NewLengthValidator(WithMinLength(3))

	if err := maxOnly.Validate("abcde"); err != nil {
		t.Errorf("5 chars should pass max 5, got %v", err)
	}
	if err := maxOnly.Validate("abcdef"); err == nil || !strings.Contains(err.Error(), "longer than max_length 5") {
		t.Errorf("expected max length failure, got %v", err)
	}
	if err := maxOnly.Validate(nil); err != nil {
		t.Errorf("absent value should skip the max check, got %v", err)
	}
	if err := maxOnly.Validate("ééééé"); err != nil {
		t.Errorf("length must count characters, not bytes, got %v", err)
	}

	if err := minOnly.Validate(nil); err == nil || !strings.Contains(err.Error(), "shorter than min_length 3") {
		t.Errorf("absent value should fail the min check, got %v", err)
	}
	if err := minOnly.Validate([]int{1, 2}); err == nil {
		t.Error("2 element slice should fail min 3")
	}
	if err := minOnly.Validate([]int{1, 2, 3}); err != nil {
		t.Errorf("3 element slice should pass min 3, got %v", err)
	}

	err := maxOnly.Validate(42)
	if err == nil {
		t.Fatal("expected an error for a value without length")
	}
	if isValidationError(err) {
		t.Error("a value without length is not a validation failure")
	}
}

func TestRegexValidator(t *testing.T) {
	phone, err := NewRegexValidator(PhonePattern)
	if err != nil {
		t.Fatal(err)
	}

	for _, number := range []string{"+62 812 1272 8059", "+1 (330) 776-8177", "81212728059"} {
		if err := phone.Validate(number); err != nil {
			t.Errorf("%s should match, got %v", number, err)
		}
	}

	if err := phone.Validate("call me"); err == nil || !strings.Contains(err.Error(), "did not match expected pattern") {
		t.Errorf("expected pattern failure, got %v", err)
	}
	if err := phone.Validate(nil); err != nil {
		t.Errorf("absent value should be skipped, got %v", err)
	}

	dotAll, _ := NewRegexValidator(`a.b`)
	if err := dotAll.Validate("a\nb"); err != nil {
		t.Errorf("dot should match newlines, got %v", err)
	}

	anchored, _ := NewRegexValidator(`b`)
	for _, value := range []string{"ab", "bc", "b\n"} {
		if err := anchored.Validate(value); err == nil {
			t.Errorf("%q should not match, the pattern is anchored at both ends", value)
		}
	}
	if err := anchored.Validate("b"); err != nil {
		t.Errorf("exact value should match, got %v", err)
	}

	alternation, _ := NewRegexValidator(`a|ab`)
	if err := alternation.Validate("ab"); err != nil {
		t.Errorf("every alternative must be anchored as a whole, got %v", err)
	}

	if _, err := NewRegexValidator(`(`); !eris.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestTypeValidators(t *testing.T) {
	str := &StringTypeValidator{}
	num := &NumericTypeValidator{}
	s := "hello"

	if err := str.Validate("hello"); err != nil {
		t.Error(err)
	}
	if err := str.Validate(&s); err != nil {
		t.Error(err)
	}
	if err := str.Validate(nil); err != nil {
		t.Error(err)
	}
	if err := str.Validate(123); err == nil || err.Error() != "123 (int) is not a string" {
		t.Errorf("unexpected result %v", err)
	}

	for _, v := range []any{100, int64(145000), 1.5, uint8(3)} {
		if err := num.Validate(v); err != nil {
			t.Errorf("%v should be numeric, got %v", v, err)
		}
	}
	for _, v := range []any{"100", true, []int{1}} {
		if err := num.Validate(v); err == nil {
			t.Errorf("%v should not be numeric", v)
		}
	}
}

type stubEntity struct {
	err   error
	calls *int
}

func (s *stubEntity) ValidateAll() error {
	*s.calls++
	return s.err
}

func TestPassthroughValidator(t *testing.T) {
	calls := 0
	ok := &stubEntity{calls: &calls}
	failing := &stubEntity{err: NewValidationError("id failed validation: boom"), calls: &calls}

	v := NewPassthroughValidator(true)

	if err := v.Validate(ok); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := v.Validate([]*stubEntity{ok, ok}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 ValidateAll calls, got %d", calls)
	}

	err := v.Validate([]*stubEntity{ok, failing})
	if err == nil || err.Error() != "id failed validation: boom" {
		t.Errorf("expected the nested message unchanged, got %v", err)
	}

	if err := v.Validate([]*stubEntity{}); err != nil {
		t.Errorf("empty collection should pass, got %v", err)
	}
	if err := v.Validate((*stubEntity)(nil)); err == nil {
		t.Error("required passthrough should reject an absent entity")
	}
	if err := NewPassthroughValidator(false).Validate((*stubEntity)(nil)); err != nil {
		t.Errorf("optional passthrough should accept an absent entity, got %v", err)
	}

	err = v.Validate(42)
	if err == nil || isValidationError(err) {
		t.Errorf("expected a non validation error for a scalar, got %v", err)
	}
}

func TestDummyValidator(t *testing.T) {
	for _, v := range []any{nil, "", 42, []int{}} {
		if err := (&DummyValidator{}).Validate(v); err != nil {
			t.Errorf("dummy must accept %v, got %v", v, err)
		}
	}
}
