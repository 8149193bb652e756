package veritrans_integration_models

import (
	"reflect"

	viValidators "github.com/voxtmault/veritrans-integration/validators"
)

// Serializable entities turn themselves into the nested map sent over the wire.
type Serializable interface {
	Serialize() (map[string]any, error)
}

// GatewayRequest is every request the gateway client knows how to submit. The method and
// relative path are implied by the request type.
type GatewayRequest interface {
	viValidators.Validatable
	Serializable
	HTTPMethod() string
	RelativePath() string
}

// field binds a wire name to an accessor and the validator for that value. Each entity type
// declares its fields once at package level.
type field[T any] struct {
	Name      string
	Value     func(T) any
	Validator viValidators.Validator
}

// validateFields checks fields in declaration order and stops at the first failure. Validation
// failures are prefixed with the field name, anything else is returned as is.
func validateFields[T any](entity T, fields []field[T]) error {
	for _, f := range fields {
		if err := f.Validator.Validate(f.Value(entity)); err != nil {
			if vErr, ok := err.(*viValidators.ValidationError); ok {
				return viValidators.NewValidationError("%s failed validation: %s", f.Name, vErr.Message)
			}
			return err
		}
	}

	return nil
}

// serializeFields builds the wire map, absent values are left out.
func serializeFields[T any](entity T, fields []field[T]) (map[string]any, error) {
	result := make(map[string]any, len(fields))

	for _, f := range fields {
		value := f.Value(entity)
		if viValidators.IsAbsent(value) {
			continue
		}

		serialized, err := serializeValue(value)
		if err != nil {
			return nil, err
		}
		result[f.Name] = serialized
	}

	return result, nil
}

func serializeValue(value any) (any, error) {
	if viValidators.IsAbsent(value) {
		return nil, nil
	}

	if s, ok := value.(Serializable); ok {
		return s.Serialize()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		return serializeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := serializeValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	return value, nil
}

// optional maps the zero value of an optional string to an absent value.
func optional(s string) any {
	if s == "" {
		return nil
	}

	return s
}

