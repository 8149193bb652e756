package veritrans_integration_utils

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func InitValidator() *validator.Validate {
	validate = validator.New()

	validate.RegisterValidation(string(VTServerKey), ValidateServerKey)
	validate.RegisterValidation(string(VTOrderID), ValidateOrderID)

	return validate
}

func GetValidator() *validator.Validate {
	if validate == nil {
		return InitValidator()
	} else {
		return validate
	}
}

func ValidateStruct(ctx context.Context, s interface{}) error {
	return GetValidator().StructCtx(ctx, s)
}

// Register custom validation rule

// Custom validation tag name to be used in struct tag
type CustomValidatorName string

const (
	VTServerKey CustomValidatorName = "vtServerKey"
	VTOrderID   CustomValidatorName = "vtOrderID"
)

// ValidateServerKey rejects keys that would break the basic auth credential, the key is sent
// as the username with an empty password.
func ValidateServerKey(fl validator.FieldLevel) bool {
	serverKey := fl.Field().String()

	return serverKey != "" && !strings.ContainsAny(serverKey, ": \t\n")
}

// ValidateOrderID is used AFTER checking for required & max tag / rule. Order ids of status,
// cancel and approve requests end up in request paths so only url safe characters are allowed.
func ValidateOrderID(fl validator.FieldLevel) bool {
	for _, c := range fl.Field().String() {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == '~':
		default:
			return false
		}
	}

	return true
}
