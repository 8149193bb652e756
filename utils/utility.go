package veritrans_integration_utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// DateTimeLayout is the timestamp format used by the gateway, e.g. "2014-08-24 15:39:22".
const DateTimeLayout = "2006-01-02 15:04:05"

// ParseDateTime converts a gateway timestamp into a time without an offset (UTC). An empty
// string means the field was absent and yields nil.
func ParseDateTime(dateTimeStr string) (*time.Time, error) {
	if dateTimeStr == "" {
		return nil, nil
	}

	t, err := time.Parse(DateTimeLayout, dateTimeStr)
	if err != nil {
		return nil, eris.Wrapf(err, "parsing date time %s", dateTimeStr)
	}

	return &t, nil
}

// FormatDateTime is the inverse of ParseDateTime.
func FormatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(DateTimeLayout)
}

// ParseAmount converts a decimal amount string ("145000.00") into a whole number by dropping
// the fractional part. An empty string yields 0.
func ParseAmount(amount string) (int64, error) {
	if amount == "" {
		return 0, nil
	}

	whole, _, _ := strings.Cut(amount, ".")
	value, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parsing amount %s", amount)
	}

	return value, nil
}
