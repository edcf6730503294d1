// Package numeric implements optional numeric form fields with an explicit
// default instead of implicit coercion.
package numeric

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseOptionalNumber parses input as a decimal. Blank and non-numeric
// input yields def.
func ParseOptionalNumber(input string, def decimal.Decimal) decimal.Decimal {
	input = strings.TrimSpace(input)
	if input == "" {
		return def
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return def
	}
	return d
}

// Optional is a numeric form field that may be left blank. It decodes from
// JSON numbers, numeric strings, "" and null; anything else decodes as blank.
type Optional struct {
	Value decimal.Decimal
	Valid bool
}

// From returns a filled Optional.
func From(d decimal.Decimal) Optional {
	return Optional{Value: d, Valid: true}
}

// FromInt returns a filled Optional.
func FromInt(i int64) Optional {
	return From(decimal.NewFromInt(i))
}

// Parse builds an Optional from raw form input.
func Parse(input string) Optional {
	input = strings.TrimSpace(input)
	if input == "" {
		return Optional{}
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return Optional{}
	}
	return From(d)
}

// Or returns the value, or def when blank.
func (o Optional) Or(def decimal.Decimal) decimal.Decimal {
	if !o.Valid {
		return def
	}
	return o.Value
}

// OrZero is Or(decimal.Zero).
func (o Optional) OrZero() decimal.Decimal {
	return o.Or(decimal.Zero)
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = Optional{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = Parse(s)
		return nil
	}
	*o = Parse(string(data))
	return nil
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return o.Value.MarshalJSON()
}
