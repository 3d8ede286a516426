package schemas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The Optional* types record whether a JSON field carried a non-null value so
// that absent, null and zero inputs can be told apart. Numeric types accept
// both JSON numbers and numeric strings; an empty string counts as absent.

var jsonNull = []byte("null")

type OptionalString struct {
	Value string
	Set   bool
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*o = OptionalString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a string, got %s", data)
	}
	*o = OptionalString{Value: s, Set: true}
	return nil
}

// Ptr returns the value or nil when the field was not sent.
func (o OptionalString) Ptr() *string {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// Blank reports whether the field is absent or only whitespace.
func (o OptionalString) Blank() bool {
	return !o.Set || strings.TrimSpace(o.Value) == ""
}

type OptionalDecimal struct {
	Value decimal.Decimal
	Set   bool
}

func (o *OptionalDecimal) UnmarshalJSON(data []byte) error {
	text, ok, err := scalarText(data)
	if err != nil || !ok {
		*o = OptionalDecimal{}
		return err
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q", text)
	}
	*o = OptionalDecimal{Value: d, Set: true}
	return nil
}

func (o OptionalDecimal) Ptr() *decimal.Decimal {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

type OptionalInt struct {
	Value int
	Set   bool
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	text, ok, err := scalarText(data)
	if err != nil || !ok {
		*o = OptionalInt{}
		return err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", text)
	}
	*o = OptionalInt{Value: n, Set: true}
	return nil
}

func (o OptionalInt) Ptr() *int {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// scalarText unwraps a JSON number or string into its trimmed text. ok is
// false for null and for empty strings.
func scalarText(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s != "", nil
	}
	if len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		return string(data), true, nil
	}
	return "", false, fmt.Errorf("expected a number, got %s", data)
}
