package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON value that may arrive as a number, a numeric string,
// null, or be missing altogether. Decoding never fails: anything that is
// not null is kept raw and judged only when Float64 is called.
type Number struct {
	raw     string
	present bool
}

// NewNumber builds a present Number from a float
func NewNumber(v float64) Number {
	return Number{raw: strconv.FormatFloat(v, 'f', -1, 64), present: true}
}

// NumberFromString builds a present Number from its raw text
func NumberFromString(s string) Number {
	return Number{raw: s, present: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = Number{}
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err == nil {
			s = str
		}
	}

	*n = Number{raw: s, present: true}
	return nil
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.present {
		return []byte("null"), nil
	}
	if v, ok := n.Float64(); ok {
		return json.Marshal(v)
	}
	return json.Marshal(n.raw)
}

// Present reports whether the value was neither missing nor null
func (n Number) Present() bool {
	return n.present
}

// Float64 parses the value. It returns false for missing, null,
// non-numeric, NaN and infinite values.
func (n Number) Float64() (float64, bool) {
	if !n.present {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// String returns the raw text of the value
func (n Number) String() string {
	return n.raw
}
