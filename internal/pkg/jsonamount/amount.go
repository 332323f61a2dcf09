// Package jsonamount decodes monetary JSON values that clients send as numbers,
// numeric strings or null.
package jsonamount

import (
	"bytes"
	"encoding/json"
)

// Amount keeps the raw token of a JSON amount so the caller can parse it with its
// own policy. The zero value is an absent amount.
type Amount struct {
	raw  string
	null bool
	set  bool
}

// FromString returns a set amount with raw text s.
func FromString(s string) Amount {
	return Amount{raw: s, set: true}
}

// Null returns an explicit JSON null.
func Null() Amount {
	return Amount{null: true, set: true}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	a.set = true

	switch {
	case bytes.Equal(data, []byte("null")):
		a.null = true
		a.raw = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.raw = s
	default:
		a.raw = string(data)
	}

	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set || a.null {
		return []byte("null"), nil
	}
	return json.Marshal(a.raw)
}

// Raw is the textual amount; empty for null or absent values.
func (a Amount) Raw() string {
	return a.raw
}

// IsNull reports an explicit null or an absent value.
func (a Amount) IsNull() bool {
	return a.null || !a.set
}

// IsSet reports whether the field was present in the document, null included.
func (a Amount) IsSet() bool {
	return a.set
}
