package flex

import (
	"bytes"
	"encoding/json"
)

// Bool decodes JSON booleans, the strings "0", "1", "true", "false" and
// "", the numbers 0 and 1, and null (false).
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch string(data) {
	case "null", "false", "0":
		*b = false
		return nil
	case "true", "1":
		*b = true
		return nil
	}

	if len(data) == 0 || data[0] != '"' {
		return &MalformedBooleanError{Raw: string(data)}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &MalformedBooleanError{Raw: string(data)}
	}

	switch s {
	case "", "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return &MalformedBooleanError{Raw: string(data)}
	}

	return nil
}
