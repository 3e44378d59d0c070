package flex

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// NullInt is an integer that may be absent. Absent is encoded upstream
// as null or "".
type NullInt struct {
	Int64 int64
	Valid bool
}

// NewNullInt returns a present value.
func NewNullInt(v int64) NullInt {
	return NullInt{Int64: v, Valid: true}
}

// Get returns the value and whether it is present.
func (n NullInt) Get() (int64, bool) {
	return n.Int64, n.Valid
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	v, ok, err := parseInt(data)
	if err != nil {
		return err
	}

	*n = NullInt{Int64: v, Valid: ok}

	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return strconv.AppendInt(nil, n.Int64, 10), nil
}

// Int is a non-nullable integer that also accepts numeric strings.
// Absent values decode as zero.
type Int int64

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	v, _, err := parseInt(data)
	if err != nil {
		return err
	}

	*i = Int(v)

	return nil
}

func parseInt(data []byte) (int64, bool, error) {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		return 0, false, nil
	}

	raw := data
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, &MalformedIntegerError{Raw: string(raw)}
		}
		if s == "" {
			return 0, false, nil
		}
		data = []byte(s)
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, false, &MalformedIntegerError{Raw: string(raw)}
	}

	return v, true, nil
}
