package flex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// List is a JSON array that treats [{}], {} and null as empty. The
// decoded value is never nil.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if isEmptyObject(data) || string(data) == "null" {
		*l = List[T]{}
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return &ElementError{Index: -1, Raw: string(data), Type: typeName[[]T](), Err: err}
	}

	if len(raws) == 1 && isEmptyObject(raws[0]) {
		*l = List[T]{}
		return nil
	}

	out := make(List[T], len(raws))
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return &ElementError{Index: i, Raw: string(raw), Type: typeName[T](), Err: err}
		}
	}

	*l = out

	return nil
}

// MarshalJSON implements json.Marshaler. Empty lists encode as [].
func (l List[T]) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal([]T(l))
}

func isEmptyObject(data []byte) bool {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return false
	}

	return buf.String() == "{}"
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}
