package flex

import (
	"bytes"
	"cmp"
	"encoding/json"
	"maps"
	"slices"
	"strconv"
)

// Dict is a catalog object keyed by numeric id, such as {"1": {...}}.
// [], [{}], {} and null decode as an empty, non-nil map.
type Dict[V any] map[string]V

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dict[V]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if string(data) == "null" || isEmptyObject(data) || isEmptyArray(data) {
		*d = Dict[V]{}
		return nil
	}

	var raws map[string]json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return &ElementError{Index: -1, Raw: string(data), Type: typeName[map[string]V](), Err: err}
	}

	out := make(Dict[V], len(raws))
	for k, raw := range raws {
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return &ElementError{Index: -1, Key: k, Raw: string(raw), Type: typeName[V](), Err: err}
		}
		out[k] = v
	}

	*d = out

	return nil
}

// Values returns the entries ordered by numeric key. Keys that are not
// numbers sort after numeric keys, lexically.
func (d Dict[V]) Values() []V {
	keys := slices.SortedFunc(maps.Keys(d), compareKeys)

	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, d[k])
	}

	return out
}

func compareKeys(a, b string) int {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)

	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(ai, bi)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

func isEmptyArray(data []byte) bool {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return false
	}

	return len(raws) == 0 || (len(raws) == 1 && isEmptyObject(raws[0]))
}
