package flex

import (
	"bytes"
	"encoding/json"
	"time"
)

const (
	// Layout is the timestamp layout used by the API.
	Layout = "2006-01-02 15:04:05"

	// OutputLayout is the UTC layout Time marshals to.
	OutputLayout = "2006-01-02T15:04:05Z"
)

// Location is the fixed offset the API reports timestamps in. The
// service runs in France but never applies daylight saving to this value.
var Location = time.FixedZone("UTC+1", 60*60)

// Time is a timestamp that may be absent. The zero value is absent.
type Time struct {
	time.Time
}

// Valid reports whether the timestamp is present.
func (t Time) Valid() bool {
	return !t.IsZero()
}

// UnmarshalJSON implements json.Unmarshaler. Both the upstream layout and
// the layout produced by MarshalJSON are accepted.
func (t *Time) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		*t = Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &MalformedTimeError{Raw: string(data)}
	}

	s = string(bytes.TrimSpace([]byte(s)))
	if s == "" {
		*t = Time{}
		return nil
	}

	parsed, err := time.ParseInLocation(Layout, s, Location)
	if err != nil {
		var rerr error
		parsed, rerr = time.Parse(OutputLayout, s)
		if rerr != nil {
			return &MalformedTimeError{Raw: string(data), Err: err}
		}
	}

	*t = Time{Time: parsed.UTC()}

	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.UTC().Format(OutputLayout))
}
