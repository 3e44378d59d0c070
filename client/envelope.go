package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adamwoolhether/screenscraper/client/flex"
	"github.com/adamwoolhether/screenscraper/errs"
)

type header struct {
	Success flex.Bool `json:"success"`
	Error   *string   `json:"error"`
}

// envelope is the wrapper around every JSON payload. The response is
// kept raw so the header decides the outcome before the payload is
// decoded: a failed header is reported even when the payload is garbage.
type envelope struct {
	Header   *header         `json:"header"`
	Response json.RawMessage `json:"response"`
}

// decodeEnvelope unwraps raw into T. status is the transport status,
// reported on upstream errors.
func decodeEnvelope[T any](raw []byte, status int) (T, error) {
	var zero T
	target := fmt.Sprintf("%T", zero)

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, &DecodeError{Target: target, Raw: string(raw), Err: err}
	}

	if env.Header == nil {
		return zero, &DecodeError{Target: target, Raw: string(raw), Err: ErrMissingHeader}
	}

	if !env.Header.Success {
		if env.Header.Error != nil && strings.TrimSpace(*env.Header.Error) != "" {
			return zero, errs.New(*env.Header.Error, status)
		}

		return zero, &UnknownEnvelopeError{StatusCode: status, Raw: string(raw)}
	}

	resp := bytes.TrimSpace(env.Response)
	if len(resp) == 0 || string(resp) == "null" {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(resp, &out); err != nil {
		return zero, &DecodeError{Target: target, Raw: string(raw), Err: err}
	}

	return out, nil
}
