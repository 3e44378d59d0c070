package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// GetJSON calls the endpoint described by r and decodes the response
// envelope into T. A 204 response, or a successful envelope without a
// payload, yields the zero value of T.
func GetJSON[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var out T

	fn := func(resp *http.Response) error {
		if resp.StatusCode == http.StatusNoContent {
			return nil
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}

		v, err := decodeEnvelope[T](b, resp.StatusCode)
		if err != nil {
			return err
		}

		out = v
		return nil
	}

	if err := c.exec(ctx, r, fn); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}
