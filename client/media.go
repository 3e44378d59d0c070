package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/adamwoolhether/screenscraper/client/download"
)

// MediaResult is the outcome of a media request: either [Downloaded] or
// a [MediaStatus]. Use a type switch:
//
//	switch v := res.(type) {
//	case client.Downloaded:
//		// v.Bytes were written to the destination
//	case client.MediaStatus:
//		// nothing was written
//	}
type MediaResult interface {
	mediaResult()
}

// Downloaded reports media streamed to the destination. Bytes may be zero
// for an empty asset, which is distinct from StatusNoMedia.
type Downloaded struct {
	Bytes       int64
	ContentType string
}

func (Downloaded) mediaResult() {}

// MediaStatus is a textual reply; the destination was not touched.
type MediaStatus int

const (
	// StatusCRCMatch means the local copy's CRC32 matches the server's.
	StatusCRCMatch MediaStatus = iota + 1
	// StatusMD5Match means the local copy's MD5 matches the server's.
	StatusMD5Match
	// StatusSHA1Match means the local copy's SHA1 matches the server's.
	StatusSHA1Match
	// StatusNoMedia means the server has no media for the request.
	StatusNoMedia
)

func (MediaStatus) mediaResult() {}

var mediaTokens = map[string]MediaStatus{
	"CRCOK":   StatusCRCMatch,
	"MD5OK":   StatusMD5Match,
	"SHA1OK":  StatusSHA1Match,
	"NOMEDIA": StatusNoMedia,
}

// String returns the wire token, e.g. "CRCOK".
func (s MediaStatus) String() string {
	for tok, v := range mediaTokens {
		if v == s {
			return tok
		}
	}
	return fmt.Sprintf("MediaStatus(%d)", int(s))
}

// UpToDate reports whether the server confirmed the local copy is current.
func (s MediaStatus) UpToDate() bool {
	return s == StatusCRCMatch || s == StatusMD5Match || s == StatusSHA1Match
}

func parseMediaStatus(body string) (MediaStatus, error) {
	tok := strings.ToUpper(strings.TrimSpace(body))
	if s, ok := mediaTokens[tok]; ok {
		return s, nil
	}

	return 0, &UnknownMediaStatusError{Token: tok}
}

// GetMedia requests the media described by r, always authenticated. A
// text/html reply is a status token and leaves dest untouched; any other
// reply is streamed to dest.
func (c *Client) GetMedia(ctx context.Context, r Request, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	if dest == nil {
		return nil, errors.New("destination must not be nil")
	}

	r.Auth = true

	var result MediaResult
	fn := func(resp *http.Response) error {
		if resp.StatusCode == http.StatusNoContent {
			result = StatusNoMedia
			return nil
		}

		contentType := resp.Header.Get("Content-Type")
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "text/html" {
			b, err := io.ReadAll(io.LimitReader(resp.Body, maxStatusBodySize))
			if err != nil {
				return fmt.Errorf("reading status body: %w", err)
			}

			status, err := parseMediaStatus(string(b))
			if err != nil {
				return err
			}

			result = status
			return nil
		}

		n, err := download.Handle(ctx, resp.Body, resp.ContentLength, dest, c.logger, opts...)
		c.metrics.addMediaBytes(r.Path, n)
		if err != nil {
			return fmt.Errorf("download: %w", err)
		}

		result = Downloaded{Bytes: n, ContentType: contentType}
		return nil
	}

	if err := c.exec(ctx, r, fn); err != nil {
		return nil, err
	}

	return result, nil
}
