package download

import (
	"errors"
	"fmt"
	"time"
)

// ChunkSize is the size of each read from the response body.
const ChunkSize = 64 << 10

var (
	ErrContentLengthMismatch = errors.New("content length mismatch")
	ErrChecksumMismatch      = errors.New("checksum mismatch")
	ErrDownloadCancelled     = errors.New("download cancelled")
)

type Error struct {
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Progress is a sample emitted after each chunk when the total size is
// known.
type Progress struct {
	BytesReceived  int64
	TotalBytes     int64
	Percent        float64
	BytesPerSecond float64
	Elapsed        time.Duration
}

// Done reports whether the sample is the final one.
func (p Progress) Done() bool {
	return p.TotalBytes > 0 && p.BytesReceived >= p.TotalBytes
}

// ProgressFunc receives progress samples on the calling goroutine.
type ProgressFunc func(Progress)
