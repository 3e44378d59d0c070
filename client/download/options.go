package download

import (
	"errors"
	"hash"
)

// Option defines optional settings for downloading files.
// WithChecksum enables checksum validation of the downloaded content.
// h is a hash.Hash instance (e.g. sha1.New()), and expected is the
// hex-encoded expected checksum string.
//
// WithProgress registers a callback receiving a [Progress] sample after
// every chunk, provided the content length is known.
//
// WithProgressLog enables periodic progress logging via the logger
// supplied to Handle.
type Option func(*options) error

type options struct {
	checksum    *checksumVerifier
	progressFns []ProgressFunc
	progressLog bool
}

func WithChecksum(h hash.Hash, expected string) Option {
	return func(opts *options) error {
		if h == nil {
			return errors.New("hash must not be nil")
		}

		if expected == "" {
			return errors.New("expected checksum must not be empty")
		}

		opts.checksum = &checksumVerifier{hash: h, expected: expected}
		return nil
	}
}

func WithProgress(fn ProgressFunc) Option {
	return func(opts *options) error {
		if fn == nil {
			return errors.New("progress func must not be nil")
		}

		opts.progressFns = append(opts.progressFns, fn)
		return nil
	}
}

func WithProgressLog() Option {
	return func(opts *options) error {
		opts.progressLog = true
		return nil
	}
}
