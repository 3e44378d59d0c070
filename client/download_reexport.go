package client

import (
	"hash"
	"io"

	"github.com/adamwoolhether/screenscraper/client/download"
)

// /////////////////////////////////////////////////////////////////////////////////////////////
// Type aliases: re-export user-facing types from [download].

type (
	// DownloadOption configures a media download.
	DownloadOption = download.Option

	// DownloadError wraps a sentinel error with additional detail.
	DownloadError = download.Error

	// Destination is where media bytes are written.
	Destination = download.Destination

	// Progress is a download progress sample.
	Progress = download.Progress
)

// /////////////////////////////////////////////////////////////////////////////////////////////
// Sentinel errors

var (
	// ErrContentLengthMismatch indicates the byte count did not match Content-Length.
	ErrContentLengthMismatch = download.ErrContentLengthMismatch

	// ErrChecksumMismatch indicates the media checksum did not match the expected value.
	ErrChecksumMismatch = download.ErrChecksumMismatch

	// ErrDownloadCancelled indicates the download was cancelled via context.
	ErrDownloadCancelled = download.ErrDownloadCancelled
)

// /////////////////////////////////////////////////////////////////////////////////////////////
// Destination and option forwarding functions

// ToFile writes media atomically to path.
func ToFile(path string) Destination { return download.ToFile(path) }

// ToWriter streams media into w.
func ToWriter(w io.Writer) Destination { return download.ToWriter(w) }

// WithChecksum enables checksum validation of the downloaded media.
// h is a [hash.Hash] instance (e.g. sha1.New()), and expected is the
// hex-encoded expected checksum string.
func WithChecksum(h hash.Hash, expected string) DownloadOption {
	return download.WithChecksum(h, expected)
}

// WithProgress registers a callback receiving a sample after every chunk.
func WithProgress(fn func(Progress)) DownloadOption { return download.WithProgress(fn) }

// WithProgressLog enables periodic download progress logging.
func WithProgressLog() DownloadOption { return download.WithProgressLog() }
