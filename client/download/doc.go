// Package download streams HTTP response bodies to a destination with
// optional checksum validation and progress reporting.
//
// # Destinations
//
// [ToFile] writes to a temporary file alongside the destination path and
// renames it on success, so the path never holds a partial artifact.
// [ToWriter] streams into any io.Writer:
//
//	n, err := download.Handle(ctx, resp.Body, resp.ContentLength,
//		download.ToFile("/tmp/box.png"), logger,
//		download.WithChecksum(sha1.New(), expectedHex),
//		download.WithProgress(func(p download.Progress) { ... }),
//	)
//
// # Fingerprints
//
// [FingerprintFile] computes the CRC32, MD5 and SHA1 of a local file in a
// single pass. The client sends these so the server can reply that the
// local copy is already current instead of sending the media again.
//
// Most callers should use the higher-level
// [github.com/adamwoolhether/screenscraper/client] package, which invokes
// Handle internally.
package download
