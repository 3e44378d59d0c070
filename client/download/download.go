package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Handle streams body to dest in ChunkSize reads and returns the number
// of bytes written. ctx is checked before every read and write. When
// contentLength is positive a Progress sample is emitted after each chunk
// and the byte count must match it exactly. On any error the destination
// is rolled back.
func Handle(ctx context.Context, body io.Reader, contentLength int64, dest Destination, logger *slog.Logger, optFns ...Option) (int64, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return 0, fmt.Errorf("applying option: %w", err)
		}
	}

	if dest == nil {
		return 0, errors.New("destination must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDownloadCancelled, err)
	}

	out, err := dest.open(logger)
	if err != nil {
		return 0, err
	}

	var successful bool
	defer func() {
		if !successful {
			out.abort()
		}
	}()

	var writer io.Writer = out
	if opts.checksum != nil {
		writer = io.MultiWriter(writer, opts.checksum)
	}

	n, err := copyChunks(ctx, writer, &contextReader{ctx: ctx, r: body}, newProgressTracker(opts, contentLength, logger))
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return n, fmt.Errorf("%w: %w", ErrDownloadCancelled, err)
		}

		return n, fmt.Errorf("copying body: %w", err)
	}

	if contentLength >= 0 && n != contentLength {
		return n, &Error{
			Err:    ErrContentLengthMismatch,
			Detail: fmt.Sprintf("expected %d bytes, got %d", contentLength, n),
		}
	}

	if err := opts.checksum.Verify(); err != nil {
		return n, err
	}

	if err := out.commit(); err != nil {
		return n, err
	}

	successful = true

	logger.Debug("download finished", "destination", dest.String(), "bytes", n)

	return n, nil
}

func copyChunks(ctx context.Context, w io.Writer, r io.Reader, pt *progressTracker) (int64, error) {
	buf := make([]byte, ChunkSize)

	var written int64
	for {
		nr, rerr := r.Read(buf)
		if nr > 0 {
			if err := ctx.Err(); err != nil {
				return written, err
			}

			nw, werr := w.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, werr
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}

			pt.update(written)
		}

		if errors.Is(rerr, io.EOF) {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
