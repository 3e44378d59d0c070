package download

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Destination is where Handle writes a body. Use [ToFile] or [ToWriter].
type Destination interface {
	open(logger *slog.Logger) (sink, error)
	fmt.Stringer
}

type sink interface {
	io.Writer
	commit() error
	abort()
}

// Resetter is implemented by writers that can discard partial content,
// such as *bytes.Buffer.
type Resetter interface {
	Reset()
}

// ToFile streams into a temporary file in the same directory as path and
// renames it to path on success. On failure the temporary file is removed
// and path is left untouched.
func ToFile(path string) Destination {
	return fileDest{path: path}
}

// ToWriter streams into w. On failure w is reset when it implements
// [Resetter]; otherwise it may hold partial content.
func ToWriter(w io.Writer) Destination {
	return writerDest{w: w}
}

// /////////////////////////////////////////////////////////////////////////////////////////////

type fileDest struct {
	path string
}

func (d fileDest) String() string {
	return d.path
}

func (d fileDest) open(logger *slog.Logger) (sink, error) {
	if d.path == "" {
		return nil, errors.New("destination path must not be empty")
	}

	file, err := os.CreateTemp(filepath.Dir(d.path), ".screenscraper-dl-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	return &fileSink{file: file, path: d.path, logger: logger}, nil
}

type fileSink struct {
	file   *os.File
	path   string
	logger *slog.Logger
}

func (s *fileSink) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

func (s *fileSink) commit() error {
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(s.file.Name(), s.path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (s *fileSink) abort() {
	if err := s.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		s.logger.Error("closing temp file", "error", err)
	}
	if err := os.Remove(s.file.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error("failed to remove temp file", "error", err)
	}
}

// /////////////////////////////////////////////////////////////////////////////////////////////

type writerDest struct {
	w io.Writer
}

func (d writerDest) String() string {
	return fmt.Sprintf("writer(%T)", d.w)
}

func (d writerDest) open(*slog.Logger) (sink, error) {
	if d.w == nil {
		return nil, errors.New("destination writer must not be nil")
	}

	return writerSink{d.w}, nil
}

type writerSink struct {
	io.Writer
}

func (writerSink) commit() error {
	return nil
}

func (s writerSink) abort() {
	if r, ok := s.Writer.(Resetter); ok {
		r.Reset()
	}
}
