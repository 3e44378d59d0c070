package download

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// Fingerprint identifies content by the checksums the API understands.
// CRC32 is upper-case hex, MD5 and SHA1 are lower-case hex.
type Fingerprint struct {
	CRC32 string
	MD5   string
	SHA1  string
	Size  int64
}

// FingerprintReader hashes everything read from r.
func FingerprintReader(r io.Reader) (Fingerprint, error) {
	c := crc32.NewIEEE()
	m := md5.New()
	s := sha1.New()

	n, err := io.Copy(io.MultiWriter(c, m, s), r)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("hashing content: %w", err)
	}

	return Fingerprint{
		CRC32: fmt.Sprintf("%08X", c.Sum32()),
		MD5:   hex.EncodeToString(m.Sum(nil)),
		SHA1:  hex.EncodeToString(s.Sum(nil)),
		Size:  n,
	}, nil
}

// FingerprintFile hashes the file at path.
func FingerprintFile(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return FingerprintReader(f)
}
