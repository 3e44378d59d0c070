package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adamwoolhether/screenscraper/client/download"
	"github.com/adamwoolhether/screenscraper/errs"
)

// DefaultRomType is sent when GameParams.RomType is blank.
const DefaultRomType = "rom"

// SearchParams are the inputs of a game search.
type SearchParams struct {
	Name       string `json:"recherche" validate:"required"`
	PlatformID int    `json:"systemeid" validate:"omitempty,gt=0"`
}

func (p SearchParams) params() Params {
	q := Params{}.Add("recherche", p.Name)
	if p.PlatformID > 0 {
		q = q.Add("systemeid", strconv.Itoa(p.PlatformID))
	}
	return q
}

// GameParams identify a game by platform and any mix of ROM name, size,
// serial, game id and checksums.
type GameParams struct {
	PlatformID   int    `json:"systemeid" validate:"required,gt=0"`
	RomType      string `json:"romtype" validate:"omitempty,oneof=rom iso dossier"`
	RomName      string `json:"romnom"`
	RomSize      int64  `json:"romtaille" validate:"gte=0"`
	SerialNumber string `json:"serialnum"`
	GameID       int    `json:"gameid" validate:"gte=0"`
	CRC          string `json:"crc" validate:"omitempty,hexadecimal,len=8"`
	MD5          string `json:"md5" validate:"omitempty,hexadecimal,len=32"`
	SHA1         string `json:"sha1" validate:"omitempty,hexadecimal,len=40"`
}

// GameParamsFromFile fingerprints the ROM at path and fills in its base
// name, size and checksums.
func GameParamsFromFile(platformID int, path string) (GameParams, error) {
	fp, err := download.FingerprintFile(path)
	if err != nil {
		return GameParams{}, fmt.Errorf("fingerprinting rom: %w", err)
	}

	return GameParams{
		PlatformID: platformID,
		RomType:    DefaultRomType,
		RomName:    filepath.Base(path),
		RomSize:    fp.Size,
		CRC:        fp.CRC32,
		MD5:        fp.MD5,
		SHA1:       fp.SHA1,
	}, nil
}

func (p GameParams) params() Params {
	romType := p.RomType
	if romType == "" {
		romType = DefaultRomType
	}

	q := Params{}.
		Add("systemeid", strconv.Itoa(p.PlatformID)).
		Add("romtype", romType).
		AddNonEmpty("romnom", p.RomName)
	if p.RomSize > 0 {
		q = q.Add("romtaille", strconv.FormatInt(p.RomSize, 10))
	}
	q = q.AddNonEmpty("serialnum", p.SerialNumber)
	if p.GameID > 0 {
		q = q.Add("gameid", strconv.Itoa(p.GameID))
	}

	return q.AddNonEmpty("crc", p.CRC).
		AddNonEmpty("md5", p.MD5).
		AddNonEmpty("sha1", p.SHA1)
}

// MediaParams select a media asset. When Local names an existing file its
// checksums are sent, and the server replies with a status instead of the
// asset if the local copy is current. Checksums set explicitly win.
type MediaParams struct {
	Media        string `json:"media" validate:"required"`
	Format       string `json:"mediaformat"`
	CRC          string `json:"crc" validate:"omitempty,hexadecimal,len=8"`
	MD5          string `json:"md5" validate:"omitempty,hexadecimal,len=32"`
	SHA1         string `json:"sha1" validate:"omitempty,hexadecimal,len=40"`
	MaxWidth     *int   `json:"maxwidth" validate:"omitempty,gt=0"`
	MaxHeight    *int   `json:"maxheight" validate:"omitempty,gt=0"`
	OutputFormat string `json:"outputformat" validate:"omitempty,oneof=png jpg"`
	Local        string `json:"-"`
}

// withLocal fills the checksums from the Local file. A missing file is
// not an error: there is simply nothing to compare against. A file that
// cannot be read is reported as a field error on "local".
func (p MediaParams) withLocal() (MediaParams, error) {
	if p.Local == "" || p.CRC != "" || p.MD5 != "" || p.SHA1 != "" {
		return p, nil
	}

	fp, err := download.FingerprintFile(p.Local)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return p, nil
	case err != nil:
		return p, errs.NewFieldsError("local", err)
	}

	p.CRC, p.MD5, p.SHA1 = fp.CRC32, fp.MD5, fp.SHA1

	return p, nil
}

// params renders the media selection. Resizing only applies to images.
func (p MediaParams) params(image bool) Params {
	q := Params{}.
		Add("media", p.Media).
		AddNonEmpty("mediaformat", p.Format).
		AddNonEmpty("crc", p.CRC).
		AddNonEmpty("md5", p.MD5).
		AddNonEmpty("sha1", p.SHA1)

	if image {
		q = q.AddInt("maxwidth", p.MaxWidth).
			AddInt("maxheight", p.MaxHeight).
			AddNonEmpty("outputformat", p.OutputFormat)
	}

	return q
}
