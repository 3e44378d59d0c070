// Package flex holds JSON value types that tolerate the loose encoding
// used by the ScreenScraper API.
//
// The service is inconsistent about scalar types: booleans arrive as
// true, "1", "0" or "", integers arrive as numbers or numeric strings,
// timestamps use a local "2006-01-02 15:04:05" layout, and an empty
// array is frequently sent as [{}]. Model types declare their fields
// with the types in this package so the quirks are handled in one place:
//
//	type Rom struct {
//		Size   flex.NullInt `json:"romsize"`
//		Beta   flex.Bool    `json:"beta"`
//		Medias flex.List[Media] `json:"medias"`
//	}
//
// Every failure is reported as a typed error that carries the raw JSON
// text, and matches [ErrMalformed] with errors.Is.
package flex
