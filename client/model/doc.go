// Package model holds the payload types returned by the ScreenScraper API.
//
// Field names follow Go conventions; the JSON tags carry the upstream
// (mostly French) keys. Quirky scalars use the types from
// [github.com/adamwoolhether/screenscraper/client/flex].
package model
