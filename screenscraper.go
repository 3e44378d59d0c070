// Package screenscraper is a client for the ScreenScraper video game
// metadata and media API.
//
// The [client] package holds the implementation; [errs] classifies
// upstream failures and [sstest] fakes the service in tests.
package screenscraper

import (
	"github.com/adamwoolhether/screenscraper/client"
)

// NewClient instantiates a new *client.Client for creds with the provided
// options. If not specified, the default http.Client and http.Transport
// are used.
func NewClient(creds client.Credentials, opts ...client.Option) (*client.Client, error) {
	return client.Build(creds, opts...)
}
