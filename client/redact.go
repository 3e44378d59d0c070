package client

import (
	"errors"
	"net/url"
)

// redact strips the query string from *url.Error so credentials embedded
// in the request URL never reach error messages or logs.
func redact(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}

	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		return &url.Error{Op: uerr.Op, URL: "[redacted]", Err: uerr.Err}
	}
	u.RawQuery = ""

	return &url.Error{Op: uerr.Op, URL: u.String(), Err: uerr.Err}
}
