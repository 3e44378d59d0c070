package client

import (
	"fmt"
	"log/slog"
	"os"
)

// Credentials identify the calling software and, optionally, the end
// user. The developer triple is required by every endpoint; the user pair
// unlocks member quotas and the authenticated endpoints.
type Credentials struct {
	SoftwareName string `json:"softname" validate:"required"`
	DevID        string `json:"devid" validate:"required"`
	DevPassword  string `json:"devpassword" validate:"required"`
	UserName     string `json:"ssid" validate:"required_with=UserPassword"`
	UserPassword string `json:"sspassword" validate:"required_with=UserName"`
}

// HasUser reports whether end-user credentials are set.
func (c Credentials) HasUser() bool {
	return c.UserName != "" && c.UserPassword != ""
}

// String masks the passwords.
func (c Credentials) String() string {
	return fmt.Sprintf("softname=%s devid=%s devpassword=%s ssid=%s sspassword=%s",
		c.SoftwareName, c.DevID, mask(c.DevPassword), c.UserName, mask(c.UserPassword))
}

// LogValue keeps passwords out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("softname", c.SoftwareName),
		slog.String("devid", c.DevID),
		slog.String("ssid", c.UserName),
	)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}

// Environment variables read by CredentialsFromEnv.
const (
	EnvSoftwareName = "SCREENSCRAPER_SOFTNAME"
	EnvDevID        = "SCREENSCRAPER_DEVID"
	EnvDevPassword  = "SCREENSCRAPER_DEVPASSWORD"
	EnvUserName     = "SCREENSCRAPER_USER"
	EnvUserPassword = "SCREENSCRAPER_PASSWORD"
)

// CredentialsFromEnv reads credentials from the SCREENSCRAPER_*
// environment variables and validates them.
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		SoftwareName: os.Getenv(EnvSoftwareName),
		DevID:        os.Getenv(EnvDevID),
		DevPassword:  os.Getenv(EnvDevPassword),
		UserName:     os.Getenv(EnvUserName),
		UserPassword: os.Getenv(EnvUserPassword),
	}

	if err := Validate(creds); err != nil {
		return Credentials{}, fmt.Errorf("validating credentials: %w", err)
	}

	return creds, nil
}
