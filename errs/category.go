package errs

import "errors"

// Category is a stable classification of an upstream error.
type Category string

const (
	CategoryUnknown            Category = "unknown"
	CategoryBadRequest         Category = "bad_request"
	CategoryMissingFields      Category = "missing_fields"
	CategoryInvalidROMPath     Category = "invalid_rom_path"
	CategoryInvalidChecksum    Category = "invalid_checksum"
	CategoryInvalidROMName     Category = "invalid_rom_name"
	CategoryUnauthorized       Category = "unauthorized"
	CategoryBadCredentials     Category = "bad_credentials"
	CategoryNotFound           Category = "not_found"
	CategoryLocked             Category = "locked"
	CategoryBlacklisted        Category = "blacklisted"
	CategoryThreadLimit        Category = "thread_limit"
	CategoryThreadRateLimit    Category = "thread_rate_limit"
	CategoryLeecherThreadLimit Category = "leecher_thread_limit"
	CategoryQuotaExceeded      Category = "quota_exceeded"
	CategoryUnidentifiedROMs   Category = "unidentified_roms"
)

var (
	ErrUnknown            = errors.New("unknown api error")
	ErrBadRequest         = errors.New("bad request")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidROMPath     = errors.New("invalid rom path")
	ErrInvalidChecksum    = errors.New("invalid checksum field")
	ErrInvalidROMName     = errors.New("invalid rom name")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadCredentials     = errors.New("bad credentials")
	ErrNotFound           = errors.New("not found")
	ErrLocked             = errors.New("api locked")
	ErrBlacklisted        = errors.New("software blacklisted")
	ErrThreadLimit        = errors.New("thread limit reached")
	ErrThreadRateLimit    = errors.New("thread per minute limit reached")
	ErrLeecherThreadLimit = errors.New("leecher thread limit reached")
	ErrQuotaExceeded      = errors.New("daily quota exceeded")
	ErrUnidentifiedROMs   = errors.New("too many unidentified roms")
)

var sentinels = map[Category]error{
	CategoryUnknown:            ErrUnknown,
	CategoryBadRequest:         ErrBadRequest,
	CategoryMissingFields:      ErrMissingFields,
	CategoryInvalidROMPath:     ErrInvalidROMPath,
	CategoryInvalidChecksum:    ErrInvalidChecksum,
	CategoryInvalidROMName:     ErrInvalidROMName,
	CategoryUnauthorized:       ErrUnauthorized,
	CategoryBadCredentials:     ErrBadCredentials,
	CategoryNotFound:           ErrNotFound,
	CategoryLocked:             ErrLocked,
	CategoryBlacklisted:        ErrBlacklisted,
	CategoryThreadLimit:        ErrThreadLimit,
	CategoryThreadRateLimit:    ErrThreadRateLimit,
	CategoryLeecherThreadLimit: ErrLeecherThreadLimit,
	CategoryQuotaExceeded:      ErrQuotaExceeded,
	CategoryUnidentifiedROMs:   ErrUnidentifiedROMs,
}

func (c Category) sentinel() error {
	if err, ok := sentinels[c]; ok {
		return err
	}

	return ErrUnknown
}

// IsThrottled reports whether the category means the caller exceeded
// a thread or quota limit enforced by the service.
func (c Category) IsThrottled() bool {
	switch c {
	case CategoryThreadLimit, CategoryThreadRateLimit, CategoryLeecherThreadLimit, CategoryQuotaExceeded:
		return true
	default:
		return false
	}
}
