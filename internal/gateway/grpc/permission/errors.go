package permission

import "errors"

var (
	ErrUnavailable     = errors.New("permission service unavailable")
	ErrInvalidResponse = errors.New("permission service: invalid response")
)
