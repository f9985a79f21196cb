package errs

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrUnsupportedImage     = errors.New("unsupported image")
	ErrUnknownCategory      = errors.New("category does not map to a proof slot")
	ErrInvalidBookingPeriod = errors.New("invalid booking period")
	ErrInvalidRate          = errors.New("invalid rate")
)
