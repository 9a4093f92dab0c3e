package errs

import "errors"

// Sentinel errors shared by the usecase and transport layers
var (
	// Offer configuration errors
	ErrInvalidOffer           = errors.New("invalid offer configuration")
	ErrOfferSourceUnavailable = errors.New("offer configuration source unavailable")

	// Landing view errors
	ErrViewNotFound = errors.New("landing view not found")
	ErrViewClosed   = errors.New("landing view closed")
	ErrTooManyViews = errors.New("too many landing views")
)
