package infra

import (
	"errors"
	"log/slog"

	"offer-landing/internal/pkg/errs"
)

type SourceErrorKind string

type SourceError struct {
	Kind SourceErrorKind
	msg  string
	err  error // wrapped low-level error
}

// Is lets errors.Is match the sentinel for the error's kind.
func (e SourceError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k SourceErrorKind) sentinel() error {
	if k == KindNotFound || k == KindUnreadable {
		return errs.ErrOfferSourceUnavailable
	}
	return errs.ErrInvalidOffer
}

func (e SourceError) Error() string {
	if e.err != nil {
		// err already carries msg from WrapSourceErr
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e SourceError) Unwrap() error {
	return e.err
}

// WrapSourceErr logs and classifies a failure to read external configuration.
// The result matches errs.ErrOfferSourceUnavailable or errs.ErrInvalidOffer.
func WrapSourceErr(slogger *slog.Logger, kind SourceErrorKind, msg string, err error) error {
	slogger.Error("Offer source error: "+msg,
		slog.String("kind", string(kind)),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return SourceError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind SourceErrorKind) bool {
	var e SourceError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound   SourceErrorKind = "NOT_FOUND"
	KindUnreadable SourceErrorKind = "UNREADABLE"
	KindMalformed  SourceErrorKind = "MALFORMED"
	KindInvalid    SourceErrorKind = "INVALID"
)
