package metrics

import (
	"errors"

	"github.com/quic-go/tlsinfo"
)

func rejectReason(err error) string {
	switch {
	case errors.Is(err, &tlsinfo.MissingFieldError{}):
		return "missing_field"
	case errors.Is(err, &tlsinfo.InvalidFieldError{}):
		return "invalid_field"
	default:
		return "other"
	}
}
