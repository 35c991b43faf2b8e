package tlsinfo

import (
	"errors"
	"fmt"
)

// ErrHandshakeNotComplete is returned when a snapshot is requested for a connection that hasn't completed the handshake.
var ErrHandshakeNotComplete = errors.New("tlsinfo: handshake not complete")

// A MissingFieldError is returned when a required handshake metadata field is absent.
// It indicates that the TLS layer violated its contract and should be treated as a programming error.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Is(target error) bool {
	_, ok := target.(*MissingFieldError)
	return ok
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("tlsinfo: missing handshake metadata field %q", e.Field)
}

// An InvalidFieldError is returned when a handshake metadata field is present,
// but doesn't hold a value of the expected type.
type InvalidFieldError struct {
	Field string
	Value any
}

func (e *InvalidFieldError) Is(target error) bool {
	_, ok := target.(*InvalidFieldError)
	return ok
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("tlsinfo: invalid handshake metadata field %q: unexpected type %T", e.Field, e.Value)
}

// A CertificateParseError is returned from Snapshot.PeerCertificates
// when one of the raw certificates couldn't be parsed.
type CertificateParseError struct {
	// Index is the position of the certificate in the chain, 0 being the leaf.
	Index int
	Err   error
}

func (e *CertificateParseError) Is(target error) bool {
	_, ok := target.(*CertificateParseError)
	return ok
}

func (e *CertificateParseError) Error() string {
	return fmt.Sprintf("tlsinfo: parsing certificate %d failed: %s", e.Index, e.Err)
}

func (e *CertificateParseError) Unwrap() error { return e.Err }
