package tlsinfo

import (
	"crypto/x509"
	"math"
)

// RawCertificate is an opaque certificate handle, either DER or PEM encoded.
type RawCertificate []byte

// CryptoInfo is the crypto info record reported by the TLS layer after the handshake.
type CryptoInfo map[string]any

// Context is the TLS context record reported by the TLS layer after the handshake.
type Context map[string]any

// Keys used in CryptoInfo.
const (
	KeyProtocol      = "protocol"
	KeyCipherName    = "cipher_name"
	KeyCipherBits    = "cipher_bits"
	KeyCipherVersion = "cipher_version"
	KeyALPNProtocol  = "alpn_protocol"
)

// Keys used in Context.
const (
	KeyPeerCertificate      = "peer_certificate"
	KeyPeerCertificateChain = "peer_certificate_chain"
)

type handshakeMetadata struct {
	version       string
	cipherName    string
	cipherBits    int
	cipherVersion string
	alpn          *string
	certificates  []RawCertificate
}

// parseHandshakeMetadata is the only place where the untyped records are inspected.
func parseHandshakeMetadata(cryptoInfo CryptoInfo, tlsContext Context) (*handshakeMetadata, error) {
	version, err := requireString(cryptoInfo, KeyProtocol)
	if err != nil {
		return nil, err
	}
	cipherName, err := requireString(cryptoInfo, KeyCipherName)
	if err != nil {
		return nil, err
	}
	cipherBits, err := requireInt(cryptoInfo, KeyCipherBits)
	if err != nil {
		return nil, err
	}
	cipherVersion, err := requireString(cryptoInfo, KeyCipherVersion)
	if err != nil {
		return nil, err
	}
	m := &handshakeMetadata{
		version:       version,
		cipherName:    cipherName,
		cipherBits:    cipherBits,
		cipherVersion: cipherVersion,
	}
	if v, ok := cryptoInfo[KeyALPNProtocol]; ok && v != nil {
		alpn, ok := v.(string)
		if !ok {
			return nil, &InvalidFieldError{Field: KeyALPNProtocol, Value: v}
		}
		m.alpn = &alpn
	}

	// The peer certificate and the chain are independent of each other.
	if v, ok := tlsContext[KeyPeerCertificate]; ok && v != nil {
		cert, ok := toRawCertificate(v)
		if !ok {
			return nil, &InvalidFieldError{Field: KeyPeerCertificate, Value: v}
		}
		m.certificates = append(m.certificates, cert)
	}
	if v, ok := tlsContext[KeyPeerCertificateChain]; ok && v != nil {
		chain, ok := toRawCertificates(v)
		if !ok {
			return nil, &InvalidFieldError{Field: KeyPeerCertificateChain, Value: v}
		}
		m.certificates = append(m.certificates, chain...)
	}
	return m, nil
}

func requireString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &InvalidFieldError{Field: key, Value: v}
	}
	return s, nil
}

func requireInt(m map[string]any, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	var n int64
	switch i := v.(type) {
	case int:
		n = int64(i)
	case int8:
		n = int64(i)
	case int16:
		n = int64(i)
	case int32:
		n = int64(i)
	case int64:
		n = i
	case uint:
		if uint64(i) > math.MaxInt64 {
			return 0, &InvalidFieldError{Field: key, Value: v}
		}
		n = int64(i)
	case uint8:
		n = int64(i)
	case uint16:
		n = int64(i)
	case uint32:
		n = int64(i)
	case uint64:
		if i > math.MaxInt64 {
			return 0, &InvalidFieldError{Field: key, Value: v}
		}
		n = int64(i)
	default:
		return 0, &InvalidFieldError{Field: key, Value: v}
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, &InvalidFieldError{Field: key, Value: v}
	}
	return int(n), nil
}

func toRawCertificate(v any) (RawCertificate, bool) {
	switch c := v.(type) {
	case RawCertificate:
		return c, true
	case []byte:
		return RawCertificate(c), true
	case string:
		return RawCertificate(c), true
	case *x509.Certificate:
		if c == nil {
			return nil, false
		}
		return RawCertificate(c.Raw), true
	default:
		return nil, false
	}
}

func toRawCertificates(v any) ([]RawCertificate, bool) {
	switch chain := v.(type) {
	case []RawCertificate:
		return append([]RawCertificate(nil), chain...), true
	case [][]byte:
		certs := make([]RawCertificate, 0, len(chain))
		for _, c := range chain {
			certs = append(certs, RawCertificate(c))
		}
		return certs, true
	case []*x509.Certificate:
		certs := make([]RawCertificate, 0, len(chain))
		for _, c := range chain {
			if c == nil {
				return nil, false
			}
			certs = append(certs, RawCertificate(c.Raw))
		}
		return certs, true
	case []any:
		certs := make([]RawCertificate, 0, len(chain))
		for _, c := range chain {
			cert, ok := toRawCertificate(c)
			if !ok {
				return nil, false
			}
			certs = append(certs, cert)
		}
		return certs, true
	default:
		return nil, false
	}
}
