package tlsinfo

import (
	"crypto/tls"
	"fmt"
	"slices"
	"strings"
)

// FromConnectionState creates a Snapshot from the state of a crypto/tls connection.
// The handshake must have completed.
func FromConnectionState(cs tls.ConnectionState, conf *Config) (*Snapshot, error) {
	cryptoInfo, tlsContext, err := HandshakeMetadata(cs)
	if err != nil {
		return nil, err
	}
	return FromHandshakeMetadata(cryptoInfo, tlsContext, conf)
}

// HandshakeMetadata converts the state of a crypto/tls connection into the records
// accepted by FromHandshakeMetadata.
func HandshakeMetadata(cs tls.ConnectionState) (CryptoInfo, Context, error) {
	if !cs.HandshakeComplete {
		return nil, nil, ErrHandshakeNotComplete
	}
	cryptoInfo := CryptoInfo{
		KeyProtocol:      versionName(cs.Version),
		KeyCipherName:    tls.CipherSuiteName(cs.CipherSuite),
		KeyCipherBits:    cipherBits(cs.CipherSuite),
		KeyCipherVersion: cipherVersion(cs.CipherSuite),
	}
	if cs.NegotiatedProtocol != "" {
		cryptoInfo[KeyALPNProtocol] = cs.NegotiatedProtocol
	}
	tlsContext := Context{}
	if len(cs.PeerCertificates) > 0 {
		tlsContext[KeyPeerCertificate] = cs.PeerCertificates[0]
		tlsContext[KeyPeerCertificateChain] = cs.PeerCertificates[1:]
	}
	return cryptoInfo, tlsContext, nil
}

func versionName(v uint16) string {
	switch v {
	case tls.VersionSSL30: //nolint:staticcheck // only used for naming
		return "SSLv3"
	case tls.VersionTLS10:
		return "TLSv1"
	case tls.VersionTLS11:
		return "TLSv1.1"
	case tls.VersionTLS12:
		return "TLSv1.2"
	case tls.VersionTLS13:
		return "TLSv1.3"
	default:
		return fmt.Sprintf("0x%04X", v)
	}
}

// cipherBits derives the strength of the bulk cipher from the IANA suite name.
// 3DES is reported with its effective strength of 112 bits.
func cipherBits(id uint16) int {
	name := tls.CipherSuiteName(id)
	switch {
	case strings.Contains(name, "AES_128"):
		return 128
	case strings.Contains(name, "AES_256"), strings.Contains(name, "CHACHA20"):
		return 256
	case strings.Contains(name, "3DES"):
		return 112
	case strings.Contains(name, "RC4_128"):
		return 128
	default:
		return 0
	}
}

func cipherVersion(id uint16) string {
	suite := lookupCipherSuite(id)
	if suite == nil {
		return "unknown"
	}
	switch {
	case slices.Equal(suite.SupportedVersions, []uint16{tls.VersionTLS13}):
		return "TLSv1.3"
	case !slices.Contains(suite.SupportedVersions, tls.VersionTLS10):
		return "TLSv1.2"
	default:
		return "TLSv1.0"
	}
}

func lookupCipherSuite(id uint16) *tls.CipherSuite {
	for _, suites := range [][]*tls.CipherSuite{tls.CipherSuites(), tls.InsecureCipherSuites()} {
		for _, s := range suites {
			if s.ID == id {
				return s
			}
		}
	}
	return nil
}
