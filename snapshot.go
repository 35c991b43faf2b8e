package tlsinfo

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/quic-go/tlsinfo/internal/utils"
	"github.com/quic-go/tlsinfo/logging"

	"golang.org/x/sync/singleflight"
)

// A Snapshot exposes the negotiated parameters of an established TLS connection.
// Apart from the lazily parsed peer certificates, it is immutable.
// It is safe for concurrent use.
type Snapshot struct {
	version       string
	cipherName    string
	cipherBits    int
	cipherVersion string
	alpn          string
	hasALPN       bool
	certificates  []RawCertificate

	parser CertificateParser
	tracer *logging.Tracer
	logger utils.Logger

	// parsed is only stored once the whole chain was parsed successfully.
	parsed  atomic.Pointer[[]*Certificate]
	parsing singleflight.Group
}

// FromHandshakeMetadata creates a Snapshot from the records the TLS layer reports after the handshake.
// It fails with a MissingFieldError if cryptoInfo lacks the protocol, the cipher name, the cipher bits or the cipher version.
// Certificates are not parsed until PeerCertificates is called.
func FromHandshakeMetadata(cryptoInfo CryptoInfo, tlsContext Context, conf *Config) (*Snapshot, error) {
	conf = populateConfig(conf)
	m, err := parseHandshakeMetadata(cryptoInfo, tlsContext)
	if err != nil {
		utils.DefaultLogger.Errorf("Rejecting handshake metadata: %s", err)
		if conf.Tracer != nil && conf.Tracer.RejectedMetadata != nil {
			conf.Tracer.RejectedMetadata(err)
		}
		return nil, err
	}
	s := &Snapshot{
		version:       m.version,
		cipherName:    m.cipherName,
		cipherBits:    m.cipherBits,
		cipherVersion: m.cipherVersion,
		certificates:  m.certificates,
		parser:        conf.CertificateParser,
		tracer:        conf.Tracer,
		logger:        utils.DefaultLogger.WithPrefix("tlsinfo"),
	}
	if m.alpn != nil {
		s.alpn = *m.alpn
		s.hasALPN = true
	}
	if s.logger.Debug() {
		s.logger.Debugf("Created snapshot: %s", s)
	}
	if s.tracer != nil && s.tracer.CreatedSnapshot != nil {
		s.tracer.CreatedSnapshot(s.info())
	}
	return s, nil
}

// Version returns the negotiated protocol version, e.g. "TLSv1.3".
func (s *Snapshot) Version() string { return s.version }

// CipherName returns the name of the negotiated cipher suite.
func (s *Snapshot) CipherName() string { return s.cipherName }

// CipherBits returns the effective strength of the cipher in bits.
func (s *Snapshot) CipherBits() int { return s.cipherBits }

// CipherVersion returns the protocol version the cipher suite was defined for.
func (s *Snapshot) CipherVersion() string { return s.cipherVersion }

// ApplicationLayerProtocol returns the protocol negotiated via ALPN.
// The bool is false if no protocol was negotiated.
func (s *Snapshot) ApplicationLayerProtocol() (string, bool) { return s.alpn, s.hasALPN }

// RawCertificates returns the raw peer certificates, leaf first.
func (s *Snapshot) RawCertificates() []RawCertificate {
	return slices.Clone(s.certificates)
}

// PeerCertificates returns the parsed peer certificates, leaf first.
// The certificates are parsed on the first call. If parsing any of them fails,
// a CertificateParseError is returned and nothing is cached, so the next call parses again.
func (s *Snapshot) PeerCertificates() ([]*Certificate, error) {
	if certs := s.parsed.Load(); certs != nil {
		return slices.Clone(*certs), nil
	}
	v, err, _ := s.parsing.Do("", func() (any, error) {
		if certs := s.parsed.Load(); certs != nil {
			return *certs, nil
		}
		certs, err := s.parseCertificates()
		if err != nil {
			return nil, err
		}
		s.parsed.Store(&certs)
		return certs, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]*Certificate)), nil
}

func (s *Snapshot) parseCertificates() ([]*Certificate, error) {
	certs := make([]*Certificate, 0, len(s.certificates))
	for i, raw := range s.certificates {
		cert, err := s.parser.ParseCertificate(raw)
		if err == nil && cert == nil {
			err = fmt.Errorf("%T returned no certificate", s.parser)
		}
		if err != nil {
			s.logger.Errorf("Parsing certificate %d of %d failed: %s", i, len(s.certificates), err)
			if s.tracer != nil && s.tracer.FailedCertificateParse != nil {
				s.tracer.FailedCertificateParse(i, err)
			}
			return nil, &CertificateParseError{Index: i, Err: err}
		}
		if s.logger.Debug() {
			s.logger.Debugf("Parsed certificate %d: %s", i, cert)
		}
		certs = append(certs, cert)
	}
	if s.tracer != nil && s.tracer.ParsedCertificates != nil {
		s.tracer.ParsedCertificates(len(certs))
	}
	return certs, nil
}

func (s *Snapshot) info() logging.SnapshotInfo {
	return logging.SnapshotInfo{
		Version:         s.version,
		CipherName:      s.cipherName,
		CipherBits:      s.cipherBits,
		CipherVersion:   s.cipherVersion,
		ALPN:            s.alpn,
		NumCertificates: len(s.certificates),
	}
}

func (s *Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%d bits, %s)", s.version, s.cipherName, s.cipherBits, s.cipherVersion)
	if s.hasALPN {
		fmt.Fprintf(&b, ", ALPN: %s", s.alpn)
	}
	fmt.Fprintf(&b, ", %d certificates", len(s.certificates))
	return b.String()
}
