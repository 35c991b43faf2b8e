package tlsinfo

import (
	"bytes"
	"crypto"
	_ "crypto/sha1" // register SHA-1 for Certificate.Fingerprint
	_ "crypto/sha256"
	_ "crypto/sha512"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"time"
)

// A CertificateParser parses a single raw certificate.
// Implementations must be pure: the same input always yields an equivalent result.
type CertificateParser interface {
	ParseCertificate(RawCertificate) (*Certificate, error)
}

// The CertificateParserFunc type is an adapter to allow the use of ordinary functions as a CertificateParser.
type CertificateParserFunc func(RawCertificate) (*Certificate, error)

func (f CertificateParserFunc) ParseCertificate(raw RawCertificate) (*Certificate, error) {
	return f(raw)
}

type x509Parser struct{}

// DefaultCertificateParser returns a CertificateParser that accepts both DER
// and a single PEM encoded CERTIFICATE block.
func DefaultCertificateParser() CertificateParser { return x509Parser{} }

func (x509Parser) ParseCertificate(raw RawCertificate) (*Certificate, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty certificate")
	}
	der := []byte(raw)
	if block, _ := pem.Decode(der); block != nil {
		if block.Type != "CERTIFICATE" {
			return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
		}
		der = block.Bytes
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}
	return NewCertificate(cert), nil
}

// Name is a distinguished name, reduced to the first value of the common attributes.
type Name struct {
	CommonName         string
	Organization       string
	OrganizationalUnit string
	Country            string
	Locality           string
	Province           string

	dn string
}

func newName(n pkix.Name) Name {
	first := func(s []string) string {
		if len(s) == 0 {
			return ""
		}
		return s[0]
	}
	return Name{
		CommonName:         n.CommonName,
		Organization:       first(n.Organization),
		OrganizationalUnit: first(n.OrganizationalUnit),
		Country:            first(n.Country),
		Locality:           first(n.Locality),
		Province:           first(n.Province),
		dn:                 n.String(),
	}
}

// String returns the RFC 2253 representation of the full name.
func (n Name) String() string { return n.dn }

// A Certificate is a parsed X.509 certificate.
type Certificate struct {
	cert    *x509.Certificate
	subject Name
	issuer  Name
}

// NewCertificate wraps a parsed X.509 certificate.
func NewCertificate(cert *x509.Certificate) *Certificate {
	return &Certificate{
		cert:    cert,
		subject: newName(cert.Subject),
		issuer:  newName(cert.Issuer),
	}
}

func (c *Certificate) Subject() Name { return c.subject }
func (c *Certificate) Issuer() Name  { return c.issuer }

// SerialNumber returns the serial number in lower-case hex.
func (c *Certificate) SerialNumber() string {
	if c.cert.SerialNumber == nil {
		return ""
	}
	return c.cert.SerialNumber.Text(16)
}

func (c *Certificate) ValidFrom() time.Time { return c.cert.NotBefore }
func (c *Certificate) ValidTo() time.Time   { return c.cert.NotAfter }

// IsExpired reports whether now is outside of the validity period.
func (c *Certificate) IsExpired(now time.Time) bool {
	return now.Before(c.cert.NotBefore) || now.After(c.cert.NotAfter)
}

func (c *Certificate) SignatureType() string      { return c.cert.SignatureAlgorithm.String() }
func (c *Certificate) PublicKey() any             { return c.cert.PublicKey }
func (c *Certificate) PublicKeyAlgorithm() string { return c.cert.PublicKeyAlgorithm.String() }

// Names returns the subject common name followed by the DNS subject alternative names.
// Duplicates are removed, the first occurrence wins.
func (c *Certificate) Names() []string {
	names := make([]string, 0, 1+len(c.cert.DNSNames))
	seen := make(map[string]struct{}, 1+len(c.cert.DNSNames))
	add := func(n string) {
		if n == "" {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	add(c.cert.Subject.CommonName)
	for _, n := range c.cert.DNSNames {
		add(n)
	}
	return names
}

// IsSelfSigned reports whether subject and issuer are identical.
// The signature is not checked.
func (c *Certificate) IsSelfSigned() bool {
	return bytes.Equal(c.cert.RawSubject, c.cert.RawIssuer)
}

// X509 returns the underlying certificate. It must not be modified.
func (c *Certificate) X509() *x509.Certificate { return c.cert }

func (c *Certificate) DER() []byte { return bytes.Clone(c.cert.Raw) }

func (c *Certificate) PEM() string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: c.cert.Raw}))
}

// Fingerprint returns the lower-case hex digest of the DER encoding.
func (c *Certificate) Fingerprint(h crypto.Hash) (string, error) {
	if !h.Available() {
		return "", fmt.Errorf("hash function %s not available", h)
	}
	hash := h.New()
	hash.Write(c.cert.Raw)
	return hex.EncodeToString(hash.Sum(nil)), nil
}

func (c *Certificate) String() string {
	return fmt.Sprintf("subject=%q issuer=%q valid=%s..%s", c.subject, c.issuer,
		c.cert.NotBefore.UTC().Format(time.RFC3339), c.cert.NotAfter.UTC().Format(time.RFC3339))
}
