package testdata

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"sync"
	"time"
)

const ALPN = "tlsinfo tests"

// A Chain is a certificate chain rooted in a self-signed CA.
type Chain struct {
	Root         *x509.Certificate
	Intermediate *x509.Certificate
	Leaf         *x509.Certificate
	LeafKey      crypto.PrivateKey
}

var (
	chainOnce sync.Once
	chain     *Chain
)

// GetChain returns a chain that is generated once per process.
func GetChain() *Chain {
	chainOnce.Do(func() {
		c, err := GenerateChain()
		if err != nil {
			panic(err)
		}
		chain = c
	})
	return chain
}

// GenerateChain generates a root CA, an intermediate CA and a leaf certificate for localhost.
func GenerateChain() (*Chain, error) {
	root, rootKey, err := GenerateCA(nil, nil, "tlsinfo root")
	if err != nil {
		return nil, err
	}
	intermediate, intermediateKey, err := GenerateCA(root, rootKey, "tlsinfo intermediate")
	if err != nil {
		return nil, err
	}
	leaf, leafKey, err := GenerateLeafCert(intermediate, intermediateKey)
	if err != nil {
		return nil, err
	}
	return &Chain{
		Root:         root,
		Intermediate: intermediate,
		Leaf:         leaf,
		LeafKey:      leafKey,
	}, nil
}

// GenerateCA generates a CA certificate.
// If parent is nil, the certificate is self-signed.
func GenerateCA(parent *x509.Certificate, parentKey crypto.PrivateKey, name string) (*x509.Certificate, crypto.PrivateKey, error) {
	serial, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		return nil, nil, err
	}
	certTempl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: name, Organization: []string{"tlsinfo"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	if parent == nil {
		parent = certTempl
		parentKey = priv
	}
	caBytes, err := x509.CreateCertificate(rand.Reader, certTempl, parent, pub, parentKey)
	if err != nil {
		return nil, nil, err
	}
	ca, err := x509.ParseCertificate(caBytes)
	if err != nil {
		return nil, nil, err
	}
	return ca, priv, nil
}

func GenerateLeafCert(ca *x509.Certificate, caPriv crypto.PrivateKey) (*x509.Certificate, crypto.PrivateKey, error) {
	certTempl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost", Organization: []string{"tlsinfo"}},
		DNSNames:     []string{"localhost", "tlsinfo.localhost"},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1)},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, certTempl, ca, pub, caPriv)
	if err != nil {
		return nil, nil, err
	}
	cert, err := x509.ParseCertificate(certBytes)
	if err != nil {
		return nil, nil, err
	}
	return cert, priv, nil
}

// GetTLSConfig returns a server config presenting the leaf and the intermediate certificate.
func GetTLSConfig() *tls.Config {
	c := GetChain()
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{c.Leaf.Raw, c.Intermediate.Raw},
			PrivateKey:  c.LeafKey,
			Leaf:        c.Leaf,
		}},
		NextProtos: []string{ALPN},
	}
}

// GetRootCA returns a certificate pool containing the root CA.
func GetRootCA() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AddCert(GetChain().Root)
	return pool
}

// GetClientTLSConfig returns a client config that trusts the root CA.
func GetClientTLSConfig() *tls.Config {
	return &tls.Config{
		RootCAs:    GetRootCA(),
		ServerName: "localhost",
		NextProtos: []string{ALPN},
	}
}
