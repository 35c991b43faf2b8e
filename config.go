package tlsinfo

import "github.com/quic-go/tlsinfo/logging"

// Config contains all configuration data needed to create a Snapshot.
// A nil Config is valid and uses the defaults.
type Config struct {
	// CertificateParser turns raw certificates into Certificates.
	// If not set, DefaultCertificateParser is used.
	CertificateParser CertificateParser
	Tracer            *logging.Tracer
}

// Clone clones a Config
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

// populateConfig populates fields in the Config with their default values, if none are set
// it may be called with nil
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	parser := config.CertificateParser
	if parser == nil {
		parser = DefaultCertificateParser()
	}
	return &Config{
		CertificateParser: parser,
		Tracer:            config.Tracer,
	}
}
