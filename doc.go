// Package tlsinfo exposes the negotiated parameters of an established TLS connection:
// the protocol version, the cipher suite, the application-layer protocol and the peer certificates.
//
// A Snapshot is created once per connection, either from the crypto/tls connection state
// (FromConnectionState) or from the metadata records reported by another TLS stack (FromHandshakeMetadata).
package tlsinfo
