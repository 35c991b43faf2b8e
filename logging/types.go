package logging

// SnapshotInfo describes a snapshot that was created from handshake metadata.
type SnapshotInfo struct {
	Version       string
	CipherName    string
	CipherBits    int
	CipherVersion string
	// ALPN is empty if no application-layer protocol was negotiated.
	ALPN            string
	NumCertificates int
}
