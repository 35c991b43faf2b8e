//go:build gomock || generate

package mocklogging

import "github.com/quic-go/tlsinfo/logging"

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package internal -destination internal/tracer.go github.com/quic-go/tlsinfo/internal/mocks/logging Tracer"
type Tracer interface {
	CreatedSnapshot(logging.SnapshotInfo)
	RejectedMetadata(error)
	ParsedCertificates(count int)
	FailedCertificateParse(index int, err error)
	Close()
}
