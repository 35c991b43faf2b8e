//go:build !gomock && !generate

package mocklogging

import (
	"github.com/quic-go/tlsinfo/internal/mocks/logging/internal"
	"github.com/quic-go/tlsinfo/logging"

	"go.uber.org/mock/gomock"
)

type MockTracer = internal.MockTracer

func NewMockTracer(ctrl *gomock.Controller) (*logging.Tracer, *MockTracer) {
	t := internal.NewMockTracer(ctrl)
	return &logging.Tracer{
		CreatedSnapshot: func(info logging.SnapshotInfo) {
			t.CreatedSnapshot(info)
		},
		RejectedMetadata: func(err error) {
			t.RejectedMetadata(err)
		},
		ParsedCertificates: func(count int) {
			t.ParsedCertificates(count)
		},
		FailedCertificateParse: func(index int, err error) {
			t.FailedCertificateParse(index, err)
		},
		Close: func() {
			t.Close()
		},
	}, t
}
