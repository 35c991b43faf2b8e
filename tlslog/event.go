package tlslog

import (
	"time"

	"github.com/quic-go/tlsinfo/logging"

	"github.com/francoispqt/gojay"
)

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventDetails interface {
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", milliseconds(e.RelativeTime))
	enc.StringKey("name", e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

type eventSnapshotCreated struct {
	Info logging.SnapshotInfo
}

func (e eventSnapshotCreated) Name() string { return "snapshot_created" }
func (e eventSnapshotCreated) IsNil() bool  { return false }

func (e eventSnapshotCreated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("version", e.Info.Version)
	enc.StringKey("cipher_name", e.Info.CipherName)
	enc.IntKey("cipher_bits", e.Info.CipherBits)
	enc.StringKey("cipher_version", e.Info.CipherVersion)
	enc.StringKeyOmitEmpty("alpn_protocol", e.Info.ALPN)
	enc.IntKey("certificates", e.Info.NumCertificates)
}

type eventMetadataRejected struct {
	Err error
}

func (e eventMetadataRejected) Name() string { return "metadata_rejected" }
func (e eventMetadataRejected) IsNil() bool  { return false }

func (e eventMetadataRejected) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("error", e.Err.Error())
}

type eventCertificatesParsed struct {
	Count int
}

func (e eventCertificatesParsed) Name() string { return "certificates_parsed" }
func (e eventCertificatesParsed) IsNil() bool  { return false }

func (e eventCertificatesParsed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("count", e.Count)
}

type eventCertificateParseFailed struct {
	Index int
	Err   error
}

func (e eventCertificateParseFailed) Name() string { return "certificate_parse_failed" }
func (e eventCertificateParseFailed) IsNil() bool  { return false }

func (e eventCertificateParseFailed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("index", e.Index)
	enc.StringKey("error", e.Err.Error())
}
