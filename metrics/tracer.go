package metrics

import (
	"errors"

	"github.com/quic-go/tlsinfo/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "tlsinfo"

type collectors struct {
	snapshotsCreated   *prometheus.CounterVec
	metadataRejected   *prometheus.CounterVec
	certificatesParsed prometheus.Counter
	parseFailures      prometheus.Counter
}

func newCollectors() *collectors {
	return &collectors{
		snapshotsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      "snapshots_created_total",
				Help:      "Snapshots created from handshake metadata",
			},
			[]string{"version", "cipher"},
		),
		metadataRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      "metadata_rejected_total",
				Help:      "Handshake metadata rejected",
			},
			[]string{"reason"},
		),
		certificatesParsed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      "certificates_parsed_total",
				Help:      "Peer certificates parsed",
			},
		),
		parseFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      "certificate_parse_failures_total",
				Help:      "Peer certificates that failed to parse",
			},
		),
	}
}

// register registers c, or returns the collector that was registered before.
func register[T prometheus.Collector](registerer prometheus.Registerer, c T) T {
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		existing, ok := are.ExistingCollector.(T)
		if !ok {
			panic(err)
		}
		return existing
	}
	return c
}

// NewTracer creates a new tracer using the default Prometheus registerer.
// It can be set on the Tracer field of tlsinfo.Config.
func NewTracer() *logging.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
// Tracers sharing a registerer share their counters.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *logging.Tracer {
	c := newCollectors()
	c.snapshotsCreated = register(registerer, c.snapshotsCreated)
	c.metadataRejected = register(registerer, c.metadataRejected)
	c.certificatesParsed = register(registerer, c.certificatesParsed)
	c.parseFailures = register(registerer, c.parseFailures)

	return &logging.Tracer{
		CreatedSnapshot: func(info logging.SnapshotInfo) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, info.Version)
			*tags = append(*tags, info.CipherName)
			c.snapshotsCreated.WithLabelValues(*tags...).Inc()
		},
		RejectedMetadata: func(err error) {
			c.metadataRejected.WithLabelValues(rejectReason(err)).Inc()
		},
		ParsedCertificates: func(count int) {
			c.certificatesParsed.Add(float64(count))
		},
		FailedCertificateParse: func(int, error) {
			c.parseFailures.Inc()
		},
	}
}
