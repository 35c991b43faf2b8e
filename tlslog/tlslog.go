// Package tlslog writes tlsinfo events as JSON text sequences (RFC 7464).
package tlslog

import (
	"io"
	"sync"
	"time"

	"github.com/quic-go/tlsinfo/internal/utils"
	"github.com/quic-go/tlsinfo/logging"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

const recordSeparator = 0x1e

type writer struct {
	mutex  sync.Mutex
	closed bool

	w             io.WriteCloser
	referenceTime time.Time

	events     chan event
	encodeErr  error
	runStopped chan struct{}
}

// NewTracer creates a tracer that writes one record per event to w.
// Calling Close on the returned tracer flushes all events and closes w.
// Events recorded after that are dropped.
func NewTracer(w io.WriteCloser) *logging.Tracer {
	t := &writer{
		w:             w,
		referenceTime: time.Now(),
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
	}
	go t.run()
	return &logging.Tracer{
		CreatedSnapshot: func(info logging.SnapshotInfo) {
			t.recordEvent(time.Now(), &eventSnapshotCreated{Info: info})
		},
		RejectedMetadata: func(err error) {
			t.recordEvent(time.Now(), &eventMetadataRejected{Err: err})
		},
		ParsedCertificates: func(count int) {
			t.recordEvent(time.Now(), &eventCertificatesParsed{Count: count})
		},
		FailedCertificateParse: func(index int, err error) {
			t.recordEvent(time.Now(), &eventCertificateParseFailed{Index: index, Err: err})
		},
		Close: t.Close,
	}
}

func (t *writer) run() {
	defer close(t.runStopped)
	enc := gojay.NewEncoder(t.w)
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if _, err := t.w.Write([]byte{recordSeparator}); err != nil {
			t.encodeErr = err
			continue
		}
		if err := enc.EncodeObject(ev); err != nil {
			t.encodeErr = err
			continue
		}
		if _, err := t.w.Write([]byte{'\n'}); err != nil {
			t.encodeErr = err
		}
	}
}

func (t *writer) recordEvent(eventTime time.Time, details eventDetails) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.closed {
		return
	}
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
}

func (t *writer) Close() {
	if err := t.export(); err != nil {
		utils.DefaultLogger.Errorf("exporting tlslog failed: %s", err)
	}
}

func (t *writer) export() error {
	t.mutex.Lock()
	if t.closed {
		t.mutex.Unlock()
		return nil
	}
	t.closed = true
	close(t.events)
	t.mutex.Unlock()

	<-t.runStopped
	if err := t.w.Close(); err != nil && t.encodeErr == nil {
		return err
	}
	return t.encodeErr
}
