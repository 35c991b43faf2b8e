package logging

// A Tracer traces events.
type Tracer struct {
	CreatedSnapshot        func(SnapshotInfo)
	RejectedMetadata       func(error)
	ParsedCertificates     func(count int)
	FailedCertificateParse func(index int, err error)
	Close                  func()
}

// NewMultiplexedTracer creates a new tracer that multiplexes events to multiple tracers.
func NewMultiplexedTracer(tracers ...*Tracer) *Tracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &Tracer{
		CreatedSnapshot: func(info SnapshotInfo) {
			for _, t := range tracers {
				if t.CreatedSnapshot != nil {
					t.CreatedSnapshot(info)
				}
			}
		},
		RejectedMetadata: func(err error) {
			for _, t := range tracers {
				if t.RejectedMetadata != nil {
					t.RejectedMetadata(err)
				}
			}
		},
		ParsedCertificates: func(count int) {
			for _, t := range tracers {
				if t.ParsedCertificates != nil {
					t.ParsedCertificates(count)
				}
			}
		},
		FailedCertificateParse: func(index int, err error) {
			for _, t := range tracers {
				if t.FailedCertificateParse != nil {
					t.FailedCertificateParse(index, err)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
