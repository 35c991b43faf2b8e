package tlslog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/quic-go/tlsinfo"
	"github.com/quic-go/tlsinfo/internal/testdata"
	"github.com/quic-go/tlsinfo/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type nopWriteCloserImpl struct{ io.Writer }

func (nopWriteCloserImpl) Close() error { return nil }

func nopWriteCloser(w io.Writer) io.WriteCloser {
	return &nopWriteCloserImpl{Writer: w}
}

type limitedWriter struct {
	io.WriteCloser
	N       int
	written int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.N {
		return 0, errors.New("writer full")
	}
	n, err := w.WriteCloser.Write(p)
	w.written += n
	return n, err
}

type entry struct {
	Time float64                `json:"time"`
	Name string                 `json:"name"`
	Data map[string]interface{} `json:"data"`
}

func exportAndParse(buf *bytes.Buffer) []entry {
	var entries []entry
	for _, record := range bytes.Split(buf.Bytes(), []byte{recordSeparator}) {
		if len(record) == 0 {
			continue
		}
		ExpectWithOffset(1, record[len(record)-1]).To(Equal(byte('\n')))
		var e entry
		ExpectWithOffset(1, json.Unmarshal(record, &e)).To(Succeed())
		entries = append(entries, e)
	}
	return entries
}

var _ = Describe("Tracing", func() {
	var (
		tracer *logging.Tracer
		buf    *bytes.Buffer
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		tracer = NewTracer(nopWriteCloser(buf))
	})

	It("records a created snapshot", func() {
		tracer.CreatedSnapshot(logging.SnapshotInfo{
			Version:         "TLSv1.3",
			CipherName:      "TLS_AES_128_GCM_SHA256",
			CipherBits:      128,
			CipherVersion:   "TLSv1.3",
			ALPN:            "h2",
			NumCertificates: 2,
		})
		tracer.Close()
		entries := exportAndParse(buf)
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Time).To(BeNumerically(">=", 0))
		Expect(entries[0].Name).To(Equal("snapshot_created"))
		Expect(entries[0].Data).To(Equal(map[string]interface{}{
			"version":        "TLSv1.3",
			"cipher_name":    "TLS_AES_128_GCM_SHA256",
			"cipher_bits":    float64(128),
			"cipher_version": "TLSv1.3",
			"alpn_protocol":  "h2",
			"certificates":   float64(2),
		}))
	})

	It("omits the ALPN protocol if none was negotiated", func() {
		tracer.CreatedSnapshot(logging.SnapshotInfo{Version: "TLSv1.2"})
		tracer.Close()
		entries := exportAndParse(buf)
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Data).ToNot(HaveKey("alpn_protocol"))
	})

	It("records rejected metadata and certificate events in order", func() {
		tracer.RejectedMetadata(&tlsinfo.MissingFieldError{Field: tlsinfo.KeyCipherName})
		tracer.ParsedCertificates(3)
		tracer.FailedCertificateParse(1, errors.New("malformed"))
		tracer.Close()
		entries := exportAndParse(buf)
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Name).To(Equal("metadata_rejected"))
		Expect(entries[0].Data).To(HaveKeyWithValue("error", `tlsinfo: missing handshake metadata field "cipher_name"`))
		Expect(entries[1].Name).To(Equal("certificates_parsed"))
		Expect(entries[1].Data).To(HaveKeyWithValue("count", float64(3)))
		Expect(entries[2].Name).To(Equal("certificate_parse_failed"))
		Expect(entries[2].Data).To(HaveKeyWithValue("index", float64(1)))
		Expect(entries[2].Data).To(HaveKeyWithValue("error", "malformed"))
		Expect(entries[1].Time).To(BeNumerically(">=", entries[0].Time))
	})

	It("drops events recorded after closing", func() {
		tracer.ParsedCertificates(1)
		tracer.Close()
		tracer.ParsedCertificates(2)
		tracer.Close()
		Expect(exportAndParse(buf)).To(HaveLen(1))
	})

	It("stops writing when the writer fails", func() {
		tracer = NewTracer(&limitedWriter{WriteCloser: nopWriteCloser(buf), N: 60})
		for i := 0; i < 10; i++ {
			tracer.ParsedCertificates(i)
		}
		tracer.Close()
		Expect(buf.Len()).To(BeNumerically("<=", 60))
	})

	It("records events of a snapshot", func() {
		chain := testdata.GetChain()
		s, err := tlsinfo.FromHandshakeMetadata(
			tlsinfo.CryptoInfo{
				tlsinfo.KeyProtocol:      "TLSv1.3",
				tlsinfo.KeyCipherName:    "TLS_CHACHA20_POLY1305_SHA256",
				tlsinfo.KeyCipherBits:    256,
				tlsinfo.KeyCipherVersion: "TLSv1.3",
			},
			tlsinfo.Context{tlsinfo.KeyPeerCertificate: chain.Leaf},
			&tlsinfo.Config{Tracer: tracer},
		)
		Expect(err).ToNot(HaveOccurred())
		certs, err := s.PeerCertificates()
		Expect(err).ToNot(HaveOccurred())
		Expect(certs).To(HaveLen(1))
		tracer.Close()

		entries := exportAndParse(buf)
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Name).To(Equal("snapshot_created"))
		Expect(entries[0].Data).To(HaveKeyWithValue("cipher_name", "TLS_CHACHA20_POLY1305_SHA256"))
		Expect(entries[1].Name).To(Equal("certificates_parsed"))
	})

	Context("tlslog directory", func() {
		It("doesn't create a tracer if TLSLOGDIR is not set", func() {
			os.Unsetenv(LogDirEnv)
			Expect(DefaultTracer("client")).To(BeNil())
		})

		It("writes a file to TLSLOGDIR", func() {
			dir := filepath.Join(GinkgoT().TempDir(), "logs")
			GinkgoT().Setenv(LogDirEnv, dir)
			tr := DefaultTracer("client")
			Expect(tr).ToNot(BeNil())
			tr.ParsedCertificates(2)
			tr.Close()

			files, err := filepath.Glob(filepath.Join(dir, "client_*.tlslog"))
			Expect(err).ToNot(HaveOccurred())
			Expect(files).To(HaveLen(1))
			data, err := os.ReadFile(files[0])
			Expect(err).ToNot(HaveOccurred())
			entries := exportAndParse(bytes.NewBuffer(data))
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name).To(Equal("certificates_parsed"))
		})
	})
})
