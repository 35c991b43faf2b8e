package main

import (
	"bufio"
	"context"
	"crypto"
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/quic-go/tlsinfo"
	"github.com/quic-go/tlsinfo/internal/utils"
	"github.com/quic-go/tlsinfo/logging"
	"github.com/quic-go/tlsinfo/tlslog"

	"golang.org/x/sync/errgroup"
)

// For additional logging of tlsinfo internals, the TLSINFO_LOG_LEVEL env var can be set.
// Events are written to TLSLOGDIR, if set.

func main() {
	verbose := flag.Bool("v", false, "verbose")
	insecure := flag.Bool("insecure", false, "skip certificate verification")
	alpn := flag.String("alpn", "h2,http/1.1", "comma-separated list of ALPN protocols to offer")
	serverName := flag.String("servername", "", "server name to send in the SNI extension")
	timeout := flag.Duration("timeout", 10*time.Second, "dial timeout")
	tlslogFile := flag.String("tlslog", "", "write events to this file")
	flag.Parse()
	addrs := flag.Args()
	if len(addrs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspect [flags] host:port...")
		os.Exit(2)
	}

	logger := utils.DefaultLogger
	if *verbose {
		logger.SetLogLevel(utils.LogLevelDebug)
	} else {
		logger.SetLogLevel(utils.LogLevelInfo)
	}
	logger.SetLogTimeFormat("")

	tracers := []*logging.Tracer{}
	if tr := tlslog.DefaultTracer("inspect"); tr != nil {
		tracers = append(tracers, tr)
	}
	if *tlslogFile != "" {
		f, err := os.Create(*tlslogFile)
		if err != nil {
			log.Fatal(err)
		}
		tracers = append(tracers, tlslog.NewTracer(utils.NewBufferedWriteCloser(bufio.NewWriter(f), f)))
	}
	tracer := logging.NewMultiplexedTracer(tracers...)
	if tracer != nil && tracer.Close != nil {
		defer tracer.Close()
	}

	var protos []string
	if *alpn != "" {
		protos = strings.Split(*alpn, ",")
	}
	conf := &tlsinfo.Config{Tracer: tracer}

	var mutex sync.Mutex // serializes output
	var g errgroup.Group
	for _, addr := range addrs {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), *timeout)
			defer cancel()
			s, err := inspect(ctx, addr, &tls.Config{
				ServerName:         *serverName,
				NextProtos:         protos,
				InsecureSkipVerify: *insecure,
			}, conf)
			if err != nil {
				return fmt.Errorf("%s: %w", addr, err)
			}
			mutex.Lock()
			defer mutex.Unlock()
			return printSnapshot(addr, s)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Errorf("%s", err)
		if tracer != nil && tracer.Close != nil {
			tracer.Close()
		}
		os.Exit(1)
	}
}

func inspect(ctx context.Context, addr string, tlsConf *tls.Config, conf *tlsinfo.Config) (*tlsinfo.Snapshot, error) {
	dialer := &tls.Dialer{Config: tlsConf}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return tlsinfo.FromConnectionState(conn.(*tls.Conn).ConnectionState(), conf)
}

func printSnapshot(addr string, s *tlsinfo.Snapshot) error {
	fmt.Printf("%s\n", addr)
	fmt.Printf("  version:  %s\n", s.Version())
	fmt.Printf("  cipher:   %s (%d bits, %s)\n", s.CipherName(), s.CipherBits(), s.CipherVersion())
	if proto, ok := s.ApplicationLayerProtocol(); ok {
		fmt.Printf("  alpn:     %s\n", proto)
	} else {
		fmt.Printf("  alpn:     none\n")
	}
	certs, err := s.PeerCertificates()
	if err != nil {
		return err
	}
	for i, cert := range certs {
		fp, err := cert.Fingerprint(crypto.SHA256)
		if err != nil {
			return err
		}
		fmt.Printf("  certificate %d\n", i)
		fmt.Printf("    subject:     %s\n", cert.Subject())
		fmt.Printf("    issuer:      %s\n", cert.Issuer())
		fmt.Printf("    names:       %s\n", strings.Join(cert.Names(), ", "))
		fmt.Printf("    valid:       %s - %s\n", cert.ValidFrom().Format(time.RFC3339), cert.ValidTo().Format(time.RFC3339))
		fmt.Printf("    signature:   %s\n", cert.SignatureType())
		fmt.Printf("    public key:  %s\n", cert.PublicKeyAlgorithm())
		fmt.Printf("    sha256:      %s\n", fp)
	}
	return nil
}
