package tlslog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quic-go/tlsinfo/internal/utils"
	"github.com/quic-go/tlsinfo/logging"
)

// LogDirEnv is the environment variable naming the directory DefaultTracer writes to.
const LogDirEnv = "TLSLOGDIR"

// DefaultTracer creates a tlslog file in the directory specified by the TLSLOGDIR environment variable.
// File names are <label>_<unix nanoseconds>.tlslog.
// Returns nil if TLSLOGDIR is not set or the file can't be created.
func DefaultTracer(label string) *logging.Tracer {
	dir := os.Getenv(LogDirEnv)
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.DefaultLogger.Errorf("Failed to create tlslog dir %s: %s", dir, err)
		return nil
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%d.tlslog", label, time.Now().UnixNano()))
	f, err := os.Create(path)
	if err != nil {
		utils.DefaultLogger.Errorf("Failed to create tlslog file %s: %s", path, err)
		return nil
	}
	return NewTracer(utils.NewBufferedWriteCloser(bufio.NewWriter(f), f))
}
