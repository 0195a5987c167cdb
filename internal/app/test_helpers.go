package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/prefabgo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Bytes returns a copy of the buffered data.
func (b *SafeBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.b.Bytes()...)
}

// SetupAppTest creates a new app instance for system testing. It returns the
// app together with its output and log buffers.
func SetupAppTest(t *testing.T, cfg Config, modules ...registry.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(outBuffer, logBuffer, appConfig, modules...)

	t.Cleanup(func() {
		if os.Getenv("PREFABGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
