package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartjob-utils/internal/logging/types"
)

// captureAdapter records entries in memory for assertions.
type captureAdapter struct {
	mu      sync.Mutex
	entries []types.LogEntry
}

func (a *captureAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, *entry)
	return nil
}

func (a *captureAdapter) Close() error { return nil }

func (a *captureAdapter) Name() string { return "capture" }

func (a *captureAdapter) snapshot() []types.LogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]types.LogEntry(nil), a.entries...)
}

func newCaptureLogger(t *testing.T) (*MultiLogger, *captureAdapter) {
	t.Helper()

	logger := NewMultiLogger()
	adapter := &captureAdapter{}
	require.NoError(t, logger.AddAdapter(adapter))
	return logger, adapter
}

func TestMultiLoggerLevelFiltering(t *testing.T) {
	logger, adapter := newCaptureLogger(t)
	logger.SetLevel(WarnLevel)

	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warn("kept warn")
	logger.Error("kept error")

	entries := adapter.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "kept warn", entries[0].Message)
	assert.Equal(t, "kept error", entries[1].Message)
}

func TestMultiLoggerWithFieldIsolation(t *testing.T) {
	logger, adapter := newCaptureLogger(t)

	child := logger.WithField("component", "matcher")
	child.Info("child entry")
	logger.Info("parent entry")

	entries := adapter.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "matcher", entries[0].Fields["component"])
	assert.NotContains(t, entries[1].Fields, "component")
}

func TestMultiLoggerMergesCallFields(t *testing.T) {
	logger, adapter := newCaptureLogger(t)

	logger.WithFields(map[string]interface{}{"a": 1, "b": 1}).
		Info("entry", map[string]interface{}{"b": 2})

	entries := adapter.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Fields["a"])
	assert.Equal(t, 2, entries[0].Fields["b"])
}

func TestMultiLoggerConcurrentSetLevel(t *testing.T) {
	logger, _ := newCaptureLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.Info("concurrent entry")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.SetLevel(DebugLevel)
				logger.SetLevel(ErrorLevel)
			}
		}()
	}
	wg.Wait()
}
