package telemetry

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/landdeploy/internal/core/ports"
)

// LogWriter is a progrock.Writer that logs each vertex once it completes.
type LogWriter struct {
	log ports.Logger

	mu       sync.Mutex
	reported map[string]bool
}

// NewLogWriter creates a LogWriter reporting to log.
func NewLogWriter(log ports.Logger) *LogWriter {
	return &LogWriter{
		log:      log,
		reported: make(map[string]bool),
	}
}

// WriteStatus logs vertices that completed in this update.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.reported[v.Id] {
			continue
		}
		w.reported[v.Id] = true
		if v.Error != nil {
			w.log.Warn(fmt.Sprintf("%s failed: %s", v.Name, *v.Error))
			continue
		}
		w.log.Info(fmt.Sprintf("%s done", v.Name))
	}
	return nil
}

// Close does nothing.
func (w *LogWriter) Close() error {
	return nil
}
