package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/medirec/hospital-service/internal/utils"
)

// Entry is one recorded operation: what happened, who triggered it, and the
// relevant identifiers. Payloads never include credentials.
type Entry struct {
	Timestamp time.Time              `json:"timestamp"`
	Operation string                 `json:"operation"`
	UserType  string                 `json:"user_type"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Recorder appends one JSON line per operation to the log file and mirrors
// each entry to the structured logger.
type Recorder struct {
	mu     sync.Mutex
	file   *os.File
	logger utils.Logger
}

// NewRecorder opens (or creates) the operation log file in append mode.
func NewRecorder(path string, logger utils.Logger) (*Recorder, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	return &Recorder{
		file:   file,
		logger: logger,
	}, nil
}

// Record writes one operation entry. Failures are logged but never propagate;
// audit trouble must not fail the request that triggered it.
func (r *Recorder) Record(operation, userType string, data map[string]interface{}) {
	entry := Entry{
		Timestamp: time.Now(),
		Operation: operation,
		UserType:  userType,
		Data:      data,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		r.logger.Error("Failed to marshal audit entry", "error", err, "operation", operation)
		return
	}

	r.mu.Lock()
	_, writeErr := r.file.Write(append(line, '\n'))
	r.mu.Unlock()

	if writeErr != nil {
		r.logger.Error("Failed to write audit entry", "error", writeErr, "operation", operation)
	}

	r.logger.Info("Operation recorded",
		"operation", operation,
		"user_type", userType,
		"data", data)
}

// Close flushes and closes the log file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}
