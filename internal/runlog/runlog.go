// Package runlog appends a summary of every finished run to runs.jsonl in
// the data directory.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the log written inside the data directory.
const FileName = "runs.jsonl"

// Record summarises one run.
type Record struct {
	RunID         string         `json:"run_id"`
	Timestamp     time.Time      `json:"timestamp"`
	Depth         uint           `json:"depth"`
	Level         int            `json:"level"`
	Turns         int            `json:"turns"`
	XP            int            `json:"xp"`
	Died          bool           `json:"died"`
	Cause         string         `json:"cause,omitempty"` // name of whatever dealt the killing blow
	EnemiesKilled map[string]int `json:"enemies_killed,omitempty"`
	ItemsUsed     map[string]int `json:"items_used,omitempty"`
}

// NewRecord returns an empty record for runID with its tallies allocated.
func NewRecord(runID string) Record {
	return Record{
		RunID:         runID,
		EnemiesKilled: make(map[string]int),
		ItemsUsed:     make(map[string]int),
	}
}

// Append writes rec as a single JSON line to dir/runs.jsonl.
func Append(dir string, rec Record) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}
