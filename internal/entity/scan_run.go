package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanRun is one batch invocation over a folder.
type ScanRun struct {
	ID         uuid.UUID  `json:"id"`
	DocType    string     `json:"doc_type"`
	Folder     string     `json:"folder"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Files      int        `json:"files"`
	Failures   int        `json:"failures"`
}

// ScanEntry mirrors a report entry of a run, in report order.
type ScanEntry struct {
	RunID        uuid.UUID `json:"run_id"`
	Position     int       `json:"position"`
	Document     string    `json:"document"`
	OriginalName string    `json:"original_name"`
	Status       string    `json:"status"`
	Renamed      bool      `json:"renamed"`
	SHA256       string    `json:"sha256,omitempty"`
	Result       string    `json:"result"`
}
