package constants

// EntryStatus is the outcome recorded for each processed document.
type EntryStatus string

// Stable values (store these exact strings in the history DB).
const (
	EntryStatusOK     EntryStatus = "OK"     // text extracted and analyzed
	EntryStatusFailed EntryStatus = "FAILED" // rasterization or OCR failed
)
