package export

import (
	"strings"

	"github.com/joseph-ayodele/scan-extractor/constants"
)

// Entry is one line of the batch report.
type Entry struct {
	Filename     string // final name, after a successful rename
	OriginalName string
	SourcePath   string
	Result       string
	Status       constants.EntryStatus
	Renamed      bool
	Pages        int
	SHA256       string
}

var divider = strings.Repeat("-", constants.ReportDividerWidth)

// FormatEntry renders an entry the way it appears on the console and in the text report.
func FormatEntry(e Entry) string {
	return "Documento: " + e.Filename + "\nResultado: " + e.Result + "\n" + divider
}
