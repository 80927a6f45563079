package pipeline

import (
	"strings"

	"github.com/joseph-ayodele/scan-extractor/constants"
)

// Config is everything a batch run needs to know up front.
type Config struct {
	Folder     string // scanned PDFs, direct children only
	OutputFile string // text report, overwritten at the end of the run
	XLSXFile   string // optional spreadsheet report
	DocType    string // declared document type tag
	MaxPages   int    // pages OCR'd per document
}

// IsMedicalRecord reports whether docType triggers the EMO rename step.
// Unlike template selection this check ignores case.
func IsMedicalRecord(docType string) bool {
	return strings.ToUpper(docType) == string(constants.DocTypeEMO)
}
