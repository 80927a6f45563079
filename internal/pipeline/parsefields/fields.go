// Package parsefields pulls structured fields out of free-text model replies.
package parsefields

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/scan-extractor/constants"
)

var (
	reDNI  = regexp.MustCompile(`DNI PACIENTE:\s*([0-9]{8})`)
	reDate = regexp.MustCompile(`Fecha Examen:\s*([\w/\-]+)`)
)

// MedicalFields are the values used to rename an EMO document.
type MedicalFields struct {
	DNI      string
	ExamDate string
}

// ParseMedical expects `DNI PACIENTE: <8 digits>, Fecha Examen: <token>` but
// tolerates anything; missing values become sin_dni / sin_fecha.
func ParseMedical(reply string) MedicalFields {
	out := MedicalFields{
		DNI:      constants.NoDNISentinel,
		ExamDate: constants.NoDateSentinel,
	}
	if m := reDNI.FindStringSubmatch(reply); m != nil {
		out.DNI = m[1]
	}
	if m := reDate.FindStringSubmatch(reply); m != nil {
		out.ExamDate = m[1]
	}
	return out
}

// SanitizeDate makes a date token safe for file names on every OS.
func SanitizeDate(date string) string {
	return strings.NewReplacer("/", "-", `\`, "-").Replace(date)
}

// MedicalFilename builds emo_<dni>_<date><ext>. ext keeps its leading dot.
func MedicalFilename(f MedicalFields, ext string) string {
	return constants.RenamePrefix + "_" + f.DNI + "_" + SanitizeDate(f.ExamDate) + ext
}
