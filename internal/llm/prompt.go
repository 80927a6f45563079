package llm

import (
	"strings"

	"github.com/joseph-ayodele/scan-extractor/constants"
)

// templates holds the instruction preamble per document type. The OCR text is
// always appended as the final segment.
var templates = map[constants.DocType][]string{
	constants.DocTypeEMO: {
		"Analiza el siguiente texto que corresponde a un expediente médico ocupacional o certificado de salud.",
		"Extrae solo el documento de identidad o dni del paciente (8 dígitos) y la fecha del examen medico.",
		"Responde exclusivamente en este formato exacto sin agregar más texto:",
		"'DNI PACIENTE: [DNI], Fecha Examen: [FECHA]'.",
	},
	constants.DocTypeGRUT: {
		"El siguiente texto es parte de una guia de remision de unidades de transporte.",
		"Identifica la placa del vehiculo y el año de fabricacion del vehiculo.",
		"Si el texto no tiene que ver con guias de remision de unidades de transporte, responde: 'El documento no es una guia de remision'.",
		"Se muy breve en tus respuestas.",
	},
	constants.DocTypeOther: {
		"Responde: 'No puedo analizar el texto'.",
	},
}

// BuildPrompt returns the instruction for docType with text embedded at the end.
// The lookup is exact and case-sensitive; unknown tags get the Otro template.
func BuildPrompt(docType, text string) string {
	parts, ok := templates[constants.DocType(docType)]
	if !ok {
		parts = templates[constants.DocTypeOther]
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	b.WriteString(" Aquí tienes el texto: \n")
	b.WriteString(text)
	return b.String()
}

// KnownDocTypes lists the tags with a dedicated template.
func KnownDocTypes() []string {
	return constants.AsStringSlice()
}
