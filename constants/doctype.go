package constants

// DocType is the user-declared document type tag that selects the prompt template.
type DocType string

const (
	DocTypeEMO   DocType = "EMO"  // occupational medical exam record
	DocTypeGRUT  DocType = "GRUT" // transport waybill
	DocTypeOther DocType = "Otro" // fallback bucket
)

var allDocTypes = []DocType{
	DocTypeEMO,
	DocTypeGRUT,
	DocTypeOther,
}

func AsStringSlice() []string {
	result := make([]string, len(allDocTypes))
	for i, t := range allDocTypes {
		result[i] = string(t)
	}
	return result
}

// Sentinels substituted when the model output cannot be used.
const (
	ModelErrorSentinel = "Error en la respuesta de OLLAMA"
	NoDNISentinel      = "sin_dni"
	NoDateSentinel     = "sin_fecha"
)
