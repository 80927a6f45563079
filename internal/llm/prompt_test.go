package llm

import (
	"strings"
	"testing"
)

func TestBuildPrompt_UnknownTagsUseFallback(t *testing.T) {
	const text = "texto de prueba"
	fallback := BuildPrompt("Otro", text)

	for _, tag := range []string{"", "emo", "Emo", " EMO", "EMO ", "grut", "FACTURA", "otro"} {
		if got := BuildPrompt(tag, text); got != fallback {
			t.Errorf("BuildPrompt(%q) differs from fallback:\n%s", tag, got)
		}
	}
}

func TestBuildPrompt_KnownTemplates(t *testing.T) {
	const text = "NOMBRE: JUAN PEREZ\nDNI 12345678"

	emo := BuildPrompt("EMO", text)
	if !strings.Contains(emo, "'DNI PACIENTE: [DNI], Fecha Examen: [FECHA]'") {
		t.Errorf("EMO prompt lacks the mandatory reply format: %s", emo)
	}
	if !strings.Contains(emo, "8 dígitos") {
		t.Errorf("EMO prompt lacks the 8 digit constraint: %s", emo)
	}

	grut := BuildPrompt("GRUT", text)
	if !strings.Contains(grut, "'El documento no es una guia de remision'") {
		t.Errorf("GRUT prompt lacks the rejection sentence: %s", grut)
	}
	if !strings.Contains(grut, "placa") {
		t.Errorf("GRUT prompt lacks the plate instruction: %s", grut)
	}

	other := BuildPrompt("Otro", text)
	if !strings.Contains(other, "'No puedo analizar el texto'") {
		t.Errorf("Otro prompt lacks the refusal sentence: %s", other)
	}

	for tag, p := range map[string]string{"EMO": emo, "GRUT": grut, "Otro": other} {
		if !strings.HasSuffix(p, "\n"+text) {
			t.Errorf("%s prompt must end with the extracted text: %q", tag, p)
		}
	}
}

func TestBuildPrompt_IsPure(t *testing.T) {
	a := BuildPrompt("GRUT", "ABC-123")
	b := BuildPrompt("GRUT", "ABC-123")
	if a != b {
		t.Fatal("same input produced different prompts")
	}
}

func TestKnownDocTypes(t *testing.T) {
	got := strings.Join(KnownDocTypes(), ",")
	if got != "EMO,GRUT,Otro" {
		t.Fatalf("KnownDocTypes = %s", got)
	}
}
