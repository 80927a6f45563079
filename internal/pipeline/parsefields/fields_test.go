package parsefields

import "testing"

func TestParseMedical(t *testing.T) {
	cases := []struct {
		name     string
		reply    string
		wantDNI  string
		wantDate string
	}{
		{"exact format", "DNI PACIENTE: 12345678, Fecha Examen: 01/02/2024", "12345678", "01/02/2024"},
		{"surrounding chatter", "Claro.\nDNI PACIENTE:87654321, Fecha Examen: 2024-03-15\nSaludos", "87654321", "2024-03-15"},
		{"missing both", "No encontré los datos solicitados.", "sin_dni", "sin_fecha"},
		{"dni too short", "DNI PACIENTE: 1234567, Fecha Examen: 01/02/2024", "sin_dni", "01/02/2024"},
		{"first match wins", "DNI PACIENTE: 11111111 DNI PACIENTE: 22222222, Fecha Examen: 01-01-2020 Fecha Examen: 02-02-2021", "11111111", "01-01-2020"},
		{"lowercase labels", "dni paciente: 12345678, fecha examen: 01/02/2024", "sin_dni", "sin_fecha"},
		{"date not validated", "DNI PACIENTE: 12345678, Fecha Examen: 99/99/9999", "12345678", "99/99/9999"},
		{"backslash stops the date token", `DNI PACIENTE: 12345678, Fecha Examen: 01\02\2024`, "12345678", "01"},
		{"model error sentinel", "Error en la respuesta de OLLAMA", "sin_dni", "sin_fecha"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMedical(tc.reply)
			if got.DNI != tc.wantDNI || got.ExamDate != tc.wantDate {
				t.Fatalf("ParseMedical(%q) = %+v, want dni=%s date=%s", tc.reply, got, tc.wantDNI, tc.wantDate)
			}
		})
	}
}

func TestSanitizeDate(t *testing.T) {
	cases := map[string]string{
		"01/02/2024": "01-02-2024",
		`01\02\2024`: "01-02-2024",
		"2024-02-01": "2024-02-01",
		"sin_fecha":  "sin_fecha",
		`01/02\2024`: "01-02-2024",
	}
	for in, want := range cases {
		if got := SanitizeDate(in); got != want {
			t.Errorf("SanitizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMedicalFilename(t *testing.T) {
	f := MedicalFields{DNI: "12345678", ExamDate: "01/02/2024"}
	if got := MedicalFilename(f, ".pdf"); got != "emo_12345678_01-02-2024.pdf" {
		t.Fatalf("MedicalFilename = %q", got)
	}
	if got := MedicalFilename(ParseMedical(""), ".PDF"); got != "emo_sin_dni_sin_fecha.PDF" {
		t.Fatalf("MedicalFilename(sentinels) = %q", got)
	}
}
