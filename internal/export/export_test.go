package export

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/scan-extractor/constants"
)

func TestFormatEntry(t *testing.T) {
	got := FormatEntry(Entry{Filename: "a.pdf", Result: "ok"})
	want := "Documento: a.pdf\nResultado: ok\n" + strings.Repeat("-", 40)
	if got != want {
		t.Fatalf("FormatEntry = %q, want %q", got, want)
	}
}

func TestWriteText_OverwritesAndJoins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resultado_ollama.txt")
	if err := os.WriteFile(path, []byte("old content that must disappear"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries := []Entry{
		{Filename: "a.pdf", Result: "uno"},
		{Filename: "b.pdf", Result: "dos"},
	}
	if err := WriteText(path, entries); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := FormatEntry(entries[0]) + "\n" + FormatEntry(entries[1])
	if string(b) != want {
		t.Fatalf("report = %q, want %q", b, want)
	}
}

func TestWriteText_EmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.txt")
	if err := WriteText(path, nil); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	b, _ := os.ReadFile(path)
	if len(b) != 0 {
		t.Fatalf("expected empty report, got %q", b)
	}
}

func TestBuildXLSX(t *testing.T) {
	s := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	b, err := s.BuildXLSX([]Entry{
		{Filename: "emo_12345678_01-02-2024.pdf", OriginalName: "scan1.pdf", Status: constants.EntryStatusOK, Renamed: true, Pages: 2, SHA256: "abc", Result: "DNI PACIENTE: 12345678, Fecha Examen: 01/02/2024"},
		{Filename: "broken.pdf", OriginalName: "broken.pdf", Status: constants.EntryStatusFailed, Result: "Error al extraer texto: boom"},
	})
	if err != nil {
		t.Fatalf("BuildXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "Documento" || rows[1][0] != "emo_12345678_01-02-2024.pdf" {
		t.Fatalf("unexpected first column: %v / %v", rows[0], rows[1])
	}
	if rows[1][3] != "sí" || rows[2][2] != "FAILED" {
		t.Fatalf("unexpected row values: %v / %v", rows[1], rows[2])
	}
}
