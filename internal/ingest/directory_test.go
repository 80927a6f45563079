package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/scan-extractor/internal/common"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestListPDFs_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"c.pdf", "A.PDF", "b.Pdf", "notes.txt", "scan.pdf.bak", "pdf"} {
		touch(t, filepath.Join(dir, n))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub.pdf", "nested.pdf"))

	got, stats, err := ListPDFs(dir)
	if err != nil {
		t.Fatalf("ListPDFs: %v", err)
	}
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
		if c.Path != filepath.Join(dir, c.Name) {
			t.Errorf("path = %s", c.Path)
		}
	}
	want := []string{"A.PDF", "b.Pdf", "c.pdf"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
	if stats.Scanned != 7 || stats.Matched != 3 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestListPDFs_MissingFolder(t *testing.T) {
	_, _, err := ListPDFs(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, common.ErrFolderNotFound) {
		t.Fatalf("err = %v, want ErrFolderNotFound", err)
	}
}

func TestListPDFs_FileInsteadOfFolder(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.pdf")
	touch(t, p)
	if _, _, err := ListPDFs(p); !errors.Is(err, common.ErrFolderNotFound) {
		t.Fatalf("err = %v, want ErrFolderNotFound", err)
	}
}

func TestHashFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.pdf")
	if err := os.WriteFile(p, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := HashFile(p)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("hash = %s", got)
	}
}
