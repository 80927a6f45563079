package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/joseph-ayodele/scan-extractor/constants"
)

// AllowedExt checks if a file extension names a PDF.
func AllowedExt(ext string) bool {
	return constants.IsPDFExt(ext)
}

// HashFile returns the hex-encoded SHA-256 of the file contents.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
