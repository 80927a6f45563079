package ocr

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// pdfPageCount reads the page tree with pdfcpu without rendering anything.
func pdfPageCount(path string) (int, error) {
	return api.PageCountFile(path)
}
