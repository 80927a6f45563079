package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

func (e *Extractor) pdfToOCR(ctx context.Context, path string, maxPages int) (text string, pages int, err error) {
	last := e.lastPage(path, maxPages)

	tmpDir, err := os.MkdirTemp("", "se-pp-*")
	if err != nil {
		return "", 0, err
	}
	defer func(path string) {
		if err := os.RemoveAll(path); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", path, "error", err)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f 1 -l <last> -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-f", "1", "-l", strconv.Itoa(last),
		"-r", strconv.Itoa(e.cfg.DPI),
		"-png", path, prefix)
	if err != nil {
		return "", 0, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	// collect generated pngs (page-1.png, page-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("pdftoppm produced no images for %s", filepath.Base(path))
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			return "", 0, err
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return b.String(), len(matches), nil
}

// lastPage clamps maxPages to the document extent when the page count is known.
func (e *Extractor) lastPage(path string, maxPages int) int {
	if e.pageCount == nil {
		return maxPages
	}
	n, err := e.pageCount(path)
	if err != nil {
		e.logger.Warn("pdf page count failed; rendering requested range", "path", path, "error", err)
		return maxPages
	}
	if n > 0 && n < maxPages {
		return n
	}
	return maxPages
}

func (e *Extractor) tesseractOCR(ctx context.Context, img string) (string, error) {
	// tesseract <img> stdout --oem 3 --psm 6 -l eng+spa
	args := []string{img, "stdout",
		"--oem", strconv.Itoa(e.cfg.OEM),
		"--psm", strconv.Itoa(e.cfg.PSM),
		"-l", e.cfg.TesseractLang,
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(string(errb)))
	}
	return string(out), nil
}
