package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/scan-extractor/constants"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng+spa"
	TessdataDir   string
	DPI           int // rasterization DPI, default 300
	MaxPages      int // pages rendered from the start of the document, default 3

	PSM int // 6 = assume a single uniform block of text
	OEM int // 3 = default engine selection (best available)
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string
	Method     string
	Language   string
	Duration   time.Duration
}

// PageCounter reports the number of pages of a PDF on disk.
type PageCounter func(path string) (int, error)

type Extractor struct {
	cfg       Config
	runner    Runner
	pageCount PageCounter
	logger    *slog.Logger
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithRunner swaps the command runner (tests use a fake).
func WithRunner(r Runner) Option {
	return func(e *Extractor) {
		if r != nil {
			e.runner = r
		}
	}
}

// WithPageCounter swaps the page-count probe. A nil counter disables probing.
func WithPageCounter(pc PageCounter) Option {
	return func(e *Extractor) { e.pageCount = pc }
}

func NewExtractor(cfg Config, logger *slog.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng+spa"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 3
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.OEM <= 0 {
		cfg.OEM = 3
	}
	e := &Extractor{
		cfg:       cfg,
		runner:    execRunner{logger: logger},
		pageCount: pdfPageCount,
		logger:    logger,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extract runs OCR over the first cfg.MaxPages pages of a PDF.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	return e.ExtractPDF(ctx, path, e.cfg.MaxPages)
}

// ExtractPDF rasterizes pages 1..maxPages of path and returns their OCR text
// in page order, each page followed by a newline.
func (e *Extractor) ExtractPDF(ctx context.Context, path string, maxPages int) (ExtractionResult, error) {
	start := time.Now()
	if !constants.IsPDFExt(filepath.Ext(path)) {
		e.logger.Error("unsupported ocr extension", "path", path)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", filepath.Ext(path))
	}
	if maxPages <= 0 {
		maxPages = e.cfg.MaxPages
	}
	e.logger.Debug("starting ocr extraction", "path", path, "max_pages", maxPages)

	txt, pages, err := e.pdfToOCR(ctx, path, maxPages)
	res := ExtractionResult{
		Text:       txt,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Duration:   time.Since(start),
	}
	if err != nil {
		return res, err
	}
	e.logger.Debug("ocr extraction ok",
		"path", path,
		"pages", pages,
		"bytes", len(txt),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
