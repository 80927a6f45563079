package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/scan-extractor/constants"
	"github.com/joseph-ayodele/scan-extractor/internal/common"
	"github.com/joseph-ayodele/scan-extractor/internal/export"
	"github.com/joseph-ayodele/scan-extractor/internal/ingest"
	"github.com/joseph-ayodele/scan-extractor/internal/llm"
	"github.com/joseph-ayodele/scan-extractor/internal/ocr"
	"github.com/joseph-ayodele/scan-extractor/internal/repository"
)

// TextExtractor is Stage 1: PDF -> OCR text.
type TextExtractor interface {
	ExtractPDF(ctx context.Context, path string, maxPages int) (ocr.ExtractionResult, error)
}

// Job is one discovered document and the type the user declared for the batch.
type Job struct {
	Name         string
	Path         string
	DeclaredType string
}

// Summary is the outcome of a batch run.
type Summary struct {
	RunID    string
	Entries  []export.Entry
	Files    int
	Failures int
	Renamed  int
}

// Processor coordinates OCR, prompt, model call and rename for every PDF of a folder.
type Processor struct {
	cfg       Config
	logger    *slog.Logger
	extractor TextExtractor
	analyzer  llm.Analyzer
	exporter  *export.Service
	history   repository.RunRepository
	console   io.Writer
	rename    func(oldpath, newpath string) error
}

type Option func(*Processor)

// WithHistory records every run and entry in repo.
func WithHistory(repo repository.RunRepository) Option {
	return func(p *Processor) { p.history = repo }
}

// WithConsole redirects the progress output (stdout by default).
func WithConsole(w io.Writer) Option {
	return func(p *Processor) {
		if w != nil {
			p.console = w
		}
	}
}

// WithRenameFunc replaces os.Rename.
func WithRenameFunc(fn func(oldpath, newpath string) error) Option {
	return func(p *Processor) {
		if fn != nil {
			p.rename = fn
		}
	}
}

func NewProcessor(cfg Config, logger *slog.Logger, extractor TextExtractor, analyzer llm.Analyzer, exporter *export.Service, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = common.DefaultMaxPages
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = common.DefaultOutputFile
	}
	if exporter == nil {
		exporter = export.NewService(logger)
	}
	p := &Processor{
		cfg:       cfg,
		logger:    logger,
		extractor: extractor,
		analyzer:  analyzer,
		exporter:  exporter,
		console:   os.Stdout,
		rename:    os.Rename,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run processes every PDF in the folder in name order, then writes the reports once.
// A missing folder returns common.ErrFolderNotFound before anything is written.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	candidates, stats, err := ingest.ListPDFs(p.cfg.Folder)
	if err != nil {
		p.logger.Error("pipeline.discover.failed", "folder", p.cfg.Folder, "error", err)
		return Summary{}, err
	}
	p.logger.Info("pipeline.discover.ok",
		"folder", p.cfg.Folder,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"doc_type", p.cfg.DocType,
	)

	var sum Summary
	run := p.startRun(ctx, start)
	if run != nil {
		sum.RunID = run.ID.String()
		ctx = common.WithRunID(ctx, sum.RunID)
	}

	for i, c := range candidates {
		entry := p.ProcessFile(ctx, Job{Name: c.Name, Path: c.Path, DeclaredType: p.cfg.DocType})
		sum.Entries = append(sum.Entries, entry)
		sum.Files++
		if entry.Status == constants.EntryStatusFailed {
			sum.Failures++
		}
		if entry.Renamed {
			sum.Renamed++
		}
		p.printf("%s\n", export.FormatEntry(entry))
		p.recordEntry(ctx, run, i+1, entry)
	}

	if err := p.exporter.WriteText(p.cfg.OutputFile, sum.Entries); err != nil {
		return sum, err
	}
	if p.cfg.XLSXFile != "" {
		if err := p.exporter.WriteXLSX(p.cfg.XLSXFile, sum.Entries); err != nil {
			return sum, err
		}
	}
	p.finishRun(ctx, run, sum)

	p.logger.Info("pipeline.run.ok",
		"run_id", sum.RunID,
		"files", sum.Files,
		"failures", sum.Failures,
		"renamed", sum.Renamed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	p.printf("Resultados guardados en %s\n", p.cfg.OutputFile)
	return sum, nil
}

// ProcessFile drives one document through extract -> analyze -> (rename) and
// returns its report entry. It never fails: extraction errors become a FAILED entry.
func (p *Processor) ProcessFile(ctx context.Context, job Job) export.Entry {
	start := time.Now()
	p.printf("Procesando: %s\n", job.Name)

	entry := export.Entry{
		Filename:     job.Name,
		OriginalName: job.Name,
		SourcePath:   job.Path,
		Status:       constants.EntryStatusOK,
	}
	if sum, err := ingest.HashFile(job.Path); err == nil {
		entry.SHA256 = sum
	} else {
		p.logger.Warn("pipeline.hash.failed", "path", job.Path, "error", err)
	}

	res, err := p.extractor.ExtractPDF(ctx, job.Path, p.cfg.MaxPages)
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "path", job.Path, "error", err)
		entry.Status = constants.EntryStatusFailed
		entry.Result = "Error al extraer texto: " + err.Error()
		return entry
	}
	entry.Pages = res.Pages

	prompt := llm.BuildPrompt(job.DeclaredType, res.Text)
	entry.Result = p.analyzer.Analyze(ctx, prompt)

	if IsMedicalRecord(job.DeclaredType) {
		name, renamed := p.renameMedicalRecord(job, entry.Result)
		entry.Filename = name
		entry.SourcePath = pathInFolder(job.Path, name)
		entry.Renamed = renamed
	}

	p.logger.Info("pipeline.file.ok",
		"run_id", common.RunIDFromContext(ctx),
		"file", job.Name,
		"report_name", entry.Filename,
		"pages", entry.Pages,
		"renamed", entry.Renamed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return entry
}

func (p *Processor) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.console, format, args...); err != nil {
		p.logger.Warn("pipeline.console.write_failed", "error", err)
	}
}
