package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joseph-ayodele/scan-extractor/internal/bootstrap"
	"github.com/joseph-ayodele/scan-extractor/internal/common"
	"github.com/joseph-ayodele/scan-extractor/internal/llm"
	"github.com/joseph-ayodele/scan-extractor/internal/pipeline"
	"github.com/joseph-ayodele/scan-extractor/internal/pipeline/parsefields"
)

// llm OCRs one PDF once and asks the model about it [times] times, to eyeball
// how stable the replies are for a document type. Files are never renamed.
func main() {
	cfg := common.LoadConfig()
	logger := bootstrap.NewLogger(cfg.Log)
	common.LoadDotEnv(logger)
	cfg = common.LoadConfig()

	if len(os.Args) < 3 {
		logger.Error("usage: llm <file.pdf> <doc-type> [times]")
		os.Exit(2)
	}
	path, docType := os.Args[1], os.Args[2]
	times := 1
	if len(os.Args) >= 4 {
		if n, err := strconv.Atoi(os.Args[3]); err == nil && n > 0 {
			times = n
		}
	}

	ctx := context.Background()
	x := bootstrap.NewExtractor(cfg, logger)
	client := bootstrap.NewOllamaClient(cfg, logger)

	res, err := x.ExtractPDF(ctx, path, cfg.Batch.MaxPages)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}
	prompt := llm.BuildPrompt(docType, res.Text)

	base := filepath.Base(path)
	for i := 1; i <= times; i++ {
		start := time.Now()
		logger.Info("llm.run.start", "iter", i, "basename", base, "model", client.Model())

		reply := client.Analyze(ctx, prompt)

		attrs := []any{"iter", i, "duration_ms", time.Since(start).Milliseconds()}
		if pipeline.IsMedicalRecord(docType) {
			f := parsefields.ParseMedical(reply)
			attrs = append(attrs, "dni", f.DNI, "date", f.ExamDate, "would_rename_to", parsefields.MedicalFilename(f, filepath.Ext(base)))
		}
		logger.Info("llm.run.done", attrs...)
		fmt.Printf("[%d] %s\n", i, reply)
	}
}
