package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joseph-ayodele/scan-extractor/internal/bootstrap"
	"github.com/joseph-ayodele/scan-extractor/internal/common"
)

// runocr prints the OCR text of one PDF, exactly as the batch would send it to the model.
func main() {
	cfg := common.LoadConfig()
	logger := bootstrap.NewLogger(cfg.Log)
	common.LoadDotEnv(logger)
	cfg = common.LoadConfig()

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "runocr <file.pdf> [max-pages]")
		os.Exit(2)
	}
	path := os.Args[1]
	maxPages := cfg.Batch.MaxPages
	if len(os.Args) == 3 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n <= 0 {
			logger.Error("invalid max-pages", "arg", os.Args[2], "error", err)
			os.Exit(2)
		}
		maxPages = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	x := bootstrap.NewExtractor(cfg, logger)

	start := time.Now()
	res, err := x.ExtractPDF(ctx, path, maxPages)
	dur := time.Since(start)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("text extraction OK",
		"path", path,
		"pages", res.Pages,
		"method", res.Method,
		"chars", len(res.Text),
		"duration_ms", dur.Milliseconds(),
	)
	fmt.Print(res.Text)
}
