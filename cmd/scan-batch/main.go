package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joseph-ayodele/scan-extractor/internal/bootstrap"
	"github.com/joseph-ayodele/scan-extractor/internal/common"
	"github.com/joseph-ayodele/scan-extractor/internal/export"
	"github.com/joseph-ayodele/scan-extractor/internal/llm"
	"github.com/joseph-ayodele/scan-extractor/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// readDocType asks for the document type on the console and returns the trimmed answer.
func readDocType(in io.Reader, out io.Writer) string {
	_, _ = fmt.Fprint(out, "Introduce el tipo de documento: ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}

func main() {
	cfg := common.LoadConfig()

	// Parse CLI flags; they override the environment
	var (
		dir      = flag.String("dir", "", "folder with the scanned PDFs (default $SCAN_FOLDER or "+common.DefaultFolder+")")
		docType  = flag.String("type", "", "document type: "+strings.Join(llm.KnownDocTypes(), ", ")+" (asked on the console when empty)")
		out      = flag.String("out", "", "text report path (default $REPORT_FILE or "+common.DefaultOutputFile+")")
		xlsx     = flag.String("xlsx", "", "optional XLSX report path")
		maxPages = flag.Int("max-pages", 0, "pages OCR'd per document (default $OCR_MAX_PAGES or 3)")
		history  = flag.String("history", "", "run history DSN: postgres:// URL or SQLite path")
	)
	flag.Parse()

	logger := bootstrap.NewLogger(cfg.Log)
	common.LoadDotEnv(logger)
	// .env may have filled variables the first load did not see
	cfg = common.LoadConfig()

	if *dir != "" {
		cfg.Batch.Folder = *dir
	}
	if *out != "" {
		cfg.Batch.OutputFile = *out
	}
	if *xlsx != "" {
		cfg.Batch.XLSXFile = *xlsx
	}
	if *maxPages > 0 {
		cfg.Batch.MaxPages = *maxPages
	}
	if *history != "" {
		cfg.History.DSN = *history
	}
	if *docType != "" {
		cfg.Batch.DocType = *docType
	}
	if cfg.Batch.DocType == "" {
		cfg.Batch.DocType = readDocType(os.Stdin, os.Stdout)
	}

	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	hist, err := bootstrap.OpenHistory(ctx, cfg.History, logger)
	if err != nil {
		logger.Error("history disabled", "error", err)
	}
	defer hist.Cleanup(logger)

	opts := []pipeline.Option{}
	if hist != nil {
		opts = append(opts, pipeline.WithHistory(hist.Runs))
	}

	p := pipeline.NewProcessor(pipeline.Config{
		Folder:     cfg.Batch.Folder,
		OutputFile: cfg.Batch.OutputFile,
		XLSXFile:   cfg.Batch.XLSXFile,
		DocType:    cfg.Batch.DocType,
		MaxPages:   cfg.Batch.MaxPages,
	}, logger,
		bootstrap.NewExtractor(cfg, logger),
		bootstrap.NewOllamaClient(cfg, logger),
		export.NewService(logger),
		opts...,
	)

	if _, err := p.Run(ctx); err != nil {
		if errors.Is(err, common.ErrFolderNotFound) {
			fmt.Println("La carpeta no existe.")
			return
		}
		logger.Error("batch failed", "error", err)
		printError("Error: %v\n", err)
		hist.Cleanup(logger)
		os.Exit(1)
	}
}
