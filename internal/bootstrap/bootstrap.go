// Package bootstrap turns a loaded common.Config into the components the
// commands share.
package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/scan-extractor/internal/common"
	"github.com/joseph-ayodele/scan-extractor/internal/llm/ollama"
	"github.com/joseph-ayodele/scan-extractor/internal/ocr"
	repo "github.com/joseph-ayodele/scan-extractor/internal/repository"
)

// NewLogger builds the JSON logger used by every command. Logs go to stderr;
// stdout carries the user-facing progress lines.
func NewLogger(cfg common.LogConfig) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	return logger
}

func NewExtractor(cfg *common.Config, logger *slog.Logger) *ocr.Extractor {
	return ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Lang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.Batch.MaxPages,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
}

func NewOllamaClient(cfg *common.Config, logger *slog.Logger) *ollama.Client {
	return ollama.NewClient(ollama.Config{
		Endpoint: cfg.LLM.Endpoint,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout,
	}, logger)
}

// History is an open, migrated history store.
type History struct {
	DB   *repo.DB
	Runs repo.RunRepository
}

// Cleanup closes the underlying database.
func (h *History) Cleanup(logger *slog.Logger) {
	if h == nil || h.DB == nil {
		return
	}
	h.DB.Close(logger)
}

// OpenHistory opens and migrates the history store, or returns nil when no
// DSN is configured.
func OpenHistory(ctx context.Context, cfg common.HistoryConfig, logger *slog.Logger) (*History, error) {
	if cfg.DSN == "" {
		return nil, nil
	}
	db, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.DSN,
		MaxConns:        cfg.MaxConns,
		MinConns:        cfg.MinConns,
		MaxConnLifetime: cfg.MaxConnLifetime,
		MaxConnIdleTime: cfg.MaxConnIdleTime,
		DialTimeout:     cfg.DialTimeout,
	}, logger)
	if err != nil {
		return nil, common.WrapError(err, "open history database")
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close(logger)
		return nil, common.WrapError(err, "migrate history database")
	}
	return &History{DB: db, Runs: repo.NewRunRepository(db.SQL, db.Dialect, logger)}, nil
}
