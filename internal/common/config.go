package common

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Batch   BatchConfig
	OCR     OCRConfig
	LLM     LLMConfig
	History HistoryConfig
	Log     LogConfig
}

// BatchConfig holds the folder/report settings of a batch run
type BatchConfig struct {
	Folder     string
	OutputFile string
	XLSXFile   string
	DocType    string
	MaxPages   int
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm    string
	Tesseract   string
	TessdataDir string
	Lang        string
	DPI         int
	PSM         int
	OEM         int
}

// LLMConfig holds configuration of the local Ollama endpoint
type LLMConfig struct {
	Endpoint string
	Model    string
	Timeout  time.Duration // 0 = no timeout
}

// HistoryConfig holds the optional run-history database
type HistoryConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

const (
	DefaultFolder     = `C:\escaneos`
	DefaultOutputFile = "resultado_ollama.txt"
	DefaultEndpoint   = "http://localhost:11434/api/chat"
	DefaultModel      = "gemma2:2b"
	DefaultMaxPages   = 3
)

// LoadDotEnv loads a .env file from the working directory when present.
func LoadDotEnv(logger *slog.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			Folder:     getEnv("SCAN_FOLDER", DefaultFolder),
			OutputFile: getEnv("REPORT_FILE", DefaultOutputFile),
			XLSXFile:   getEnv("REPORT_XLSX", ""),
			DocType:    getEnv("DOC_TYPE", ""),
			MaxPages:   getEnvAsInt("OCR_MAX_PAGES", DefaultMaxPages),
		},
		OCR: OCRConfig{
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			Lang:        getEnv("OCR_LANG", "eng+spa"),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			PSM:         getEnvAsInt("OCR_PSM", 6),
			OEM:         getEnvAsInt("OCR_OEM", 3),
		},
		LLM: LLMConfig{
			Endpoint: getEnv("OLLAMA_URL", DefaultEndpoint),
			Model:    getEnv("OLLAMA_MODEL", DefaultModel),
			Timeout:  getEnvAsDuration("OLLAMA_TIMEOUT", 0),
		},
		History: HistoryConfig{
			DSN:             getEnv("HISTORY_DSN", ""),
			MaxConns:        getEnvAsInt32("HISTORY_MAX_CONNS", 4),
			MinConns:        getEnvAsInt32("HISTORY_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("HISTORY_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("HISTORY_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("HISTORY_DIAL_TIMEOUT", 3*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// SlogLevel maps the configured level name to a slog.Level (info when unknown).
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Batch.Folder) == "" {
		return NewAppError("CONFIG_ERROR", "SCAN_FOLDER is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Batch.OutputFile) == "" {
		return NewAppError("CONFIG_ERROR", "REPORT_FILE is required", ErrInvalidInput)
	}
	if c.Batch.MaxPages <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_MAX_PAGES must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(c.LLM.Endpoint) == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_URL is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_MODEL is required", ErrInvalidInput)
	}
	return nil
}
