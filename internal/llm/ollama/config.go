package ollama

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the Ollama chat client.
type Config struct {
	Endpoint string        // default http://localhost:11434/api/chat
	Model    string        // default gemma2:2b
	Timeout  time.Duration // 0 = wait as long as the model needs
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:11434/api/chat"
	}
	if cfg.Model == "" {
		cfg.Model = "gemma2:2b"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.cfg.Model }
