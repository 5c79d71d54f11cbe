// Package catalog retrieves the raw building catalog from a URL or a local file.
package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/infrastructure/config"
	"github.com/ersonp/planner-catalog/internal/infrastructure/parsers"
)

// ErrSourceNotFound is returned when a local catalog file does not exist.
var ErrSourceNotFound = errors.New("catalog source not found")

// gzipMagic prefixes every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// Loader implements ports.CatalogLoader.
type Loader struct {
	client    *http.Client
	userAgent string
	parser    parsers.Parser
	logger    *zap.Logger
}

// NewLoader creates a loader using the source settings.
func NewLoader(cfg config.SourceConfig, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		client:    &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
		userAgent: cfg.UserAgent,
		parser:    &parsers.JSONParser{},
		logger:    logger,
	}
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load fetches or reads source and decodes it into raw entities.
func (l *Loader) Load(ctx context.Context, source string) ([]entities.RawEntity, error) {
	var data []byte
	var err error

	if IsURL(source) {
		l.logger.Info("fetching catalog", zap.String("url", source))
		data, err = l.fetch(ctx, source)
	} else {
		l.logger.Info("reading catalog", zap.String("path", source))
		data, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}

	raws, err := l.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	l.logger.Info("catalog loaded", zap.Int("entities", len(raws)))
	return raws, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	// Setting Accept-Encoding disables net/http's transparent decompression,
	// so gzip bodies are detected below.
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching catalog: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return maybeGunzip(body)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return maybeGunzip(data)
}

// maybeGunzip decompresses data when it starts with the gzip magic bytes.
func maybeGunzip(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing catalog: %w", err)
	}
	return out, nil
}
