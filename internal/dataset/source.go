// Package dataset loads the shared base corpus of (question, answer,
// category, intent) rows. It is loaded once at process start and
// treated as immutable read-only reference data afterwards.
package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Source knows how to open the raw tabular export.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

type SourceConfig struct {
	Type string `json:"type"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type Factory func(cfg SourceConfig) (Source, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func Register(name string, factory Factory) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || factory == nil {
		return
	}
	registryMu.Lock()
	registry[key] = factory
	registryMu.Unlock()
}

func NewSource(cfg SourceConfig) (Source, error) {
	key := strings.ToLower(strings.TrimSpace(cfg.Type))
	if key == "" {
		return nil, fmt.Errorf("dataset.type is required")
	}
	registryMu.RLock()
	factory := registry[key]
	registryMu.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("unsupported dataset source type: %s", cfg.Type)
	}
	return factory(cfg)
}
