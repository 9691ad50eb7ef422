package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"

	"github.com/barakahq/supportbot/internal/dataset"
)

type Config struct {
	DBPath      string               `json:"db_path"`
	JWTSecret   string               `json:"jwt_secret"`
	Port        int                  `json:"port"`
	JWTTTLHours int                  `json:"jwt_ttl_hours"`
	CORSOrigins []string             `json:"cors_origins"`
	LogConfig   logger.LogConfig     `json:"log_config"`
	AI          AIConfig             `json:"ai"`
	Dataset     dataset.SourceConfig `json:"dataset"`
	Retrieval   RetrievalConfig      `json:"retrieval"`
	Session     SessionConfig        `json:"session"`
	Cleanup     CleanupConfig        `json:"cleanup"`
}

// AIConfig selects the generative provider. Model serves translation;
// FallbackModel serves the last retrieval tier and defaults to Model.
type AIConfig struct {
	Provider       string      `json:"provider"`
	Model          string      `json:"model"`
	FallbackModel  string      `json:"fallback_model"`
	TimeoutSeconds int         `json:"timeout_seconds"`
	Data           interface{} `json:"data"`
}

// RetrievalConfig holds the cascade thresholds. The defaults are the
// calibrated production values; change them only with an evaluation
// run in hand.
type RetrievalConfig struct {
	CustomThreshold  float64 `json:"custom_threshold"`
	BaseThreshold    float64 `json:"base_threshold"`
	RouteThreshold   float64 `json:"route_threshold"`
	TopK             int     `json:"top_k"`
	IndexCacheSize   int     `json:"index_cache_size"`
	IndexCacheTTLMin int     `json:"index_cache_ttl_minutes"`
}

type SessionConfig struct {
	Size       int `json:"size"`
	TTLMinutes int `json:"ttl_minutes"`
}

type CleanupConfig struct {
	Spec     string `json:"spec"`
	KeepDays int    `json:"keep_days"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db_path is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 72
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Dataset.Type == "" {
		return nil, fmt.Errorf("dataset.type is required")
	}
	if cfg.AI.TimeoutSeconds == 0 {
		cfg.AI.TimeoutSeconds = 30
	}
	if cfg.AI.FallbackModel == "" {
		cfg.AI.FallbackModel = cfg.AI.Model
	}
	if cfg.Retrieval.CustomThreshold == 0 {
		cfg.Retrieval.CustomThreshold = 0.40
	}
	if cfg.Retrieval.BaseThreshold == 0 {
		cfg.Retrieval.BaseThreshold = 0.35
	}
	if cfg.Retrieval.RouteThreshold == 0 {
		cfg.Retrieval.RouteThreshold = 0.25
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Retrieval.IndexCacheSize == 0 {
		cfg.Retrieval.IndexCacheSize = 128
	}
	if cfg.Retrieval.IndexCacheTTLMin == 0 {
		cfg.Retrieval.IndexCacheTTLMin = 60
	}
	if cfg.Session.Size == 0 {
		cfg.Session.Size = 4096
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = 120
	}
	if cfg.Cleanup.Spec == "" {
		cfg.Cleanup.Spec = "30 3 * * *"
	}
	if cfg.Cleanup.KeepDays == 0 {
		cfg.Cleanup.KeepDays = 90
	}
	return &cfg, nil
}
