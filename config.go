package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogFile       string `yaml:"log"`
	LogLevel      string `yaml:"log_level"`
	DocRoot       string `yaml:"doc_root"`
	FileEnding    string `yaml:"file_ending"`
	MergeEventsMs int    `yaml:"write_debounce_ms"`
	BulkSize      int    `yaml:"bulk_size"`
	ServerAddr    string `yaml:"server_addr"`
	LockDir       string `yaml:"lock_dir"`
	Engine        struct {
		URL               string  `yaml:"url"`
		TimeoutMs         int     `yaml:"timeout_ms"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
	} `yaml:"engine"`
	Index struct {
		Name     string `yaml:"name"`
		Type     string `yaml:"type"`
		Mapping  string `yaml:"mapping"`
		Replicas *int   `yaml:"replicas"`
		Shards   *int   `yaml:"shards"`
	} `yaml:"index"`
}

func readConfig(cfgPath string) (*Config, error) {
	cfgFile, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}
	defer cfgFile.Close()

	cfg := &Config{}
	dec := yaml.NewDecoder(cfgFile)
	err = dec.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Engine.URL == "" {
		c.Engine.URL = "http://localhost:9200"
	}
	if c.Engine.TimeoutMs == 0 {
		c.Engine.TimeoutMs = 30000
	}
	if c.Index.Replicas == nil {
		c.Index.Replicas = intPtr(1)
	}
	if c.Index.Shards == nil {
		c.Index.Shards = intPtr(5)
	}
	if c.FileEnding == "" {
		c.FileEnding = ".srt.sjson"
	}
	if c.MergeEventsMs == 0 {
		c.MergeEventsMs = 500
	}
	if c.BulkSize == 0 {
		c.BulkSize = 500
	}
	if c.ServerAddr == "" {
		c.ServerAddr = "localhost:8080"
	}
	if c.LockDir == "" {
		c.LockDir = os.TempDir()
	}
}

func (c *Config) Validate() error {
	if c.Index.Name == "" {
		return errors.New("config index.name is required")
	}
	if c.Index.Type == "" {
		return errors.New("config index.type is required")
	}
	if *c.Index.Replicas < 0 {
		return errors.New("config index.replicas must not be negative")
	}
	if *c.Index.Shards < 1 {
		return errors.New("config index.shards must be positive")
	}
	if c.Engine.RequestsPerSecond < 0 {
		return errors.New("config engine.requests_per_second must not be negative")
	}
	if c.BulkSize < 1 {
		return errors.New("config bulk_size must be positive")
	}
	return nil
}

func (c *Config) EngineTimeout() time.Duration {
	return time.Duration(c.Engine.TimeoutMs) * time.Millisecond
}

func (c *Config) MergeEventsDelay() time.Duration {
	return time.Duration(c.MergeEventsMs) * time.Millisecond
}

func intPtr(v int) *int {
	return &v
}
