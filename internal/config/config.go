// Package config loads studybuddy settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/studybuddy/internal/store"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Environment overrides, applied after the file.
const (
	EnvDB          = "STUDYBUDDY_DB"
	EnvCache       = "STUDYBUDDY_CACHE"
	EnvRedisAddr   = "STUDYBUDDY_REDIS_ADDR"
	EnvLog         = "STUDYBUDDY_LOG"
	EnvConcurrency = "STUDYBUDDY_CONCURRENCY"
)

type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
	Engine EngineConfig `yaml:"engine"`
	Plan   PlanConfig   `yaml:"plan"`
	Quiz   QuizConfig   `yaml:"quiz"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type CacheConfig struct {
	Backend string   `yaml:"backend"`
	Size    int      `yaml:"size"`
	TTL     Duration `yaml:"ttl"`
	Redis   struct {
		Addr   string `yaml:"addr"`
		DB     int    `yaml:"db"`
		Prefix string `yaml:"prefix"`
	} `yaml:"redis"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
}

type EngineConfig struct {
	Concurrency       int     `yaml:"concurrency"`
	DefaultConfidence float64 `yaml:"default_confidence"`
}

type PlanConfig struct {
	Days  int `yaml:"days"`
	Hours int `yaml:"hours"`
}

type QuizConfig struct {
	DefaultCount int `yaml:"default_count"`
	Max          int `yaml:"max"`
}

// Duration is a time.Duration that reads from strings such as "10m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func DefaultConfig() Config {
	var c Config
	c.Store.Path = store.DefaultDBPath()
	c.Cache.Backend = CacheMemory
	c.Cache.Size = 128
	c.Cache.TTL = Duration{10 * time.Minute}
	c.Cache.Redis.Prefix = "studybuddy:index:"
	c.Log.Mode = "nop"
	c.Engine.Concurrency = 4
	c.Engine.DefaultConfidence = 0.5
	c.Plan.Days = 7
	c.Plan.Hours = 2
	c.Quiz.DefaultCount = 5
	c.Quiz.Max = 20
	return c
}

// DefaultPath is $XDG_CONFIG_HOME/studybuddy/config.yaml, falling back to
// ~/.config.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "studybuddy", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "studybuddy.yaml")
	}
	return filepath.Join(home, ".config", "studybuddy", "config.yaml")
}

// Load reads path over the defaults and then applies environment
// overrides. An empty path means DefaultPath, which may be absent.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	optional := path == ""
	if optional {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && optional:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDB); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv(EnvCache); v != "" {
		c.Cache.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		c.Log.Mode = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConcurrency, err)
		}
		c.Engine.Concurrency = n
	}
	return nil
}

// ValidationError reports one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// Validate returns every problem found, joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch c.Cache.Backend {
	case CacheMemory:
		if c.Cache.Size < 1 {
			bad("cache.size", "must be at least 1, got %d", c.Cache.Size)
		}
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			bad("cache.redis.addr", "required for the redis backend")
		}
	case CacheNone:
	default:
		bad("cache.backend", "unknown backend %q", c.Cache.Backend)
	}
	if c.Engine.DefaultConfidence < 0 || c.Engine.DefaultConfidence > 1 {
		bad("engine.default_confidence", "must be within [0,1], got %v", c.Engine.DefaultConfidence)
	}
	if c.Engine.Concurrency < 1 {
		bad("engine.concurrency", "must be at least 1, got %d", c.Engine.Concurrency)
	}
	if c.Plan.Days < 1 {
		bad("plan.days", "must be at least 1, got %d", c.Plan.Days)
	}
	if c.Quiz.Max < 1 {
		bad("quiz.max", "must be at least 1, got %d", c.Quiz.Max)
	}
	return errors.Join(errs...)
}
