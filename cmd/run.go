package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studybuddy/internal/cache"
	"github.com/abhisek/studybuddy/internal/config"
	"github.com/abhisek/studybuddy/internal/engine"
	"github.com/abhisek/studybuddy/internal/logger"
	"github.com/abhisek/studybuddy/internal/store"
	"github.com/abhisek/studybuddy/internal/textproc"
)

// deps is everything a command needs, built from flags and config.
type deps struct {
	cfg      config.Config
	log      *zap.Logger
	store    *store.Store
	engine   *engine.Engine
	recorder *recorder
	closers  []func() error
}

// Close releases resources in reverse order of acquisition.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	if d.log != nil {
		_ = d.log.Sync()
	}
	return errors.Join(errs...)
}

// loadConfig reads the config file and applies --db and --log on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Store.Path = p
	}
	if m, _ := cmd.Flags().GetString("log"); m != "" {
		cfg.Log.Mode = m
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens only the database. Commands that never dispatch use it.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	if err := store.EnsureDir(cfg.Store.Path); err != nil {
		return nil, cfg, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, cfg, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}

// setup builds the logger, store, index cache and engine.
func setup(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, cfg, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg, store: st, closers: []func() error{st.Close}}

	d.log, err = logger.New(cfg.Log.Mode)
	if err != nil {
		_ = d.Close()
		return nil, err
	}

	ixCache, err := newIndexCache(ctx, cfg.Cache, d)
	if err != nil {
		_ = d.Close()
		return nil, err
	}

	d.engine = engine.New(st.Documents(),
		engine.WithLogger(d.log),
		engine.WithCache(ixCache),
		engine.WithConcurrency(cfg.Engine.Concurrency),
		engine.WithConfidence(cfg.Engine.DefaultConfidence),
	)
	d.recorder = newRecorder(d.engine, st.Events(), d.log)
	d.log.Debug("studybuddy ready",
		zap.String("db", cfg.Store.Path),
		zap.String("cache", cfg.Cache.Backend),
	)
	return d, nil
}

func newIndexCache(ctx context.Context, cfg config.CacheConfig, d *deps) (cache.Cache[*textproc.Index], error) {
	switch cfg.Backend {
	case config.CacheNone:
		return cache.Noop[*textproc.Index]{}, nil
	case config.CacheRedis:
		rdb, err := cache.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect index cache: %w", err)
		}
		d.closers = append(d.closers, rdb.Close)
		return cache.NewRedis[*textproc.Index](rdb, cfg.Redis.Prefix, cfg.TTL.Duration), nil
	default:
		return cache.NewMemory[*textproc.Index](cfg.Size, cfg.TTL.Duration), nil
	}
}
