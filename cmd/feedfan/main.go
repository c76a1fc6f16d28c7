package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/feedfan/feedfan/pkg/config"
	"github.com/feedfan/feedfan/pkg/content"
	"github.com/feedfan/feedfan/pkg/feed"
	"github.com/feedfan/feedfan/pkg/icon"
	"github.com/feedfan/feedfan/pkg/media"
	"github.com/feedfan/feedfan/pkg/render"
	"github.com/feedfan/feedfan/pkg/repository"
	"github.com/feedfan/feedfan/pkg/scheduler"
	"github.com/feedfan/feedfan/pkg/transport"
	"github.com/feedfan/feedfan/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Transport.Token)

	log.Printf("[INFO] starting feedfan version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] feedfan failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the context is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repos.Close()

	trCfg := cfg.GetTransportConfig()
	client := transport.NewClient(trCfg.APIBase, trCfg.Token, trCfg.UserAgent, trCfg.Timeout)
	handles := transport.NewHandleCache(client, trCfg.SenderName)

	iconCfg := cfg.GetIconConfig()
	icons := icon.NewResolver(icon.Opts{
		Strategy:        iconCfg.Strategy,
		LogoService:     iconCfg.LogoService,
		FallbackService: iconCfg.FallbackService,
		Timeout:         iconCfg.Timeout,
		UserAgent:       trCfg.UserAgent,
	})

	var extractor scheduler.Extractor
	if extCfg := cfg.GetExtractionConfig(); extCfg.Enabled {
		extractor = content.NewHTTPExtractor(extCfg.Timeout, extCfg.UserAgent, extCfg.MinTextLength)
	}

	pipeline := scheduler.NewPipeline(scheduler.PipelineConfig{
		Feeds:         cfg.GetFeeds(),
		Fetcher:       feed.NewHTTPFetcher(trCfg.Timeout, trCfg.UserAgent),
		Watermarks:    repos.Watermark,
		Seen:          repos.Seen,
		Handles:       handles,
		Sender:        client,
		Icons:         icons,
		Images:        media.NewResolver(iconCfg.Timeout, trCfg.UserAgent),
		Renderer:      render.NewRenderer(),
		Extractor:     extractor,
		DedupStrategy: cfg.Dedup.Strategy,
		SeenSize:      cfg.Dedup.SeenSize,
		Concurrency:   cfg.Schedule.Concurrency,
	})

	sched := scheduler.NewScheduler(pipeline, cfg.Schedule.Interval)
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, pipeline, sched, revision, debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	return g.Wait()
}

func setupLog(dbg, noColor bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	secs := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			secs = append(secs, s)
		}
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
