package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/lecture-flow/internal/aggregator"
	"github.com/nguyentantai21042004/lecture-flow/internal/analyzer"
	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/document"
	"github.com/nguyentantai21042004/lecture-flow/internal/docx"
	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
	"github.com/nguyentantai21042004/lecture-flow/internal/llm"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/pipeline"
	"github.com/nguyentantai21042004/lecture-flow/internal/processor"
	"github.com/nguyentantai21042004/lecture-flow/internal/transcriber"
	"github.com/nguyentantai21042004/lecture-flow/internal/watcher"
	"github.com/nguyentantai21042004/lecture-flow/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	modeFlag := flag.String("mode", string(pipeline.ModeAll), "audio, documents, all, watch or consolidate")
	flag.Parse()

	mode, err := pipeline.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Flow (mode: %s)", mode)
	log.Info(ctx, "Input: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	pipe, err := build(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialise pipeline: %v", err)
		os.Exit(1)
	}

	if _, err := pipe.Run(ctx, mode); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Run failed: %v", err)
		os.Exit(1)
	}

	if mode != pipeline.ModeWatch {
		return
	}

	handler := func(ctx context.Context, path string) error {
		_, err := pipe.HandleFile(ctx, path)
		return err
	}
	supported := func(path string) bool {
		_, err := processor.Classify(path)
		return err == nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, supported, 0, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s. Press Ctrl+C to stop", cfg.Paths.Input)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
	}
	log.Info(ctx, "Lecture Flow stopped")
}

// build wires one LLM client into every component that needs it.
func build(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	exec := executor.New()
	out := layout.New(cfg.Paths.Output)
	client := llm.NewGemini(cfg.Gemini, log)

	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}

	var exporter docx.Exporter
	if cfg.Output.Docx {
		exporter = docx.New()
	}

	proc := processor.New(processor.Deps{
		Layout:      out,
		Transcriber: tr,
		Text:        analyzer.NewText(client, cfg.Analysis.MaxInputChars, log),
		Pages:       analyzer.NewPage(client, log),
		Document:    document.New(cfg, exec, log),
		Exporter:    exporter,
	}, log)
	agg := aggregator.New(out, client, cfg.Analysis.MaxInputChars, log)

	return pipeline.New(cfg.Paths.Input, out, proc, agg, exporter, log), nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
