package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/festroi/festroi/internal/config"
	"github.com/festroi/festroi/internal/httpx"
	"github.com/festroi/festroi/internal/ingest"
	"github.com/festroi/festroi/internal/report"
	"github.com/festroi/festroi/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config load failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	st := store.NewMemoryStore()
	loadInitialDataset(logger, cfg, st)

	svc := report.NewService(st, report.Defaults{
		Top:       cfg.Report.Top,
		Bottom:    cfg.Report.Bottom,
		ROITarget: cfg.Report.ROITarget,
	})
	r := httpx.NewRouter(logger, st, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

// loadInitialDataset seeds the store from a configured file or URL, falling
// back to the bundled sample data.
func loadInitialDataset(logger *slog.Logger, cfg *config.Config, st *store.MemoryStore) {
	if cfg.Dataset.Path != "" {
		f, err := os.Open(cfg.Dataset.Path)
		if err == nil {
			defer f.Close()
			if records, err := ingest.LoadRecords(f); err == nil {
				logger.Info("dataset loaded", slog.String("path", cfg.Dataset.Path), slog.Int("records", st.Replace(records)))
				return
			}
		}
		logger.Warn("dataset file unusable, falling back to sample", slog.String("path", cfg.Dataset.Path))
	}
	if cfg.Dataset.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.HTTPTimeout)
		defer cancel()
		cl := ingest.NewHTTPClient(cfg.Server.HTTPTimeout)
		if records, err := ingest.FetchRecords(ctx, cl, cfg.Dataset.URL); err == nil {
			logger.Info("dataset fetched", slog.String("url", cfg.Dataset.URL), slog.Int("records", st.Replace(records)))
			return
		}
		logger.Warn("dataset fetch failed, falling back to sample", slog.String("url", cfg.Dataset.URL))
	}
	st.Replace(ingest.SampleRecords())
	logger.Info("sample dataset loaded", slog.Int("records", st.Len()))
}
