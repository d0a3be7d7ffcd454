package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/festroi/festroi/internal/ingest"
	"github.com/festroi/festroi/internal/report"
	"github.com/festroi/festroi/internal/store"
	"github.com/festroi/festroi/internal/utils"
)

func NewRouter(log *slog.Logger, st *store.MemoryStore, svc *report.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Metrics)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/dataset", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		records, err := ingest.LoadRecords(r.Body)
		if err != nil {
			code := http.StatusBadRequest
			if !errors.Is(err, ingest.ErrNoValidRows) {
				log.Warn("dataset parse failed", slog.String("err", err.Error()))
			}
			http.Error(w, err.Error(), code)
			return
		}
		n := st.Replace(records)
		log.Info("dataset replaced", slog.Int("records", n))
		writeJSON(w, map[string]any{"records": n})
	})

	mux.Post("/dataset/sample", func(w http.ResponseWriter, r *http.Request) {
		n := st.Replace(ingest.SampleRecords())
		writeJSON(w, map[string]any{"records": n})
	})

	mux.Get("/report", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Build(r.URL.Query()))
	})

	mux.Get("/export", func(w http.ResponseWriter, r *http.Request) {
		rows := svc.Ranked(r.URL.Query())
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="festroi-export.csv"`)
		if err := report.WriteCSV(w, rows); err != nil {
			log.Error("export write failed", slog.String("err", err.Error()))
		}
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
