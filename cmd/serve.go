package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cohort-intel/internal/analyze"
	"github.com/sells-group/cohort-intel/internal/enrich"
	"github.com/sells-group/cohort-intel/internal/model"
	"github.com/sells-group/cohort-intel/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the enrichment and analytics HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		orch, err := newOrchestrator()
		if err != nil {
			return err
		}
		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}
		batches := store.NewMemoryStore(cfg.Store.Capacity)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/enrich", handleEnrich(orch))
		r.Post("/analyze", handleAnalyze(analyzer, batches))
		r.Get("/batches/latest", handleLatest(batches))
		r.Get("/batches/{name}", handleGetBatch(batches))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func handleEnrich(orch *enrich.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var company model.CompanyRecord
		if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		enriched, err := orch.Enrich(r.Context(), company)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, enriched)
	}
}

func handleAnalyze(analyzer *analyze.Analyzer, batches store.BatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			BatchName string                `json:"batch_name"`
			Companies []model.CompanyRecord `json:"companies"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if req.BatchName == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "batch_name is required"})
			return
		}

		analysis := analyzer.Analyze(req.Companies, req.BatchName)
		batches.Put(req.BatchName, req.Companies, analysis)

		writeJSON(w, http.StatusOK, analysis)
	}
}

func handleLatest(batches store.BatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, companies, analysis, ok := batches.Latest()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no batches analyzed yet"})
			return
		}
		writeJSON(w, http.StatusOK, batchResponse(name, companies, analysis))
	}
}

func handleGetBatch(batches store.BatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		companies, analysis, ok := batches.Get(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "batch not found"})
			return
		}
		writeJSON(w, http.StatusOK, batchResponse(name, companies, analysis))
	}
}

func batchResponse(name string, companies []model.CompanyRecord, analysis *model.BatchAnalysis) map[string]any {
	return map[string]any{
		"batch_name": name,
		"companies":  companies,
		"analysis":   analysis,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
