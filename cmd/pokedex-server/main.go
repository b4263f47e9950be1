// Command pokedex-server acquires the first generation of creatures from
// PokeAPI and serves the filtered collection as JSON.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Sternrassler/pokedex-client/internal/config"
	"github.com/Sternrassler/pokedex-client/pkg/client"
	"github.com/Sternrassler/pokedex-client/pkg/fetch"
	"github.com/Sternrassler/pokedex-client/pkg/logging"
	"github.com/Sternrassler/pokedex-client/pkg/pokeapi"
	"github.com/Sternrassler/pokedex-client/pkg/pokedex"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(logging.DefaultConfig())
		fallback := logging.NewLogger("pokedex-server")
		fallback.Fatal().Err(err).Msg("Configuration error")
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.Pretty,
		Output: os.Stderr,
	})
	logger := logging.NewLogger("pokedex-server")

	apiClient, err := client.New(client.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   time.Duration(cfg.RequestTimeoutS) * time.Second,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create API client")
	}

	fetcher := fetch.New(pokeapi.NewService(apiClient), fetch.Config{
		Total:      cfg.Total,
		BatchSize:  cfg.BatchSize,
		ChunkDelay: time.Duration(cfg.ChunkDelayMS) * time.Millisecond,
		OnProgress: func(completed, total int) {
			logger.Info().Int("completed", completed).Int("total", total).Msg("Acquisition progress")
		},
	})

	store := pokedex.NewStore()
	mux := http.NewServeMux()

	records, attempted, err := fetcher.FetchAll(context.Background())
	if err != nil {
		// Catastrophic tier: no partial collection, static error state.
		logger.Error().Err(err).Msg("Acquisition failed, serving error state")
		mux.HandleFunc("/", errorStateHandler)
	} else {
		logger.Info().
			Int("acquired", len(records)).
			Int("attempted", attempted).
			Msg("Collection ready")
		store.SetRecords(records)

		mux.HandleFunc("/api/pokedex", listHandler(store))
		mux.HandleFunc("/api/pokedex/", detailHandler(store))
		mux.HandleFunc("/api/types", typesHandler(store))
	}

	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info().Str("addr", cfg.Addr).Msg("Starting pokedex server")
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// errorStateHandler is the static terminal error surface. Recovery requires
// restarting the process.
func errorStateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"error": "acquisition failed, no data available",
	})
}

// listHandler serves the filtered grid: GET /api/pokedex?q=pika&type=electric
func listHandler(store *pokedex.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		tag := r.URL.Query().Get("type")
		if tag == "" {
			tag = pokedex.TagAll
		}

		writeJSON(w, http.StatusOK, store.ApplyFilter(query, tag))
	}
}

// detailHandler serves one record: GET /api/pokedex/25
func detailHandler(store *pokedex.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/pokedex/")
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid identifier"})
			return
		}

		record, ok := store.Select(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

// typesHandler serves the distinct sorted tag set: GET /api/types
func typesHandler(store *pokedex.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Types())
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
