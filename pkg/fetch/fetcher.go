package fetch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Sternrassler/pokedex-client/pkg/logging"
	"github.com/Sternrassler/pokedex-client/pkg/pokeapi"
	"github.com/Sternrassler/pokedex-client/pkg/pokedex"
	"github.com/Sternrassler/pokedex-client/pkg/throttle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for acquisition.
var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedex_lookups_total",
		Help: "Total identifier lookups by outcome",
	}, []string{"outcome"})

	chunkDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pokedex_chunk_duration_seconds",
		Help:    "Duration of one fully settled acquisition chunk",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})
)

// DefaultTotal is the size of the acquired identifier range.
const DefaultTotal = 151

// DefaultBatchSize is the chunk size of the batched variant.
const DefaultBatchSize = 10

// Lookup resolves one identifier into its pair of source payloads.
// *pokeapi.Service implements it.
type Lookup interface {
	Lookup(ctx context.Context, id int) (pokeapi.Pokemon, pokeapi.Species, error)
}

// ProgressFunc receives progress updates after each settled chunk.
type ProgressFunc func(completed, total int)

// Config holds acquisition configuration.
type Config struct {
	// Total is the upper end of the acquired identifier range [1..Total].
	Total int

	// BatchSize is the chunk size. 1 degenerates to the sequential variant.
	BatchSize int

	// ChunkDelay is the fixed pause between chunks. Zero disables pacing.
	ChunkDelay time.Duration

	// OnProgress, when set, is called after each settled chunk with the
	// count of attempted lookups so far.
	OnProgress ProgressFunc
}

// DefaultConfig returns the batched variant: chunks of 10 with a fixed
// 100ms pause between them.
func DefaultConfig() Config {
	return Config{
		Total:      DefaultTotal,
		BatchSize:  DefaultBatchSize,
		ChunkDelay: throttle.DefaultDelay,
	}
}

// SequentialConfig returns the naive variant: one lookup at a time, no
// pacing. Identical normalization and failure handling.
func SequentialConfig() Config {
	return Config{
		Total:     DefaultTotal,
		BatchSize: 1,
	}
}

// Fetcher acquires the full record collection for a range of identifiers.
type Fetcher struct {
	lookup Lookup
	config Config
	pacer  *throttle.Pacer
	logger zerolog.Logger
}

// New creates a fetcher. Zero config fields fall back to defaults.
func New(lookup Lookup, cfg Config) *Fetcher {
	if cfg.Total <= 0 {
		cfg.Total = DefaultTotal
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	return &Fetcher{
		lookup: lookup,
		config: cfg,
		pacer:  throttle.NewPacer(cfg.ChunkDelay),
		logger: logging.NewLogger("fetcher"),
	}
}

// result is one settled lookup within a chunk.
type result struct {
	record pokedex.Record
	ok     bool
}

// FetchAll acquires records for every identifier in [1..Total] whose lookup
// succeeds, sorted ascending by identifier, plus the count of attempted
// lookups. Failed identifiers are dropped and logged, never retried.
// Context cancellation is the catastrophic tier: the run aborts and no
// partial collection is returned.
func (f *Fetcher) FetchAll(ctx context.Context) ([]pokedex.Record, int, error) {
	start := time.Now()
	chunks := partition(f.config.Total, f.config.BatchSize)

	f.logger.Info().
		Int("total", f.config.Total).
		Int("batch_size", f.config.BatchSize).
		Int("chunks", len(chunks)).
		Msg("Starting acquisition")

	records := make([]pokedex.Record, 0, f.config.Total)
	completed := 0

	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			f.logger.Error().Err(err).Int("chunk", i).Msg("Acquisition aborted")
			return nil, completed, fmt.Errorf("acquisition aborted at chunk %d: %w", i, err)
		}

		chunkStart := time.Now()
		for _, res := range f.fetchChunk(ctx, c) {
			if res.ok {
				records = append(records, res.record)
			}
		}
		chunkDuration.Observe(time.Since(chunkStart).Seconds())

		// Progress advances by attempted lookups, not successes.
		completed += c.end - c.start + 1
		if f.config.OnProgress != nil {
			f.config.OnProgress(completed, f.config.Total)
		}

		f.logger.Debug().
			Int("chunk", i).
			Int("completed", completed).
			Int("total", f.config.Total).
			Msg("Chunk settled")

		// Pause between chunks, not after the last one.
		if i < len(chunks)-1 {
			if err := f.pacer.Wait(ctx); err != nil {
				f.logger.Error().Err(err).Int("chunk", i).Msg("Acquisition aborted")
				return nil, completed, fmt.Errorf("acquisition aborted after chunk %d: %w", i, err)
			}
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	f.logger.Info().
		Int("acquired", len(records)).
		Int("attempted", completed).
		Dur("duration", time.Since(start)).
		Msg("Acquisition complete")

	return records, completed, nil
}

// fetchChunk runs every lookup of one chunk concurrently and returns when
// all of them have settled. A failed lookup never cancels its siblings.
func (f *Fetcher) fetchChunk(ctx context.Context, c chunk) []result {
	results := make([]result, c.end-c.start+1)

	var wg sync.WaitGroup
	for id := c.start; id <= c.end; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			p, sp, err := f.lookup.Lookup(ctx, id)
			if err != nil {
				lookupsTotal.WithLabelValues("failure").Inc()
				f.logger.Warn().Err(err).Int("id", id).Msg("Lookup failed, dropping identifier")
				return
			}

			lookupsTotal.WithLabelValues("success").Inc()
			results[id-c.start] = result{
				record: pokedex.Normalize(p, sp),
				ok:     true,
			}
		}(id)
	}
	wg.Wait()

	return results
}

// chunk is a contiguous inclusive identifier range.
type chunk struct {
	start, end int
}

// partition splits [1..total] into contiguous chunks of size. The last
// chunk may be shorter: 151/10 yields 15 chunks of 10 and 1 of 1.
func partition(total, size int) []chunk {
	chunks := make([]chunk, 0, (total+size-1)/size)
	for start := 1; start <= total; start += size {
		end := start + size - 1
		if end > total {
			end = total
		}
		chunks = append(chunks, chunk{start: start, end: end})
	}
	return chunks
}
