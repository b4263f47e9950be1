// Package fetch implements the batched concurrent acquisition strategy.
//
// The identifier range [1..Total] is partitioned into contiguous chunks of
// BatchSize. Chunks run strictly in order: every lookup of chunk N settles
// before chunk N+1 issues its first request. Within a chunk all lookups run
// concurrently, and each lookup fetches its two payloads in parallel.
//
// Example usage:
//
//	svc := pokeapi.NewService(apiClient)
//	fetcher := fetch.New(svc, fetch.DefaultConfig())
//	records, attempted, err := fetcher.FetchAll(ctx)
//
// Failure handling has two tiers. A failed lookup (transport error,
// non-success status, malformed payload) drops that identifier's record and
// continues; siblings in the same and later chunks are unaffected. A context
// cancellation between chunks aborts the whole run with no partial results.
// There are no retries; the fixed inter-chunk pause is the only throttle.
package fetch
