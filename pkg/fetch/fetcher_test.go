package fetch

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/Sternrassler/pokedex-client/pkg/pokeapi"
)

// fakeLookup resolves identifiers locally and records call interleaving so
// tests can assert chunk ordering and concurrency bounds.
type fakeLookup struct {
	mu      sync.Mutex
	failIDs map[int]bool
	started []int
	// startCompleted[i] is how many lookups had fully completed when
	// started[i] was issued.
	startCompleted []int
	completed      int
	active         int
	maxActive      int
	delay          time.Duration
}

func newFakeLookup(failIDs ...int) *fakeLookup {
	fail := make(map[int]bool, len(failIDs))
	for _, id := range failIDs {
		fail[id] = true
	}
	return &fakeLookup{failIDs: fail}
}

func (f *fakeLookup) Lookup(ctx context.Context, id int) (pokeapi.Pokemon, pokeapi.Species, error) {
	f.mu.Lock()
	f.started = append(f.started, id)
	f.startCompleted = append(f.startCompleted, f.completed)
	f.active++
	if f.active > f.maxActive {
		f.maxActive = f.active
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.active--
	f.completed++
	f.mu.Unlock()

	if f.failIDs[id] {
		return pokeapi.Pokemon{}, pokeapi.Species{}, fmt.Errorf("lookup %d failed", id)
	}

	p := pokeapi.Pokemon{
		ID:     id,
		Name:   fmt.Sprintf("creature-%d", id),
		Height: id,
		Weight: id * 10,
		Types:  []pokeapi.TypeSlot{{Slot: 1, Type: pokeapi.NamedResource{Name: "normal"}}},
		Stats: []pokeapi.StatValue{
			{BaseStat: id, Stat: pokeapi.NamedResource{Name: "hp"}},
		},
	}
	s := pokeapi.Species{
		FlavorTextEntries: []pokeapi.FlavorTextEntry{
			{FlavorText: "entry", Language: pokeapi.NamedResource{Name: "en"}},
		},
	}
	return p, s, nil
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		size       int
		wantChunks int
		wantLast   int // size of the last chunk
	}{
		{"spec range batched", 151, 10, 16, 1},
		{"spec range sequential", 151, 1, 151, 1},
		{"exact multiple", 100, 10, 10, 10},
		{"single short chunk", 5, 10, 1, 5},
		{"one", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := partition(tt.total, tt.size)

			if len(chunks) != tt.wantChunks {
				t.Fatalf("partition(%d, %d) = %d chunks, want %d", tt.total, tt.size, len(chunks), tt.wantChunks)
			}

			// Contiguous, strictly increasing, covering [1..total].
			next := 1
			for i, c := range chunks {
				if c.start != next {
					t.Errorf("chunk %d starts at %d, want %d", i, c.start, next)
				}
				if c.end < c.start {
					t.Errorf("chunk %d is empty: %+v", i, c)
				}
				next = c.end + 1
			}
			if next != tt.total+1 {
				t.Errorf("chunks end at %d, want %d", next-1, tt.total)
			}

			last := chunks[len(chunks)-1]
			if got := last.end - last.start + 1; got != tt.wantLast {
				t.Errorf("last chunk size = %d, want %d", got, tt.wantLast)
			}
		})
	}
}

func TestFetchAll_CollectsSortedRecords(t *testing.T) {
	lookup := newFakeLookup()
	fetcher := New(lookup, Config{Total: 25, BatchSize: 10})

	records, attempted, err := fetcher.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if attempted != 25 {
		t.Errorf("attempted = %d, want 25", attempted)
	}
	if len(records) != 25 {
		t.Fatalf("len(records) = %d, want 25", len(records))
	}

	// Sorted ascending by identifier, no duplicates.
	for i, r := range records {
		if r.ID != i+1 {
			t.Fatalf("records[%d].ID = %d, want %d", i, r.ID, i+1)
		}
	}
}

func TestFetchAll_DropsFailedIdentifiers(t *testing.T) {
	lookup := newFakeLookup(3, 17)
	fetcher := New(lookup, Config{Total: 20, BatchSize: 10})

	records, attempted, err := fetcher.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if attempted != 20 {
		t.Errorf("attempted = %d, want 20 (failures still count as attempts)", attempted)
	}
	if len(records) != 18 {
		t.Fatalf("len(records) = %d, want 18", len(records))
	}
	for _, r := range records {
		if r.ID == 3 || r.ID == 17 {
			t.Errorf("failed identifier %d present in result", r.ID)
		}
	}
}

func TestFetchAll_SequentialVariant(t *testing.T) {
	lookup := newFakeLookup(5)
	lookup.delay = time.Millisecond

	cfg := SequentialConfig()
	cfg.Total = 12
	fetcher := New(lookup, cfg)

	records, attempted, err := fetcher.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if attempted != 12 || len(records) != 11 {
		t.Fatalf("attempted = %d, len = %d; want 12, 11", attempted, len(records))
	}
	if lookup.maxActive != 1 {
		t.Errorf("maxActive = %d, want 1 (strictly sequential)", lookup.maxActive)
	}

	// One lookup at a time means arrival order is identifier order.
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if !reflect.DeepEqual(lookup.started, want) {
		t.Errorf("started order = %v, want %v", lookup.started, want)
	}
}

func TestFetchAll_ChunkOrderingStrict(t *testing.T) {
	lookup := newFakeLookup()
	lookup.delay = 2 * time.Millisecond

	const batch = 5
	fetcher := New(lookup, Config{Total: 23, BatchSize: batch})

	if _, _, err := fetcher.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	// When a lookup from chunk k starts, every lookup of chunks < k must
	// already have completed: the strategy never issues chunk N+1 before
	// chunk N has fully settled.
	lastChunk := 0
	for i, id := range lookup.started {
		chunkIdx := (id - 1) / batch
		if chunkIdx < lastChunk {
			t.Fatalf("lookup for id %d (chunk %d) started after chunk %d", id, chunkIdx, lastChunk)
		}
		lastChunk = chunkIdx
		if got, want := lookup.startCompleted[i], chunkIdx*batch; got < want {
			t.Fatalf("id %d (chunk %d) started with only %d earlier lookups settled, want %d",
				id, chunkIdx, got, want)
		}
	}

	if lookup.maxActive > batch {
		t.Errorf("maxActive = %d, want <= %d", lookup.maxActive, batch)
	}
}

func TestFetchAll_ProgressReporting(t *testing.T) {
	lookup := newFakeLookup(2) // failures advance progress too
	var progress [][2]int

	fetcher := New(lookup, Config{
		Total:     21,
		BatchSize: 10,
		OnProgress: func(completed, total int) {
			progress = append(progress, [2]int{completed, total})
		},
	})

	if _, _, err := fetcher.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	want := [][2]int{{10, 21}, {20, 21}, {21, 21}}
	if !reflect.DeepEqual(progress, want) {
		t.Errorf("progress = %v, want %v", progress, want)
	}
}

func TestFetchAll_CancelledContextIsCatastrophic(t *testing.T) {
	lookup := newFakeLookup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := New(lookup, Config{Total: 10, BatchSize: 5})
	records, _, err := fetcher.FetchAll(ctx)

	if err == nil {
		t.Fatal("FetchAll() with cancelled context should fail")
	}
	if records != nil {
		t.Errorf("catastrophic failure must not deliver partial results, got %d records", len(records))
	}
}

func TestFetchAll_CancelDuringPacingAbortsWithoutPartials(t *testing.T) {
	lookup := newFakeLookup()

	ctx, cancel := context.WithCancel(context.Background())

	fetcher := New(lookup, Config{
		Total:      20,
		BatchSize:  10,
		ChunkDelay: 200 * time.Millisecond,
		OnProgress: func(completed, total int) {
			if completed == 10 {
				// First chunk settled, cancel while the pacer waits.
				cancel()
			}
		},
	})

	records, attempted, err := fetcher.FetchAll(ctx)
	if err == nil {
		t.Fatal("FetchAll() should abort when cancelled during pacing")
	}
	if records != nil {
		t.Errorf("aborted run returned %d records, want none", len(records))
	}
	if attempted != 10 {
		t.Errorf("attempted = %d, want 10 (only the first chunk ran)", attempted)
	}
}

func TestNew_Defaults(t *testing.T) {
	f := New(newFakeLookup(), Config{})

	if f.config.Total != DefaultTotal {
		t.Errorf("Total = %d, want %d", f.config.Total, DefaultTotal)
	}
	if f.config.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", f.config.BatchSize, DefaultBatchSize)
	}
}
