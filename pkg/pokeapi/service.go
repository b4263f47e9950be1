package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/Sternrassler/pokedex-client/pkg/client"
	"github.com/Sternrassler/pokedex-client/pkg/logging"
	"github.com/rs/zerolog"
)

// Service resolves one identifier into its pair of typed payloads.
type Service struct {
	client *client.Client
	logger zerolog.Logger
}

// NewService creates a lookup service on top of the HTTP client.
func NewService(c *client.Client) *Service {
	return &Service{
		client: c,
		logger: logging.NewLogger("pokeapi-service"),
	}
}

// Pokemon fetches and decodes the primary entity payload for an identifier.
func (s *Service) Pokemon(ctx context.Context, id int) (Pokemon, error) {
	var p Pokemon
	if err := s.getJSON(ctx, fmt.Sprintf("/pokemon/%d", id), &p); err != nil {
		return Pokemon{}, wrapParse("pokemon", id, err)
	}
	if err := p.Validate(); err != nil {
		return Pokemon{}, &ParseError{Resource: "pokemon", ID: id, Err: err}
	}
	return p, nil
}

// Species fetches and decodes the supplementary descriptive payload.
func (s *Service) Species(ctx context.Context, id int) (Species, error) {
	var sp Species
	if err := s.getJSON(ctx, fmt.Sprintf("/pokemon-species/%d", id), &sp); err != nil {
		return Species{}, wrapParse("pokemon-species", id, err)
	}
	return sp, nil
}

// Lookup fetches both payloads for one identifier in parallel and suspends
// until both settle. If either fetch fails the whole lookup fails; the
// sibling fetch is always awaited, never cancelled, so a failure here has
// no effect on any other in-flight lookup.
func (s *Service) Lookup(ctx context.Context, id int) (Pokemon, Species, error) {
	var (
		wg         sync.WaitGroup
		p          Pokemon
		sp         Species
		pErr, sErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		p, pErr = s.Pokemon(ctx, id)
	}()
	go func() {
		defer wg.Done()
		sp, sErr = s.Species(ctx, id)
	}()
	wg.Wait()

	if pErr != nil {
		return Pokemon{}, Species{}, pErr
	}
	if sErr != nil {
		return Pokemon{}, Species{}, sErr
	}

	s.logger.Debug().Int("id", id).Str("name", p.Name).Msg("Lookup resolved")
	return p, sp, nil
}

// getJSON performs a GET and decodes the body into v.
func (s *Service) getJSON(ctx context.Context, path string, v interface{}) error {
	resp, err := s.client.Get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	// Drain any trailing bytes so the connection can be reused.
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	return nil
}

// wrapParse wraps decode failures as typed parse errors and passes
// transport/status errors through untouched.
func wrapParse(resource string, id int, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	return &ParseError{Resource: resource, ID: id, Err: err}
}
