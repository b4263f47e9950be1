// Package pokeapi defines the typed payload schemas for the two PokeAPI
// resources the acquisition pipeline consumes, and a lookup service that
// fetches both payloads for one identifier in parallel.
package pokeapi

import "fmt"

// NamedResource is the nested single-field object PokeAPI wraps names in.
type NamedResource struct {
	Name string `json:"name"`
}

// TypeSlot is one entry of the pokemon type list. Slot order is meaningful
// for display and is preserved through normalization.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one entry of the pokemon ability list.
type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// StatValue is one entry of the pokemon stat list.
type StatValue struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// Sprites holds the image references of the primary payload. FrontDefault
// may be null upstream.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Pokemon is the primary entity payload (GET /pokemon/{id}).
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"` // decimeters
	Weight    int           `json:"weight"` // hectograms
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []StatValue   `json:"stats"`
	Sprites   Sprites       `json:"sprites"`
}

// Validate checks the structural invariants the pipeline depends on.
func (p Pokemon) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("non-positive id %d", p.ID)
	}
	if p.Name == "" {
		return fmt.Errorf("empty name for id %d", p.ID)
	}
	if len(p.Types) == 0 {
		return fmt.Errorf("no types for id %d", p.ID)
	}
	return nil
}

// FlavorTextEntry is one localized descriptive entry.
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// Species is the supplementary descriptive payload (GET /pokemon-species/{id}).
type Species struct {
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}
