// Package pokedex holds the normalized record model, the pure normalization
// step, and the in-memory store with its filter/query layer.
package pokedex

import (
	"strings"

	"github.com/Sternrassler/pokedex-client/pkg/pokeapi"
)

// DescriptionFallback is used when no English descriptive entry exists.
const DescriptionFallback = "No description available."

// descriptionLanguage selects which localized flavor-text entry is kept.
const descriptionLanguage = "en"

// Record is one normalized creature. It is immutable after normalization:
// the containing collection changes membership and order, records never do.
type Record struct {
	// ID is the positive, unique, stable identifier.
	ID int `json:"id"`

	// Name is the display name as delivered by the source.
	Name string `json:"name"`

	// Types holds 1-2 elemental type tags in slot order.
	Types []string `json:"types"`

	// HeightM and WeightKG are the source integers scaled by 1/10
	// (decimeters to meters, hectograms to kilograms).
	HeightM  float64 `json:"height_m"`
	WeightKG float64 `json:"weight_kg"`

	// Abilities holds the named capability tags in slot order.
	Abilities []string `json:"abilities"`

	// Stats maps stat name to base value. Values are 0-255 by source
	// convention but not enforced here.
	Stats map[string]int `json:"stats"`

	// StatTotal is the sum of Stats at normalization time. It is never
	// recomputed afterwards.
	StatTotal int `json:"stat_total"`

	// SpriteURL is the image reference; empty when the source has none.
	SpriteURL string `json:"sprite_url"`

	// Description is the first English flavor-text entry with control
	// characters normalized to spaces, or DescriptionFallback.
	Description string `json:"description"`
}

// Normalize merges the two source payloads for one identifier into a Record.
// Pure and deterministic: no I/O, no clock, no randomness. Malformed input
// is the caller's problem; payloads are validated on ingestion.
func Normalize(p pokeapi.Pokemon, s pokeapi.Species) Record {
	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}

	// Last-wins when the source repeats a stat name.
	stats := make(map[string]int, len(p.Stats))
	for _, sv := range p.Stats {
		stats[sv.Stat.Name] = sv.BaseStat
	}
	total := 0
	for _, v := range stats {
		total += v
	}

	return Record{
		ID:          p.ID,
		Name:        p.Name,
		Types:       types,
		HeightM:     float64(p.Height) / 10,
		WeightKG:    float64(p.Weight) / 10,
		Abilities:   abilities,
		Stats:       stats,
		StatTotal:   total,
		SpriteURL:   spriteURL(p.Sprites),
		Description: description(s),
	}
}

// spriteURL prefers the official artwork and falls back to the default sprite.
func spriteURL(s pokeapi.Sprites) string {
	if s.Other.OfficialArtwork.FrontDefault != "" {
		return s.Other.OfficialArtwork.FrontDefault
	}
	return s.FrontDefault
}

// description selects the first entry matching the fixed language tag and
// normalizes control characters to single spaces.
func description(s pokeapi.Species) string {
	for _, e := range s.FlavorTextEntries {
		if e.Language.Name == descriptionLanguage {
			return cleanFlavorText(e.FlavorText)
		}
	}
	return DescriptionFallback
}

// cleanFlavorText replaces embedded control characters (newlines, form
// feeds, tabs) with spaces. The source texts carry raw game formatting.
func cleanFlavorText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return ' '
		}
		return r
	}, s)
}
