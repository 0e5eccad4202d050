// Copyright (c) 2026 Animepedia. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animepedia/animepedia/pkg/slug"
)

/*
TestFrom covers the slug pipeline: accent folding, case, separator
normalisation, and hyphen hygiene.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Cowboy Bebop", "cowboy-bebop"},
		{"accents_folded", "Pokémon Café", "pokemon-cafe"},
		{"punctuation", "Neon Genesis: Evangelion!", "neon-genesis-evangelion"},
		{"collapses_separators", "Hunter  x  Hunter", "hunter-x-hunter"},
		{"trims_edges", "--spirited away--", "spirited-away"},
		{"digits_kept", "Initial D Stage 5", "initial-d-stage-5"},
		{"already_clean", "mushishi", "mushishi"},
		{"empty", "", ""},
		{"only_symbols", "!?*", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
