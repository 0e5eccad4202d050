// Copyright (c) 2026 Animepedia. All rights reserved.

/*
Package character defines the Character entity of the encyclopedia and its
CRUD and search surface.

Every Character references exactly one Anime. The reference is a non-owning
lookup: the anime must exist when the character is created or repointed, but
is not re-validated on later reads. Read endpoints enrich each character with
a partial projection of its anime so list views render without a second
round-trip.
*/
package character

import (
	"time"

	"github.com/animepedia/animepedia/internal/catalog"
)

// # Domain Enums

// Role classifies a character's narrative importance within its series.
type Role string

const (
	RoleMain       Role = "Main"
	RoleSupporting Role = "Supporting"
	RoleAntagonist Role = "Antagonist"
	RoleOther      Role = "Other"
)

// DefaultRole is applied when a create payload omits the role.
const DefaultRole = RoleSupporting

// IsValid reports whether r is a recognised [Role] value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMain, RoleSupporting, RoleAntagonist, RoleOther:
		return true
	}
	return false
}

// Gender is an optional character attribute. Unlike [Role] it has no
// default: an absent gender stays absent.
type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-binary"
	GenderUnknown   Gender = "Unknown"
)

// IsValid reports whether g is a recognised [Gender] value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary, GenderUnknown:
		return true
	}
	return false
}

// # Core Entity

// AnimeSummary is the partial anime projection attached to character reads.
// List views carry title and image; detail views add the release year.
type AnimeSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ReleaseYear *int   `json:"releaseYear,omitempty"`
}

// Character is a single character record in the encyclopedia.
//
// Age, birthday, height and weight are free-form strings on purpose: the
// source material is inconsistent ("unknown", "5'7\"", "172 cm"), so the
// catalogue stores them verbatim rather than forcing a numeric format.
type Character struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	JapaneseName string              `json:"japaneseName,omitempty"`
	Image        string              `json:"image"`
	AnimeID      string              `json:"animeId"`
	Anime        *AnimeSummary       `json:"anime,omitempty"`
	Role         Role                `json:"role"`
	Gender       Gender              `json:"gender,omitempty"`
	Age          string              `json:"age,omitempty"`
	Birthday     string              `json:"birthday,omitempty"`
	Height       string              `json:"height,omitempty"`
	Weight       string              `json:"weight,omitempty"`
	Abilities    catalog.StringList  `json:"abilities"`
	Personality  string              `json:"personality,omitempty"`
	Background   string              `json:"background,omitempty"`
	VoiceActors  catalog.VoiceActors `json:"voiceActors"`
	Quotes       catalog.QuoteList   `json:"quotes"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// # Field Identifiers

// Field names used in validation details and dynamic query mapping.
const (
	FieldName   = "name"
	FieldImage  = "image"
	FieldAnime  = "anime"
	FieldRole   = "role"
	FieldGender = "gender"
)
