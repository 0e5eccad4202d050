// Copyright (c) 2026 Animepedia. All rights reserved.

/*
Package anime defines the Anime entity of the encyclopedia and its CRUD
surface.

An Anime is the root record of the catalogue: every Character holds a
reference to exactly one Anime. Listing is always ordered by title so the
catalogue reads as an index.
*/
package anime

import (
	"time"

	"github.com/animepedia/animepedia/internal/catalog"
)

// # Domain Enums

// Status represents the airing status of an anime.
type Status string

const (
	// StatusOngoing indicates the series is actively airing.
	StatusOngoing Status = "Ongoing"

	// StatusCompleted indicates the series has finished airing.
	StatusCompleted Status = "Completed"

	// StatusUpcoming indicates the series has been announced but not aired.
	StatusUpcoming Status = "Upcoming"
)

// DefaultStatus is applied when a create payload omits the status.
const DefaultStatus = StatusCompleted

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusUpcoming:
		return true
	}
	return false
}

// # Core Entity

// Anime is a single series record in the encyclopedia.
type Anime struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	OriginalTitle string             `json:"originalTitle,omitempty"`
	Image         string             `json:"image"`
	Description   string             `json:"description"`
	ReleaseYear   *int               `json:"releaseYear,omitempty"`
	Studio        string             `json:"studio,omitempty"`
	Genres        catalog.StringList `json:"genres"`
	Episodes      *int               `json:"episodes,omitempty"`
	Status        Status             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// # Field Identifiers

// Field names used in validation details and dynamic query mapping.
const (
	FieldTitle       = "title"
	FieldImage       = "image"
	FieldDescription = "description"
	FieldStatus      = "status"
)
