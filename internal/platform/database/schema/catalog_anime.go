// Copyright (c) 2026 Animepedia. All rights reserved.

// Package schema centralizes physical table and column identifiers so that
// repositories never embed raw SQL name literals.
package schema

// CatalogAnimeTable represents the 'catalog.anime' table
type CatalogAnimeTable struct {
	Table         string
	ID            string
	Title         string
	OriginalTitle string
	Image         string
	Description   string
	ReleaseYear   string
	Studio        string
	Genres        string
	Episodes      string
	Status        string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogAnime is the schema definition for catalog.anime
var CatalogAnime = CatalogAnimeTable{
	Table:         "catalog.anime",
	ID:            "id",
	Title:         "title",
	OriginalTitle: "originaltitle",
	Image:         "image",
	Description:   "description",
	ReleaseYear:   "releaseyear",
	Studio:        "studio",
	Genres:        "genres",
	Episodes:      "episodes",
	Status:        "status",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CatalogAnimeTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.OriginalTitle, t.Image, t.Description, t.ReleaseYear,
		t.Studio, t.Genres, t.Episodes, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
