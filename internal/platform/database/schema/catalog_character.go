// Copyright (c) 2026 Animepedia. All rights reserved.

package schema

// CatalogCharacterTable represents the 'catalog.character' table
type CatalogCharacterTable struct {
	Table        string
	ID           string
	Name         string
	JapaneseName string
	Image        string
	AnimeID      string
	Role         string
	Gender       string
	Age          string
	Birthday     string
	Height       string
	Weight       string
	Abilities    string
	Personality  string
	Background   string
	VAJapanese   string
	VAEnglish    string
	Quotes       string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogCharacter is the schema definition for catalog.character
var CatalogCharacter = CatalogCharacterTable{
	Table:        "catalog.character",
	ID:           "id",
	Name:         "name",
	JapaneseName: "japanesename",
	Image:        "image",
	AnimeID:      "animeid",
	Role:         "role",
	Gender:       "gender",
	Age:          "age",
	Birthday:     "birthday",
	Height:       "height",
	Weight:       "weight",
	Abilities:    "abilities",
	Personality:  "personality",
	Background:   "background",
	VAJapanese:   "vajapanese",
	VAEnglish:    "vaenglish",
	Quotes:       "quotes",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogCharacterTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.JapaneseName, t.Image, t.AnimeID, t.Role, t.Gender,
		t.Age, t.Birthday, t.Height, t.Weight, t.Abilities, t.Personality,
		t.Background, t.VAJapanese, t.VAEnglish, t.Quotes, t.CreatedAt, t.UpdatedAt,
	}
}
