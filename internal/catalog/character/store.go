// Copyright (c) 2026 Animepedia. All rights reserved.

package character

import "context"

// # Character Data Access

// Repository defines the data access contract for the character domain.
type Repository interface {

	/*
		List returns every character ordered by name, each enriched with the
		list-view anime projection (title + image).

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Character: Name-ordered slice, empty (never nil) when the roster is empty
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Character, error)

	/*
		ListByAnime returns the characters referencing one anime, ordered by
		name. No anime projection is attached: the caller already holds the
		anime context. An unknown anime id yields an empty slice, not an
		error.

		Parameters:
		  - context: context.Context
		  - animeID: string (UUID)

		Returns:
		  - []*Character: Name-ordered roster, possibly empty
		  - error: Database retrieval failures
	*/
	ListByAnime(context context.Context, animeID string) ([]*Character, error)

	/*
		Search returns the characters whose name or japaneseName contains the
		query as a case-insensitive substring, enriched with the list-view
		anime projection. Result order is store-native.

		Parameters:
		  - context: context.Context
		  - query: string (Non-empty substring; blank handling is the service's job)

		Returns:
		  - []*Character: Matching characters, empty (never nil) for no matches
		  - error: Database retrieval failures
	*/
	Search(context context.Context, query string) ([]*Character, error)

	/*
		FindByID returns the character with the given ID, enriched with the
		detail-view anime projection (title + image + releaseYear).

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Character: The hydrated entity
		  - error: apperr.NotFound if no such row exists
	*/
	FindByID(context context.Context, id string) (*Character, error)

	/*
		Create persists a new character. The store fills CreatedAt/UpdatedAt
		from the database clock on success.

		Parameters:
		  - context: context.Context
		  - character: *Character (Pre-validated entity with assigned ID)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, character *Character) error

	/*
		Update applies a partial merge to an existing character. Only
		populated fields overwrite stored values; the store returns the full
		merged row without a projection.

		Parameters:
		  - context: context.Context
		  - character: *Character (Target ID plus the fields to overwrite)

		Returns:
		  - *Character: The complete record after the merge
		  - error: apperr.NotFound if the target row does not exist
	*/
	Update(context context.Context, character *Character) (*Character, error)

	/*
		Delete removes a character.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: apperr.NotFound if the row does not exist
	*/
	Delete(context context.Context, id string) error

	/*
		AnimeExists reports whether an anime row with the given ID exists.
		Used to validate the ownership reference at write time.

		Parameters:
		  - context: context.Context
		  - animeID: string (UUID)

		Returns:
		  - bool: true if the anime exists
		  - error: Database retrieval failures
	*/
	AnimeExists(context context.Context, animeID string) (bool, error)
}
