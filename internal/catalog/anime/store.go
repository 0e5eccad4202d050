// Copyright (c) 2026 Animepedia. All rights reserved.

package anime

import "context"

// # Anime Data Access

// Repository defines the data access contract for the anime domain.
type Repository interface {

	/*
		List returns every anime in the catalogue ordered by title.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Anime: Title-ordered slice, empty (never nil) when the catalogue is empty
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Anime, error)

	/*
		FindByID returns the anime with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Anime: The hydrated entity
		  - error: apperr.NotFound if no such row exists
	*/
	FindByID(context context.Context, id string) (*Anime, error)

	/*
		Create persists a new anime. The store fills CreatedAt/UpdatedAt from
		the database clock on success.

		Parameters:
		  - context: context.Context
		  - anime: *Anime (Pre-validated entity with assigned ID)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, anime *Anime) error

	/*
		Update applies a partial merge to an existing anime. Only populated
		fields overwrite stored values; the store returns the full merged row.

		Parameters:
		  - context: context.Context
		  - anime: *Anime (Target ID plus the fields to overwrite)

		Returns:
		  - *Anime: The complete record after the merge
		  - error: apperr.NotFound if the target row does not exist
	*/
	Update(context context.Context, anime *Anime) (*Anime, error)

	/*
		Delete removes an anime and every character referencing it in one
		atomic transaction. If the anime row does not exist nothing is
		removed, including characters.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - int64: Number of character rows removed alongside the anime
		  - error: apperr.NotFound if the anime does not exist
	*/
	Delete(context context.Context, id string) (int64, error)
}
