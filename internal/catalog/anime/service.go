// Copyright (c) 2026 Animepedia. All rights reserved.

package anime

import (
	"context"
	"log/slog"
	"strings"

	"github.com/animepedia/animepedia/internal/catalog"
	"github.com/animepedia/animepedia/internal/platform/apperr"
	"github.com/animepedia/animepedia/internal/platform/validate"
	"github.com/animepedia/animepedia/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for the anime catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Anime Lookups

// ListAnime returns the full catalogue index, ordered by title.
func (service *Service) ListAnime(context context.Context) ([]*Anime, error) {
	return service.repo.List(context)
}

/*
GetAnime fetches a single anime record by UUID.

Description: A malformed identifier cannot reference any stored record, so it
resolves to a NotFound rather than a validation failure or a database error.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Anime: The hydrated entity
  - error: apperr.NotFound if missing or malformed
*/
func (service *Service) GetAnime(context context.Context, id string) (*Anime, error) {
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound("Anime")
	}

	return service.repo.FindByID(context, id)
}

// # Anime Management

/*
CreateAnime initialises a new series record in the catalogue.

Description: Performs business validation on the metadata, applies enum
defaults, generates a stable UUID v7 identity, and persists the record.

Parameters:
  - context: context.Context
  - anime: *Anime (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateAnime(context context.Context, anime *Anime) error {

	// Normalise before validating
	anime.Title = strings.TrimSpace(anime.Title)

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldTitle, anime.Title).MaxLen(FieldTitle, anime.Title, 500).
		Required(FieldImage, anime.Image).
		Required(FieldDescription, anime.Description)

	// Lifecycle state validation: omitted status falls back to the default,
	// a present but unknown status is rejected.
	if anime.Status == "" {
		anime.Status = DefaultStatus
	} else {
		validator.Custom(FieldStatus, !anime.Status.IsValid(),
			"Must be one of: Ongoing, Completed, Upcoming")
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// List fields serialize as [] rather than null
	if anime.Genres == nil {
		anime.Genres = catalog.StringList{}
	}

	// Identity generation
	anime.ID = uuid.New()

	if err := service.repo.Create(context, anime); err != nil {
		return err
	}

	service.logger.Info("anime_created",
		slog.String("anime_id", anime.ID),
		slog.String("title", anime.Title),
	)

	return nil
}

/*
UpdateAnime applies modifications to an existing series record.

Description: Supports partial updates with merge semantics. Populated fields
in the input overwrite stored values; absent fields are left untouched. The
returned entity is the complete record after the merge.

Parameters:
  - context: context.Context
  - id: string (UUID of the target record)
  - anime: *Anime (Updated attributes)

Returns:
  - *Anime: The full merged record
  - error: Validation errors, or apperr.NotFound if the target is missing
*/
func (service *Service) UpdateAnime(context context.Context, id string, anime *Anime) (*Anime, error) {
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound("Anime")
	}

	anime.Title = strings.TrimSpace(anime.Title)

	// Integrity validation for the fields being changed
	validator := &validate.Validator{}
	if anime.Title != "" {
		validator.MaxLen(FieldTitle, anime.Title, 500)
	}

	if anime.Status != "" {
		validator.Custom(FieldStatus, !anime.Status.IsValid(),
			"Must be one of: Ongoing, Completed, Upcoming")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	anime.ID = id

	updated, err := service.repo.Update(context, anime)
	if err != nil {
		return nil, err
	}

	service.logger.Info("anime_updated", slog.String("anime_id", id))

	return updated, nil
}

/*
DeleteAnime removes a series and its entire character roster.

Description: The cascade is atomic. Either the anime and all characters
referencing it are removed together, or nothing is. Deleting a missing or
malformed ID reports NotFound and leaves every character row in place.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound if missing, or persistence errors
*/
func (service *Service) DeleteAnime(context context.Context, id string) error {
	if !uuid.IsValid(id) {
		return apperr.NotFound("Anime")
	}

	charactersRemoved, err := service.repo.Delete(context, id)
	if err != nil {
		return err
	}

	service.logger.Warn("anime_deleted",
		slog.String("anime_id", id),
		slog.Int64("characters_removed", charactersRemoved),
	)

	return nil
}
