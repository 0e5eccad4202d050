// Copyright (c) 2026 Animepedia. All rights reserved.

package character

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

// Service orchestrates the business logic for the character roster.
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

// # Character Lookups

// ListCharacters returns the full roster ordered by name, enriched with
// each character's anime projection.
func (service *Service) ListCharacters(context context.Context) ([]*Character, error) {
	return service.repo.List(context)
}

/*
ListByAnime returns the roster of a single anime, ordered by name.

Description: Anime existence is intentionally not verified here. An unknown
or malformed anime id yields an empty roster rather than an error, so a
series page renders an empty cast instead of failing.

Parameters:
  - context: context.Context
  - animeID: string (UUID)

Returns:
  - []*Character: Name-ordered roster, possibly empty
  - error: Repository errors
*/
func (service *Service) ListByAnime(context context.Context, animeID string) ([]*Character, error) {
	if !uuid.IsValid(animeID) {
		return []*Character{}, nil
	}

	return service.repo.ListByAnime(context, animeID)
}

/*
SearchCharacters finds characters by case-insensitive substring match
against name or japaneseName.

Description: A blank query is a client error, not an empty result, so that
callers cannot accidentally page through the entire roster via the search
endpoint. Matches carry the same anime projection as the global list; order
is store-native with no relevance ranking.

Parameters:
  - context: context.Context
  - query: string

Returns:
  - []*Character: Matching characters, [] for no matches
  - error: apperr.BadRequest when the query is blank
*/
func (service *Service) SearchCharacters(context context.Context, query string) ([]*Character, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.BadRequest("Search query required")
	}

	return service.repo.Search(context, query)
}

// GetCharacter fetches a single character by UUID, with the detail-view
// anime projection. A malformed identifier resolves to NotFound.
func (service *Service) GetCharacter(context context.Context, id string) (*Character, error) {
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound("Character")
	}

	return service.repo.FindByID(context, id)
}

// # Character Management

/*
CreateCharacter initialises a new character record.

Description: Validates the metadata and the anime ownership reference,
applies the role default, generates a stable UUID v7 identity, and persists
the record. A reference to a missing or malformed anime id rejects the whole
create; nothing is stored.

Parameters:
  - context: context.Context
  - character: *Character (The entity to be persisted)

Returns:
  - error: Validation, reference, or persistence errors
*/
func (service *Service) CreateCharacter(context context.Context, character *Character) error {

	// Normalise before validating
	character.Name = strings.TrimSpace(character.Name)

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldName, character.Name).MaxLen(FieldName, character.Name, 500).
		Required(FieldImage, character.Image)

	// Role: omitted falls back to the default, unknown values are rejected
	if character.Role == "" {
		character.Role = DefaultRole
	} else {
		validator.Custom(FieldRole, !character.Role.IsValid(),
			"Must be one of: Main, Supporting, Antagonist, Other")
	}

	// Gender: optional, but a present value must be from the closed set
	if character.Gender != "" {
		validator.Custom(FieldGender, !character.Gender.IsValid(),
			"Must be one of: Male, Female, Non-binary, Unknown")
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// Ownership reference must point at an existing anime at write time
	if err := service.checkAnimeReference(context, character.AnimeID); err != nil {
		return err
	}

	// List fields serialize as [] rather than null
	if character.Abilities == nil {
		character.Abilities = catalog.StringList{}
	}
	if character.Quotes == nil {
		character.Quotes = catalog.QuoteList{}
	}

	// Identity generation
	character.ID = uuid.New()

	if err := service.repo.Create(context, character); err != nil {
		return err
	}

	service.logger.Info("character_created",
		slog.String("character_id", character.ID),
		slog.String("name", character.Name),
		slog.String("anime_id", character.AnimeID),
	)

	return nil
}

/*
UpdateCharacter applies modifications to an existing character record.

Description: Supports partial updates with merge semantics. Populated fields
overwrite stored values; absent fields are left untouched. Repointing the
character at a different anime re-validates the reference.

Parameters:
  - context: context.Context
  - id: string (UUID of the target record)
  - character: *Character (Updated attributes)

Returns:
  - *Character: The full merged record
  - error: Validation errors, or apperr.NotFound if the target is missing
*/
func (service *Service) UpdateCharacter(context context.Context, id string, character *Character) (*Character, error) {
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound("Character")
	}

	character.Name = strings.TrimSpace(character.Name)

	// Integrity validation for the fields being changed
	validator := &validate.Validator{}
	if character.Name != "" {
		validator.MaxLen(FieldName, character.Name, 500)
	}

	if character.Role != "" {
		validator.Custom(FieldRole, !character.Role.IsValid(),
			"Must be one of: Main, Supporting, Antagonist, Other")
	}

	if character.Gender != "" {
		validator.Custom(FieldGender, !character.Gender.IsValid(),
			"Must be one of: Male, Female, Non-binary, Unknown")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Repointing the ownership reference re-validates it
	if character.AnimeID != "" {
		if err := service.checkAnimeReference(context, character.AnimeID); err != nil {
			return nil, err
		}
	}

	character.ID = id

	updated, err := service.repo.Update(context, character)
	if err != nil {
		return nil, err
	}

	service.logger.Info("character_updated", slog.String("character_id", id))

	return updated, nil
}

// DeleteCharacter removes a character record. A malformed or repeated
// identifier reports NotFound.
func (service *Service) DeleteCharacter(context context.Context, id string) error {
	if !uuid.IsValid(id) {
		return apperr.NotFound("Character")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("character_deleted", slog.String("character_id", id))

	return nil
}

// # Internal Helpers

// checkAnimeReference rejects an ownership reference that is absent,
// malformed, or points at no stored anime. All three cases surface the same
// client error so the wire contract stays a single message.
func (service *Service) checkAnimeReference(context context.Context, animeID string) error {
	if !uuid.IsValid(animeID) {
		return apperr.BadRequest("Invalid anime ID")
	}

	exists, err := service.repo.AnimeExists(context, animeID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.BadRequest("Invalid anime ID")
	}

	return nil
}
