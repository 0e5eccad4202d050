// Copyright (c) 2026 Animepedia. All rights reserved.

/*
Package character provides the PostgreSQL implementation for the character
roster's data access.

The anime projection attached to read endpoints is produced by a LEFT JOIN
onto catalog.anime, so list and search views hydrate in a single round-trip
and a dangling reference degrades to a missing projection rather than a
dropped row. Quotes are stored as a jsonb document; abilities as a native
text array.
*/
package character

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/animepedia/animepedia/internal/catalog"
	"github.com/animepedia/animepedia/internal/platform/apperr"
	"github.com/animepedia/animepedia/internal/platform/database/schema"
	"github.com/animepedia/animepedia/internal/platform/dberr"
	"github.com/animepedia/animepedia/pkg/slice"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed character store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// # Repository Implementation

/*
List returns every character ordered by name, with the list-view anime
projection.

Description: A LEFT JOIN pulls title and image of the referenced anime into
the same result set. Characters whose reference no longer resolves (the
reference is not re-validated after write time) are still returned, just
without a projection.

Parameters:
  - context: context.Context

Returns:
  - []*Character: Name-ordered slice, empty (never nil) for an empty roster
  - error: Database execution errors
*/
func (repository *postgresRepository) List(context context.Context) ([]*Character, error) {
	query := fmt.Sprintf(`
		SELECT %s, a.%s, a.%s
		FROM %s c
		LEFT JOIN %s a ON c.%s = a.%s
		ORDER BY c.%s ASC
	`,
		prefixedColumns("c"),
		schema.CatalogAnime.Title, schema.CatalogAnime.Image,
		schema.CatalogCharacter.Table,
		schema.CatalogAnime.Table,
		schema.CatalogCharacter.AnimeID, schema.CatalogAnime.ID,
		schema.CatalogCharacter.Name,
	)

	return repository.queryProjected(context, query)
}

/*
ListByAnime returns the characters of one anime, ordered by name.

Description: Plain equality filter with no join: the caller already holds
the anime context, so no projection is attached. An unknown anime id simply
matches zero rows.

Parameters:
  - context: context.Context
  - animeID: string (UUID)

Returns:
  - []*Character: Name-ordered roster, possibly empty
  - error: Database execution errors
*/
func (repository *postgresRepository) ListByAnime(context context.Context, animeID string) ([]*Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1 ORDER BY c.%s ASC`,
		prefixedColumns("c"),
		schema.CatalogCharacter.Table,
		schema.CatalogCharacter.AnimeID,
		schema.CatalogCharacter.Name,
	)

	rows, err := repository.pool.Query(context, query, animeID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list characters of anime: %w", err)
	}
	defer rows.Close()

	characters := make([]*Character, 0)
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan character: %w", err)
		}
		characters = append(characters, character)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: character row iteration failed: %w", err)
	}

	return characters, nil
}

/*
Search returns the characters matching a case-insensitive substring query.

Description: The query is wrapped in ILIKE wildcards after escaping any
LIKE metacharacters, so a literal "%" or "_" in the search text matches
itself instead of acting as a wildcard. No ORDER BY is applied; result order
is whatever the store yields.

Parameters:
  - context: context.Context
  - query: string (Non-blank substring)

Returns:
  - []*Character: Matches with the list-view projection, [] for none
  - error: Database execution errors
*/
func (repository *postgresRepository) Search(context context.Context, query string) ([]*Character, error) {
	sqlQuery := fmt.Sprintf(`
		SELECT %s, a.%s, a.%s
		FROM %s c
		LEFT JOIN %s a ON c.%s = a.%s
		WHERE c.%s ILIKE $1 OR c.%s ILIKE $1
	`,
		prefixedColumns("c"),
		schema.CatalogAnime.Title, schema.CatalogAnime.Image,
		schema.CatalogCharacter.Table,
		schema.CatalogAnime.Table,
		schema.CatalogCharacter.AnimeID, schema.CatalogAnime.ID,
		schema.CatalogCharacter.Name, schema.CatalogCharacter.JapaneseName,
	)

	pattern := "%" + escapeLikePattern(query) + "%"

	return repository.queryProjected(context, sqlQuery, pattern)
}

/*
FindByID retrieves a character by its primary key with the detail-view
anime projection (title + image + releaseYear).

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Character: The hydrated entity
  - error: apperr.NotFound if the row does not exist
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Character, error) {
	query := fmt.Sprintf(`
		SELECT %s, a.%s, a.%s, a.%s
		FROM %s c
		LEFT JOIN %s a ON c.%s = a.%s
		WHERE c.%s = $1
	`,
		prefixedColumns("c"),
		schema.CatalogAnime.Title, schema.CatalogAnime.Image, schema.CatalogAnime.ReleaseYear,
		schema.CatalogCharacter.Table,
		schema.CatalogAnime.Table,
		schema.CatalogCharacter.AnimeID, schema.CatalogAnime.ID,
		schema.CatalogCharacter.ID,
	)

	character := &Character{}
	var abilities []string
	var quotesJSON []byte
	var projectedTitle, projectedImage *string
	var projectedYear *int

	targets := character.scanTargets(&abilities, &quotesJSON)
	targets = append(targets, &projectedTitle, &projectedImage, &projectedYear)

	err := repository.pool.QueryRow(context, query, id).Scan(targets...)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to find character by id: %w", err), "Character")
	}

	if err := character.hydrate(abilities, quotesJSON); err != nil {
		return nil, err
	}

	if projectedTitle != nil {
		character.Anime = &AnimeSummary{
			ID:          character.AnimeID,
			Title:       *projectedTitle,
			Image:       stringValue(projectedImage),
			ReleaseYear: projectedYear,
		}
	}

	return character, nil
}

/*
Create persists a new character record.

Description: Quotes are serialized into the jsonb column; audit timestamps
come from the database defaults via RETURNING.

Parameters:
  - context: context.Context
  - character: *Character (Pre-validated entity with assigned UUID)

Returns:
  - error: Storage or constraint failures
*/
func (repository *postgresRepository) Create(context context.Context, character *Character) error {
	quotesJSON, err := json.Marshal(character.Quotes)
	if err != nil {
		return fmt.Errorf("postgres: failed to marshal quotes: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING %s, %s
	`,
		schema.CatalogCharacter.Table,
		schema.CatalogCharacter.ID, schema.CatalogCharacter.Name, schema.CatalogCharacter.JapaneseName,
		schema.CatalogCharacter.Image, schema.CatalogCharacter.AnimeID, schema.CatalogCharacter.Role,
		schema.CatalogCharacter.Gender, schema.CatalogCharacter.Age, schema.CatalogCharacter.Birthday,
		schema.CatalogCharacter.Height, schema.CatalogCharacter.Weight, schema.CatalogCharacter.Abilities,
		schema.CatalogCharacter.Personality, schema.CatalogCharacter.Background,
		schema.CatalogCharacter.VAJapanese, schema.CatalogCharacter.VAEnglish, schema.CatalogCharacter.Quotes,
		schema.CatalogCharacter.CreatedAt, schema.CatalogCharacter.UpdatedAt,
	)

	err = repository.pool.QueryRow(context, query,
		character.ID,
		character.Name,
		character.JapaneseName,
		character.Image,
		character.AnimeID,
		character.Role,
		character.Gender,
		character.Age,
		character.Birthday,
		character.Height,
		character.Weight,
		[]string(character.Abilities),
		character.Personality,
		character.Background,
		character.VoiceActors.Japanese,
		character.VoiceActors.English,
		quotesJSON,
	).Scan(&character.CreatedAt, &character.UpdatedAt)

	if err != nil {
		return fmt.Errorf("postgres: failed to create character: %w", err)
	}

	return nil
}

/*
Update merges modifications into an existing character record.

Description: Builds a PATCH-style partial update with a dynamic SET clause.
Voice actors merge per language: setting the Japanese performer leaves the
English one untouched. RETURNING yields the complete merged row; an empty
result set maps to the domain 404.

Parameters:
  - context: context.Context
  - character: *Character (Target UUID plus the fields to overwrite)

Returns:
  - *Character: The full record after the merge, without projection
  - error: apperr.NotFound if the target row does not exist
*/
func (repository *postgresRepository) Update(context context.Context, character *Character) (*Character, error) {

	// Dynamic SET clause construction
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()",
		schema.CatalogCharacter.Table, schema.CatalogCharacter.UpdatedAt))

	var args []any
	argID := 1

	appendSet := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	// Text fields merge only when non-empty
	if character.Name != "" {
		appendSet(schema.CatalogCharacter.Name, character.Name)
	}
	if character.JapaneseName != "" {
		appendSet(schema.CatalogCharacter.JapaneseName, character.JapaneseName)
	}
	if character.Image != "" {
		appendSet(schema.CatalogCharacter.Image, character.Image)
	}
	if character.AnimeID != "" {
		appendSet(schema.CatalogCharacter.AnimeID, character.AnimeID)
	}
	if character.Role != "" {
		appendSet(schema.CatalogCharacter.Role, character.Role)
	}
	if character.Gender != "" {
		appendSet(schema.CatalogCharacter.Gender, character.Gender)
	}
	if character.Age != "" {
		appendSet(schema.CatalogCharacter.Age, character.Age)
	}
	if character.Birthday != "" {
		appendSet(schema.CatalogCharacter.Birthday, character.Birthday)
	}
	if character.Height != "" {
		appendSet(schema.CatalogCharacter.Height, character.Height)
	}
	if character.Weight != "" {
		appendSet(schema.CatalogCharacter.Weight, character.Weight)
	}
	if len(character.Abilities) > 0 {
		appendSet(schema.CatalogCharacter.Abilities, []string(character.Abilities))
	}
	if character.Personality != "" {
		appendSet(schema.CatalogCharacter.Personality, character.Personality)
	}
	if character.Background != "" {
		appendSet(schema.CatalogCharacter.Background, character.Background)
	}

	// Voice actors merge per language slot
	if character.VoiceActors.Japanese != "" {
		appendSet(schema.CatalogCharacter.VAJapanese, character.VoiceActors.Japanese)
	}
	if character.VoiceActors.English != "" {
		appendSet(schema.CatalogCharacter.VAEnglish, character.VoiceActors.English)
	}

	if len(character.Quotes) > 0 {
		quotesJSON, err := json.Marshal(character.Quotes)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to marshal quotes: %w", err)
		}
		appendSet(schema.CatalogCharacter.Quotes, quotesJSON)
	}

	// Scope to the single target row and hand the merged record back
	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d RETURNING %s",
		schema.CatalogCharacter.ID, argID,
		strings.Join(schema.CatalogCharacter.Columns(), ", ")))
	args = append(args, character.ID)

	updated, err := scanCharacter(repository.pool.QueryRow(context, queryBuilder.String(), args...))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to update character: %w", err), "Character")
	}

	return updated, nil
}

/*
Delete removes a character row.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound if the row does not exist
*/
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.CatalogCharacter.Table, schema.CatalogCharacter.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete character: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Character")
	}

	return nil
}

// AnimeExists reports whether an anime row with the given ID exists.
func (repository *postgresRepository) AnimeExists(context context.Context, animeID string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		schema.CatalogAnime.Table, schema.CatalogAnime.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, animeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check anime existence: %w", err)
	}

	return exists, nil
}

// # Query Helpers

// queryProjected runs a joined query whose trailing columns are the
// nullable list-view projection (anime title, anime image).
func (repository *postgresRepository) queryProjected(context context.Context, query string, args ...any) ([]*Character, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query characters: %w", err)
	}
	defer rows.Close()

	characters := make([]*Character, 0)
	for rows.Next() {
		character := &Character{}
		var abilities []string
		var quotesJSON []byte
		var projectedTitle, projectedImage *string

		targets := character.scanTargets(&abilities, &quotesJSON)
		targets = append(targets, &projectedTitle, &projectedImage)

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan character: %w", err)
		}

		if err := character.hydrate(abilities, quotesJSON); err != nil {
			return nil, err
		}

		if projectedTitle != nil {
			character.Anime = &AnimeSummary{
				ID:    character.AnimeID,
				Title: *projectedTitle,
				Image: stringValue(projectedImage),
			}
		}

		characters = append(characters, character)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: character row iteration failed: %w", err)
	}

	return characters, nil
}

// prefixedColumns renders the full character column list qualified with a
// table alias, e.g. "c.id, c.name, ...".
func prefixedColumns(alias string) string {
	qualified := slice.Map(schema.CatalogCharacter.Columns(), func(column string) string {
		return alias + "." + column
	})
	return strings.Join(qualified, ", ")
}

// escapeLikePattern neutralizes LIKE metacharacters in user search input.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// stringValue dereferences a nullable text column.
func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// # Scan Helpers

// scanTargets returns the scan destinations for a full catalog.character
// row, in [schema.CatalogCharacterTable.Columns] order. Array and jsonb
// columns land in the provided intermediates; call hydrate afterwards.
func (character *Character) scanTargets(abilities *[]string, quotesJSON *[]byte) []any {
	return []any{
		&character.ID,
		&character.Name,
		&character.JapaneseName,
		&character.Image,
		&character.AnimeID,
		&character.Role,
		&character.Gender,
		&character.Age,
		&character.Birthday,
		&character.Height,
		&character.Weight,
		abilities,
		&character.Personality,
		&character.Background,
		&character.VoiceActors.Japanese,
		&character.VoiceActors.English,
		quotesJSON,
		&character.CreatedAt,
		&character.UpdatedAt,
	}
}

// hydrate folds the scanned intermediates into the entity, normalising
// absent collections to empty ones.
func (character *Character) hydrate(abilities []string, quotesJSON []byte) error {
	character.Abilities = catalog.StringList(abilities)
	if character.Abilities == nil {
		character.Abilities = catalog.StringList{}
	}

	character.Quotes = catalog.QuoteList{}
	if len(quotesJSON) > 0 {
		if err := json.Unmarshal(quotesJSON, &character.Quotes); err != nil {
			return fmt.Errorf("postgres: failed to unmarshal quotes: %w", err)
		}
	}

	return nil
}

// scanCharacter maps a full catalog.character row (no projection columns)
// onto the domain entity.
func scanCharacter(row pgx.Row) (*Character, error) {
	character := &Character{}
	var abilities []string
	var quotesJSON []byte

	if err := row.Scan(character.scanTargets(&abilities, &quotesJSON)...); err != nil {
		return nil, err
	}

	if err := character.hydrate(abilities, quotesJSON); err != nil {
		return nil, err
	}

	return character, nil
}
