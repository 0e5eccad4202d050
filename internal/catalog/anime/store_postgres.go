// Copyright (c) 2026 Animepedia. All rights reserved.

/*
Package anime provides the PostgreSQL implementation for the anime catalogue's
data access.

It leans on the database for the catalogue's ordering and consistency
guarantees:
  - Ordinal Sorting: Titles are ordered with COLLATE "C" so the index sorts
    by code point rather than locale rules.
  - Partial Updates: A dynamically built SET clause merges only the populated
    fields, and RETURNING hands back the merged row in one round-trip.
  - ACID Cascade: Removing an anime and its character roster happens inside a
    single transaction, so a failed delete leaves the roster intact.
*/
package anime

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/animepedia/animepedia/internal/catalog"
	"github.com/animepedia/animepedia/internal/platform/apperr"
	"github.com/animepedia/animepedia/internal/platform/database/schema"
	"github.com/animepedia/animepedia/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed anime store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// # Repository Implementation

/*
List returns every anime ordered by title.

Description: The ORDER BY uses COLLATE "C" so that sorting is by raw code
point (all uppercase letters before lowercase), which keeps the catalogue
index stable across database locales.

Parameters:
  - context: context.Context

Returns:
  - []*Anime: Title-ordered slice, empty (never nil) for an empty catalogue
  - error: Database execution errors
*/
func (repository *postgresRepository) List(context context.Context) ([]*Anime, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s COLLATE "C" ASC`,
		strings.Join(schema.CatalogAnime.Columns(), ", "),
		schema.CatalogAnime.Table,
		schema.CatalogAnime.Title,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list anime: %w", err)
	}
	defer rows.Close()

	animes := make([]*Anime, 0)
	for rows.Next() {
		anime, err := scanAnime(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan anime: %w", err)
		}
		animes = append(animes, anime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: anime row iteration failed: %w", err)
	}

	return animes, nil
}

/*
FindByID retrieves an anime record by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Anime: The hydrated entity
  - error: apperr.NotFound if the row does not exist
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Anime, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CatalogAnime.Columns(), ", "),
		schema.CatalogAnime.Table,
		schema.CatalogAnime.ID,
	)

	anime, err := scanAnime(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to find anime by id: %w", err), "Anime")
	}

	return anime, nil
}

/*
Create persists a new anime record.

Description: The audit timestamps are produced by the database defaults, so
both carry the same clock value on insert. RETURNING reads them back into
the entity without a second query.

Parameters:
  - context: context.Context
  - anime: *Anime (Pre-validated entity with assigned UUID)

Returns:
  - error: Storage or constraint failures
*/
func (repository *postgresRepository) Create(context context.Context, anime *Anime) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s
	`,
		schema.CatalogAnime.Table,
		schema.CatalogAnime.ID, schema.CatalogAnime.Title, schema.CatalogAnime.OriginalTitle,
		schema.CatalogAnime.Image, schema.CatalogAnime.Description, schema.CatalogAnime.ReleaseYear,
		schema.CatalogAnime.Studio, schema.CatalogAnime.Genres, schema.CatalogAnime.Episodes,
		schema.CatalogAnime.Status,
		schema.CatalogAnime.CreatedAt, schema.CatalogAnime.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		anime.ID,
		anime.Title,
		anime.OriginalTitle,
		anime.Image,
		anime.Description,
		anime.ReleaseYear,
		anime.Studio,
		[]string(anime.Genres),
		anime.Episodes,
		anime.Status,
	).Scan(&anime.CreatedAt, &anime.UpdatedAt)

	if err != nil {
		return fmt.Errorf("postgres: failed to create anime: %w", err)
	}

	return nil
}

/*
Update merges modifications into an existing anime record.

Description: Builds a PATCH-style partial update with a dynamic SET clause.
Only populated fields are appended, so absent fields keep their stored
values. RETURNING yields the complete merged row, which becomes the response
body; an empty result set maps to the domain 404.

Parameters:
  - context: context.Context
  - anime: *Anime (Target UUID plus the fields to overwrite)

Returns:
  - *Anime: The full record after the merge
  - error: apperr.NotFound if the target row does not exist
*/
func (repository *postgresRepository) Update(context context.Context, anime *Anime) (*Anime, error) {

	// Dynamic SET clause construction
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()",
		schema.CatalogAnime.Table, schema.CatalogAnime.UpdatedAt))

	var args []any
	argID := 1

	// Text fields merge only when non-empty
	if anime.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.Title, argID))
		args = append(args, anime.Title)
		argID++
	}

	if anime.OriginalTitle != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.OriginalTitle, argID))
		args = append(args, anime.OriginalTitle)
		argID++
	}

	if anime.Image != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.Image, argID))
		args = append(args, anime.Image)
		argID++
	}

	if anime.Description != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.Description, argID))
		args = append(args, anime.Description)
		argID++
	}

	// Numeric fields merge on presence, so an explicit zero still overwrites
	if anime.ReleaseYear != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.ReleaseYear, argID))
		args = append(args, *anime.ReleaseYear)
		argID++
	}

	if anime.Studio != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.Studio, argID))
		args = append(args, anime.Studio)
		argID++
	}

	if len(anime.Genres) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.Genres, argID))
		args = append(args, []string(anime.Genres))
		argID++
	}

	if anime.Episodes != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.Episodes, argID))
		args = append(args, *anime.Episodes)
		argID++
	}

	if anime.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CatalogAnime.Status, argID))
		args = append(args, anime.Status)
		argID++
	}

	// Scope to the single target row and hand the merged record back
	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d RETURNING %s",
		schema.CatalogAnime.ID, argID,
		strings.Join(schema.CatalogAnime.Columns(), ", ")))
	args = append(args, anime.ID)

	updated, err := scanAnime(repository.pool.QueryRow(context, queryBuilder.String(), args...))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to update anime: %w", err), "Anime")
	}

	return updated, nil
}

/*
Delete removes an anime together with its character roster.

Description: Both deletes run inside one transaction. The character rows go
first, then the anime row; if the anime row turns out not to exist the
transaction rolls back, so a delete aimed at a missing anime never removes
characters. This also makes the operation idempotent-safe: the second call
reports NotFound and changes nothing.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - int64: Number of character rows removed alongside the anime
  - error: apperr.NotFound if the anime does not exist
*/
func (repository *postgresRepository) Delete(context context.Context, id string) (int64, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return 0, fmt.Errorf("postgres: delete transaction begin failed: %w", err)
	}
	defer transaction.Rollback(context)

	// Roster first, while the parent row still anchors the transaction
	characterQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.CatalogCharacter.Table, schema.CatalogCharacter.AnimeID)

	characterResult, err := transaction.Exec(context, characterQuery, id)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to delete characters of anime: %w", err)
	}

	animeQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.CatalogAnime.Table, schema.CatalogAnime.ID)

	animeResult, err := transaction.Exec(context, animeQuery, id)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to delete anime: %w", err)
	}

	// Missing parent: roll back so the character deletes never land
	if animeResult.RowsAffected() == 0 {
		return 0, apperr.NotFound("Anime")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, fmt.Errorf("postgres: delete transaction commit failed: %w", err)
	}

	return characterResult.RowsAffected(), nil
}

// # Scan Helpers

// scanAnime maps a full catalog.anime row onto the domain entity.
// The column order must match [schema.CatalogAnimeTable.Columns].
func scanAnime(row pgx.Row) (*Anime, error) {
	anime := &Anime{}
	var genres []string

	err := row.Scan(
		&anime.ID,
		&anime.Title,
		&anime.OriginalTitle,
		&anime.Image,
		&anime.Description,
		&anime.ReleaseYear,
		&anime.Studio,
		&genres,
		&anime.Episodes,
		&anime.Status,
		&anime.CreatedAt,
		&anime.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	anime.Genres = catalog.StringList(genres)
	if anime.Genres == nil {
		anime.Genres = catalog.StringList{}
	}

	return anime, nil
}
