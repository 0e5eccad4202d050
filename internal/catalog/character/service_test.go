// Copyright (c) 2026 Animepedia. All rights reserved.

package character_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animepedia/animepedia/internal/catalog"
	"github.com/animepedia/animepedia/internal/catalog/character"
	"github.com/animepedia/animepedia/internal/platform/apperr"
	"github.com/animepedia/animepedia/pkg/uuid"
)

// referencedAnime is what the fake store knows about an anime row.
type referencedAnime struct {
	title string
	image string
	year  *int
}

// fakeRepository is an in-memory [character.Repository] mirroring the
// projection, merge, and search semantics of the PostgreSQL implementation.
type fakeRepository struct {
	characters map[string]*character.Character
	animes     map[string]referencedAnime
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		characters: make(map[string]*character.Character),
		animes:     make(map[string]referencedAnime),
	}
}

// addAnime registers an anime row the store can project and reference.
func (repo *fakeRepository) addAnime(title string) string {
	id := uuid.New()
	repo.animes[id] = referencedAnime{title: title, image: "https://img.example/" + title + ".jpg"}
	return id
}

// project attaches the list-view anime summary, like the LEFT JOIN does.
func (repo *fakeRepository) project(c *character.Character) *character.Character {
	projected := *c
	if ref, found := repo.animes[c.AnimeID]; found {
		projected.Anime = &character.AnimeSummary{ID: c.AnimeID, Title: ref.title, Image: ref.image}
	}
	return &projected
}

func (repo *fakeRepository) List(_ context.Context) ([]*character.Character, error) {
	characters := make([]*character.Character, 0, len(repo.characters))
	for _, c := range repo.characters {
		characters = append(characters, repo.project(c))
	}
	sort.Slice(characters, func(i, j int) bool {
		return strings.Compare(characters[i].Name, characters[j].Name) < 0
	})
	return characters, nil
}

func (repo *fakeRepository) ListByAnime(_ context.Context, animeID string) ([]*character.Character, error) {
	characters := make([]*character.Character, 0)
	for _, c := range repo.characters {
		if c.AnimeID == animeID {
			copied := *c
			characters = append(characters, &copied)
		}
	}
	sort.Slice(characters, func(i, j int) bool {
		return strings.Compare(characters[i].Name, characters[j].Name) < 0
	})
	return characters, nil
}

func (repo *fakeRepository) Search(_ context.Context, query string) ([]*character.Character, error) {
	needle := strings.ToLower(query)
	characters := make([]*character.Character, 0)
	for _, c := range repo.characters {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.JapaneseName), needle) {
			characters = append(characters, repo.project(c))
		}
	}
	return characters, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*character.Character, error) {
	c, found := repo.characters[id]
	if !found {
		return nil, apperr.NotFound("Character")
	}
	projected := repo.project(c)
	if projected.Anime != nil {
		projected.Anime.ReleaseYear = repo.animes[c.AnimeID].year
	}
	return projected, nil
}

func (repo *fakeRepository) Create(_ context.Context, c *character.Character) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := *c
	repo.characters[c.ID] = &stored
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, c *character.Character) (*character.Character, error) {
	stored, found := repo.characters[c.ID]
	if !found {
		return nil, apperr.NotFound("Character")
	}

	if c.Name != "" {
		stored.Name = c.Name
	}
	if c.JapaneseName != "" {
		stored.JapaneseName = c.JapaneseName
	}
	if c.Image != "" {
		stored.Image = c.Image
	}
	if c.AnimeID != "" {
		stored.AnimeID = c.AnimeID
	}
	if c.Role != "" {
		stored.Role = c.Role
	}
	if c.Gender != "" {
		stored.Gender = c.Gender
	}
	if c.Age != "" {
		stored.Age = c.Age
	}
	if len(c.Abilities) > 0 {
		stored.Abilities = c.Abilities
	}
	if c.VoiceActors.Japanese != "" {
		stored.VoiceActors.Japanese = c.VoiceActors.Japanese
	}
	if c.VoiceActors.English != "" {
		stored.VoiceActors.English = c.VoiceActors.English
	}
	if len(c.Quotes) > 0 {
		stored.Quotes = c.Quotes
	}
	stored.UpdatedAt = time.Now().UTC()

	copied := *stored
	return &copied, nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, found := repo.characters[id]; !found {
		return apperr.NotFound("Character")
	}
	delete(repo.characters, id)
	return nil
}

func (repo *fakeRepository) AnimeExists(_ context.Context, animeID string) (bool, error) {
	_, found := repo.animes[animeID]
	return found, nil
}

func newTestService(repo character.Repository) *character.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return character.NewService(repo, logger)
}

// seedCharacter inserts a valid record directly through the service.
func seedCharacter(t *testing.T, service *character.Service, name, animeID string) *character.Character {
	t.Helper()

	c := &character.Character{
		Name:    name,
		Image:   "https://img.example/" + name + ".jpg",
		AnimeID: animeID,
	}
	require.NoError(t, service.CreateCharacter(context.Background(), c))
	return c
}

/*
TestCreateCharacter_Defaults verifies identity generation, role fallback,
and collection normalisation on create.
*/
func TestCreateCharacter_Defaults(t *testing.T) {
	repo := newFakeRepository()
	animeID := repo.addAnime("Cowboy Bebop")
	service := newTestService(repo)

	created := &character.Character{
		Name:    "  Spike Spiegel  ",
		Image:   "https://img.example/spike.jpg",
		AnimeID: animeID,
	}
	require.NoError(t, service.CreateCharacter(context.Background(), created))

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Spike Spiegel", created.Name)
	assert.Equal(t, character.RoleSupporting, created.Role)
	assert.Empty(t, created.Gender)
	assert.NotNil(t, created.Abilities)
	assert.NotNil(t, created.Quotes)
}

/*
TestCreateCharacter_AnimeReference verifies that a missing or malformed
anime reference rejects the create with nothing stored.
*/
func TestCreateCharacter_AnimeReference(t *testing.T) {
	tests := []struct {
		name    string
		animeID string
	}{
		{"absent", ""},
		{"malformed", "not-a-uuid"},
		{"unknown", "01923456-0000-7000-8000-000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := newTestService(repo)

			err := service.CreateCharacter(context.Background(), &character.Character{
				Name:    "Orphan",
				Image:   "https://img.example/orphan.jpg",
				AnimeID: tt.animeID,
			})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 400, ae.HTTPStatus)
			assert.Equal(t, "Invalid anime ID", ae.Message)
			assert.Empty(t, repo.characters)
		})
	}
}

/*
TestCreateCharacter_EnumValidation verifies the closed role and gender sets.
*/
func TestCreateCharacter_EnumValidation(t *testing.T) {
	repo := newFakeRepository()
	animeID := repo.addAnime("Berserk")
	service := newTestService(repo)

	t.Run("unknown_role", func(t *testing.T) {
		err := service.CreateCharacter(context.Background(), &character.Character{
			Name: "Guts", Image: "i", AnimeID: animeID, Role: "Sidekick",
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperr.As(err).HTTPStatus)
	})

	t.Run("unknown_gender", func(t *testing.T) {
		err := service.CreateCharacter(context.Background(), &character.Character{
			Name: "Guts", Image: "i", AnimeID: animeID, Gender: "Robot",
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperr.As(err).HTTPStatus)
	})

	t.Run("valid_enums", func(t *testing.T) {
		err := service.CreateCharacter(context.Background(), &character.Character{
			Name: "Guts", Image: "i", AnimeID: animeID,
			Role: character.RoleMain, Gender: character.GenderMale,
		})
		assert.NoError(t, err)
	})
}

/*
TestSearchCharacters covers the blank-query rejection and the substring
matching contract across both name fields.
*/
func TestSearchCharacters(t *testing.T) {
	repo := newFakeRepository()
	animeID := repo.addAnime("Samurai Champloo")
	service := newTestService(repo)

	mugen := seedCharacter(t, service, "Mugen", animeID)
	_, err := service.UpdateCharacter(context.Background(), mugen.ID,
		&character.Character{JapaneseName: "ムゲン"})
	require.NoError(t, err)
	seedCharacter(t, service, "Jin", animeID)

	t.Run("blank_query_rejected", func(t *testing.T) {
		_, err := service.SearchCharacters(context.Background(), "   ")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 400, ae.HTTPStatus)
		assert.Equal(t, "Search query required", ae.Message)
	})

	t.Run("case_insensitive_substring", func(t *testing.T) {
		matches, err := service.SearchCharacters(context.Background(), "uGe")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Mugen", matches[0].Name)
	})

	t.Run("japanese_name_matches", func(t *testing.T) {
		matches, err := service.SearchCharacters(context.Background(), "ムゲン")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Mugen", matches[0].Name)
	})

	t.Run("no_matches_is_empty_not_error", func(t *testing.T) {
		matches, err := service.SearchCharacters(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

/*
TestListByAnime verifies the empty-not-error contract for unknown and
malformed anime ids.
*/
func TestListByAnime(t *testing.T) {
	repo := newFakeRepository()
	animeID := repo.addAnime("Hunter x Hunter")
	service := newTestService(repo)

	seedCharacter(t, service, "Killua", animeID)
	seedCharacter(t, service, "Gon", animeID)

	t.Run("ordered_roster", func(t *testing.T) {
		roster, err := service.ListByAnime(context.Background(), animeID)
		require.NoError(t, err)
		require.Len(t, roster, 2)
		assert.Equal(t, "Gon", roster[0].Name)
		assert.Equal(t, "Killua", roster[1].Name)

		// No projection on the per-anime roster
		assert.Nil(t, roster[0].Anime)
	})

	t.Run("unknown_anime_is_empty", func(t *testing.T) {
		roster, err := service.ListByAnime(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, roster)
	})

	t.Run("malformed_anime_is_empty", func(t *testing.T) {
		roster, err := service.ListByAnime(context.Background(), "not-a-uuid")
		require.NoError(t, err)
		assert.Empty(t, roster)
	})
}

/*
TestGetCharacter_Projection verifies the detail view carries the anime
summary with release year.
*/
func TestGetCharacter_Projection(t *testing.T) {
	repo := newFakeRepository()
	animeID := repo.addAnime("Eden of the East")
	year := 2009
	ref := repo.animes[animeID]
	ref.year = &year
	repo.animes[animeID] = ref

	service := newTestService(repo)
	seeded := seedCharacter(t, service, "Akira Takizawa", animeID)

	found, err := service.GetCharacter(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Anime)
	assert.Equal(t, "Eden of the East", found.Anime.Title)
	require.NotNil(t, found.Anime.ReleaseYear)
	assert.Equal(t, 2009, *found.Anime.ReleaseYear)
}

/*
TestUpdateCharacter_Merge verifies voice-actor sub-field merging and the
re-validation of a repointed anime reference.
*/
func TestUpdateCharacter_Merge(t *testing.T) {
	repo := newFakeRepository()
	animeID := repo.addAnime("Cowboy Bebop")
	service := newTestService(repo)

	seeded := seedCharacter(t, service, "Spike Spiegel", animeID)

	_, err := service.UpdateCharacter(context.Background(), seeded.ID, &character.Character{
		VoiceActors: catalog.VoiceActors{Japanese: "Koichi Yamadera"},
	})
	require.NoError(t, err)

	updated, err := service.UpdateCharacter(context.Background(), seeded.ID, &character.Character{
		VoiceActors: catalog.VoiceActors{English: "Steve Blum"},
	})
	require.NoError(t, err)

	// Each language slot merged independently
	assert.Equal(t, "Koichi Yamadera", updated.VoiceActors.Japanese)
	assert.Equal(t, "Steve Blum", updated.VoiceActors.English)

	t.Run("repoint_to_missing_anime", func(t *testing.T) {
		_, err := service.UpdateCharacter(context.Background(), seeded.ID, &character.Character{
			AnimeID: uuid.New(),
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid anime ID", apperr.As(err).Message)
	})
}

/*
TestDeleteCharacter verifies the NotFound contract for repeated and
malformed deletes.
*/
func TestDeleteCharacter(t *testing.T) {
	repo := newFakeRepository()
	animeID := repo.addAnime("FLCL")
	service := newTestService(repo)

	seeded := seedCharacter(t, service, "Haruko", animeID)

	require.NoError(t, service.DeleteCharacter(context.Background(), seeded.ID))
	assert.True(t, apperr.IsNotFound(service.DeleteCharacter(context.Background(), seeded.ID)))
	assert.True(t, apperr.IsNotFound(service.DeleteCharacter(context.Background(), "not-a-uuid")))
}
