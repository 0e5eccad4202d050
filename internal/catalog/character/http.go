// Copyright (c) 2026 Animepedia. All rights reserved.

package character

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/animepedia/animepedia/internal/catalog"
	requestutil "github.com/animepedia/animepedia/internal/platform/request"
	"github.com/animepedia/animepedia/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the character roster.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new character [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the character domain's
// endpoints. The "characters of one anime" listing is also owned by this
// handler (see [Handler.AnimeCharacters]) but mounted on the anime router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Discovery
	router.Get("/", handler.listCharacters)
	router.Get("/search", handler.searchCharacters)
	router.Get("/{id}", handler.getCharacter)

	// ## Management
	router.Post("/", handler.createCharacter)
	router.Put("/{id}", handler.updateCharacter)
	router.Delete("/{id}", handler.deleteCharacter)

	return router
}

// # Character Endpoints

/*
GET /api/characters.

Description: Retrieves the full character roster ordered by name. Every
record carries the list-view anime projection (title + image).

Response:
  - 200: []Character: Name-ordered array, [] when the roster is empty
*/
func (handler *Handler) listCharacters(writer http.ResponseWriter, request *http.Request) {
	characters, err := handler.service.ListCharacters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, characters)
}

/*
GET /api/characters/search?query=...

Description: Case-insensitive substring search against name and
japaneseName. Matches carry the same anime projection as the global list.

Request:
  - query: string (Required, non-blank)

Response:
  - 200: []Character: Matches in store-native order, [] for none
  - 400: "Search query required": Missing or blank query parameter
*/
func (handler *Handler) searchCharacters(writer http.ResponseWriter, request *http.Request) {
	query := requestutil.Query(request, "query")

	characters, err := handler.service.SearchCharacters(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, characters)
}

/*
GET /api/characters/{id}.

Description: Retrieves a single character by UUID with the detail-view anime
projection (title + image + releaseYear).

Request:
  - id: string (UUID)

Response:
  - 200: Character: Success
  - 404: ErrNotFound: Character not found (missing or malformed ID)
*/
func (handler *Handler) getCharacter(writer http.ResponseWriter, request *http.Request) {
	characterID := requestutil.ID(request, "id")

	character, err := handler.service.GetCharacter(request.Context(), characterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, character)
}

/*
GET /api/anime/{id}/characters.

Description: Retrieves the name-ordered roster of one anime. An unknown
anime id yields an empty array, not an error. Mounted on the anime router;
the records carry no anime projection since the caller holds that context.

Request:
  - id: string (Anime UUID)

Response:
  - 200: []Character: Name-ordered roster, possibly []
*/
func (handler *Handler) AnimeCharacters(writer http.ResponseWriter, request *http.Request) {
	animeID := requestutil.ID(request, "id")

	characters, err := handler.service.ListByAnime(request.Context(), animeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, characters)
}

// # Request Payloads

// characterRequest defines the inbound JSON schema for character creation
// and update. The anime field carries the referenced anime's UUID.
type characterRequest struct {
	Name         string              `json:"name"`
	JapaneseName string              `json:"japaneseName"`
	Image        string              `json:"image"`
	Anime        string              `json:"anime"`
	Role         Role                `json:"role"`
	Gender       Gender              `json:"gender"`
	Age          string              `json:"age"`
	Birthday     string              `json:"birthday"`
	Height       string              `json:"height"`
	Weight       string              `json:"weight"`
	Abilities    catalog.StringList  `json:"abilities"`
	Personality  string              `json:"personality"`
	Background   string              `json:"background"`
	VoiceActors  catalog.VoiceActors `json:"voiceActors"`
	Quotes       catalog.QuoteList   `json:"quotes"`
}

// toEntity maps the wire payload onto a domain entity.
func (input *characterRequest) toEntity() *Character {
	return &Character{
		Name:         input.Name,
		JapaneseName: input.JapaneseName,
		Image:        input.Image,
		AnimeID:      input.Anime,
		Role:         input.Role,
		Gender:       input.Gender,
		Age:          input.Age,
		Birthday:     input.Birthday,
		Height:       input.Height,
		Weight:       input.Weight,
		Abilities:    input.Abilities,
		Personality:  input.Personality,
		Background:   input.Background,
		VoiceActors:  input.VoiceActors,
		Quotes:       input.Quotes,
	}
}

// # Mutation Endpoints

/*
POST /api/characters.

Description: Creates a new character. The anime reference must resolve to an
existing anime or the whole create is rejected with nothing stored.
Abilities accept a JSON array or a comma-delimited string; quotes accept a
native array or a serialized one.

Request (Body):
  - characterRequest: JSON object

Response:
  - 201: Character: The created record with its generated ID and timestamps
  - 400: ErrInvalidJSON/Validation/"Invalid anime ID": Invalid input data
*/
func (handler *Handler) createCharacter(writer http.ResponseWriter, request *http.Request) {
	var input characterRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	character := input.toEntity()

	if err := handler.service.CreateCharacter(request.Context(), character); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, character)
}

/*
PUT /api/characters/{id}.

Description: Applies a partial merge update to an existing character. Only
the provided fields overwrite stored values; repointing the anime reference
re-validates it.

Request:
  - id: string (UUID)
  - body: characterRequest (Partial JSON)

Response:
  - 200: Character: The full record after the merge
  - 400: ErrInvalidJSON/Validation/"Invalid anime ID": Invalid input data
  - 404: ErrNotFound: Character not found
*/
func (handler *Handler) updateCharacter(writer http.ResponseWriter, request *http.Request) {
	characterID := requestutil.ID(request, "id")

	var input characterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateCharacter(request.Context(), characterID, input.toEntity())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/characters/{id}.

Description: Removes a single character. Repeating the call reports
NotFound.

Request:
  - id: string (UUID)

Response:
  - 200: {"message": "Character removed"}
  - 404: ErrNotFound: Character not found
*/
func (handler *Handler) deleteCharacter(writer http.ResponseWriter, request *http.Request) {
	characterID := requestutil.ID(request, "id")

	if err := handler.service.DeleteCharacter(request.Context(), characterID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Character removed")
}
