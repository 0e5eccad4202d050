// Copyright (c) 2026 Animepedia. All rights reserved.

package anime

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/animepedia/animepedia/internal/catalog"
	requestutil "github.com/animepedia/animepedia/internal/platform/request"
	"github.com/animepedia/animepedia/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the anime catalogue.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service

	// characterIndex serves GET /{id}/characters. The roster of an anime is
	// owned by the character domain, but the route lives on this router.
	characterIndex http.HandlerFunc
}

// NewHandler constructs a new anime [Handler].
func NewHandler(service *Service, characterIndex http.HandlerFunc) *Handler {
	return &Handler{
		service:        service,
		characterIndex: characterIndex,
	}
}

// Routes returns a [chi.Router] configured with the anime domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Discovery
	router.Get("/", handler.listAnime)
	router.Get("/{id}", handler.getAnime)
	router.Get("/{id}/characters", handler.characterIndex)

	// ## Management
	router.Post("/", handler.createAnime)
	router.Put("/{id}", handler.updateAnime)
	router.Delete("/{id}", handler.deleteAnime)

	return router
}

// # Anime Endpoints

/*
GET /api/anime.

Description: Retrieves the full anime catalogue ordered by title.

Response:
  - 200: []Anime: Title-ordered array, [] when the catalogue is empty
*/
func (handler *Handler) listAnime(writer http.ResponseWriter, request *http.Request) {
	animes, err := handler.service.ListAnime(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, animes)
}

/*
GET /api/anime/{id}.

Description: Retrieves a single anime record by UUID.

Request:
  - id: string (UUID)

Response:
  - 200: Anime: Success
  - 404: ErrNotFound: Anime not found (missing or malformed ID)
*/
func (handler *Handler) getAnime(writer http.ResponseWriter, request *http.Request) {
	animeID := requestutil.ID(request, "id")

	anime, err := handler.service.GetAnime(request.Context(), animeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, anime)
}

// # Request Payloads

// animeRequest defines the inbound JSON schema for anime creation and update.
type animeRequest struct {
	Title         string             `json:"title"`
	OriginalTitle string             `json:"originalTitle"`
	Image         string             `json:"image"`
	Description   string             `json:"description"`
	ReleaseYear   *int               `json:"releaseYear"`
	Studio        string             `json:"studio"`
	Genres        catalog.StringList `json:"genres"`
	Episodes      *int               `json:"episodes"`
	Status        Status             `json:"status"`
}

// toEntity maps the wire payload onto a domain entity.
func (input *animeRequest) toEntity() *Anime {
	return &Anime{
		Title:         input.Title,
		OriginalTitle: input.OriginalTitle,
		Image:         input.Image,
		Description:   input.Description,
		ReleaseYear:   input.ReleaseYear,
		Studio:        input.Studio,
		Genres:        input.Genres,
		Episodes:      input.Episodes,
		Status:        input.Status,
	}
}

// # Mutation Endpoints

/*
POST /api/anime.

Description: Creates a new anime entry in the catalogue. Genres accept either
a JSON array or a single comma-delimited string; an omitted status defaults
to Completed.

Request (Body):
  - animeRequest: JSON object

Response:
  - 201: Anime: The created record with its generated ID and timestamps
  - 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) createAnime(writer http.ResponseWriter, request *http.Request) {
	var input animeRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	anime := input.toEntity()

	if err := handler.service.CreateAnime(request.Context(), anime); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, anime)
}

/*
PUT /api/anime/{id}.

Description: Applies a partial merge update to an existing anime. Only the
provided fields overwrite stored values.

Request:
  - id: string (UUID)
  - body: animeRequest (Partial JSON)

Response:
  - 200: Anime: The full record after the merge
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 404: ErrNotFound: Anime not found
*/
func (handler *Handler) updateAnime(writer http.ResponseWriter, request *http.Request) {
	animeID := requestutil.ID(request, "id")

	var input animeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateAnime(request.Context(), animeID, input.toEntity())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/anime/{id}.

Description: Removes the anime and, atomically, every character that
references it. Repeating the call reports NotFound.

Request:
  - id: string (UUID)

Response:
  - 200: {"message": "Anime removed"}
  - 404: ErrNotFound: Anime not found
*/
func (handler *Handler) deleteAnime(writer http.ResponseWriter, request *http.Request) {
	animeID := requestutil.ID(request, "id")

	if err := handler.service.DeleteAnime(request.Context(), animeID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Anime removed")
}
