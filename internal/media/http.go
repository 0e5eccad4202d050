// Copyright (c) 2026 Animepedia. All rights reserved.

package media

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/animepedia/animepedia/internal/platform/apperr"
	"github.com/animepedia/animepedia/internal/platform/constants"
	"github.com/animepedia/animepedia/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for image uploads.
type Handler struct {
	service *Service
}

// NewHandler constructs a new media [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the upload endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/anime", handler.uploadAnime)
	router.Post("/characters", handler.uploadCharacter)

	return router
}

// uploadResponse is the body returned for a stored image.
type uploadResponse struct {
	URL string `json:"url"`
}

// # Upload Endpoints

/*
POST /api/uploads/anime.

Description: Accepts a multipart form with an "image" file part, stores it
on the external host cropped for cover display, and returns the public URL.

Request (Multipart):
  - image: file (jpg, jpeg, png, webp; max 10 MiB)

Response:
  - 201: {"url": string}
  - 400: "Image file required" / file-type rejection
*/
func (handler *Handler) uploadAnime(writer http.ResponseWriter, request *http.Request) {
	handler.handleUpload(writer, request, handler.service.UploadAnimeImage)
}

/*
POST /api/uploads/characters.

Description: Same contract as the anime upload, cropped for portrait display
and stored in the character folder.

Request (Multipart):
  - image: file (jpg, jpeg, png, webp; max 10 MiB)

Response:
  - 201: {"url": string}
  - 400: "Image file required" / file-type rejection
*/
func (handler *Handler) uploadCharacter(writer http.ResponseWriter, request *http.Request) {
	handler.handleUpload(writer, request, handler.service.UploadCharacterImage)
}

// handleUpload extracts the "image" part and delegates to the given service
// upload function.
func (handler *Handler) handleUpload(
	writer http.ResponseWriter,
	request *http.Request,
	upload func(context.Context, string, io.Reader) (string, error),
) {
	// Bound the request body before the multipart parser touches it
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)

	file, header, err := request.FormFile("image")
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("Image file required"))
		return
	}
	defer file.Close()

	url, err := upload(request.Context(), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, uploadResponse{URL: url})
}
