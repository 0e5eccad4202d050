// Copyright (c) 2026 Animepedia. All rights reserved.

/*
Package client is the Go data client for the Animepedia API.

Every backend endpoint is wrapped as one method, translating between Go
values and the wire JSON. Error responses ({"message": string}) surface as
[*APIError] so callers can branch on the HTTP status without parsing bodies.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/animepedia/animepedia/internal/catalog/anime"
	"github.com/animepedia/animepedia/internal/catalog/character"
)

// defaultTimeout bounds a single API round-trip.
const defaultTimeout = 30 * time.Second

// # Client

// Client talks to one Animepedia API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customises a [Client].
type Option func(*Client)

// WithHTTPClient substitutes the underlying [http.Client].
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.http = httpClient
	}
}

// New constructs a [Client] for the given base URL
// (e.g. "http://localhost:8080").
func New(baseURL string, options ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// # Errors

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("animepedia: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether the server answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// # Inputs

// AnimeInput is the payload for creating or partially updating an anime.
// Zero-valued fields are omitted on the wire, which makes the same type
// usable for merge updates.
type AnimeInput struct {
	Title         string   `json:"title,omitempty"`
	OriginalTitle string   `json:"originalTitle,omitempty"`
	Image         string   `json:"image,omitempty"`
	Description   string   `json:"description,omitempty"`
	ReleaseYear   *int     `json:"releaseYear,omitempty"`
	Studio        string   `json:"studio,omitempty"`
	Genres        []string `json:"genres,omitempty"`
	Episodes      *int     `json:"episodes,omitempty"`
	Status        string   `json:"status,omitempty"`
}

// CharacterInput is the payload for creating or partially updating a
// character. Anime carries the referenced anime's UUID.
type CharacterInput struct {
	Name         string           `json:"name,omitempty"`
	JapaneseName string           `json:"japaneseName,omitempty"`
	Image        string           `json:"image,omitempty"`
	Anime        string           `json:"anime,omitempty"`
	Role         string           `json:"role,omitempty"`
	Gender       string           `json:"gender,omitempty"`
	Age          string           `json:"age,omitempty"`
	Birthday     string           `json:"birthday,omitempty"`
	Height       string           `json:"height,omitempty"`
	Weight       string           `json:"weight,omitempty"`
	Abilities    []string         `json:"abilities,omitempty"`
	Personality  string           `json:"personality,omitempty"`
	Background   string           `json:"background,omitempty"`
	VoiceActors  *VoiceActorInput `json:"voiceActors,omitempty"`
	Quotes       []QuoteInput     `json:"quotes,omitempty"`
}

// VoiceActorInput names the performers per language.
type VoiceActorInput struct {
	Japanese string `json:"japanese,omitempty"`
	English  string `json:"english,omitempty"`
}

// QuoteInput is a single quote entry.
type QuoteInput struct {
	Text    string `json:"text"`
	Episode string `json:"episode,omitempty"`
}

// # Anime Endpoints

// ListAnime returns the full catalogue ordered by title.
func (client *Client) ListAnime(context context.Context) ([]*anime.Anime, error) {
	var animes []*anime.Anime
	err := client.do(context, http.MethodGet, "/api/anime", nil, &animes)
	return animes, err
}

// GetAnime returns one anime by id.
func (client *Client) GetAnime(context context.Context, id string) (*anime.Anime, error) {
	result := &anime.Anime{}
	err := client.do(context, http.MethodGet, "/api/anime/"+url.PathEscape(id), nil, result)
	return result, err
}

// CreateAnime creates a new anime and returns the stored record.
func (client *Client) CreateAnime(context context.Context, input AnimeInput) (*anime.Anime, error) {
	result := &anime.Anime{}
	err := client.do(context, http.MethodPost, "/api/anime", input, result)
	return result, err
}

// UpdateAnime merges the provided fields into an existing anime and returns
// the full record after the merge.
func (client *Client) UpdateAnime(context context.Context, id string, input AnimeInput) (*anime.Anime, error) {
	result := &anime.Anime{}
	err := client.do(context, http.MethodPut, "/api/anime/"+url.PathEscape(id), input, result)
	return result, err
}

// DeleteAnime removes an anime and its character roster.
func (client *Client) DeleteAnime(context context.Context, id string) error {
	return client.do(context, http.MethodDelete, "/api/anime/"+url.PathEscape(id), nil, nil)
}

// AnimeCharacters returns the name-ordered roster of one anime.
func (client *Client) AnimeCharacters(context context.Context, animeID string) ([]*character.Character, error) {
	var characters []*character.Character
	err := client.do(context, http.MethodGet, "/api/anime/"+url.PathEscape(animeID)+"/characters", nil, &characters)
	return characters, err
}

// # Character Endpoints

// ListCharacters returns the full roster ordered by name.
func (client *Client) ListCharacters(context context.Context) ([]*character.Character, error) {
	var characters []*character.Character
	err := client.do(context, http.MethodGet, "/api/characters", nil, &characters)
	return characters, err
}

// SearchCharacters finds characters matching the query substring.
func (client *Client) SearchCharacters(context context.Context, query string) ([]*character.Character, error) {
	var characters []*character.Character
	path := "/api/characters/search?query=" + url.QueryEscape(query)
	err := client.do(context, http.MethodGet, path, nil, &characters)
	return characters, err
}

// GetCharacter returns one character by id.
func (client *Client) GetCharacter(context context.Context, id string) (*character.Character, error) {
	result := &character.Character{}
	err := client.do(context, http.MethodGet, "/api/characters/"+url.PathEscape(id), nil, result)
	return result, err
}

// CreateCharacter creates a new character and returns the stored record.
func (client *Client) CreateCharacter(context context.Context, input CharacterInput) (*character.Character, error) {
	result := &character.Character{}
	err := client.do(context, http.MethodPost, "/api/characters", input, result)
	return result, err
}

// UpdateCharacter merges the provided fields into an existing character and
// returns the full record after the merge.
func (client *Client) UpdateCharacter(context context.Context, id string, input CharacterInput) (*character.Character, error) {
	result := &character.Character{}
	err := client.do(context, http.MethodPut, "/api/characters/"+url.PathEscape(id), input, result)
	return result, err
}

// DeleteCharacter removes one character.
func (client *Client) DeleteCharacter(context context.Context, id string) error {
	return client.do(context, http.MethodDelete, "/api/characters/"+url.PathEscape(id), nil, nil)
}

// # Upload Endpoints

// UploadAnimeImage stores an anime cover and returns its public URL.
func (client *Client) UploadAnimeImage(context context.Context, fileName string, content io.Reader) (string, error) {
	return client.upload(context, "/api/uploads/anime", fileName, content)
}

// UploadCharacterImage stores a character portrait and returns its public URL.
func (client *Client) UploadCharacterImage(context context.Context, fileName string, content io.Reader) (string, error) {
	return client.upload(context, "/api/uploads/characters", fileName, content)
}

// upload sends a multipart image POST and extracts the returned URL.
func (client *Client) upload(context context.Context, path, fileName string, content io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	filePart, err := form.CreateFormFile("image", fileName)
	if err != nil {
		return "", fmt.Errorf("client: failed to create file part: %w", err)
	}
	if _, err := io.Copy(filePart, content); err != nil {
		return "", fmt.Errorf("client: failed to buffer upload: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("client: failed to finalize form: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, client.baseURL+path, &body)
	if err != nil {
		return "", fmt.Errorf("client: failed to build request: %w", err)
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	response, err := client.http.Do(request)
	if err != nil {
		return "", fmt.Errorf("client: request failed: %w", err)
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return "", err
	}

	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("client: failed to decode response: %w", err)
	}

	return parsed.URL, nil
}

// # Transport

// do performs one JSON round-trip against the API.
func (client *Client) do(context context.Context, method, path string, payload, target any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("client: failed to encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(context, method, client.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.http.Do(request)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return err
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("client: failed to decode response: %w", err)
	}

	return nil
}

// checkStatus converts a non-2xx response into an [*APIError], reading the
// server's {"message": ...} body when present.
func checkStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode <= 299 {
		return nil
	}

	apiError := &APIError{StatusCode: response.StatusCode}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		apiError.Message = envelope.Message
	} else {
		apiError.Message = http.StatusText(response.StatusCode)
	}

	return apiError
}
