// Copyright (c) 2026 Animepedia. All rights reserved.

package media_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animepedia/animepedia/internal/media"
	"github.com/animepedia/animepedia/internal/platform/apperr"
)

// fakeHost records the upload request and returns a canned URL.
type fakeHost struct {
	last media.UploadRequest
	url  string
	err  error
}

func (host *fakeHost) Upload(_ context.Context, request media.UploadRequest) (string, error) {
	host.last = request
	if host.err != nil {
		return "", host.err
	}
	return host.url, nil
}

func newTestService(host media.ImageHost) *media.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return media.NewService(host, logger)
}

/*
TestUploadAnimeImage verifies folder, transformation, and public-id routing
for cover uploads.
*/
func TestUploadAnimeImage(t *testing.T) {
	host := &fakeHost{url: "https://cdn.example/animepedia/anime/cowboy-bebop.jpg"}
	service := newTestService(host)

	url, err := service.UploadAnimeImage(context.Background(), "Cowboy Bebop.JPG", nil)
	require.NoError(t, err)
	assert.Equal(t, host.url, url)

	assert.Equal(t, "animepedia/anime", host.last.Folder)
	assert.Equal(t, "c_fill,w_500,h_750", host.last.Transformation)
	assert.Equal(t, "cowboy-bebop", host.last.PublicID)
}

/*
TestUploadCharacterImage verifies the portrait variant routes to the
character folder with its own crop.
*/
func TestUploadCharacterImage(t *testing.T) {
	host := &fakeHost{url: "https://cdn.example/animepedia/characters/spike.webp"}
	service := newTestService(host)

	url, err := service.UploadCharacterImage(context.Background(), "spike.webp", nil)
	require.NoError(t, err)
	assert.Equal(t, host.url, url)

	assert.Equal(t, "animepedia/characters", host.last.Folder)
	assert.Equal(t, "c_fill,w_400,h_600", host.last.Transformation)
	assert.Equal(t, "spike", host.last.PublicID)
}

/*
TestUpload_RejectsNonImages verifies the extension policy fires before the
host is ever contacted.
*/
func TestUpload_RejectsNonImages(t *testing.T) {
	tests := []string{"notes.txt", "archive.zip", "cover.gif", "noextension"}

	for _, fileName := range tests {
		t.Run(fileName, func(t *testing.T) {
			host := &fakeHost{url: "https://cdn.example/never.jpg"}
			service := newTestService(host)

			_, err := service.UploadAnimeImage(context.Background(), fileName, nil)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 400, ae.HTTPStatus)
			assert.Equal(t, "Only image files are allowed (jpg, jpeg, png, webp)", ae.Message)

			// The host never saw the request
			assert.Empty(t, host.last.FileName)
		})
	}
}
