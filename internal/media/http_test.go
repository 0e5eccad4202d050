// Copyright (c) 2026 Animepedia. All rights reserved.

package media_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animepedia/animepedia/internal/media"
)

// multipartBody builds a multipart form with one file part under the given
// field name.
func multipartBody(t *testing.T, fieldName, fileName string) (*bytes.Buffer, string) {
	t.Helper()

	var buffer bytes.Buffer
	form := multipart.NewWriter(&buffer)

	part, err := form.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	return &buffer, form.FormDataContentType()
}

func newUploadHandler(host media.ImageHost) http.Handler {
	return media.NewHandler(newTestService(host)).Routes()
}

/*
TestHTTP_Upload verifies the happy path for both upload endpoints.
*/
func TestHTTP_Upload(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"anime_cover", "/anime"},
		{"character_portrait", "/characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{url: "https://cdn.example/stored.jpg"}
			handler := newUploadHandler(host)

			body, contentType := multipartBody(t, "image", "cover.jpg")
			request := httptest.NewRequest(http.MethodPost, tt.path, body)
			request.Header.Set("Content-Type", contentType)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusCreated, recorder.Code)
			assert.JSONEq(t, `{"url": "https://cdn.example/stored.jpg"}`, recorder.Body.String())
		})
	}
}

/*
TestHTTP_Upload_MissingPart verifies the 400 surface when no "image" part is
present.
*/
func TestHTTP_Upload_MissingPart(t *testing.T) {
	handler := newUploadHandler(&fakeHost{url: "https://cdn.example/never.jpg"})

	t.Run("wrong_field_name", func(t *testing.T) {
		body, contentType := multipartBody(t, "file", "cover.jpg")
		request := httptest.NewRequest(http.MethodPost, "/anime", body)
		request.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"message": "Image file required"}`, recorder.Body.String())
	})

	t.Run("no_multipart_body", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/characters", nil)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"message": "Image file required"}`, recorder.Body.String())
	})
}

/*
TestHTTP_Upload_BadExtension verifies the file-type policy surfaces through
the endpoint.
*/
func TestHTTP_Upload_BadExtension(t *testing.T) {
	handler := newUploadHandler(&fakeHost{url: "https://cdn.example/never.jpg"})

	body, contentType := multipartBody(t, "image", "malware.exe")
	request := httptest.NewRequest(http.MethodPost, "/anime", body)
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Only image files are allowed")
}
