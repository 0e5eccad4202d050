// Copyright (c) 2026 Animepedia. All rights reserved.

package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubHost points an httpImageHost at the given test server.
func newStubHost(server *httptest.Server) *httpImageHost {
	return &httpImageHost{
		client:       server.Client(),
		uploadURL:    server.URL,
		uploadPreset: "animepedia_unsigned",
		apiKey:       "test-key",
	}
}

/*
TestHTTPImageHost_Upload verifies the multipart form the host receives and
the URL extraction from its response.
*/
func TestHTTPImageHost_Upload(t *testing.T) {
	var received struct {
		preset         string
		folder         string
		publicID       string
		transformation string
		apiKey         string
		fileName       string
		fileContent    string
	}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseMultipartForm(1<<20))
		received.preset = request.FormValue("upload_preset")
		received.folder = request.FormValue("folder")
		received.publicID = request.FormValue("public_id")
		received.transformation = request.FormValue("transformation")
		received.apiKey = request.FormValue("api_key")

		file, header, err := request.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		received.fileName = header.Filename

		content := make([]byte, header.Size)
		_, _ = file.Read(content)
		received.fileContent = string(content)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"secure_url": "https://cdn.example/animepedia/anime/bebop.jpg"}`))
	}))
	defer server.Close()

	host := newStubHost(server)

	url, err := host.Upload(context.Background(), UploadRequest{
		FileName:       "bebop.jpg",
		PublicID:       "bebop",
		Folder:         "animepedia/anime",
		Transformation: "c_fill,w_500,h_750",
		Content:        strings.NewReader("raw image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/animepedia/anime/bebop.jpg", url)

	assert.Equal(t, "animepedia_unsigned", received.preset)
	assert.Equal(t, "animepedia/anime", received.folder)
	assert.Equal(t, "bebop", received.publicID)
	assert.Equal(t, "c_fill,w_500,h_750", received.transformation)
	assert.Equal(t, "test-key", received.apiKey)
	assert.Equal(t, "bebop.jpg", received.fileName)
	assert.Equal(t, "raw image bytes", received.fileContent)
}

/*
TestHTTPImageHost_Upload_Rejected verifies the host's own error message is
carried through on a non-2xx response.
*/
func TestHTTPImageHost_Upload_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`{"error": {"message": "Upload preset not found"}}`))
	}))
	defer server.Close()

	host := newStubHost(server)

	_, err := host.Upload(context.Background(), UploadRequest{
		FileName: "x.jpg",
		Content:  strings.NewReader("bytes"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

/*
TestHTTPImageHost_Upload_Unconfigured verifies the guard against a missing
upload URL.
*/
func TestHTTPImageHost_Upload_Unconfigured(t *testing.T) {
	host := &httpImageHost{client: http.DefaultClient}

	_, err := host.Upload(context.Background(), UploadRequest{
		FileName: "x.jpg",
		Content:  strings.NewReader("bytes"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
