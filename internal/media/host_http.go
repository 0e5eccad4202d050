// Copyright (c) 2026 Animepedia. All rights reserved.

package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/animepedia/animepedia/internal/platform/config"
)

// # HTTP Image Host

// hostTimeout bounds a single upload round-trip to the external host.
const hostTimeout = 30 * time.Second

// httpImageHost implements [ImageHost] against a Cloudinary-compatible
// unsigned upload endpoint.
type httpImageHost struct {
	client       *http.Client
	uploadURL    string
	uploadPreset string
	apiKey       string
}

// NewHTTPImageHost constructs the production [ImageHost] from configuration.
func NewHTTPImageHost(cfg *config.Config) ImageHost {
	return &httpImageHost{
		client:       &http.Client{Timeout: hostTimeout},
		uploadURL:    cfg.MediaUploadURL,
		uploadPreset: cfg.MediaUploadPreset,
		apiKey:       cfg.MediaAPIKey,
	}
}

// hostResponse is the subset of the host's upload response we consume.
type hostResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

/*
Upload forwards one image to the external host as a multipart POST.

Description: Builds the unsigned upload form (preset, folder, public id,
eager transformation) around the raw file part, then parses the secure URL
out of the JSON response. Host-side rejections surface the host's own error
message wrapped as a transport error; the handler maps that to a 500, since
a misconfigured or unreachable host is a server problem, not a client one.

Parameters:
  - context: context.Context
  - upload: UploadRequest

Returns:
  - string: The public HTTPS URL of the stored asset
  - error: Transport failures or host-side rejections
*/
func (host *httpImageHost) Upload(context context.Context, upload UploadRequest) (string, error) {
	if host.uploadURL == "" {
		return "", fmt.Errorf("media: image host is not configured")
	}

	// Multipart form assembly
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fields := map[string]string{
		"upload_preset":  host.uploadPreset,
		"folder":         upload.Folder,
		"public_id":      upload.PublicID,
		"transformation": upload.Transformation,
	}
	if host.apiKey != "" {
		fields["api_key"] = host.apiKey
	}

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := form.WriteField(name, value); err != nil {
			return "", fmt.Errorf("media: failed to write form field %s: %w", name, err)
		}
	}

	filePart, err := form.CreateFormFile("file", upload.FileName)
	if err != nil {
		return "", fmt.Errorf("media: failed to create file part: %w", err)
	}
	if _, err := io.Copy(filePart, upload.Content); err != nil {
		return "", fmt.Errorf("media: failed to buffer upload: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("media: failed to finalize form: %w", err)
	}

	// Dispatch to the host
	request, err := http.NewRequestWithContext(context, http.MethodPost, host.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("media: failed to build host request: %w", err)
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	response, err := host.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("media: host request failed: %w", err)
	}
	defer response.Body.Close()

	var parsed hostResponse
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("media: failed to decode host response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("media: host rejected upload (%d): %s", response.StatusCode, parsed.Error.Message)
	}

	if parsed.SecureURL == "" {
		return "", fmt.Errorf("media: host response carried no secure_url")
	}

	return parsed.SecureURL, nil
}
