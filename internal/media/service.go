// Copyright (c) 2026 Animepedia. All rights reserved.

package media

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/animepedia/animepedia/internal/platform/apperr"
	"github.com/animepedia/animepedia/internal/platform/constants"
	"github.com/animepedia/animepedia/pkg/slug"
)

// # Service Layer

// allowedExtensions is the closed set of accepted image file types.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Eager transformations applied host-side per asset kind.
const (
	animeTransformation     = "c_fill,w_500,h_750"
	characterTransformation = "c_fill,w_400,h_600"
)

// Service validates uploads and routes them to the external image host.
type Service struct {
	host   ImageHost
	logger *slog.Logger
}

// NewService constructs a new media [Service].
func NewService(host ImageHost, logger *slog.Logger) *Service {
	return &Service{
		host:   host,
		logger: logger,
	}
}

// UploadAnimeImage stores an anime cover (cropped to 500x750) and returns
// its public URL.
func (service *Service) UploadAnimeImage(context context.Context, fileName string, content io.Reader) (string, error) {
	return service.upload(context, constants.MediaFolderAnime, animeTransformation, fileName, content)
}

// UploadCharacterImage stores a character portrait (cropped to 400x600) and
// returns its public URL.
func (service *Service) UploadCharacterImage(context context.Context, fileName string, content io.Reader) (string, error) {
	return service.upload(context, constants.MediaFolderCharacters, characterTransformation, fileName, content)
}

// upload enforces the file-type policy, derives a stable public id from the
// file name, and delegates storage to the host.
func (service *Service) upload(context context.Context, folder, transformation, fileName string, content io.Reader) (string, error) {
	extension := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[extension] {
		return "", apperr.BadRequest("Only image files are allowed (jpg, jpeg, png, webp)")
	}

	publicID := slug.From(strings.TrimSuffix(filepath.Base(fileName), extension))

	url, err := service.host.Upload(context, UploadRequest{
		FileName:       fileName,
		PublicID:       publicID,
		Folder:         folder,
		Transformation: transformation,
		Content:        content,
	})
	if err != nil {
		return "", err
	}

	service.logger.Info("image_uploaded",
		slog.String("folder", folder),
		slog.String("public_id", publicID),
	)

	return url, nil
}
