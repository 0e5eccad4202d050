// Copyright (c) 2026 Animepedia. All rights reserved.

/*
Package media implements the image upload adapter.

Storage and transformation of images are delegated to an external image host
(a Cloudinary-compatible unsigned upload endpoint). This package only
validates the upload, forwards the bytes, and hands the resulting public URL
back to the client; the catalogue stores URLs, never image data.
*/
package media

import (
	"context"
	"io"
)

// # Image Host Contract

// UploadRequest carries one image toward the external host.
type UploadRequest struct {
	// FileName is the original client file name, used for content sniffing
	// on the host side.
	FileName string

	// PublicID is the slug under which the asset is stored remotely.
	PublicID string

	// Folder is the remote folder, e.g. "animepedia/anime".
	Folder string

	// Transformation is the host-side eager transformation to apply,
	// e.g. "c_fill,w_500,h_750".
	Transformation string

	// Content streams the raw image bytes.
	Content io.Reader
}

// ImageHost is the boundary to the external image storage service.
type ImageHost interface {

	/*
		Upload transfers one image to the host.

		Parameters:
		  - context: context.Context
		  - upload: UploadRequest

		Returns:
		  - string: The public HTTPS URL of the stored asset
		  - error: Transport failures or host-side rejections
	*/
	Upload(context context.Context, upload UploadRequest) (string, error)
}
