// Copyright (c) 2026 Animepedia. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/animepedia/animepedia/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error
// type. The resource names the entity for the 404 message ("Anime not found").
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// Not Found mapping; errors.Is traverses fmt.Errorf %w wrapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// An already classified application error passes through untouched.
	if apperr.IsAppError(err) {
		return err
	}

	// Unknown query errors become opaque Internal Server Errors.
	return apperr.Internal(err)
}
