// Copyright (c) 2026 Animepedia. All rights reserved.

package dberr_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animepedia/animepedia/internal/platform/apperr"
	"github.com/animepedia/animepedia/internal/platform/dberr"
)

/*
TestWrap covers the classification paths: nil passthrough, row absence onto
the named resource, pre-classified errors untouched, and everything else
hidden behind an opaque 500.
*/
func TestWrap(t *testing.T) {
	t.Run("nil_passthrough", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "Anime"))
	})

	t.Run("no_rows_becomes_resource_not_found", func(t *testing.T) {
		err := dberr.Wrap(pgx.ErrNoRows, "Anime")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, "Anime not found", apperr.As(err).Message)
	})

	t.Run("wrapped_no_rows_still_maps", func(t *testing.T) {
		cause := fmt.Errorf("postgres: failed to find anime by id: %w", pgx.ErrNoRows)

		err := dberr.Wrap(cause, "Character")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, "Character not found", apperr.As(err).Message)
	})

	t.Run("classified_error_untouched", func(t *testing.T) {
		classified := apperr.BadRequest("Invalid anime ID")
		assert.Equal(t, error(classified), dberr.Wrap(classified, "Anime"))
	})

	t.Run("unknown_error_is_opaque_internal", func(t *testing.T) {
		cause := fmt.Errorf("connection reset by peer")

		err := dberr.Wrap(cause, "Anime")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
		assert.Equal(t, "An unexpected error occurred", ae.Message)
		assert.Equal(t, cause, ae.Cause)
	})
}
