// Copyright (c) 2026 Animepedia. All rights reserved.

package anime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animepedia/animepedia/internal/catalog/anime"
)

/*
TestStatus_IsValid checks the closed lifecycle set, including case
sensitivity and the empty value.
*/
func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  anime.Status
		isValid bool
	}{
		{anime.StatusOngoing, true},
		{anime.StatusCompleted, true},
		{anime.StatusUpcoming, true},
		{anime.Status("Paused"), false},
		{anime.Status("completed"), false},
		{anime.Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}
