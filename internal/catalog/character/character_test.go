// Copyright (c) 2026 Animepedia. All rights reserved.

package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animepedia/animepedia/internal/catalog/character"
)

/*
TestRole_IsValid checks the closed role set, including case sensitivity and
the empty value.
*/
func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		role    character.Role
		isValid bool
	}{
		{character.RoleMain, true},
		{character.RoleSupporting, true},
		{character.RoleAntagonist, true},
		{character.RoleOther, true},
		{character.Role("Sidekick"), false},
		{character.Role("main"), false},
		{character.Role(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.role.IsValid())
		})
	}
}

/*
TestGender_IsValid checks the closed gender set. The empty value is not a
member; optionality is handled by the service, not the enum.
*/
func TestGender_IsValid(t *testing.T) {
	tests := []struct {
		gender  character.Gender
		isValid bool
	}{
		{character.GenderMale, true},
		{character.GenderFemale, true},
		{character.GenderNonBinary, true},
		{character.GenderUnknown, true},
		{character.Gender("Robot"), false},
		{character.Gender(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.gender), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.gender.IsValid())
		})
	}
}
