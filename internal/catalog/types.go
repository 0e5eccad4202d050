// Copyright (c) 2026 Animepedia. All rights reserved.

/*
Package catalog defines the wire types shared by the Anime and Character
domains of the encyclopedia.

Legacy clients of the catalogue submitted list fields as single
comma-delimited strings and quote arrays as serialized JSON strings. The
types here accept both the native structured form and the legacy string
form, so that either wire shape decodes into the same Go value and the
split/parse step never leaks into handlers or services.
*/
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/animepedia/animepedia/pkg/slice"
)

// # List Fields

// StringList is an ordered sequence of strings (genres, abilities).
//
// # Decoding
//
// It unmarshals from either a JSON array of strings or a single string that
// is split on commas, with every element trimmed:
//
//	["Action", " Adventure"]  → ["Action", "Adventure"]
//	"Action, Adventure"       → ["Action", "Adventure"]
//	""                        → []
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {

	// Native form: array of strings.
	var elements []string
	if err := json.Unmarshal(data, &elements); err == nil {
		*l = trimElements(elements)
		return nil
	}

	// Legacy form: one comma-delimited string.
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("catalog: list field must be an array of strings or a comma-delimited string")
	}

	if strings.TrimSpace(joined) == "" {
		*l = StringList{}
		return nil
	}

	*l = trimElements(strings.Split(joined, ","))
	return nil
}

// trimElements trims whitespace around every element and drops empties.
func trimElements(elements []string) StringList {
	trimmed := slice.Map(elements, strings.TrimSpace)
	return StringList(slice.Filter(trimmed, func(s string) bool { return s != "" }))
}

// # Quotes

// Quote is a single memorable line attributed to a character.
type Quote struct {
	Text    string `json:"text"`
	Episode string `json:"episode"`
}

// QuoteList is the ordered sequence of quotes attached to a character.
//
// # Decoding
//
// It unmarshals from either a native JSON array of quote objects or a string
// containing the serialized array (the legacy wire form). A string that does
// not parse as a quote array is a decode error, surfaced to the client as a
// validation failure.
type QuoteList []Quote

func (q *QuoteList) UnmarshalJSON(data []byte) error {

	// Native form: array of quote objects.
	var quotes []Quote
	if err := json.Unmarshal(data, &quotes); err == nil {
		*q = quotes
		return nil
	}

	// Legacy form: serialized array inside a JSON string.
	var serialized string
	if err := json.Unmarshal(data, &serialized); err != nil {
		return fmt.Errorf("catalog: quotes must be an array of {text, episode} objects or a serialized array")
	}

	if strings.TrimSpace(serialized) == "" {
		*q = QuoteList{}
		return nil
	}

	if err := json.Unmarshal([]byte(serialized), &quotes); err != nil {
		return fmt.Errorf("catalog: malformed serialized quotes: %w", err)
	}

	*q = quotes
	return nil
}

// # Voice Actors

// VoiceActors names the performers voicing a character per language.
// Both fields default to empty strings rather than null.
type VoiceActors struct {
	Japanese string `json:"japanese"`
	English  string `json:"english"`
}
