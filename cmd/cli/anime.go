// Copyright (c) 2026 Animepedia. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/animepedia/animepedia/pkg/client"
	"github.com/animepedia/animepedia/pkg/pointer"
	"github.com/animepedia/animepedia/pkg/slice"
)

// Flags for `anime create`.
var (
	animeTitle       string
	animeImage       string
	animeDescription string
	animeStudio      string
	animeStatus      string
	animeYear        int
	animeGenres      string
)

var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "Work with the anime catalogue",
}

var animeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every anime, ordered by title",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		animes, err := newClient().ListAnime(ctx)
		if err != nil {
			fail(err)
		}
		if err := printJSON(animes); err != nil {
			fail(err)
		}
	},
}

var animeGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one anime",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		anime, err := newClient().GetAnime(ctx, args[0])
		if err != nil {
			fail(err)
		}
		if err := printJSON(anime); err != nil {
			fail(err)
		}
	},
}

var animeCharactersCmd = &cobra.Command{
	Use:   "characters <id>",
	Short: "List the character roster of one anime",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		characters, err := newClient().AnimeCharacters(ctx, args[0])
		if err != nil {
			fail(err)
		}
		if err := printJSON(characters); err != nil {
			fail(err)
		}
	},
}

var animeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new anime",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		input := client.AnimeInput{
			Title:       animeTitle,
			Image:       animeImage,
			Description: animeDescription,
			Studio:      animeStudio,
			Status:      animeStatus,
		}
		if animeYear > 0 {
			input.ReleaseYear = pointer.To(animeYear)
		}
		if animeGenres != "" {
			input.Genres = splitList(animeGenres)
		}

		created, err := newClient().CreateAnime(ctx, input)
		if err != nil {
			fail(err)
		}
		if err := printJSON(created); err != nil {
			fail(err)
		}
	},
}

var animeRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an anime and its entire character roster",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		if err := newClient().DeleteAnime(ctx, args[0]); err != nil {
			fail(err)
		}
		fmt.Println("removed", args[0])
	},
}

// splitList turns a comma-delimited flag value into trimmed elements.
func splitList(joined string) []string {
	trimmed := slice.Map(strings.Split(joined, ","), strings.TrimSpace)
	return slice.Filter(trimmed, func(s string) bool { return s != "" })
}

func init() {
	animeCreateCmd.Flags().StringVar(&animeTitle, "title", "", "Display title (required)")
	animeCreateCmd.Flags().StringVar(&animeImage, "image", "", "Cover image URL (required)")
	animeCreateCmd.Flags().StringVar(&animeDescription, "description", "", "Synopsis (required)")
	animeCreateCmd.Flags().StringVar(&animeStudio, "studio", "", "Producing studio")
	animeCreateCmd.Flags().StringVar(&animeStatus, "status", "", "Ongoing, Completed or Upcoming")
	animeCreateCmd.Flags().IntVar(&animeYear, "year", 0, "Release year")
	animeCreateCmd.Flags().StringVar(&animeGenres, "genres", "", "Comma-delimited genre list")

	animeCmd.AddCommand(animeListCmd)
	animeCmd.AddCommand(animeGetCmd)
	animeCmd.AddCommand(animeCharactersCmd)
	animeCmd.AddCommand(animeCreateCmd)
	animeCmd.AddCommand(animeRemoveCmd)
}
