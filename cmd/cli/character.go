// Copyright (c) 2026 Animepedia. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/animepedia/animepedia/pkg/client"
)

// Flags for `character create`.
var (
	characterName  string
	characterImage string
	characterAnime string
	characterRole  string
)

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Work with the character roster",
}

var characterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every character, ordered by name",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		characters, err := newClient().ListCharacters(ctx)
		if err != nil {
			fail(err)
		}
		if err := printJSON(characters); err != nil {
			fail(err)
		}
	},
}

var characterSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search characters by name or japaneseName substring",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		characters, err := newClient().SearchCharacters(ctx, args[0])
		if err != nil {
			fail(err)
		}
		if err := printJSON(characters); err != nil {
			fail(err)
		}
	},
}

var characterGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one character with its anime projection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		character, err := newClient().GetCharacter(ctx, args[0])
		if err != nil {
			fail(err)
		}
		if err := printJSON(character); err != nil {
			fail(err)
		}
	},
}

var characterCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new character",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		created, err := newClient().CreateCharacter(ctx, client.CharacterInput{
			Name:  characterName,
			Image: characterImage,
			Anime: characterAnime,
			Role:  characterRole,
		})
		if err != nil {
			fail(err)
		}
		if err := printJSON(created); err != nil {
			fail(err)
		}
	},
}

var characterRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete one character",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		if err := newClient().DeleteCharacter(ctx, args[0]); err != nil {
			fail(err)
		}
		fmt.Println("removed", args[0])
	},
}

func init() {
	characterCreateCmd.Flags().StringVar(&characterName, "name", "", "Character name (required)")
	characterCreateCmd.Flags().StringVar(&characterImage, "image", "", "Portrait image URL (required)")
	characterCreateCmd.Flags().StringVar(&characterAnime, "anime", "", "UUID of the referenced anime (required)")
	characterCreateCmd.Flags().StringVar(&characterRole, "role", "", "Main, Supporting, Antagonist or Other")

	characterCmd.AddCommand(characterListCmd)
	characterCmd.AddCommand(characterSearchCmd)
	characterCmd.AddCommand(characterGetCmd)
	characterCmd.AddCommand(characterCreateCmd)
	characterCmd.AddCommand(characterRemoveCmd)
}
