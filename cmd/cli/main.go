// Copyright (c) 2026 Animepedia. All rights reserved.

// Command cli is a terminal companion for the Animepedia API.
//
// It wraps the data client (pkg/client) so that catalogue maintenance does
// not require hand-crafting curl calls:
//
//	animepedia anime list
//	animepedia anime get <id>
//	animepedia character search "mugen"
//	animepedia anime remove <id>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/animepedia/animepedia/pkg/client"
)

// commandTimeout bounds every CLI invocation.
const commandTimeout = 30 * time.Second

var apiBase string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "animepedia",
	Short: "Browse and maintain the Animepedia catalogue from the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:8080", "Base URL of the Animepedia API")

	rootCmd.AddCommand(animeCmd)
	rootCmd.AddCommand(characterCmd)
}

// newClient builds the API client from the --api flag.
func newClient() *client.Client {
	return client.New(apiBase)
}

// commandContext returns the bounded context for one invocation.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// printJSON renders any API payload as indented JSON on stdout.
func printJSON(payload any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// fail prints the error and exits non-zero.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
