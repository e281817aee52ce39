// Command post_agent runs the LinkedIn post generation service, either
// as an HTTP server or as a one-shot pipeline run.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "post_agent",
		Short: "LinkedIn post generation agent",
		Long:  "Generates LinkedIn posts through a staged LLM pipeline: ideate, outline, draft, polish, hashtag, image prompts, package.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine; real deployments set the
			// environment directly.
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
