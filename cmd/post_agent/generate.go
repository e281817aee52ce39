package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arno/linkedin-post-agent/internal/config"
	"github.com/arno/linkedin-post-agent/internal/llm"
	"github.com/arno/linkedin-post-agent/internal/observability"
	"github.com/arno/linkedin-post-agent/internal/pipeline"
	"github.com/arno/linkedin-post-agent/internal/types"
)

func newGenerateCmd() *cobra.Command {
	var (
		topic       string
		audience    string
		goal        string
		tone        string
		constraints string
		maxHashtags int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the full pipeline once and print the post as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			log := observability.NewLogger(cfg.LogLevel, true)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := llm.NewClient(ctx, &cfg.LLM)
			if err != nil {
				return err
			}
			defer client.Close()

			runner := pipeline.NewRunner(client, pipeline.Options{
				Logger: log,
				OnProgress: func(ev pipeline.ProgressEvent) {
					log.Info().
						Str("stage", string(ev.Stage)).
						Str("status", string(ev.Status)).
						Msg("pipeline progress")
				},
			})

			in := &types.FullPostInput{
				Topic:       topic,
				Audience:    audience,
				Goal:        goal,
				Tone:        tone,
				Constraints: constraints,
			}
			if maxHashtags > 0 {
				in.MaxHashtags = &maxHashtags
			}

			out, err := runner.Run(ctx, in)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "post topic (required)")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience (required)")
	cmd.Flags().StringVar(&goal, "goal", "", "what the post should achieve (required)")
	cmd.Flags().StringVar(&tone, "tone", "", "writing tone")
	cmd.Flags().StringVar(&constraints, "constraints", "", "free-form constraints for the draft")
	cmd.Flags().IntVar(&maxHashtags, "max-hashtags", 0, "hashtag budget")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("audience")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}
