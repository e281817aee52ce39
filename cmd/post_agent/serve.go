package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arno/linkedin-post-agent/internal/config"
	"github.com/arno/linkedin-post-agent/internal/llm"
	"github.com/arno/linkedin-post-agent/internal/observability"
	"github.com/arno/linkedin-post-agent/internal/pipeline"
	"github.com/arno/linkedin-post-agent/internal/server"
	"github.com/arno/linkedin-post-agent/internal/stages"
)

func newServeCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			log := observability.NewLogger(cfg.LogLevel, pretty)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := llm.NewClient(ctx, &cfg.LLM)
			if err != nil {
				return err
			}
			defer client.Close()

			svc := stages.New(client, log)
			runner := pipeline.NewRunner(client, pipeline.Options{Logger: log})
			h := server.NewHandlers(svc, runner, log)

			srv := server.New(cfg.Port, server.NewRouter(h, log), log)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "human-readable log output")
	return cmd
}
