package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/planflow/planflow/internal/chat"
	"github.com/planflow/planflow/internal/config"
	"github.com/planflow/planflow/internal/gate"
	"github.com/planflow/planflow/internal/log"
	"github.com/planflow/planflow/internal/planner"
	"github.com/planflow/planflow/internal/provider"
	"github.com/planflow/planflow/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planning HTTP server",
	Long: `Start the HTTP server exposing the chat, plan generation, and report
endpoints. Configuration is read from planflow.yaml (or --config), with
PLANFLOW_API_KEY and PLANFLOW_ADDR overriding the file.`,
	RunE: runServe,
}

var serveConfigPath string

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "path to the configuration file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.Log.Level),
		Format: log.ParseFormat(cfg.Log.Format),
		Output: os.Stdout,
	})

	var clientOpts []provider.Option
	if cfg.Provider.BaseURL != "" {
		clientOpts = append(clientOpts, provider.WithBaseURL(cfg.Provider.BaseURL))
	}
	client := provider.NewGroqClient(cfg.Provider.APIKey, clientOpts...)

	attempts := make([]planner.Attempt, 0, len(cfg.Planner.Chain))
	for _, m := range cfg.Planner.Chain {
		attempts = append(attempts, planner.Attempt{Model: m.Model, Temperature: m.Temperature})
	}

	chain := planner.NewChain(client, attempts, cfg.AttemptTimeout(), logger)
	planSvc := planner.New(gate.NewRuleGate(), chain, logger, nil)
	chatSvc := chat.NewHandler(client, cfg.Chat.Model, cfg.Chat.Temperature, logger, nil)

	srv := server.New(planSvc, chatSvc, logger, server.Options{
		Address:         cfg.Server.Address,
		ReadTimeout:     cfg.ReadTimeout(),
		WriteTimeout:    cfg.WriteTimeout(),
		ShutdownTimeout: cfg.ShutdownTimeout(),
	}, nil)

	return srv.ListenAndServe(cmd.Context())
}
