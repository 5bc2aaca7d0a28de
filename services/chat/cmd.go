package chat

import (
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/filingsight/filingsight/pkg/httpserver"
	"github.com/filingsight/filingsight/pkg/koanf"
	"github.com/filingsight/filingsight/services/chat/agent"
	"github.com/filingsight/filingsight/services/chat/api"
	"github.com/filingsight/filingsight/services/chat/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Command() *cobra.Command {
	cnf := koanf.Provide("", config.ChatConfig{
		Http: koanf.HttpServer{
			Address: "localhost:8000",
		},
		ApiVersion: "2024-12-01-preview",
		TokenScope: "https://ai.azure.com/.default",
	})

	cmd := &cobra.Command{
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cnf.ProjectEndpoint == "" {
				return errors.New("PROJECT_ENDPOINT is not set")
			}
			if cnf.AgentId == "" {
				return errors.New("AGENT_ID is not set")
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}

			logger = logger.Named("chat")

			credential, err := azidentity.NewDefaultAzureCredential(nil)
			if err != nil {
				return err
			}

			agentService := agent.New(logger, cnf, credential)

			cmd.SilenceUsage = true

			return httpserver.RegisterAndStart(
				logger,
				cnf.Http.Address,
				api.New(logger, agentService),
			)
		},
	}

	return cmd
}
