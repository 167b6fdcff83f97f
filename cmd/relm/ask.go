package main

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/assistant"
	"github.com/ShayCichocki/relm/internal/config"
	"github.com/ShayCichocki/relm/internal/examples"
	"github.com/ShayCichocki/relm/pkg/relm"
)

var askModel string

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Run the assistant demo",
	Long: `Send prompts to Claude and show the answers.

Requires ANTHROPIC_API_KEY (or anthropic.api_key), or anthropic.use_bedrock
with AWS credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newAssistant(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return relm.Run(examples.NewAsk(client), appOptions(cfg, "Ask")...)
	},
}

func init() {
	askCmd.Flags().StringVar(&askModel, "model", "", "Model to use (default: anthropic.model)")
}

func newAssistant(ctx context.Context, cfg *config.Config) (*assistant.Client, error) {
	key, _, err := config.ResolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}

	model := cfg.Anthropic.Model
	if askModel != "" {
		model = askModel
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return assistant.NewClient(ctx, assistant.ClientConfig{
		Model:         anthropic.Model(model),
		APIKey:        key,
		UseAWSBedrock: cfg.Anthropic.UseBedrock,
		AWSRegion:     cfg.Anthropic.AWSRegion,
		AWSProfile:    cfg.Anthropic.AWSProfile,
		MaxRetries:    2,
	})
}
