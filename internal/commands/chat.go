package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wellnesshub/wellnesshub-cli/internal/api"
	"github.com/wellnesshub/wellnesshub-cli/internal/config"
	"github.com/wellnesshub/wellnesshub-cli/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with WellnessHub.

Each message is tagged with the selected support category. Use the
/category command inside the session to switch categories.
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	cats, err := config.LoadCategories()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	if categoryFlag != "" {
		if _, err := config.GetCategory(categoryFlag); err != nil {
			return err
		}
		cats.DefaultCategory = categoryFlag
	}

	serverURL := getServerURL()

	client, err := api.NewClient(
		api.WithServerURL(serverURL),
		api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	return tui.RunChat(client, client.ServerURL(), cats, cfg)
}
