package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wellnesshub/wellnesshub-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
	Long:  `View and change wellnesshub settings stored in ~/.wellnesshub/config.json.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it to disk.

Keys:
  server            Server URL
  category          Default support category
  reveal-interval   Milliseconds between revealed characters
  timeout           Request timeout in seconds
  verbose           Request timing output (true/false)
  clipboard         Copy responses to clipboard (true/false)
  markdown-style    Glamour style (dark, light, or path to theme)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path, _ := config.GetConfigPath()

	fmt.Printf("Config file: %s\n\n", path)
	fmt.Printf("server:           %s\n", cfg.ServerURL)
	fmt.Printf("category:         %s\n", cfg.DefaultCategory)
	fmt.Printf("reveal-interval:  %d ms\n", cfg.RevealIntervalMS)
	fmt.Printf("timeout:          %d s\n", cfg.TimeoutSeconds)
	fmt.Printf("verbose:          %t\n", cfg.Verbose)
	fmt.Printf("clipboard:        %t\n", cfg.CopyToClipboard)
	fmt.Printf("markdown-style:   %s\n", cfg.Markdown.Style)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "server":
		cfg.ServerURL = value

	case "category":
		if _, err := config.GetCategory(value); err != nil {
			return err
		}
		cfg.DefaultCategory = value
		if err := config.SetDefaultCategory(value); err != nil {
			return err
		}

	case "reveal-interval":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("reveal-interval must be a positive integer, got '%s'", value)
		}
		cfg.RevealIntervalMS = n

	case "timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout must be a positive integer, got '%s'", value)
		}
		cfg.TimeoutSeconds = n

	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false, got '%s'", value)
		}
		cfg.Verbose = b

	case "clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("clipboard must be true or false, got '%s'", value)
		}
		cfg.CopyToClipboard = b

	case "markdown-style":
		cfg.Markdown.Style = value

	default:
		return fmt.Errorf("unknown setting '%s'", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("%s set to %s\n", key, value)
	return nil
}
