// Package commands provides CLI commands for wellnesshub.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wellnesshub/wellnesshub-cli/internal/config"
)

var (
	// Global flags
	serverFlag   string
	categoryFlag string
	outputFlag   string
	fileFlag     string
	rawFlag      bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wellnesshub [query]",
	Short: "CLI for the WellnessHub support assistant",
	Long: `wellnesshub is a command-line client for the WellnessHub support
assistant. Queries are tagged with a support category and sent to the
WellnessHub backend, and responses are rendered in the terminal.

Examples:
  wellnesshub chat                       Start interactive chat
  wellnesshub "I have a headache"        Send a single query
  wellnesshub -c "Emotional Support" "I feel anxious"
  wellnesshub -f question.md             Read query from file
  cat question.md | wellnesshub          Read query from stdin
  wellnesshub "Hello" -o response.md     Save response to file
  wellnesshub categories list            Show support categories`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("wellnesshub %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Piped stdout always gets raw output
		raw := rawFlag || !isStdoutTTY()

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), raw)
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), raw)
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], raw)
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "WellnessHub server URL (e.g., http://localhost:8000)")
	rootCmd.PersistentFlags().StringVarP(&categoryFlag, "category", "c", "", "Support category for the query")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read query from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the raw response without decoration")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(categoriesCmd)
}

// getServerURL returns the server URL to use (from flag, env, or config)
func getServerURL() string {
	if serverFlag != "" {
		return serverFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DefaultConfig().ServerURL
	}

	return cfg.ServerURL
}

// getCategory returns the category to tag queries with. The flag wins,
// then the configured default. The name is validated against the
// category list so typos fail before a request is made.
func getCategory() (string, error) {
	name := categoryFlag
	if name == "" {
		cats, err := config.LoadCategories()
		if err != nil {
			return config.DefaultCategoryName, nil
		}
		return cats.DefaultCategory, nil
	}

	if _, err := config.GetCategory(name); err != nil {
		return "", err
	}
	return name, nil
}
