package commands

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	if cmd.Use != "wellnesshub [query]" {
		t.Errorf("Expected use 'wellnesshub [query]', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestRootCommand_Args(t *testing.T) {
	// Argument validation (cobra.MaximumNArgs(1)) is handled by Cobra
	if rootCmd.Args == nil {
		t.Error("Args validation should be configured")
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	persistentFlags := []string{"server", "category"}
	for _, flagName := range persistentFlags {
		t.Run(flagName+" flag (persistent)", func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(flagName)
			if flag == nil {
				t.Errorf("PersistentFlag %s not found", flagName)
			}
		})
	}

	localFlags := []string{"output", "file", "raw", "version"}
	for _, flagName := range localFlags {
		t.Run(flagName+" flag", func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(flagName)
			if flag == nil {
				t.Errorf("Flag %s not found", flagName)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	expectedSubcommands := []string{"chat", "config", "categories"}

	for _, sub := range expectedSubcommands {
		t.Run("subcommand "+sub, func(t *testing.T) {
			found := false
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() == sub {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Subcommand %s not found", sub)
			}
		})
	}
}

func TestGetServerURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name       string
		serverFlag string
		expected   string
	}{
		{
			name:       "server flag set",
			serverFlag: "http://example.com:9000",
			expected:   "http://example.com:9000",
		},
		{
			name:       "no flag falls back to default",
			serverFlag: "",
			expected:   "http://localhost:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalFlag := serverFlag
			defer func() { serverFlag = originalFlag }()
			serverFlag = tt.serverFlag

			result := getServerURL()
			if result != tt.expected {
				t.Errorf("getServerURL() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestGetServerURL_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WELLNESSHUB_SERVER", "http://wellness.internal:8080")

	originalFlag := serverFlag
	defer func() { serverFlag = originalFlag }()
	serverFlag = ""

	if got := getServerURL(); got != "http://wellness.internal:8080" {
		t.Errorf("getServerURL() = %s, want env override", got)
	}
}

func TestGetCategory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	originalFlag := categoryFlag
	defer func() { categoryFlag = originalFlag }()

	t.Run("no flag uses default", func(t *testing.T) {
		categoryFlag = ""
		got, err := getCategory()
		if err != nil {
			t.Fatalf("getCategory() returned error: %v", err)
		}
		if got != "Medical Support" {
			t.Errorf("getCategory() = %q, want %q", got, "Medical Support")
		}
	})

	t.Run("valid flag wins", func(t *testing.T) {
		categoryFlag = "Emotional Support"
		got, err := getCategory()
		if err != nil {
			t.Fatalf("getCategory() returned error: %v", err)
		}
		if got != "Emotional Support" {
			t.Errorf("getCategory() = %q, want %q", got, "Emotional Support")
		}
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		categoryFlag = "Astrology"
		if _, err := getCategory(); err == nil {
			t.Error("getCategory() should reject an unknown category")
		}
	})
}

func TestRootCmd_FileInput(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test_query_*.txt")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	testContent := "Hello, world!"
	if _, err := tmpFile.WriteString(testContent); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileFlag, _ := cmd.Flags().GetString("file")
			if fileFlag != "" {
				data, err := os.ReadFile(fileFlag)
				if err != nil {
					return err
				}
				if string(data) != testContent {
					t.Errorf("File content = %s, want %s", string(data), testContent)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read query from file")

	cmd.SetArgs([]string{"--file", tmpFile.Name()})
	if err := cmd.Execute(); err != nil {
		t.Errorf("File input test failed: %v", err)
	}
}

func TestRunQuery_EmptyQuery(t *testing.T) {
	if err := runQuery("   \n\t", true); err == nil {
		t.Error("runQuery should reject a whitespace-only query")
	}
}
