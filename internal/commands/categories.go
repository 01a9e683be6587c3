package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wellnesshub/wellnesshub-cli/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage support categories",
	Long:  `View and manage the support categories offered when sending queries.`,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available categories",
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRemove,
}

var categoriesSetDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the default category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesSetDefault,
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRemoveCmd)
	categoriesCmd.AddCommand(categoriesSetDefaultCmd)
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadCategories()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION\tDEFAULT")
	_, _ = fmt.Fprintln(w, "----\t-----------\t-------")

	for _, c := range cfg.Categories {
		isDefault := ""
		if c.Name == cfg.DefaultCategory {
			isDefault = "✓"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Description, isDefault)
	}

	return w.Flush()
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	// Check if already exists
	if _, err := config.GetCategory(name); err == nil {
		return fmt.Errorf("category '%s' already exists", name)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter description: ")
	desc, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	desc = strings.TrimSpace(desc)

	category := config.Category{
		Name:        name,
		Description: desc,
	}

	if err := config.AddCategory(category); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	fmt.Printf("Category '%s' added\n", name)
	return nil
}

func runCategoriesRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.RemoveCategory(name); err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}

	fmt.Printf("Category '%s' removed\n", name)
	return nil
}

func runCategoriesSetDefault(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.SetDefaultCategory(name); err != nil {
		return fmt.Errorf("failed to set default category: %w", err)
	}

	fmt.Printf("Default category set to '%s'\n", name)
	return nil
}
