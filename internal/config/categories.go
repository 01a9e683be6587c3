package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultCategoryName is the category preselected when no
// configuration exists.
const DefaultCategoryName = "Medical Support"

// Category is a label attached to each outgoing query, chosen from the
// fixed set offered by the chat panel.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryConfig stores the offered categories and which one is
// preselected when the panel opens. Exactly one category is the
// default at all times.
type CategoryConfig struct {
	Categories      []Category `json:"categories"`
	DefaultCategory string     `json:"default_category,omitempty"`
}

// DefaultCategories returns the built-in category set
func DefaultCategories() []Category {
	return []Category{
		{
			Name:        "Medical Support",
			Description: "Questions about symptoms, medication, and general health",
		},
		{
			Name:        "Emotional Support",
			Description: "Stress, anxiety, and coping strategies",
		},
		{
			Name:        "General Wellness",
			Description: "Sleep, nutrition, exercise, and daily habits",
		},
	}
}

// GetCategoriesPath returns the path to the categories file
func GetCategoriesPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "categories.json"), nil
}

// LoadCategories loads the category configuration, merging user
// customizations over the built-in set.
func LoadCategories() (*CategoryConfig, error) {
	path, err := GetCategoriesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CategoryConfig{
				Categories:      DefaultCategories(),
				DefaultCategory: DefaultCategoryName,
			}, nil
		}
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	var cfg CategoryConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}

	cfg.Categories = mergeCategories(DefaultCategories(), cfg.Categories)
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = DefaultCategoryName
	}

	return &cfg, nil
}

// SaveCategories saves the category configuration
func SaveCategories(cfg *CategoryConfig) error {
	path, err := GetCategoriesPath()
	if err != nil {
		return err
	}

	if _, err := EnsureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}

// GetCategory returns a category by name
func GetCategory(name string) (*Category, error) {
	cfg, err := LoadCategories()
	if err != nil {
		return nil, err
	}

	for _, c := range cfg.Categories {
		if c.Name == name {
			return &c, nil
		}
	}

	return nil, fmt.Errorf("category '%s' not found", name)
}

// ListCategoryNames returns the names of all categories
func ListCategoryNames() ([]string, error) {
	cfg, err := LoadCategories()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(cfg.Categories))
	for i, c := range cfg.Categories {
		names[i] = c.Name
	}
	return names, nil
}

// AddCategory adds a new category
func AddCategory(category Category) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}

	cfg, err := LoadCategories()
	if err != nil {
		return err
	}

	for _, c := range cfg.Categories {
		if c.Name == category.Name {
			return fmt.Errorf("category '%s' already exists", category.Name)
		}
	}

	cfg.Categories = append(cfg.Categories, category)
	return SaveCategories(cfg)
}

// RemoveCategory removes a category by name. The last remaining
// category cannot be removed.
func RemoveCategory(name string) error {
	cfg, err := LoadCategories()
	if err != nil {
		return err
	}

	if len(cfg.Categories) == 1 {
		return fmt.Errorf("cannot remove the last category")
	}

	remaining := make([]Category, 0, len(cfg.Categories))
	found := false
	for _, c := range cfg.Categories {
		if c.Name == name {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}

	if !found {
		return fmt.Errorf("category '%s' not found", name)
	}

	cfg.Categories = remaining

	// Reset default if it pointed at the removed category
	if cfg.DefaultCategory == name {
		cfg.DefaultCategory = remaining[0].Name
	}

	return SaveCategories(cfg)
}

// SetDefaultCategory sets the category preselected at panel open
func SetDefaultCategory(name string) error {
	if _, err := GetCategory(name); err != nil {
		return err
	}

	cfg, err := LoadCategories()
	if err != nil {
		return err
	}

	cfg.DefaultCategory = name
	return SaveCategories(cfg)
}

func mergeCategories(defaults, custom []Category) []Category {
	result := make([]Category, len(defaults))
	copy(result, defaults)

	for _, cc := range custom {
		found := false
		for i, dc := range result {
			if dc.Name == cc.Name {
				result[i] = cc
				found = true
				break
			}
		}
		if !found {
			result = append(result, cc)
		}
	}

	return result
}

// Validation constants
const (
	MaxNameLength        = 50
	MaxDescriptionLength = 200
	MinNameLength        = 1
)

// ValidateCategory validates a category's fields
func ValidateCategory(c Category) error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if len(c.Name) > MaxNameLength {
		return fmt.Errorf("category name too long (max %d characters)", MaxNameLength)
	}
	if len(c.Description) > MaxDescriptionLength {
		return fmt.Errorf("category description too long (max %d characters)", MaxDescriptionLength)
	}
	return nil
}
