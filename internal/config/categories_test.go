package config

import (
	"strings"
	"testing"
)

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()

	if len(cats) == 0 {
		t.Fatal("DefaultCategories() returned empty list")
	}

	expected := []string{"Medical Support", "Emotional Support", "General Wellness"}
	for _, name := range expected {
		found := false
		for _, c := range cats {
			if c.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected category %q not found", name)
		}
	}
}

func TestLoadCategories_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCategories()
	if err != nil {
		t.Fatalf("LoadCategories() returned error: %v", err)
	}

	if cfg.DefaultCategory != "Medical Support" {
		t.Errorf("DefaultCategory = %q, want %q", cfg.DefaultCategory, "Medical Support")
	}
	if len(cfg.Categories) != len(DefaultCategories()) {
		t.Errorf("got %d categories, want %d", len(cfg.Categories), len(DefaultCategories()))
	}
}

func TestAddAndRemoveCategory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	custom := Category{Name: "Nutrition", Description: "Diet and meal planning"}
	if err := AddCategory(custom); err != nil {
		t.Fatalf("AddCategory() returned error: %v", err)
	}

	got, err := GetCategory("Nutrition")
	if err != nil {
		t.Fatalf("GetCategory() returned error: %v", err)
	}
	if got.Description != custom.Description {
		t.Errorf("Description = %q, want %q", got.Description, custom.Description)
	}

	// Duplicate names are rejected
	if err := AddCategory(custom); err == nil {
		t.Error("AddCategory() should reject duplicate names")
	}

	if err := RemoveCategory("Nutrition"); err != nil {
		t.Fatalf("RemoveCategory() returned error: %v", err)
	}
	if _, err := GetCategory("Nutrition"); err == nil {
		t.Error("removed category should not be found")
	}
}

func TestRemoveCategory_NotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := RemoveCategory("Nonexistent"); err == nil {
		t.Error("RemoveCategory() should fail for unknown category")
	}
}

func TestRemoveDefaultCategory_ResetsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := RemoveCategory("Medical Support"); err != nil {
		t.Fatalf("RemoveCategory() returned error: %v", err)
	}

	cfg, err := LoadCategories()
	if err != nil {
		t.Fatalf("LoadCategories() returned error: %v", err)
	}
	if cfg.DefaultCategory == "Medical Support" {
		t.Error("default should move off the removed category")
	}
	// Exactly one default, and it names an offered category
	found := false
	for _, c := range cfg.Categories {
		if c.Name == cfg.DefaultCategory {
			found = true
		}
	}
	if !found {
		t.Errorf("default %q is not an offered category", cfg.DefaultCategory)
	}
}

func TestSetDefaultCategory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := SetDefaultCategory("Emotional Support"); err != nil {
		t.Fatalf("SetDefaultCategory() returned error: %v", err)
	}

	cfg, err := LoadCategories()
	if err != nil {
		t.Fatalf("LoadCategories() returned error: %v", err)
	}
	if cfg.DefaultCategory != "Emotional Support" {
		t.Errorf("DefaultCategory = %q, want %q", cfg.DefaultCategory, "Emotional Support")
	}

	if err := SetDefaultCategory("Nope"); err == nil {
		t.Error("SetDefaultCategory() should fail for unknown category")
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  bool
	}{
		{"valid", Category{Name: "Sleep"}, false},
		{"empty name", Category{Name: ""}, true},
		{"name too long", Category{Name: strings.Repeat("x", MaxNameLength+1)}, true},
		{"description too long", Category{Name: "ok", Description: strings.Repeat("d", MaxDescriptionLength+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListCategoryNames(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	names, err := ListCategoryNames()
	if err != nil {
		t.Fatalf("ListCategoryNames() returned error: %v", err)
	}
	if len(names) != len(DefaultCategories()) {
		t.Errorf("got %d names, want %d", len(names), len(DefaultCategories()))
	}
}

func TestMergeCategories(t *testing.T) {
	defaults := []Category{{Name: "A", Description: "default a"}, {Name: "B"}}
	custom := []Category{{Name: "A", Description: "custom a"}, {Name: "C"}}

	merged := mergeCategories(defaults, custom)

	if len(merged) != 3 {
		t.Fatalf("got %d categories, want 3", len(merged))
	}
	if merged[0].Description != "custom a" {
		t.Errorf("custom entry should override default, got %q", merged[0].Description)
	}
}
