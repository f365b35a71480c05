package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envWorkspace, "")
	t.Setenv(envTemplates, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !filepath.IsAbs(cfg.WorkspaceDir) {
		t.Errorf("WorkspaceDir = %q, want absolute path", cfg.WorkspaceDir)
	}
	if cfg.TemplatesDir != filepath.Join(cfg.WorkspaceDir, "templates") {
		t.Errorf("TemplatesDir = %q, want subdirectory of workspace", cfg.TemplatesDir)
	}
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv(envWorkspace, "/tmp/from-env")
	t.Setenv(envTemplates, "")

	cfg, err := Load("/tmp/from-flag")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.WorkspaceDir != "/tmp/from-flag" {
		t.Errorf("WorkspaceDir = %q, want flag value to win", cfg.WorkspaceDir)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(envWorkspace, "/tmp/decks")
	t.Setenv(envTemplates, "/tmp/deck-templates")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.WorkspaceDir != "/tmp/decks" {
		t.Errorf("WorkspaceDir = %q, want /tmp/decks", cfg.WorkspaceDir)
	}
	if cfg.TemplatesDir != "/tmp/deck-templates" {
		t.Errorf("TemplatesDir = %q, want /tmp/deck-templates", cfg.TemplatesDir)
	}
}

func TestPresentationPath(t *testing.T) {
	cfg := &Config{WorkspaceDir: "/tmp/decks", TemplatesDir: "/tmp/decks/templates"}

	tests := []struct {
		name      string
		input     string
		want      string
		wantError bool
	}{
		{
			name:  "bare name gets pptx extension",
			input: "q3-review",
			want:  "/tmp/decks/q3-review.pptx",
		},
		{
			name:  "name with extension kept",
			input: "q3-review.pptx",
			want:  "/tmp/decks/q3-review.pptx",
		},
		{
			name:      "empty name rejected",
			input:     "",
			wantError: true,
		},
		{
			name:      "path traversal rejected",
			input:     "../etc/passwd",
			wantError: true,
		},
		{
			name:      "nested path rejected",
			input:     "sub/deck",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.PresentationPath(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("PresentationPath(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Errorf("PresentationPath(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("PresentationPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTemplatePath(t *testing.T) {
	cfg := &Config{WorkspaceDir: "/tmp/decks", TemplatesDir: "/tmp/decks/templates"}

	got, err := cfg.TemplatePath("corporate")
	if err != nil {
		t.Fatalf("TemplatePath() unexpected error: %v", err)
	}
	if got != "/tmp/decks/templates/corporate.pptx" {
		t.Errorf("TemplatePath(corporate) = %q", got)
	}

	if _, err := cfg.TemplatePath(strings.Repeat("../", 3) + "x"); err == nil {
		t.Error("TemplatePath with traversal expected error")
	}
}
