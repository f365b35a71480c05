// Package config holds the explicit runtime configuration for both servers.
// All state that the tools need beyond their own arguments lives here; there
// are no package-level globals.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envWorkspace = "OFFICE_MCP_WORKSPACE"
	envTemplates = "OFFICE_MCP_TEMPLATES"
)

// Config is the workspace configuration for the PowerPoint server. The Excel
// tools operate on absolute paths supplied per call and need no directories.
type Config struct {
	// WorkspaceDir is where presentations are created and looked up.
	WorkspaceDir string
	// TemplatesDir is where template pptx files and their metadata sidecars live.
	TemplatesDir string
}

// Load builds a Config from the environment. workspaceFlag, when non-empty,
// takes precedence over OFFICE_MCP_WORKSPACE; the templates directory
// defaults to a subdirectory of the workspace.
func Load(workspaceFlag string) (*Config, error) {
	workspace := workspaceFlag
	if workspace == "" {
		workspace = os.Getenv(envWorkspace)
	}
	if workspace == "" {
		workspace = "presentations"
	}
	workspace, err := filepath.Abs(workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace directory: %w", err)
	}

	templates := os.Getenv(envTemplates)
	if templates == "" {
		templates = filepath.Join(workspace, "templates")
	}
	templates, err = filepath.Abs(templates)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve templates directory: %w", err)
	}

	return &Config{
		WorkspaceDir: workspace,
		TemplatesDir: templates,
	}, nil
}

// EnsureDirs creates the workspace and templates directories if missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.WorkspaceDir, c.TemplatesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// PresentationPath resolves a presentation name to its path in the workspace.
// Names are file names, not paths; separators are rejected to keep lookups
// inside the workspace.
func (c *Config) PresentationPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("presentation name is empty")
	}
	if filepath.Base(name) != name {
		return "", fmt.Errorf("presentation name must not contain path separators: %s", name)
	}
	if filepath.Ext(name) == "" {
		name += ".pptx"
	}
	return filepath.Join(c.WorkspaceDir, name), nil
}

// TemplatePath resolves a template name to its path in the templates directory.
func (c *Config) TemplatePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("template name is empty")
	}
	if filepath.Base(name) != name {
		return "", fmt.Errorf("template name must not contain path separators: %s", name)
	}
	if filepath.Ext(name) == "" {
		name += ".pptx"
	}
	return filepath.Join(c.TemplatesDir, name), nil
}
