// Package powerpoint manages pptx presentations in a workspace directory.
// Presentations are opened per tool call and saved immediately after
// mutation; no deck handle lives across calls.
package powerpoint

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unidoc/unioffice/presentation"

	"github.com/mz462/office-mcp/internal/config"
)

// Workspace resolves presentation names against the configured directories
// and owns open/close of the pptx files.
type Workspace struct {
	cfg *config.Config
}

func NewWorkspace(cfg *config.Config) *Workspace {
	return &Workspace{cfg: cfg}
}

// PresentationInfo describes one pptx file in the workspace.
type PresentationInfo struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	Bytes int64  `yaml:"bytes"`
}

// List returns the pptx files in the workspace, sorted by name.
func (w *Workspace) List() ([]PresentationInfo, error) {
	entries, err := os.ReadDir(w.cfg.WorkspaceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []PresentationInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read workspace: %w", err)
	}
	infos := make([]PresentationInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pptx") {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, PresentationInfo{
			Name:  entry.Name(),
			Path:  filepath.Join(w.cfg.WorkspaceDir, entry.Name()),
			Bytes: fi.Size(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Import copies an external pptx file into the workspace under the given
// name and returns its workspace path.
func (w *Workspace) Import(sourcePath, name string) (string, error) {
	if name == "" {
		name = filepath.Base(sourcePath)
	}
	destPath, err := w.cfg.PresentationPath(name)
	if err != nil {
		return "", err
	}
	src, err := os.Open(filepath.Clean(sourcePath))
	if err != nil {
		return "", fmt.Errorf("failed to open source presentation: %w", err)
	}
	defer src.Close()
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create workspace presentation: %w", err)
	}
	defer dest.Close()
	if _, err := io.Copy(dest, src); err != nil {
		return "", fmt.Errorf("failed to copy presentation: %w", err)
	}
	return destPath, nil
}

// Open opens a presentation by workspace name. A missing file becomes a new
// empty deck saved under that name on the first Save.
func (w *Workspace) Open(name string) (*Deck, error) {
	path, err := w.cfg.PresentationPath(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Deck{ppt: presentation.New(), path: path}, nil
	}
	ppt, err := presentation.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open presentation %s: %w", name, err)
	}
	return &Deck{ppt: ppt, path: path}, nil
}

// MustExist opens a presentation by name and fails when the file is missing.
func (w *Workspace) MustExist(name string) (*Deck, error) {
	path, err := w.cfg.PresentationPath(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("presentation %s not found in workspace", name)
	}
	ppt, err := presentation.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open presentation %s: %w", name, err)
	}
	return &Deck{ppt: ppt, path: path}, nil
}
