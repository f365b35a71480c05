package powerpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/pml"
	"gopkg.in/yaml.v3"
)

// TemplateMeta is the YAML sidecar stored next to each template pptx.
type TemplateMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Source      string `yaml:"source,omitempty"`
	Slides      int    `yaml:"slides"`
	CreatedAt   string `yaml:"createdAt"`
}

func sidecarPath(templatePath string) string {
	return strings.TrimSuffix(templatePath, filepath.Ext(templatePath)) + ".yaml"
}

// ListTemplates returns the templates in the template directory with their
// sidecar metadata. Templates without a sidecar are listed with name only.
func (w *Workspace) ListTemplates() ([]TemplateMeta, error) {
	entries, err := os.ReadDir(w.cfg.TemplatesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TemplateMeta{}, nil
		}
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}
	templates := make([]TemplateMeta, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pptx") {
			continue
		}
		path := filepath.Join(w.cfg.TemplatesDir, entry.Name())
		meta := TemplateMeta{Name: entry.Name()}
		if raw, err := os.ReadFile(sidecarPath(path)); err == nil {
			if err := yaml.Unmarshal(raw, &meta); err != nil {
				return nil, fmt.Errorf("malformed template metadata for %s: %w", entry.Name(), err)
			}
			meta.Name = entry.Name()
		}
		templates = append(templates, meta)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

// SaveAsTemplate snapshots a workspace presentation into the template
// directory and writes its metadata sidecar.
func (w *Workspace) SaveAsTemplate(presentationName, templateName, description string) (TemplateMeta, error) {
	deck, err := w.MustExist(presentationName)
	if err != nil {
		return TemplateMeta{}, err
	}
	destPath, err := w.cfg.TemplatePath(templateName)
	if err != nil {
		return TemplateMeta{}, err
	}
	if err := deck.ppt.SaveToFile(destPath); err != nil {
		return TemplateMeta{}, fmt.Errorf("failed to save template: %w", err)
	}
	meta := TemplateMeta{
		Name:        filepath.Base(destPath),
		Description: description,
		Source:      presentationName,
		Slides:      deck.SlideCount(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return TemplateMeta{}, fmt.Errorf("failed to marshal template metadata: %w", err)
	}
	if err := os.WriteFile(sidecarPath(destPath), raw, 0o644); err != nil {
		return TemplateMeta{}, fmt.Errorf("failed to write template metadata: %w", err)
	}
	return meta, nil
}

// NewFromTemplate creates a workspace presentation from a template,
// optionally filling the title and body placeholders of the first slide.
func (w *Workspace) NewFromTemplate(templateName, presentationName, title, body string) (string, error) {
	srcPath, err := w.cfg.TemplatePath(templateName)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(srcPath); err != nil {
		return "", fmt.Errorf("template %s not found", templateName)
	}
	destPath, err := w.cfg.PresentationPath(presentationName)
	if err != nil {
		return "", err
	}
	ppt, err := presentation.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open template %s: %w", templateName, err)
	}
	slides := ppt.Slides()
	if len(slides) > 0 {
		if title != "" {
			fillPlaceholder(slides[0], pml.ST_PlaceholderTypeTitle, title)
			fillPlaceholder(slides[0], pml.ST_PlaceholderTypeCtrTitle, title)
		}
		if body != "" {
			fillPlaceholder(slides[0], pml.ST_PlaceholderTypeBody, body)
			fillPlaceholder(slides[0], pml.ST_PlaceholderTypeSubTitle, body)
		}
	}
	if err := ppt.SaveToFile(destPath); err != nil {
		return "", fmt.Errorf("failed to save presentation: %w", err)
	}
	return destPath, nil
}

// fillPlaceholder sets the text of the typed placeholder when the slide has
// one; slides without it are left alone.
func fillPlaceholder(slide presentation.Slide, t pml.ST_PlaceholderType, text string) {
	ph, err := slide.GetPlaceholder(t)
	if err != nil {
		return
	}
	ph.SetText(text)
}
