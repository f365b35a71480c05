package powerpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mz462/office-mcp/internal/config"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		WorkspaceDir: dir,
		TemplatesDir: filepath.Join(dir, "templates"),
	}
	require.NoError(t, cfg.EnsureDirs())
	return NewWorkspace(cfg)
}

func TestOpenCreatesAndListsPresentation(t *testing.T) {
	ws := newTestWorkspace(t)

	infos, err := ws.List()
	require.NoError(t, err)
	assert.Empty(t, infos)

	deck, err := ws.Open("dcf-review")
	require.NoError(t, err)
	_, err = deck.AddSlide("")
	require.NoError(t, err)
	require.NoError(t, deck.Save())

	infos, err = ws.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "dcf-review.pptx", infos[0].Name)
}

func TestMustExist(t *testing.T) {
	ws := newTestWorkspace(t)

	_, err := ws.MustExist("absent")
	assert.Error(t, err)

	deck, err := ws.Open("present")
	require.NoError(t, err)
	deck.AddSlide("")
	require.NoError(t, deck.Save())

	reopened, err := ws.MustExist("present")
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.SlideCount())
}

func TestElementIDSurvivesReopen(t *testing.T) {
	ws := newTestWorkspace(t)

	deck, err := ws.Open("ids")
	require.NoError(t, err)
	deck.AddSlide("")
	id, err := deck.AddText(1, "persistent", Frame{X: 1, Y: 1, Width: 2, Height: 0.5}, TextOptions{})
	require.NoError(t, err)
	require.NoError(t, deck.Save())

	reopened, err := ws.MustExist("ids")
	require.NoError(t, err)
	_, err = reopened.FindElement(1, id)
	assert.NoError(t, err)
}

func TestImport(t *testing.T) {
	ws := newTestWorkspace(t)

	// Build an external pptx to import.
	external := filepath.Join(t.TempDir(), "external.pptx")
	deck := newTestDeck(t)
	deck.AddSlide("")
	deck.path = external
	require.NoError(t, deck.Save())

	dest, err := ws.Import(external, "imported")
	require.NoError(t, err)
	_, err = os.Stat(dest)
	require.NoError(t, err)

	opened, err := ws.MustExist("imported")
	require.NoError(t, err)
	assert.Equal(t, 1, opened.SlideCount())

	_, err = ws.Import(filepath.Join(t.TempDir(), "nope.pptx"), "x")
	assert.Error(t, err, "import of a missing source must fail")
}

func TestTemplateRoundTrip(t *testing.T) {
	ws := newTestWorkspace(t)

	deck, err := ws.Open("quarterly")
	require.NoError(t, err)
	deck.AddSlide("")
	_, err = deck.AddText(1, "Quarterly Review", Frame{X: 1, Y: 0.5, Width: 6, Height: 1}, TextOptions{FontSizePoints: 32})
	require.NoError(t, err)
	require.NoError(t, deck.Save())

	meta, err := ws.SaveAsTemplate("quarterly", "review-template", "standard quarterly layout")
	require.NoError(t, err)
	assert.Equal(t, 1, meta.Slides)
	assert.Equal(t, "quarterly", meta.Source)

	templates, err := ws.ListTemplates()
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "standard quarterly layout", templates[0].Description)

	dest, err := ws.NewFromTemplate("review-template", "q3-review", "Q3 2026", "")
	require.NoError(t, err)
	_, err = os.Stat(dest)
	require.NoError(t, err)

	created, err := ws.MustExist("q3-review")
	require.NoError(t, err)
	assert.Equal(t, 1, created.SlideCount())

	_, err = ws.NewFromTemplate("absent-template", "x", "", "")
	assert.Error(t, err, "missing template must fail")
}
