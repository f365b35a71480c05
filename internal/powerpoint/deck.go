package powerpoint

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"
)

// Deck is one open presentation bound to its workspace path.
type Deck struct {
	ppt  *presentation.Presentation
	path string
}

func (d *Deck) Path() string {
	return d.path
}

// Save writes the deck back to its workspace path.
func (d *Deck) Save() error {
	if err := d.ppt.SaveToFile(d.path); err != nil {
		return fmt.Errorf("failed to save presentation: %w", err)
	}
	return nil
}

func (d *Deck) SlideCount() int {
	return len(d.ppt.Slides())
}

// slide returns the 1-based indexed slide.
func (d *Deck) slide(index int) (presentation.Slide, error) {
	slides := d.ppt.Slides()
	if index < 1 || index > len(slides) {
		return presentation.Slide{}, fmt.Errorf("slide index %d out of range (1-%d)", index, len(slides))
	}
	return slides[index-1], nil
}

// AddSlide appends a slide, using the named layout when layoutName is
// non-empty, and returns its 1-based index.
func (d *Deck) AddSlide(layoutName string) (int, error) {
	if layoutName == "" {
		d.ppt.AddSlide()
		return len(d.ppt.Slides()), nil
	}
	layout, err := d.ppt.GetLayoutByName(layoutName)
	if err != nil {
		available := make([]string, 0)
		for _, l := range d.ppt.SlideLayouts() {
			available = append(available, l.Name())
		}
		return 0, fmt.Errorf("layout %q not found (available: %s)", layoutName, strings.Join(available, ", "))
	}
	if _, err := d.ppt.AddDefaultSlideWithLayout(layout); err != nil {
		return 0, fmt.Errorf("failed to add slide with layout %q: %w", layoutName, err)
	}
	return len(d.ppt.Slides()), nil
}

// DeleteSlide removes the 1-based indexed slide.
func (d *Deck) DeleteSlide(index int) error {
	slide, err := d.slide(index)
	if err != nil {
		return err
	}
	if err := d.ppt.RemoveSlide(slide); err != nil {
		return fmt.Errorf("failed to remove slide %d: %w", index, err)
	}
	return nil
}

// LayoutNames returns the layout names available in the deck's masters.
func (d *Deck) LayoutNames() []string {
	names := make([]string, 0)
	for _, layout := range d.ppt.SlideLayouts() {
		if layout.Name() != "" {
			names = append(names, layout.Name())
		}
	}
	return names
}

// DeckSummary describes a presentation for the describe tool.
type DeckSummary struct {
	Name    string         `yaml:"name"`
	Slides  int            `yaml:"slides"`
	Layouts []string       `yaml:"layouts,omitempty"`
	Detail  []SlideSummary `yaml:"detail"`
}

// SlideSummary describes one slide: its elements and their identity.
type SlideSummary struct {
	Index    int           `yaml:"index"`
	Elements []ElementInfo `yaml:"elements"`
}

// Describe returns the slide-by-slide summary of the deck. Element IDs are
// assigned to any shape that does not carry one yet, so a describe call
// followed by Save makes every element addressable.
func (d *Deck) Describe(name string) DeckSummary {
	summary := DeckSummary{
		Name:    name,
		Slides:  d.SlideCount(),
		Layouts: d.LayoutNames(),
		Detail:  make([]SlideSummary, 0, d.SlideCount()),
	}
	for i, slide := range d.ppt.Slides() {
		summary.Detail = append(summary.Detail, SlideSummary{
			Index:    i + 1,
			Elements: describeSlideElements(slide),
		})
	}
	return summary
}

// DescribeSlide returns the element summary of one slide.
func (d *Deck) DescribeSlide(index int) (SlideSummary, error) {
	slide, err := d.slide(index)
	if err != nil {
		return SlideSummary{}, err
	}
	return SlideSummary{
		Index:    index,
		Elements: describeSlideElements(slide),
	}, nil
}

// FindSlide returns the 1-based index of the first slide whose text contains
// the query, case-insensitively. Returns 0 when no slide matches.
func (d *Deck) FindSlide(query string) int {
	needle := strings.ToLower(query)
	for i, slide := range d.ppt.Slides() {
		for _, sp := range slideShapes(slide) {
			if strings.Contains(strings.ToLower(shapeText(sp)), needle) {
				return i + 1
			}
		}
	}
	return 0
}

// SlideText returns the concatenated text of one slide.
func (d *Deck) SlideText(index int) (string, error) {
	slide, err := d.slide(index)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0)
	for _, sp := range slideShapes(slide) {
		if text := shapeText(sp); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// SetBackground sets a solid background color on the 1-based indexed slide.
func (d *Deck) SetBackground(index int, hexColor string) error {
	slide, err := d.slide(index)
	if err != nil {
		return err
	}
	rgb, err := parseHexColor(hexColor)
	if err != nil {
		return err
	}
	bgPr := pml.NewCT_BackgroundProperties()
	bgPr.SolidFill = dml.NewCT_SolidColorFillProperties()
	bgPr.SolidFill.SrgbClr = dml.NewCT_SRgbColor()
	bgPr.SolidFill.SrgbClr.ValAttr = rgb
	bg := pml.NewCT_Background()
	bg.BgPr = bgPr
	slide.X().CSld.Bg = bg
	return nil
}
