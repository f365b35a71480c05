package powerpoint

import (
	"strings"
	"testing"

	"github.com/unidoc/unioffice/presentation"
)

func newTestDeck(t *testing.T) *Deck {
	t.Helper()
	return &Deck{ppt: presentation.New(), path: "test.pptx"}
}

func TestAddTextAssignsElementID(t *testing.T) {
	deck := newTestDeck(t)
	if _, err := deck.AddSlide(""); err != nil {
		t.Fatalf("AddSlide() unexpected error: %v", err)
	}

	id, err := deck.AddText(1, "Revenue Projection", Frame{X: 1, Y: 1, Width: 4, Height: 1}, TextOptions{FontSizePoints: 24})
	if err != nil {
		t.Fatalf("AddText() unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, elementIDPrefix) {
		t.Errorf("AddText() id = %q, want %q prefix", id, elementIDPrefix)
	}

	text, err := deck.SlideText(1)
	if err != nil {
		t.Fatalf("SlideText() unexpected error: %v", err)
	}
	if !strings.Contains(text, "Revenue Projection") {
		t.Errorf("SlideText() = %q, want added text", text)
	}
}

func TestSlideIndexOutOfRange(t *testing.T) {
	deck := newTestDeck(t)
	if _, err := deck.AddSlide(""); err != nil {
		t.Fatalf("AddSlide() unexpected error: %v", err)
	}

	if _, err := deck.AddText(2, "x", Frame{}, TextOptions{}); err == nil {
		t.Error("AddText(2, ...) on 1-slide deck expected error")
	}
	if err := deck.DeleteSlide(0); err == nil {
		t.Error("DeleteSlide(0) expected error")
	}
}

func TestDeleteSlide(t *testing.T) {
	deck := newTestDeck(t)
	deck.AddSlide("")
	deck.AddSlide("")
	if deck.SlideCount() != 2 {
		t.Fatalf("SlideCount() = %d, want 2", deck.SlideCount())
	}

	if err := deck.DeleteSlide(1); err != nil {
		t.Fatalf("DeleteSlide() unexpected error: %v", err)
	}
	if deck.SlideCount() != 1 {
		t.Errorf("SlideCount() after delete = %d, want 1", deck.SlideCount())
	}
}

func TestFindSlide(t *testing.T) {
	deck := newTestDeck(t)
	deck.AddSlide("")
	deck.AddSlide("")
	if _, err := deck.AddText(2, "Discounted Cash Flow", Frame{X: 1, Y: 1, Width: 4, Height: 1}, TextOptions{}); err != nil {
		t.Fatalf("AddText() unexpected error: %v", err)
	}

	if got := deck.FindSlide("cash flow"); got != 2 {
		t.Errorf("FindSlide(cash flow) = %d, want 2", got)
	}
	if got := deck.FindSlide("no such text"); got != 0 {
		t.Errorf("FindSlide(no such text) = %d, want 0", got)
	}
}

func TestDescribeAssignsStableIDs(t *testing.T) {
	deck := newTestDeck(t)
	deck.AddSlide("")
	id, err := deck.AddText(1, "Summary", Frame{X: 0.5, Y: 0.5, Width: 3, Height: 0.5}, TextOptions{})
	if err != nil {
		t.Fatalf("AddText() unexpected error: %v", err)
	}

	summary := deck.Describe("test.pptx")
	if summary.Slides != 1 || len(summary.Detail) != 1 {
		t.Fatalf("Describe() slides = %d, detail = %d", summary.Slides, len(summary.Detail))
	}
	elements := summary.Detail[0].Elements
	if len(elements) != 1 {
		t.Fatalf("Describe() elements = %d, want 1", len(elements))
	}
	if elements[0].ID != id {
		t.Errorf("Describe() element ID = %q, want %q from AddText", elements[0].ID, id)
	}
	if elements[0].Kind != "text" {
		t.Errorf("Describe() element kind = %q, want text", elements[0].Kind)
	}
	if elements[0].X != 0.5 || elements[0].Width != 3 {
		t.Errorf("Describe() element frame = (%v, %v), want (0.5, 3)", elements[0].X, elements[0].Width)
	}

	// A second describe must report the same ID.
	again := deck.Describe("test.pptx")
	if again.Detail[0].Elements[0].ID != id {
		t.Errorf("Describe() second pass ID = %q, want stable %q", again.Detail[0].Elements[0].ID, id)
	}
}

func TestSetBackground(t *testing.T) {
	deck := newTestDeck(t)
	deck.AddSlide("")

	if err := deck.SetBackground(1, "#1F4E79"); err != nil {
		t.Fatalf("SetBackground() unexpected error: %v", err)
	}
	if err := deck.SetBackground(1, "not-a-color"); err == nil {
		t.Error("SetBackground(not-a-color) expected error")
	}
}
