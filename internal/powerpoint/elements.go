package powerpoint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"
)

// Element IDs are persisted in the shape's non-visual name so they survive
// the open-per-call model: any later call can address the element by
// re-reading the file.
const elementIDPrefix = "el-"

var hexColorRegexp = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)

// ElementInfo describes one addressable element on a slide.
type ElementInfo struct {
	ID     string  `yaml:"id"`
	Kind   string  `yaml:"kind"`
	Text   string  `yaml:"text,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// NewElementID mints a fresh persistent element ID.
func NewElementID() string {
	return elementIDPrefix + uuid.NewString()
}

// ensureElementID returns the element ID stored in the non-visual drawing
// properties, assigning a fresh one when absent.
func ensureElementID(cnv *dml.CT_NonVisualDrawingProps) string {
	if cnv == nil {
		return ""
	}
	if strings.HasPrefix(cnv.NameAttr, elementIDPrefix) {
		return cnv.NameAttr
	}
	cnv.NameAttr = NewElementID()
	return cnv.NameAttr
}

// slideShapes returns the plain shapes of a slide in document order.
func slideShapes(slide presentation.Slide) []*pml.CT_Shape {
	shapes := make([]*pml.CT_Shape, 0)
	spTree := slide.X().CSld.SpTree
	if spTree == nil {
		return shapes
	}
	for _, choice := range spTree.Choice {
		shapes = append(shapes, choice.Sp...)
	}
	return shapes
}

// lastAddedShape returns the most recently appended shape of a slide. The
// library's TextBox wrapper keeps its CT_Shape unexported, so freshly added
// shapes are fetched back from the shape tree to take an element ID.
func lastAddedShape(slide presentation.Slide) *pml.CT_Shape {
	shapes := slideShapes(slide)
	if len(shapes) == 0 {
		return nil
	}
	return shapes[len(shapes)-1]
}

// registerLastShape assigns and returns the element ID of the slide's most
// recently appended shape.
func registerLastShape(slide presentation.Slide) (string, error) {
	sp := lastAddedShape(slide)
	if sp == nil || sp.NvSpPr == nil {
		return "", fmt.Errorf("shape was not added to the slide")
	}
	return ensureElementID(sp.NvSpPr.CNvPr), nil
}

// describeSlideElements enumerates every addressable element on a slide,
// assigning IDs where missing.
func describeSlideElements(slide presentation.Slide) []ElementInfo {
	elements := make([]ElementInfo, 0)
	spTree := slide.X().CSld.SpTree
	if spTree == nil {
		return elements
	}
	for _, choice := range spTree.Choice {
		for _, sp := range choice.Sp {
			info := ElementInfo{Kind: shapeKind(sp), Text: shapeText(sp)}
			if sp.NvSpPr != nil {
				info.ID = ensureElementID(sp.NvSpPr.CNvPr)
			}
			info.X, info.Y, info.Width, info.Height = shapeBounds(sp.SpPr)
			elements = append(elements, info)
		}
		for _, pic := range choice.Pic {
			info := ElementInfo{Kind: "picture"}
			if pic.NvPicPr != nil {
				info.ID = ensureElementID(pic.NvPicPr.CNvPr)
			}
			info.X, info.Y, info.Width, info.Height = shapeBounds(pic.SpPr)
			elements = append(elements, info)
		}
		for _, frame := range choice.GraphicFrame {
			info := ElementInfo{Kind: "graphicFrame"}
			if frame.NvGraphicFramePr != nil {
				info.ID = ensureElementID(frame.NvGraphicFramePr.CNvPr)
			}
			if frame.Xfrm != nil {
				info.X, info.Y, info.Width, info.Height = transformBounds(frame.Xfrm)
			}
			elements = append(elements, info)
		}
		for _, cxn := range choice.CxnSp {
			info := ElementInfo{Kind: "connector"}
			if cxn.NvCxnSpPr != nil {
				info.ID = ensureElementID(cxn.NvCxnSpPr.CNvPr)
			}
			info.X, info.Y, info.Width, info.Height = shapeBounds(cxn.SpPr)
			elements = append(elements, info)
		}
	}
	return elements
}

// FindElement locates a shape by element ID on the 1-based indexed slide.
func (d *Deck) FindElement(slideIndex int, elementID string) (*pml.CT_Shape, error) {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return nil, err
	}
	for _, sp := range slideShapes(slide) {
		if sp.NvSpPr != nil && sp.NvSpPr.CNvPr != nil && sp.NvSpPr.CNvPr.NameAttr == elementID {
			return sp, nil
		}
	}
	return nil, fmt.Errorf("element %s not found on slide %d", elementID, slideIndex)
}

func shapeKind(sp *pml.CT_Shape) string {
	if shapeText(sp) != "" {
		return "text"
	}
	if sp.SpPr != nil && sp.SpPr.PrstGeom != nil && sp.SpPr.PrstGeom.PrstAttr != dml.ST_ShapeTypeRect {
		return "shape"
	}
	if sp.TxBody != nil {
		return "text"
	}
	return "shape"
}

// shapeText concatenates the run text of a shape's text body.
func shapeText(sp *pml.CT_Shape) string {
	if sp.TxBody == nil {
		return ""
	}
	var sb strings.Builder
	for _, para := range sp.TxBody.P {
		for _, run := range para.EG_TextRun {
			if run.R != nil {
				sb.WriteString(run.R.T)
			}
		}
	}
	return sb.String()
}

// shapeBounds reports the shape frame in inches.
func shapeBounds(spPr *dml.CT_ShapeProperties) (x, y, w, h float64) {
	if spPr == nil || spPr.Xfrm == nil {
		return 0, 0, 0, 0
	}
	return transformBounds(spPr.Xfrm)
}

func transformBounds(xfrm *dml.CT_Transform2D) (x, y, w, h float64) {
	if xfrm.Off != nil {
		if xfrm.Off.XAttr.ST_CoordinateUnqualified != nil {
			x = emuToInches(*xfrm.Off.XAttr.ST_CoordinateUnqualified)
		}
		if xfrm.Off.YAttr.ST_CoordinateUnqualified != nil {
			y = emuToInches(*xfrm.Off.YAttr.ST_CoordinateUnqualified)
		}
	}
	if xfrm.Ext != nil {
		w = emuToInches(xfrm.Ext.CxAttr)
		h = emuToInches(xfrm.Ext.CyAttr)
	}
	return x, y, w, h
}

const emuPerInch = 914400

func emuToInches(emu int64) float64 {
	return float64(emu) / emuPerInch
}

func inchesToEMU(inches float64) int64 {
	return int64(inches * emuPerInch)
}

// parseHexColor normalizes "#RRGGBB" or "RRGGBB" to the upper-case hex form
// DrawingML expects.
func parseHexColor(s string) (string, error) {
	matches := hexColorRegexp.FindStringSubmatch(s)
	if matches == nil {
		return "", fmt.Errorf("invalid color %q: expected RRGGBB hex", s)
	}
	return strings.ToUpper(matches[1]), nil
}
