package powerpoint

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"
)

// shapePresets maps tool-facing shape names to DrawingML preset geometries.
var shapePresets = map[string]dml.ST_ShapeType{
	"rectangle":            dml.ST_ShapeTypeRect,
	"rounded_rectangle":    dml.ST_ShapeTypeRoundRect,
	"ellipse":              dml.ST_ShapeTypeEllipse,
	"oval":                 dml.ST_ShapeTypeEllipse,
	"diamond":              dml.ST_ShapeTypeDiamond,
	"triangle":             dml.ST_ShapeTypeTriangle,
	"right_arrow":          dml.ST_ShapeTypeRightArrow,
	"left_arrow":           dml.ST_ShapeTypeLeftArrow,
	"up_arrow":             dml.ST_ShapeTypeUpArrow,
	"down_arrow":           dml.ST_ShapeTypeDownArrow,
	"pentagon":             dml.ST_ShapeTypePentagon,
	"hexagon":              dml.ST_ShapeTypeHexagon,
	"star":                 dml.ST_ShapeTypeStar5,
	"cloud":                dml.ST_ShapeTypeCloud,
	"flowchart_process":    dml.ST_ShapeTypeFlowChartProcess,
	"flowchart_decision":   dml.ST_ShapeTypeFlowChartDecision,
	"flowchart_terminator": dml.ST_ShapeTypeFlowChartTerminator,
	"flowchart_data":       dml.ST_ShapeTypeFlowChartInputOutput,
}

// ShapePresetNames returns the supported shape names, sorted.
func ShapePresetNames() []string {
	names := make([]string, 0, len(shapePresets))
	for name := range shapePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Frame is a shape frame in inches.
type Frame struct {
	X, Y, Width, Height float64
}

// TextOptions styles the text placed by AddText.
type TextOptions struct {
	FontSizePoints float64
	Bold           bool
	Color          string
}

// AddText places a text box on the 1-based indexed slide and returns the
// new element's ID.
func (d *Deck) AddText(slideIndex int, text string, frame Frame, opts TextOptions) (string, error) {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return "", err
	}
	tb := slide.AddTextBox()
	props := tb.Properties()
	props.SetPosition(inches(frame.X), inches(frame.Y))
	props.SetSize(inches(frame.Width), inches(frame.Height))

	for _, line := range strings.Split(text, "\n") {
		para := tb.AddParagraph()
		run := para.AddRun()
		run.SetText(line)
		if opts.FontSizePoints > 0 {
			run.Properties().SetSize(measurement.Distance(opts.FontSizePoints) * measurement.Point)
		}
		if opts.Bold {
			run.Properties().SetBold(true)
		}
		if opts.Color != "" {
			rgb, err := hexToRGB(opts.Color)
			if err != nil {
				return "", err
			}
			run.Properties().SetSolidFill(rgb)
		}
	}
	return registerLastShape(slide)
}

// ShapeOptions styles the shape placed by AddShape.
type ShapeOptions struct {
	FillColor       string
	LineColor       string
	LineWidthPoints float64
	Text            string
	FontSizePoints  float64
}

// AddShape places a preset-geometry shape on the 1-based indexed slide and
// returns the new element's ID.
func (d *Deck) AddShape(slideIndex int, shapeName string, frame Frame, opts ShapeOptions) (string, error) {
	preset, ok := shapePresets[shapeName]
	if !ok {
		return "", fmt.Errorf("unknown shape %q (supported: %s)", shapeName, strings.Join(ShapePresetNames(), ", "))
	}
	slide, err := d.slide(slideIndex)
	if err != nil {
		return "", err
	}
	tb := slide.AddTextBox()
	props := tb.Properties()
	props.SetGeometry(preset)
	props.SetPosition(inches(frame.X), inches(frame.Y))
	props.SetSize(inches(frame.Width), inches(frame.Height))

	if opts.FillColor != "" {
		rgb, err := hexToRGB(opts.FillColor)
		if err != nil {
			return "", err
		}
		props.SetSolidFill(rgb)
	}
	if opts.LineColor != "" || opts.LineWidthPoints > 0 {
		line := props.LineProperties()
		if opts.LineColor != "" {
			rgb, err := hexToRGB(opts.LineColor)
			if err != nil {
				return "", err
			}
			line.SetSolidFill(rgb)
		}
		if opts.LineWidthPoints > 0 {
			line.SetWidth(measurement.Distance(opts.LineWidthPoints) * measurement.Point)
		}
	}
	if opts.Text != "" {
		para := tb.AddParagraph()
		run := para.AddRun()
		run.SetText(opts.Text)
		if opts.FontSizePoints > 0 {
			run.Properties().SetSize(measurement.Distance(opts.FontSizePoints) * measurement.Point)
		}
	}
	return registerLastShape(slide)
}

// ConnectShapes draws a straight line between the centers of two elements.
// The library has no native connector routing, so the line does not re-route
// when either shape moves.
func (d *Deck) ConnectShapes(slideIndex int, fromID, toID string, lineWidthPoints float64, lineColor string) (string, error) {
	from, err := d.FindElement(slideIndex, fromID)
	if err != nil {
		return "", err
	}
	to, err := d.FindElement(slideIndex, toID)
	if err != nil {
		return "", err
	}
	fx, fy, fw, fh := shapeBounds(from.SpPr)
	tx, ty, tw, th := shapeBounds(to.SpPr)
	x1, y1 := fx+fw/2, fy+fh/2
	x2, y2 := tx+tw/2, ty+th/2

	slide, err := d.slide(slideIndex)
	if err != nil {
		return "", err
	}
	tb := slide.AddTextBox()
	props := tb.Properties()
	props.SetGeometry(dml.ST_ShapeTypeLine)
	props.SetPosition(inches(math.Min(x1, x2)), inches(math.Min(y1, y2)))
	props.SetSize(inches(math.Abs(x2-x1)), inches(math.Abs(y2-y1)))
	// A line preset runs top-left to bottom-right of its frame; flip
	// vertically when the endpoints slope the other way.
	if (x2-x1)*(y2-y1) < 0 {
		if sp := lastAddedShape(slide); sp != nil && sp.SpPr != nil && sp.SpPr.Xfrm != nil {
			flip := true
			sp.SpPr.Xfrm.FlipVAttr = &flip
		}
	}
	line := props.LineProperties()
	if lineColor != "" {
		rgb, err := hexToRGB(lineColor)
		if err != nil {
			return "", err
		}
		line.SetSolidFill(rgb)
	} else {
		line.SetSolidFill(color.Black)
	}
	if lineWidthPoints <= 0 {
		lineWidthPoints = 1.5
	}
	line.SetWidth(measurement.Distance(lineWidthPoints) * measurement.Point)
	return registerLastShape(slide)
}

// StyleOptions carries the optional restyling of one element. Zero values
// leave the corresponding property untouched.
type StyleOptions struct {
	FillColor       string
	LineColor       string
	LineWidthPoints float64
	FontSizePoints  float64
	FontBold        bool
	FontColor       string
}

// StyleElement restyles an element addressed by ID on the 1-based indexed
// slide.
func (d *Deck) StyleElement(slideIndex int, elementID string, opts StyleOptions) error {
	sp, err := d.FindElement(slideIndex, elementID)
	if err != nil {
		return err
	}
	if sp.SpPr == nil {
		sp.SpPr = dml.NewCT_ShapeProperties()
	}
	if opts.FillColor != "" {
		fill, err := solidFill(opts.FillColor)
		if err != nil {
			return err
		}
		sp.SpPr.NoFill = nil
		sp.SpPr.SolidFill = fill
	}
	if opts.LineColor != "" || opts.LineWidthPoints > 0 {
		if sp.SpPr.Ln == nil {
			sp.SpPr.Ln = dml.NewCT_LineProperties()
		}
		if opts.LineColor != "" {
			fill, err := solidFill(opts.LineColor)
			if err != nil {
				return err
			}
			sp.SpPr.Ln.SolidFill = fill
		}
		if opts.LineWidthPoints > 0 {
			width := int32(opts.LineWidthPoints * float64(measurement.Point))
			sp.SpPr.Ln.WAttr = &width
		}
	}
	if opts.FontSizePoints > 0 || opts.FontBold || opts.FontColor != "" {
		if err := restyleText(sp, opts); err != nil {
			return err
		}
	}
	return nil
}

// EditOptions carries the optional changes applied by EditElement. Negative
// frame values and an empty Text leave the corresponding property untouched,
// so text cannot be cleared through an edit, only replaced.
type EditOptions struct {
	X, Y, Width, Height float64
	Text                string
}

// EditElement moves, resizes or rewrites an element addressed by ID on the
// 1-based indexed slide.
func (d *Deck) EditElement(slideIndex int, elementID string, opts EditOptions) error {
	sp, err := d.FindElement(slideIndex, elementID)
	if err != nil {
		return err
	}
	if opts.X >= 0 || opts.Y >= 0 || opts.Width > 0 || opts.Height > 0 {
		if sp.SpPr == nil {
			sp.SpPr = dml.NewCT_ShapeProperties()
		}
		if sp.SpPr.Xfrm == nil {
			sp.SpPr.Xfrm = dml.NewCT_Transform2D()
		}
		xfrm := sp.SpPr.Xfrm
		if opts.X >= 0 || opts.Y >= 0 {
			if xfrm.Off == nil {
				xfrm.Off = dml.NewCT_Point2D()
			}
			if opts.X >= 0 {
				x := inchesToEMU(opts.X)
				xfrm.Off.XAttr.ST_CoordinateUnqualified = &x
			}
			if opts.Y >= 0 {
				y := inchesToEMU(opts.Y)
				xfrm.Off.YAttr.ST_CoordinateUnqualified = &y
			}
		}
		if opts.Width > 0 || opts.Height > 0 {
			if xfrm.Ext == nil {
				xfrm.Ext = dml.NewCT_PositiveSize2D()
			}
			if opts.Width > 0 {
				xfrm.Ext.CxAttr = inchesToEMU(opts.Width)
			}
			if opts.Height > 0 {
				xfrm.Ext.CyAttr = inchesToEMU(opts.Height)
			}
		}
	}
	if opts.Text != "" {
		setShapeText(sp, opts.Text)
	}
	return nil
}

// setShapeText replaces the shape's text, carrying over the character
// properties of the first existing run so edited text keeps its styling.
func setShapeText(sp *pml.CT_Shape, text string) {
	var rPr *dml.CT_TextCharacterProperties
	if sp.TxBody != nil {
		for _, para := range sp.TxBody.P {
			for _, run := range para.EG_TextRun {
				if run.R != nil && run.R.RPr != nil {
					rPr = run.R.RPr
					break
				}
			}
			if rPr != nil {
				break
			}
		}
	}
	if sp.TxBody == nil {
		sp.TxBody = dml.NewCT_TextBody()
	}
	paras := make([]*dml.CT_TextParagraph, 0)
	for _, line := range strings.Split(text, "\n") {
		para := dml.NewCT_TextParagraph()
		run := dml.NewEG_TextRun()
		run.R = dml.NewCT_RegularTextRun()
		run.R.T = line
		run.R.RPr = rPr
		para.EG_TextRun = append(para.EG_TextRun, run)
		paras = append(paras, para)
	}
	sp.TxBody.P = paras
}

// TableOptions lays out the grid rendered by AddTable.
type TableOptions struct {
	X, Y            float64
	ColWidthInches  float64
	RowHeightInches float64
	FontSizePoints  float64
	HeaderFillColor string
}

// AddTable renders headers plus rows as a bordered grid of text boxes on the
// 1-based indexed slide. The library has no native DrawingML table API, so
// cells are independent shapes; it returns the IDs of the created cells in
// row-major order.
func (d *Deck) AddTable(slideIndex int, headers []string, rows [][]string, opts TableOptions) ([]string, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("table needs at least one header column")
	}
	if opts.ColWidthInches <= 0 {
		opts.ColWidthInches = 1.8
	}
	if opts.RowHeightInches <= 0 {
		opts.RowHeightInches = 0.4
	}
	if opts.FontSizePoints <= 0 {
		opts.FontSizePoints = 12
	}
	headerFill := opts.HeaderFillColor
	if headerFill == "" {
		headerFill = "D9D9D9"
	}

	grid := make([][]string, 0, len(rows)+1)
	grid = append(grid, headers)
	for _, row := range rows {
		if len(row) > len(headers) {
			return nil, fmt.Errorf("row has %d cells but table has %d columns", len(row), len(headers))
		}
		grid = append(grid, row)
	}

	ids := make([]string, 0, len(grid)*len(headers))
	for r, row := range grid {
		for c, cell := range row {
			frame := Frame{
				X:      opts.X + float64(c)*opts.ColWidthInches,
				Y:      opts.Y + float64(r)*opts.RowHeightInches,
				Width:  opts.ColWidthInches,
				Height: opts.RowHeightInches,
			}
			shapeOpts := ShapeOptions{
				LineColor:       "000000",
				LineWidthPoints: 0.75,
				Text:            cell,
				FontSizePoints:  opts.FontSizePoints,
			}
			if r == 0 {
				shapeOpts.FillColor = headerFill
			}
			id, err := d.AddShape(slideIndex, "rectangle", frame, shapeOpts)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// restyleText applies font styling to every run of the shape's text body.
func restyleText(sp *pml.CT_Shape, opts StyleOptions) error {
	if sp.TxBody == nil {
		return fmt.Errorf("element has no text to style")
	}
	for _, para := range sp.TxBody.P {
		for _, textRun := range para.EG_TextRun {
			if textRun.R == nil {
				continue
			}
			if textRun.R.RPr == nil {
				textRun.R.RPr = dml.NewCT_TextCharacterProperties()
			}
			rPr := textRun.R.RPr
			if opts.FontSizePoints > 0 {
				size := int32(opts.FontSizePoints * 100)
				rPr.SzAttr = &size
			}
			if opts.FontBold {
				bold := true
				rPr.BAttr = &bold
			}
			if opts.FontColor != "" {
				fill, err := solidFill(opts.FontColor)
				if err != nil {
					return err
				}
				rPr.SolidFill = fill
			}
		}
	}
	return nil
}

func inches(v float64) measurement.Distance {
	return measurement.Distance(v) * measurement.Inch
}

// hexToRGB converts "RRGGBB" (with optional leading '#') to a drawing color.
func hexToRGB(s string) (color.Color, error) {
	normalized, err := parseHexColor(s)
	if err != nil {
		return color.Color{}, err
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(normalized, "%02X%02X%02X", &r, &g, &b); err != nil {
		return color.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGB(r, g, b), nil
}

// solidFill builds a DrawingML solid fill from a hex color.
func solidFill(hexColor string) (*dml.CT_SolidColorFillProperties, error) {
	rgb, err := parseHexColor(hexColor)
	if err != nil {
		return nil, err
	}
	fill := dml.NewCT_SolidColorFillProperties()
	fill.SrgbClr = dml.NewCT_SRgbColor()
	fill.SrgbClr.ValAttr = rgb
	return fill, nil
}
