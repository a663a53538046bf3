package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tsawler/pdftabextract/geom"
	"github.com/tsawler/pdftabextract/xmldoc"
)

// Element names of pages and text boxes in pdftohtml XML
const (
	PageElement = "page"
	TextElement = "text"
)

// Text is a single text box placed on a page
type Text struct {
	Value string

	// Size never changes after construction
	Width  float64
	Height float64

	// Edges in the physical page frame
	Top    float64
	Left   float64
	Bottom float64
	Right  float64

	TopLeft     geom.Point
	TopRight    geom.Point
	BottomRight geom.Point
	BottomLeft  geom.Point

	// Source is the element the text was read from, xmldoc.NoNode if none
	Source xmldoc.NodeID
}

// TextPredicate selects texts in searches
type TextPredicate func(*Text) bool

// NewText creates a text box of the given size with its top-left corner at pos
func NewText(value string, pos geom.Point, width, height float64, source xmldoc.NodeID) *Text {
	t := &Text{
		Value:  value,
		Width:  width,
		Height: height,
		Source: source,
	}
	t.setPosition(pos)
	return t
}

func (t *Text) setPosition(pos geom.Point) {
	t.Left = pos.X
	t.Top = pos.Y
	t.Right = t.Left + t.Width
	t.Bottom = t.Top + t.Height

	t.TopLeft = geom.Pt(t.Left, t.Top)
	t.TopRight = geom.Pt(t.Right, t.Top)
	t.BottomRight = geom.Pt(t.Right, t.Bottom)
	t.BottomLeft = geom.Pt(t.Left, t.Bottom)
}

// UpdatePosition moves the text so that its top-left corner is at pos,
// recomputing all edges and corners from the unchanged size.
//
// If src is not nil the new position is also written to the left and top
// attributes of the source element in src, rounded half to even. The handle
// must name a text element of src; it is checked before anything is changed,
// so a failed write-back leaves the text where it was. Callers must serialize concurrent write-backs to the
// same document.
func (t *Text) UpdatePosition(pos geom.Point, src *xmldoc.Document) error {
	if src != nil {
		if !src.Valid(t.Source) {
			return fmt.Errorf("writing text position: %w: %d", xmldoc.ErrInvalidNode, t.Source)
		}
		if name := src.Name(t.Source); name != TextElement {
			return fmt.Errorf("writing text position: %w: node %d is <%s>, not <%s>",
				xmldoc.ErrInvalidNode, t.Source, name, TextElement)
		}
	}

	t.setPosition(pos)

	if src == nil {
		return nil
	}
	if err := src.SetAttr(t.Source, "left", formatCoord(pos.X)); err != nil {
		return err
	}
	return src.SetAttr(t.Source, "top", formatCoord(pos.Y))
}

func formatCoord(v float64) string {
	return strconv.Itoa(int(math.RoundToEven(v)))
}

// Corner returns the requested corner point
func (t *Text) Corner(c Corner) geom.Point {
	switch c {
	case TopRight:
		return t.TopRight
	case BottomRight:
		return t.BottomRight
	case BottomLeft:
		return t.BottomLeft
	default:
		return t.TopLeft
	}
}

// Attr returns the value of a numeric field
func (t *Text) Attr(a Attribute) float64 {
	switch a {
	case AttrLeft:
		return t.Left
	case AttrBottom:
		return t.Bottom
	case AttrRight:
		return t.Right
	case AttrWidth:
		return t.Width
	case AttrHeight:
		return t.Height
	default:
		return t.Top
	}
}

// Rect returns the bounding rectangle
func (t *Text) Rect() geom.Rect {
	return geom.NewRect(t.TopLeft, t.BottomRight)
}

func (t *Text) String() string {
	return fmt.Sprintf("%q @ (%g,%g) %gx%g", t.Value, t.Left, t.Top, t.Width, t.Height)
}
