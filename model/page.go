package model

import (
	"fmt"

	"github.com/tsawler/pdftabextract/geom"
	"github.com/tsawler/pdftabextract/xmldoc"
)

// Page represents a physical page or a virtual subpage
type Page struct {
	Number int     // page number from the source, shared by subpages
	Width  float64 // in document units
	Height float64

	// XOffset is the distance of this page's left edge from the physical
	// page's left edge: 0 for physical pages and left subpages.
	XOffset float64

	Subpage SubpageKind

	// Parent is the page a subpage was split from, nil for physical pages
	Parent *Page

	// Texts in document order
	Texts []*Text

	// Source is the page element the page was read from; subpages share it
	Source xmldoc.NodeID
}

// NewPage creates a physical page with given number and dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number: number,
		Width:  width,
		Height: height,
		Texts:  make([]*Text, 0),
		Source: xmldoc.NoNode,
	}
}

// AddText appends a text to the page
func (p *Page) AddText(t *Text) {
	p.Texts = append(p.Texts, t)
}

// IsSubpage returns true for the halves of a split page
func (p *Page) IsSubpage() bool {
	return p.Subpage != SubpageNone
}

// Physical walks up the parent chain to the physical page
func (p *Page) Physical() *Page {
	for p.Parent != nil {
		p = p.Parent
	}
	return p
}

// LocalLeft returns the left edge of t relative to this page
func (p *Page) LocalLeft(t *Text) float64 {
	return t.Left - p.XOffset
}

// LocalPoint converts an absolute point into this page's frame
func (p *Page) LocalPoint(pt geom.Point) geom.Point {
	return pt.Translate(-p.XOffset, 0)
}

// CornerPoint returns a corner of the page in the absolute frame
func (p *Page) CornerPoint(c Corner) geom.Point {
	left, right := p.XOffset, p.XOffset+p.Width
	switch c {
	case TopRight:
		return geom.Pt(right, 0)
	case BottomRight:
		return geom.Pt(right, p.Height)
	case BottomLeft:
		return geom.Pt(left, p.Height)
	default:
		return geom.Pt(left, 0)
	}
}

func (p *Page) String() string {
	if p.IsSubpage() {
		return fmt.Sprintf("page %d/%s", p.Number, p.Subpage)
	}
	return fmt.Sprintf("page %d", p.Number)
}
