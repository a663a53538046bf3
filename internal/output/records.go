package output

import (
	"github.com/tsawler/pdftabextract/layout"
	"github.com/tsawler/pdftabextract/model"
)

// PageRecord summarizes a page or subpage.
type PageRecord struct {
	Number  int          `json:"number" yaml:"number"`
	Subpage string       `json:"subpage,omitempty" yaml:"subpage,omitempty"`
	Width   float64      `json:"width" yaml:"width"`
	Height  float64      `json:"height" yaml:"height"`
	XOffset float64      `json:"x_offset" yaml:"x_offset"`
	Count   int          `json:"text_count" yaml:"text_count"`
	Texts   []TextRecord `json:"texts,omitempty" yaml:"texts,omitempty"`
}

// TextRecord is a text box with absolute coordinates.
type TextRecord struct {
	Value  string  `json:"value" yaml:"value"`
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// CornerRecord lists the corner texts of a page or subpage.
type CornerRecord struct {
	Number      int         `json:"number" yaml:"number"`
	Subpage     string      `json:"subpage,omitempty" yaml:"subpage,omitempty"`
	TopLeft     *TextRecord `json:"topleft" yaml:"topleft"`
	TopRight    *TextRecord `json:"topright" yaml:"topright"`
	BottomRight *TextRecord `json:"bottomright" yaml:"bottomright"`
	BottomLeft  *TextRecord `json:"bottomleft" yaml:"bottomleft"`
}

// NewPageRecord builds a PageRecord, listing the texts if withTexts is set.
func NewPageRecord(p *model.Page, withTexts bool) PageRecord {
	rec := PageRecord{
		Number:  p.Number,
		Width:   p.Width,
		Height:  p.Height,
		XOffset: p.XOffset,
		Count:   len(p.Texts),
	}
	if p.IsSubpage() {
		rec.Subpage = p.Subpage.String()
	}
	if withTexts {
		rec.Texts = make([]TextRecord, len(p.Texts))
		for i, t := range p.Texts {
			rec.Texts[i] = NewTextRecord(t)
		}
	}
	return rec
}

// NewTextRecord converts a text.
func NewTextRecord(t *model.Text) TextRecord {
	return TextRecord{
		Value:  t.Value,
		Left:   t.Left,
		Top:    t.Top,
		Width:  t.Width,
		Height: t.Height,
	}
}

// NewCornerRecord converts the corner texts of p.
func NewCornerRecord(p *model.Page, c layout.Corners) CornerRecord {
	rec := CornerRecord{
		Number:      p.Number,
		TopLeft:     optionalText(c.TopLeft),
		TopRight:    optionalText(c.TopRight),
		BottomRight: optionalText(c.BottomRight),
		BottomLeft:  optionalText(c.BottomLeft),
	}
	if p.IsSubpage() {
		rec.Subpage = p.Subpage.String()
	}
	return rec
}

func optionalText(t *model.Text) *TextRecord {
	if t == nil {
		return nil
	}
	rec := NewTextRecord(t)
	return &rec
}
