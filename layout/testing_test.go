package layout

import (
	"github.com/tsawler/pdftabextract/geom"
	"github.com/tsawler/pdftabextract/model"
	"github.com/tsawler/pdftabextract/xmldoc"
)

// Helper to create a text box
func makeText(left, top, width, height float64, value string) *model.Text {
	return model.NewText(value, geom.Pt(left, top), width, height, xmldoc.NoNode)
}

// Helper to create a physical page holding texts
func makePage(width, height float64, texts ...*model.Text) *model.Page {
	p := model.NewPage(1, width, height)
	for _, t := range texts {
		p.AddText(t)
	}
	return p
}

func values(texts []*model.Text) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = t.Value
	}
	return out
}
