package layout

import (
	"sort"

	"github.com/tsawler/pdftabextract/geom"
	"github.com/tsawler/pdftabextract/model"
)

// NearestText returns the text whose corner is closest to origin.
//
// Candidates are ranked by the Euclidean distance from origin to their
// corner point; texts at equal distance keep their order in texts. If pred
// is not nil the closest text satisfying it is returned. The result is nil
// when texts is empty or nothing satisfies pred.
func NearestText(texts []*model.Text, origin geom.Point, corner model.Corner, pred model.TextPredicate) *model.Text {
	type candidate struct {
		text *model.Text
		dist float64
	}

	ranked := make([]candidate, len(texts))
	for i, t := range texts {
		ranked[i] = candidate{text: t, dist: origin.Distance(t.Corner(corner))}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	for _, c := range ranked {
		if pred == nil || pred(c.text) {
			return c.text
		}
	}
	return nil
}

// CornerPredicates optionally restricts each of the four corner searches
type CornerPredicates struct {
	TopLeft     model.TextPredicate
	TopRight    model.TextPredicate
	BottomRight model.TextPredicate
	BottomLeft  model.TextPredicate
}

// For returns the predicate of the given corner
func (p CornerPredicates) For(c model.Corner) model.TextPredicate {
	switch c {
	case model.TopRight:
		return p.TopRight
	case model.BottomRight:
		return p.BottomRight
	case model.BottomLeft:
		return p.BottomLeft
	default:
		return p.TopLeft
	}
}

// Corners holds the texts nearest to the four corners of a page.
// Any of them may be nil, and one text may fill several corners.
type Corners struct {
	TopLeft     *model.Text
	TopRight    *model.Text
	BottomRight *model.Text
	BottomLeft  *model.Text
}

// Get returns the text found for a corner
func (c Corners) Get(corner model.Corner) *model.Text {
	switch corner {
	case model.TopRight:
		return c.TopRight
	case model.BottomRight:
		return c.BottomRight
	case model.BottomLeft:
		return c.BottomLeft
	default:
		return c.TopLeft
	}
}

// CornerTexts finds, for each corner of page, the text whose matching corner
// is nearest to it. Page corners are taken in the absolute frame, shifted by
// the page's XOffset, so subpages are searched around their own corners.
func CornerTexts(page *model.Page, preds CornerPredicates) Corners {
	find := func(c model.Corner) *model.Text {
		return NearestText(page.Texts, page.CornerPoint(c), c, preds.For(c))
	}
	return Corners{
		TopLeft:     find(model.TopLeft),
		TopRight:    find(model.TopRight),
		BottomRight: find(model.BottomRight),
		BottomLeft:  find(model.BottomLeft),
	}
}
