package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/pdftabextract/model"
)

// DivideHorizontally splits page at x = page.Width*ratio into a left and a
// right subpage holding the page's own texts. See [DivideTexts].
func DivideHorizontally(page *model.Page, ratio float64) (left, right *model.Page, err error) {
	return DivideTexts(page, ratio, page.Texts)
}

// DivideTexts splits page at x = page.Width*ratio into a left and a right
// subpage holding exactly the given texts. Texts whose right edge is at or
// left of the divider go to the left subpage, all others to the right one,
// so every text lands on exactly one side. An empty or nil texts gives two
// empty subpages.
//
// Text coordinates are not changed; the right subpage has XOffset set to the
// divider position. ratio must lie strictly between 0 and 1.
func DivideTexts(page *model.Page, ratio float64, texts []*model.Text) (left, right *model.Page, err error) {
	if math.IsNaN(ratio) || ratio <= 0 || ratio >= 1 {
		return nil, nil, fmt.Errorf("%w: divide ratio %v not in (0, 1)", ErrInvalidArgument, ratio)
	}

	divideX := page.Width * ratio
	leftTexts := make([]*model.Text, 0, len(texts))
	rightTexts := make([]*model.Text, 0, len(texts))
	for _, t := range texts {
		if t.Right <= divideX {
			leftTexts = append(leftTexts, t)
		} else {
			rightTexts = append(rightTexts, t)
		}
	}

	left = newSubpage(page, divideX, model.SubpageLeft, 0, leftTexts)
	right = newSubpage(page, divideX, model.SubpageRight, divideX, rightTexts)
	return left, right, nil
}

func newSubpage(parent *model.Page, width float64, kind model.SubpageKind, offset float64, texts []*model.Text) *model.Page {
	return &model.Page{
		Number:  parent.Number,
		Width:   width,
		Height:  parent.Height,
		XOffset: offset,
		Subpage: kind,
		Parent:  parent,
		Texts:   texts,
		Source:  parent.Source,
	}
}
