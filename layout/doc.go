// Package layout provides spatial queries over parsed pages.
//
// # Body Text
//
// [BodyTexts] drops texts lying in header and footer bands defined as
// fractions of the page height:
//
//	config := layout.DefaultBodyConfig()
//	config.HeaderRatio = 0.1 // header above 10% of the page height
//	config.FooterRatio = 0.9 // footer below 90% of the page height
//	body, err := layout.BodyTexts(page, config)
//
// # Dividing Pages
//
// [DivideHorizontally] splits a page along a vertical line into a left and a
// right subpage. Text coordinates stay absolute; the right subpage records
// the divider position in its XOffset:
//
//	left, right, err := layout.DivideHorizontally(page, 0.5)
//
// [DivideTexts] does the same for a selection of the page's texts, such as
// the result of [BodyTexts].
//
// # Nearest Texts
//
// [NearestText] finds the text whose corner is closest to a point, optionally
// restricted by a predicate. [CornerTexts] runs it for all four corners of a
// page or subpage:
//
//	corners := layout.CornerTexts(left, layout.CornerPredicates{})
//	fmt.Println(corners.TopLeft.Value)
//
// # Helpers
//
// [Mode], [SortedBy] and [SortTexts] are small statistics and ordering
// helpers used when working with text attributes.
package layout
