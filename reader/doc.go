// Package reader builds page records from a page-collection XML document,
// as produced by PDF-to-XML converters such as pdftohtml -xml.
//
// # Input
//
// The root element contains <page> elements with number, width and height
// attributes. Each page contains <text> elements with left, top, width and
// height attributes and either direct character data or child elements
// (usually <b> or <i>) carrying the text:
//
//	<page number="1" width="892" height="1263">
//	  <text top="82" left="84" width="121" height="18">Plain</text>
//	  <text top="102" left="84" width="60" height="18"><b>Foo</b> <i>Bar</i></text>
//	</page>
//
// Fractional geometry is truncated to integers.
//
// # Parsing
//
// Use [Open] to load and parse in one step:
//
//	doc, pages, err := reader.Open(ctx, "file:///data/report.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range pages.Sorted() {
//	    fmt.Println(p.Number, len(p.Texts))
//	}
//
// Or [ParsePages] for an already loaded [xmldoc.Document].
//
// # Skipped text elements
//
// Text elements whose box has no area, that carry no text at all, or whose
// geometry cannot be read are skipped and reported at debug level. Missing
// or unreadable page attributes are fatal.
package reader
