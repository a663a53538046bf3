// Package xmldoc holds an XML document as an editable element tree.
//
// Elements are addressed by [NodeID] handles rather than pointers, so that
// records derived from the tree (for example text boxes) can refer back to
// their source element without sharing its lifetime. The tree keeps, per
// element, the character data before its first child ([Node.Text]) and the
// character data that follows its end tag ([Node.Tail]). Comments,
// processing instructions and directives are kept where they occur, inside
// and around the root, so a saved document reproduces its source apart from
// the XML declaration, which is always written as UTF-8, and attribute
// quoting.
//
// Documents can be read from and written to any URL supported by
// github.com/viant/afs:
//
//	doc, err := xmldoc.Load(ctx, nil, "file:///data/report.xml")
//	...
//	err = doc.Save(ctx, nil, "/tmp/report-fixed.xml")
package xmldoc
