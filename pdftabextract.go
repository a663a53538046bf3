// Package pdftabextract provides a fluent API for reading the text boxes of a
// page-collection XML document (as written by pdftohtml -xml) and preparing
// them for table extraction.
//
// Basic usage:
//
//	result, err := pdftabextract.Open("file:///data/report.xml").Extract(ctx)
//	if err != nil {
//	    // handle error
//	}
//	for _, view := range result.Views {
//	    fmt.Println(view, len(view.Texts))
//	}
//
// With options:
//
//	result, err := pdftabextract.Open("report.xml").
//	    Pages(1, 2, 3).
//	    ExcludeHeader(0.1).
//	    ExcludeFooter(0.9).
//	    SplitColumns(0.5).
//	    Extract(ctx)
//
// For finer control use the reader and layout packages directly.
package pdftabextract

import (
	"log/slog"

	"github.com/viant/afs"

	"github.com/tsawler/pdftabextract/xmldoc"
)

// Open returns an Extractor for the document at URL. Any URL supported by
// github.com/viant/afs can be used; the document is loaded by Extract.
//
// Example:
//
//	result, err := pdftabextract.Open("report.xml").Extract(ctx)
func Open(URL string) *Extractor {
	return &Extractor{
		url:     URL,
		logger:  slog.Default(),
		options: defaultOptions(),
	}
}

// FromDocument creates an Extractor for an already loaded document.
// Positions written back by callers end up in doc.
//
// Example:
//
//	doc, err := xmldoc.Load(ctx, nil, "report.xml")
//	if err != nil {
//	    // handle error
//	}
//	result, err := pdftabextract.FromDocument(doc).Extract(ctx)
func FromDocument(doc *xmldoc.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		logger:  slog.Default(),
		options: defaultOptions(),
	}
}

// FileSystem sets the storage service used to load the document.
func (e *Extractor) FileSystem(fs afs.Service) *Extractor {
	newExt := e.clone()
	newExt.fs = fs
	return newExt
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := pdftabextract.Must(pdftabextract.Open("report.xml").Extract(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
