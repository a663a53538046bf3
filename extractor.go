package pdftabextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/viant/afs"

	"github.com/tsawler/pdftabextract/layout"
	"github.com/tsawler/pdftabextract/model"
	"github.com/tsawler/pdftabextract/reader"
	"github.com/tsawler/pdftabextract/xmldoc"
)

// ErrPageNotFound is returned when a selected page is not in the document.
var ErrPageNotFound = errors.New("page not found")

// Extractor provides a fluent interface for extracting page texts.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	url string
	doc *xmldoc.Document
	fs  afs.Service

	logger *slog.Logger

	// Configuration
	options ExtractOptions
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		url:     e.url,
		doc:     e.doc,
		fs:      e.fs,
		logger:  e.logger,
		options: e.options.clone(),
	}
}

// Pages restricts extraction to the given page numbers.
//
// Example:
//
//	result, err := pdftabextract.Open("doc.xml").Pages(1, 3, 5).Extract(ctx)
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// ExcludeHeader drops texts above ratio * page height.
//
// Example:
//
//	result, err := pdftabextract.Open("doc.xml").ExcludeHeader(0.1).Extract(ctx)
func (e *Extractor) ExcludeHeader(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.headerRatio = ratio
	return newExt
}

// ExcludeFooter drops texts below ratio * page height.
//
// Example:
//
//	result, err := pdftabextract.Open("doc.xml").ExcludeFooter(0.9).Extract(ctx)
func (e *Extractor) ExcludeFooter(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.footerRatio = ratio
	return newExt
}

// SplitColumns divides every selected page at ratio * page width into a
// left and a right subpage. The split happens after header and footer
// texts were removed.
//
// Example:
//
//	result, err := pdftabextract.Open("doc.xml").SplitColumns(0.5).Extract(ctx)
func (e *Extractor) SplitColumns(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.divideRatio = ratio
	return newExt
}

// NormalizeUnicode converts text values to Unicode NFC.
func (e *Extractor) NormalizeUnicode() *Extractor {
	newExt := e.clone()
	newExt.options.normalize = true
	return newExt
}

// Strict makes repeated page numbers an error.
func (e *Extractor) Strict() *Extractor {
	newExt := e.clone()
	newExt.options.strict = true
	return newExt
}

// Logger sets the logger for parse and cutoff diagnostics.
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	if l != nil {
		newExt.logger = l
	}
	return newExt
}

// Result holds the parsed document and the extracted views.
type Result struct {
	// Document is the source tree; write-backs through Text.UpdatePosition
	// go here
	Document *xmldoc.Document

	// Pages holds every physical page of the document
	Pages reader.Pages

	// Views are the selected pages in page order, or their left and right
	// subpages when splitting. Their texts are restricted to the body.
	Views []*model.Page
}

// Extract loads and parses the document and builds the views.
func (e *Extractor) Extract(ctx context.Context) (*Result, error) {
	doc, err := e.ensureDocument(ctx)
	if err != nil {
		return nil, err
	}

	parseOpts := []reader.Option{reader.WithLogger(e.logger)}
	if e.options.normalize {
		parseOpts = append(parseOpts, reader.WithNormalization())
	}
	if e.options.strict {
		parseOpts = append(parseOpts, reader.WithStrict())
	}
	pages, err := reader.ParsePages(doc, parseOpts...)
	if err != nil {
		return nil, err
	}

	numbers, err := e.resolvePages(pages)
	if err != nil {
		return nil, err
	}

	bodyConfig := layout.BodyConfig{
		HeaderRatio: e.options.headerRatio,
		FooterRatio: e.options.footerRatio,
		Logger:      e.logger,
	}

	result := &Result{Document: doc, Pages: pages}
	for _, n := range numbers {
		page := pages[n]
		body, err := layout.BodyTexts(page, bodyConfig)
		if err != nil {
			return nil, err
		}

		if e.options.divideRatio == 0 {
			view := *page
			view.Texts = body
			result.Views = append(result.Views, &view)
			continue
		}

		left, right, err := layout.DivideTexts(page, e.options.divideRatio, body)
		if err != nil {
			return nil, err
		}
		result.Views = append(result.Views, left, right)
	}

	return result, nil
}

// ensureDocument loads the document if not already loaded.
func (e *Extractor) ensureDocument(ctx context.Context) (*xmldoc.Document, error) {
	if e.doc != nil {
		return e.doc, nil
	}
	if e.url == "" {
		return nil, fmt.Errorf("no document specified")
	}
	return xmldoc.Load(ctx, e.fs, e.url)
}

// resolvePages returns the selected page numbers, sorted and deduplicated.
func (e *Extractor) resolvePages(pages reader.Pages) ([]int, error) {
	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		return pages.Numbers(), nil
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, n := range e.options.pages {
		if _, ok := pages[n]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrPageNotFound, n)
		}
		if !seen[n] {
			seen[n] = true
			numbers = append(numbers, n)
		}
	}

	sort.Ints(numbers)
	return numbers, nil
}

// Corners finds the corner texts of every view.
func (r *Result) Corners(preds layout.CornerPredicates) []layout.Corners {
	out := make([]layout.Corners, len(r.Views))
	for i, v := range r.Views {
		out[i] = layout.CornerTexts(v, preds)
	}
	return out
}

// Save writes the document, including any positions written back, to URL.
func (r *Result) Save(ctx context.Context, fs afs.Service, URL string) error {
	return r.Document.Save(ctx, fs, URL)
}
