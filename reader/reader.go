package reader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdftabextract/geom"
	"github.com/tsawler/pdftabextract/model"
	"github.com/tsawler/pdftabextract/xmldoc"
)

var (
	// ErrMissingAttribute is returned when a page lacks number, width or height.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrInvalidAttribute is returned when a page attribute is not a number.
	ErrInvalidAttribute = errors.New("invalid attribute value")

	// ErrDuplicatePage is returned in strict mode when a page number repeats.
	ErrDuplicatePage = errors.New("duplicate page number")
)

// Pages maps page numbers to physical pages
type Pages map[int]*model.Page

// Numbers returns the page numbers in ascending order
func (p Pages) Numbers() []int {
	nums := make([]int, 0, len(p))
	for n := range p {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Sorted returns the pages ordered by number
func (p Pages) Sorted() []*model.Page {
	nums := p.Numbers()
	out := make([]*model.Page, len(nums))
	for i, n := range nums {
		out[i] = p[n]
	}
	return out
}

// Option configures parsing
type Option func(*options)

type options struct {
	logger    *slog.Logger
	fs        afs.Service
	normalize bool
	strict    bool
}

func defaultOptions() options {
	return options{logger: slog.Default()}
}

// WithLogger sets the logger for diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFileSystem sets the storage service used by Open
func WithFileSystem(fs afs.Service) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithNormalization converts text values to Unicode NFC
func WithNormalization() Option {
	return func(o *options) {
		o.normalize = true
	}
}

// WithStrict makes a repeated page number an error instead of letting the
// later page replace the earlier one.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Open loads the document at URL and parses its pages.
func Open(ctx context.Context, URL string, opts ...Option) (*xmldoc.Document, Pages, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc, err := xmldoc.Load(ctx, o.fs, URL)
	if err != nil {
		return nil, nil, err
	}
	pages, err := ParsePages(doc, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", URL, err)
	}
	return doc, pages, nil
}

// ParsePages builds a page record for every <page> element below the root.
//
// Page numbers are expected to be unique. Unless WithStrict is given, a
// repeated number is logged and the later page replaces the earlier one.
func ParsePages(doc *xmldoc.Document, opts ...Option) (Pages, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pages := make(Pages)
	for _, node := range doc.Children(doc.Root(), model.PageElement) {
		page, err := parsePage(doc, node, o)
		if err != nil {
			return nil, err
		}

		if _, dup := pages[page.Number]; dup {
			if o.strict {
				return nil, fmt.Errorf("%w: %d", ErrDuplicatePage, page.Number)
			}
			o.logger.Warn("duplicate page number", "page", page.Number)
		}
		pages[page.Number] = page
	}

	return pages, nil
}

func parsePage(doc *xmldoc.Document, node xmldoc.NodeID, o options) (*model.Page, error) {
	number, err := intAttr(doc, node, "number")
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	width, err := truncAttr(doc, node, "width")
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", number, err)
	}
	height, err := truncAttr(doc, node, "height")
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", number, err)
	}

	page := model.NewPage(number, width, height)
	page.Source = node

	skipped := 0
	for _, tn := range doc.Children(node, model.TextElement) {
		t, reason := parseText(doc, tn)
		if t == nil {
			skipped++
			o.logger.Debug("skipping text element", "page", number, "node", int(tn), "reason", reason)
			continue
		}
		if o.normalize {
			t.Value = norm.NFC.String(t.Value)
		}
		page.AddText(t)
	}

	o.logger.Debug("parsed page", "page", number, "texts", len(page.Texts), "skipped", skipped)
	return page, nil
}

// parseText returns nil and the reason when the element is skipped.
func parseText(doc *xmldoc.Document, node xmldoc.NodeID) (*model.Text, string) {
	var geo [4]float64
	for i, name := range [4]string{"left", "top", "width", "height"} {
		v, err := truncAttr(doc, node, name)
		if err != nil {
			return nil, "bad_geometry"
		}
		geo[i] = v
	}
	left, top, width, height := geo[0], geo[1], geo[2], geo[3]

	topLeft := geom.Pt(left, top)
	if geom.NewRect(topLeft, topLeft.Translate(width, height)).Area() <= 0 {
		return nil, "zero_area"
	}

	value := doc.Text(node)
	if value == "" {
		// formatted text lives in child elements such as <b> or <i>
		descendants := doc.Descendants(node)
		if len(descendants) == 0 {
			return nil, "no_content"
		}
		parts := make([]string, 0, len(descendants))
		for _, d := range descendants {
			if s := doc.Text(d); s != "" {
				parts = append(parts, s)
			}
		}
		value = strings.Join(parts, " ")
	}

	return model.NewText(value, topLeft, width, height, node), ""
}

func attr(doc *xmldoc.Document, node xmldoc.NodeID, name string) (string, error) {
	v, ok := doc.Attr(node, name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingAttribute, name)
	}
	return strings.TrimSpace(v), nil
}

func intAttr(doc *xmldoc.Document, node xmldoc.NodeID, name string) (int, error) {
	v, err := attr(doc, node, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidAttribute, name, v)
	}
	return n, nil
}

// truncAttr reads a numeric attribute and drops its fractional part.
func truncAttr(doc *xmldoc.Document, node xmldoc.NodeID, name string) (float64, error) {
	v, err := attr(doc, node, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidAttribute, name, v)
	}
	return math.Trunc(f), nil
}
