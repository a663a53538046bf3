package pdftabextract

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Page selection by page number; empty means all pages
	pages []int

	// Body filtering, as fractions of the page height
	headerRatio float64
	footerRatio float64

	// Column split as a fraction of the page width; 0 means no split
	divideRatio float64

	// Parsing
	normalize bool
	strict    bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:       nil, // nil means all pages
		headerRatio: 0.0,
		footerRatio: 1.0,
		divideRatio: 0.0,
		normalize:   false,
		strict:      false,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
