package xmldoc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Load downloads and parses the document at URL. A nil fs uses afs.New().
func Load(ctx context.Context, fs afs.Service, URL string) (*Document, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", URL, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", URL, err)
	}
	return doc, nil
}

// Save encodes the document and uploads it to URL. A nil fs uses afs.New().
func (d *Document) Save(ctx context.Context, fs afs.Service, URL string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if fs == nil {
		fs = afs.New()
	}
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", URL, err)
	}
	return nil
}
