// Package format defines the interface for curation document renderers.
package format

import (
	"errors"
	"io"
	"time"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/metadata"
)

// DefaultPublisher is the publisher named in generated DataCite records.
const DefaultPublisher = "Data Repository for the University of Minnesota (DRUM)"

// ErrNilInput is returned when a renderer is handed a nil index or catalog.
var ErrNilInput = errors.New("nil metadata index or bitstream catalog")

// Format defines the interface that all renderers must implement.
type Format interface {
	// Name returns the format identifier (e.g., "readme", "datacite")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extension returns the file extension of rendered documents
	Extension() string

	// MediaType returns the MIME type of rendered documents
	MediaType() string
}

// Renderer is a format that can render a curation document.
type Renderer interface {
	Format

	// Render writes the document for doc to w.
	Render(w io.Writer, doc *Document, opts *RenderOptions) error
}

// Document is the normalized input shared by every renderer.
type Document struct {
	Index   *metadata.Index
	Catalog *bitstream.Catalog
}

// NewDocument normalizes raw metadata records and bitstream entries.
func NewDocument(records []metadata.Record, entries []bitstream.Entry) (*Document, error) {
	catalog, err := bitstream.NewCatalog(entries)
	if err != nil {
		return nil, err
	}
	return &Document{
		Index:   metadata.NewIndex(records),
		Catalog: catalog,
	}, nil
}

// Validate checks that both halves of the document are present.
func (d *Document) Validate() error {
	if d == nil || d.Index == nil || d.Catalog == nil {
		return ErrNilInput
	}
	return nil
}

// RenderOptions carries the caller-supplied values that are not part of
// the item metadata. Renderers never read the clock themselves.
type RenderOptions struct {
	// GeneratedDate is stamped on text documents (YYYY-MM-DD)
	GeneratedDate string

	// Year is the DataCite publication year (YYYY)
	Year string

	// Publisher overrides DefaultPublisher when set
	Publisher string
}

// NewRenderOptions creates RenderOptions dated at now.
func NewRenderOptions(now time.Time) *RenderOptions {
	return &RenderOptions{
		GeneratedDate: now.Format("2006-01-02"),
		Year:          now.Format("2006"),
		Publisher:     DefaultPublisher,
	}
}

// GetPublisher returns the publisher with a default.
func (o *RenderOptions) GetPublisher() string {
	if o == nil || o.Publisher == "" {
		return DefaultPublisher
	}
	return o.Publisher
}
