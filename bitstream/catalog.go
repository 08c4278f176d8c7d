// Package bitstream catalogs the files deposited with a repository item.
package bitstream

import (
	"fmt"
	"strings"

	"github.com/umn-libraries/drumcurate/helpers"
)

// BundleOriginal is the bundle holding depositor-submitted content.
const BundleOriginal = "ORIGINAL"

// PlaceholderFilename stands in for a spreadsheet name when the item has
// none, so the README always carries one data-specific section.
const PlaceholderFilename = "[FILENAME]"

// Entry describes one bitstream as listed by the repository API.
type Entry struct {
	Name       string `json:"name"`
	SizeBytes  int64  `json:"sizeBytes"`
	BundleName string `json:"bundleName"`
	SequenceID int    `json:"sequenceId"`
}

// IsOriginal reports whether the entry belongs to the ORIGINAL bundle.
func (e Entry) IsOriginal() bool {
	return e.BundleName == BundleOriginal
}

// HumanSize returns the entry size formatted by helpers.FormatSize.
func (e Entry) HumanSize() (string, error) {
	return helpers.FormatSize(e.SizeBytes)
}

// Catalog is a read-only list of an item's bitstreams.
type Catalog struct {
	entries   []Entry
	originals []Entry
}

// NewCatalog builds a Catalog from entries in listing order. An entry with
// a negative size is a caller bug and is rejected.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
	}
	for i, e := range entries {
		if e.SizeBytes < 0 {
			return nil, fmt.Errorf("bitstream %d (%s): %w: %d", i, e.Name, helpers.ErrInvalidSize, e.SizeBytes)
		}
		c.entries = append(c.entries, e)
		if e.IsOriginal() {
			c.originals = append(c.originals, e)
		}
	}
	return c, nil
}

// All returns every entry regardless of bundle.
func (c *Catalog) All() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Originals returns the ORIGINAL bundle entries in listing order.
func (c *Catalog) Originals() []Entry {
	return append([]Entry(nil), c.originals...)
}

// FileListBlock renders a filename and an empty short description for
// every original file.
func (c *Catalog) FileListBlock() string {
	var b strings.Builder
	for _, e := range c.originals {
		b.WriteString("\tFilename: ")
		b.WriteString(e.Name)
		b.WriteString("\n\tShort description:\n\n")
	}
	return b.String()
}

// SpreadsheetNames returns the names of original files that look like
// spreadsheets. Matching is by substring, so ".xls" also catches ".xlsx",
// ".xlsm" and names like "report.xlsx.bak". Without any match the result is
// a single PlaceholderFilename.
func (c *Catalog) SpreadsheetNames() []string {
	var names []string
	for _, e := range c.originals {
		if helpers.ContainsAny(e.Name, ".csv", ".xls") {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 {
		return []string{PlaceholderFilename}
	}
	return names
}

// TotalSize sums the sizes of the original files.
func (c *Catalog) TotalSize() int64 {
	var total int64
	for _, e := range c.originals {
		total += e.SizeBytes
	}
	return total
}
