package metadata

import (
	"log/slog"

	"github.com/umn-libraries/drumcurate/helpers"
)

// Index is the normalized, read-only view of one item's metadata records.
// Build it with NewIndex; it is safe for concurrent use.
type Index struct {
	records []Record

	title         string
	abstract      string
	spatial       string
	datePublished string
	uri           string

	authors      []Author
	funders      []string
	publications []string

	contactName    string
	hasContactName bool
	contactEmail   string
	collectedBegin string
	hasBegin       bool
	collectedEnd   string
	hasEnd         bool
	rights         Rights
}

// NewIndex builds an Index from records in their original order.
// Single-valued fields keep the last value seen; multi-valued fields keep
// every value in order, duplicates included.
func NewIndex(records []Record) *Index {
	idx := &Index{
		records: append([]Record(nil), records...),
	}

	for _, r := range records {
		switch r.Key {
		case KeyTitle:
			idx.title = r.Value
		case KeyAuthor:
			idx.authors = append(idx.authors, newAuthor(r.Value))
		case KeyContactName:
			idx.contactName = r.Value
			idx.hasContactName = true
		case KeyContactEmail:
			idx.contactEmail = r.Value
		case KeyDateAvailable:
			idx.datePublished = helpers.DatePart(r.Value)
		case KeyCollectedBegin:
			idx.collectedBegin = r.Value
			idx.hasBegin = true
		case KeyCollectedEnd:
			idx.collectedEnd = r.Value
			idx.hasEnd = true
		case KeySpatial:
			idx.spatial = r.Value
		case KeySponsorship:
			idx.funders = append(idx.funders, r.Value)
		case KeyAbstract:
			idx.abstract = r.Value
		case KeyRights:
			idx.rights.Text = helpers.CollapseCRLF(r.Value)
		case KeyRightsURI:
			idx.rights.URI = r.Value
		case KeyReferencedBy:
			idx.publications = append(idx.publications, r.Value)
		case KeyIdentifierURI:
			idx.uri = r.Value
		}
	}

	// Contact matching compares the raw author string, not the parsed parts.
	if idx.hasContactName {
		for i := range idx.authors {
			if idx.authors[i].Raw == idx.contactName {
				idx.authors[i].IsContact = true
				idx.authors[i].ContactEmail = idx.contactEmail
			}
		}
	}

	return idx
}

func newAuthor(raw string) Author {
	if !helpers.IsInvertedName(raw) {
		slog.Debug("author without comma separator, using it as last name", "author", raw)
	}
	p := helpers.SplitInvertedName(raw)
	return Author{
		Raw:       raw,
		LastName:  p.Family,
		FirstName: p.Given,
	}
}

// Title returns the dc.title value.
func (idx *Index) Title() string { return idx.title }

// Abstract returns the dc.description.abstract value.
func (idx *Index) Abstract() string { return idx.abstract }

// Spatial returns the dc.coverage.spatial value.
func (idx *Index) Spatial() string { return idx.spatial }

// DatePublished returns the date part of dc.date.available.
func (idx *Index) DatePublished() string { return idx.datePublished }

// URI returns the canonical handle or DOI URI from dc.identifier.uri.
func (idx *Index) URI() string { return idx.uri }

// Authors returns the authors in deposit order.
func (idx *Index) Authors() []Author {
	return append([]Author(nil), idx.authors...)
}

// Funders returns every dc.description.sponsorship value in order.
func (idx *Index) Funders() []string {
	return append([]string(nil), idx.funders...)
}

// Publications returns every dc.relation.isreferencedby value in order.
func (idx *Index) Publications() []string {
	return append([]string(nil), idx.publications...)
}

// DateRange returns the collection period. The second result is false
// unless both the begin and end dates were supplied.
func (idx *Index) DateRange() (DateRange, bool) {
	if !idx.hasBegin || !idx.hasEnd {
		return DateRange{}, false
	}
	return DateRange{Begin: idx.collectedBegin, End: idx.collectedEnd}, true
}

// Rights returns the license statement, which may be empty.
func (idx *Index) Rights() Rights { return idx.rights }

// Records returns every input record verbatim, in input order.
func (idx *Index) Records() []Record {
	return append([]Record(nil), idx.records...)
}
