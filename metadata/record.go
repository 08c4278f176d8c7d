// Package metadata normalizes the flat key/value metadata of a repository item.
package metadata

import (
	"github.com/umn-libraries/drumcurate/helpers"
)

// Record is a single metadata entry as returned by the repository item API.
// Keys use the dotted Dublin Core form, e.g. "dc.contributor.author".
type Record struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Metadata keys with special handling. Any other key is only kept in the
// raw record list.
const (
	KeyTitle          = "dc.title"
	KeyAuthor         = "dc.contributor.author"
	KeyContactName    = "dc.contributor.contactname"
	KeyContactEmail   = "dc.contributor.contactemail"
	KeyDateAvailable  = "dc.date.available"
	KeyCollectedBegin = "dc.date.collectedbegin"
	KeyCollectedEnd   = "dc.date.collectedend"
	KeySpatial        = "dc.coverage.spatial"
	KeySponsorship    = "dc.description.sponsorship"
	KeyAbstract       = "dc.description.abstract"
	KeyRights         = "dc.rights"
	KeyRightsURI      = "dc.rights.uri"
	KeyReferencedBy   = "dc.relation.isreferencedby"
	KeyIdentifierURI  = "dc.identifier.uri"
)

// Author is a depositor-entered creator of the dataset.
type Author struct {
	// Raw is the "Last, First" value as entered.
	Raw       string
	LastName  string
	FirstName string

	// IsContact is set when Raw exactly matches the contact name.
	IsContact    bool
	ContactEmail string
}

// DisplayName returns the author name in "First Last" order.
func (a Author) DisplayName() string {
	return helpers.ParsedName{Raw: a.Raw, Family: a.LastName, Given: a.FirstName}.Direct()
}

// DateRange is the period over which the data was collected.
type DateRange struct {
	Begin string
	End   string
}

// String renders the range as "<begin> to <end>".
func (d DateRange) String() string {
	return d.Begin + " to " + d.End
}

// Rights is the license statement attached to the item.
type Rights struct {
	Text string
	URI  string
}

// String renders the statement as "<text> (<uri>)", dropping whichever
// part is missing.
func (r Rights) String() string {
	switch {
	case r.Text != "" && r.URI != "":
		return r.Text + " (" + r.URI + ")"
	case r.Text != "":
		return r.Text
	default:
		return r.URI
	}
}

// IsEmpty reports whether neither text nor URI was supplied.
func (r Rights) IsEmpty() bool {
	return r.Text == "" && r.URI == ""
}
