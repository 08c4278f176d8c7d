package metadata

import (
	"strings"
)

// AuthorBlock renders one README author entry per author. Institution,
// address and ID are left for the depositor; the email is only filled in
// for the contact author.
func (idx *Index) AuthorBlock() string {
	var b strings.Builder
	for _, a := range idx.authors {
		b.WriteString("\n\tName: ")
		b.WriteString(a.DisplayName())
		b.WriteString("\n\tInstitution:\n\tAddress:\n\tEmail:")
		if a.IsContact && a.ContactEmail != "" {
			b.WriteString(" ")
			b.WriteString(a.ContactEmail)
		}
		b.WriteString("\n\tID:\n\n")
	}
	return b.String()
}

// DateCollectedString renders the collection period or "" when incomplete.
func (idx *Index) DateCollectedString() string {
	dr, ok := idx.DateRange()
	if !ok {
		return ""
	}
	return dr.String()
}

// LicenseString renders the rights statement with its URI.
func (idx *Index) LicenseString() string {
	return idx.rights.String()
}

// FundingBlock renders one tab-indented line per funder.
func (idx *Index) FundingBlock() string {
	var b strings.Builder
	for _, f := range idx.funders {
		b.WriteString("\t")
		b.WriteString(f)
		b.WriteString("\n")
	}
	return b.String()
}

// PublicationsBlock renders each related publication followed by a blank line.
func (idx *Index) PublicationsBlock() string {
	var b strings.Builder
	for _, p := range idx.publications {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	return b.String()
}
