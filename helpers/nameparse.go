package helpers

import (
	"strings"
)

// ParsedName holds the parts of a repository name stored as "Last, First".
type ParsedName struct {
	// Raw is the name exactly as deposited.
	Raw string

	Family string
	Given  string
}

// SplitInvertedName splits a "Last, First" name on its first comma.
// A name without a comma is treated as a family name with no given name.
func SplitInvertedName(name string) ParsedName {
	family, given, ok := strings.Cut(name, ",")
	if !ok {
		return ParsedName{Raw: name, Family: strings.TrimSpace(name)}
	}
	return ParsedName{
		Raw:    name,
		Family: strings.TrimSpace(family),
		Given:  strings.TrimSpace(given),
	}
}

// SplitDataCiteName splits a "Last, First" name on the ", " separator used
// when building DataCite creators. Unlike SplitInvertedName a bare comma is
// not a separator, so "Smith,Jane" yields a family name of "Smith,Jane".
// Only the segment between the first and second separator becomes the
// given name.
func SplitDataCiteName(name string) ParsedName {
	parts := strings.Split(name, ", ")
	p := ParsedName{
		Raw:    name,
		Family: strings.TrimSpace(parts[0]),
	}
	if len(parts) > 1 {
		p.Given = parts[1]
	}
	return p
}

// Direct formats the name in "First Last" order.
func (p ParsedName) Direct() string {
	if p.Given == "" {
		return p.Family
	}
	if p.Family == "" {
		return p.Given
	}
	return p.Given + " " + p.Family
}

// IsInvertedName checks if a name appears to be in "Last, First" format.
func IsInvertedName(name string) bool {
	return strings.Contains(name, ",")
}
