package helpers

import (
	"strings"
)

// CollapseCRLF replaces every CR LF pair with a single space. Repository
// rights statements are entered in a textarea and carry Windows line breaks.
func CollapseCRLF(s string) string {
	return strings.ReplaceAll(s, "\r\n", " ")
}

// DatePart returns the calendar date of an ISO 8601 timestamp by dropping
// everything from the first "T".
func DatePart(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, "T")
	return date
}

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
