// Package rules flags curation issues in a deposit.
//
// Rules are conditions over an item's metadata fields. A rule whose
// condition matches produces a Finding; for example a contact name
// without a contact email leaves the README author block incomplete.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
)

// Pseudo-fields derived from the bitstream listing.
const (
	FieldOriginals    = "bitstream.original"
	FieldSpreadsheets = "bitstream.spreadsheet"
)

//go:embed default.yaml
var defaultRules []byte

// RuleSet contains the curation rules applied to an item.
type RuleSet struct {
	// Name identifies this rule set
	Name string `yaml:"name" json:"name"`

	// Description documents what these rules are for
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Rules is the ordered list of rules
	Rules []Rule `yaml:"rules" json:"rules"`
}

// Severity grades a finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rule defines a single curation check.
type Rule struct {
	// Name identifies this rule for debugging/logging
	Name string `yaml:"name" json:"name"`

	// Description documents what this rule does
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Severity defaults to warning
	Severity Severity `yaml:"severity,omitempty" json:"severity,omitempty"`

	// When defines the conditions under which the issue is reported
	When Condition `yaml:"when" json:"when"`

	// Message is shown to the curator when the rule matches
	Message string `yaml:"message" json:"message"`
}

// Condition defines when a rule should be applied.
type Condition struct {
	// Field is the metadata key (e.g., "dc.title") or a bitstream pseudo-field
	Field string `yaml:"field,omitempty" json:"field,omitempty"`

	// Equals matches exact value
	Equals string `yaml:"equals,omitempty" json:"equals,omitempty"`

	// Contains matches if the field contains this substring
	Contains string `yaml:"contains,omitempty" json:"contains,omitempty"`

	// Matches is a regex pattern to match against
	Matches string `yaml:"matches,omitempty" json:"matches,omitempty"`

	// In matches if the field value is in this list
	In []string `yaml:"in,omitempty" json:"in,omitempty"`

	// Exists checks if the field has any value
	Exists *bool `yaml:"exists,omitempty" json:"exists,omitempty"`

	// All requires all sub-conditions to match (AND)
	All []Condition `yaml:"all,omitempty" json:"all,omitempty"`

	// Any requires at least one sub-condition to match (OR)
	Any []Condition `yaml:"any,omitempty" json:"any,omitempty"`

	// Not inverts the sub-condition
	Not *Condition `yaml:"not,omitempty" json:"not,omitempty"`
}

// Finding is a rule that matched an item.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Evaluate checks every rule against the given field values and returns a
// finding for each rule that matched, in rule order.
func (rs *RuleSet) Evaluate(fieldValues map[string]string) []Finding {
	var findings []Finding
	for _, rule := range rs.Rules {
		if !rule.When.Evaluate(fieldValues) {
			continue
		}
		severity := rule.Severity
		if severity == "" {
			severity = SeverityWarning
		}
		findings = append(findings, Finding{
			Rule:     rule.Name,
			Severity: severity,
			Message:  rule.Message,
		})
	}
	return findings
}

// Check evaluates rs against a document.
func (rs *RuleSet) Check(doc *format.Document) ([]Finding, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return rs.Evaluate(Fields(doc)), nil
}

// Fields flattens a document into the values conditions are matched
// against. Repeated keys are joined with "; " and empty values are left
// out, so Exists means "has a non-empty value".
func Fields(doc *format.Document) map[string]string {
	fields := make(map[string]string)
	for _, r := range doc.Index.Records() {
		if r.Value == "" {
			continue
		}
		if prev, ok := fields[r.Key]; ok {
			fields[r.Key] = prev + "; " + r.Value
		} else {
			fields[r.Key] = r.Value
		}
	}

	var originals []string
	for _, e := range doc.Catalog.Originals() {
		originals = append(originals, e.Name)
	}
	if len(originals) > 0 {
		fields[FieldOriginals] = strings.Join(originals, "; ")
	}
	if names := doc.Catalog.SpreadsheetNames(); names[0] != bitstream.PlaceholderFilename {
		fields[FieldSpreadsheets] = strings.Join(names, "; ")
	}
	return fields
}

// Evaluate checks if the condition matches the given field values.
func (c *Condition) Evaluate(fieldValues map[string]string) bool {
	// Handle composite conditions first
	if len(c.All) > 0 {
		for _, sub := range c.All {
			if !sub.Evaluate(fieldValues) {
				return false
			}
		}
		return true
	}

	if len(c.Any) > 0 {
		for _, sub := range c.Any {
			if sub.Evaluate(fieldValues) {
				return true
			}
		}
		return false
	}

	if c.Not != nil {
		return !c.Not.Evaluate(fieldValues)
	}

	// Simple field condition
	if c.Field == "" {
		return true // No condition means always match
	}

	value, exists := fieldValues[c.Field]

	// Check exists condition
	if c.Exists != nil {
		return exists == *c.Exists
	}

	if !exists {
		return false
	}

	// Check value conditions
	if c.Equals != "" {
		return strings.EqualFold(value, c.Equals)
	}

	if c.Contains != "" {
		return strings.Contains(strings.ToLower(value), strings.ToLower(c.Contains))
	}

	if c.Matches != "" {
		matched, _ := regexp.MatchString(c.Matches, value)
		return matched
	}

	if len(c.In) > 0 {
		valueLower := strings.ToLower(value)
		for _, v := range c.In {
			if strings.EqualFold(valueLower, v) {
				return true
			}
		}
		return false
	}

	// No specific condition, just check field exists
	return true
}

// Validate checks that every regular expression compiles.
func (rs *RuleSet) Validate() error {
	for _, rule := range rs.Rules {
		if err := rule.When.validate(); err != nil {
			return fmt.Errorf("rule %q: %w", rule.Name, err)
		}
	}
	return nil
}

func (c *Condition) validate() error {
	if c.Matches != "" {
		if _, err := regexp.Compile(c.Matches); err != nil {
			return err
		}
	}
	for i := range c.All {
		if err := c.All[i].validate(); err != nil {
			return err
		}
	}
	for i := range c.Any {
		if err := c.Any[i].validate(); err != nil {
			return err
		}
	}
	if c.Not != nil {
		return c.Not.validate()
	}
	return nil
}

// Default returns the built-in DRUM curation rules.
func Default() *RuleSet {
	rs, err := LoadRuleSetFromBytes(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in rules: %v", err))
	}
	return rs
}

// LoadRuleSet loads a rule set from a YAML file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	return LoadRuleSetFromBytes(data)
}

// LoadRuleSetFromBytes loads a rule set from YAML bytes.
func LoadRuleSetFromBytes(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing rules YAML: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}
