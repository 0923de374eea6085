// Package topic compiles hierarchical topic templates into matcher/builder
// pairs. A template is a /-separated string whose segments are either
// literals, named placeholders ("+name") or a single trailing wildcard ("#").
package topic

import (
	"fmt"
	"strings"
)

const (
	// Separator splits topics into segments. Placeholder values must not
	// contain it.
	Separator = "/"

	placeholderPrefix = "+"
	wildcardSegment   = "#"
)

// TemplateError reports a malformed template string. It is only returned by
// Compile, so it can surface at startup and never at runtime.
type TemplateError struct {
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("invalid topic template %q: %s", e.Template, e.Reason)
}

// MissingPlaceholderError reports a Render call that did not supply a value
// for a placeholder named in the template.
type MissingPlaceholderError struct {
	Template string
	Name     string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("topic template %q: missing value for placeholder %q", e.Template, e.Name)
}

// InvalidValueError reports a placeholder value that cannot appear in a
// topic segment.
type InvalidValueError struct {
	Name  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("placeholder %q: value %q contains the topic separator", e.Name, e.Value)
}

type segment struct {
	literal string
	name    string // placeholder name, "" for literals
}

// Template is a compiled topic template.
type Template struct {
	raw      string
	segments []segment
	wildcard bool // trailing "#" present
	names    []string
}

// Compile parses a template string. It fails if the template is empty, a
// placeholder name repeats, a placeholder has no name, or a wildcard segment
// appears anywhere but last.
func Compile(template string) (*Template, error) {
	if template == "" {
		return nil, &TemplateError{Template: template, Reason: "template is empty"}
	}

	parts := strings.Split(template, Separator)
	t := &Template{raw: template}
	seen := make(map[string]struct{})

	for i, part := range parts {
		switch {
		case part == wildcardSegment:
			if i != len(parts)-1 {
				return nil, &TemplateError{Template: template, Reason: "wildcard segment must be last"}
			}
			t.wildcard = true
		case strings.HasPrefix(part, placeholderPrefix):
			name := part[len(placeholderPrefix):]
			if name == "" {
				return nil, &TemplateError{Template: template, Reason: "placeholder segment has no name"}
			}
			if _, dup := seen[name]; dup {
				return nil, &TemplateError{Template: template, Reason: fmt.Sprintf("duplicate placeholder %q", name)}
			}
			seen[name] = struct{}{}
			t.names = append(t.names, name)
			t.segments = append(t.segments, segment{name: name})
		default:
			t.segments = append(t.segments, segment{literal: part})
		}
	}
	return t, nil
}

// MustCompile is Compile for templates known at program start.
func MustCompile(template string) *Template {
	t, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the original template string.
func (t *Template) String() string { return t.raw }

// PlaceholderNames returns the placeholder names in template order.
func (t *Template) PlaceholderNames() []string { return t.names }

// Wildcard reports whether the template ends in a wildcard segment.
// Wildcard templates can only be used for matching, never for publishing.
func (t *Template) Wildcard() bool { return t.wildcard }

// Specificity counts dynamic segments (placeholders plus wildcard). Lower is
// more specific; the registry uses it to break ties between templates that
// match the same topic.
func (t *Template) Specificity() int {
	n := len(t.names)
	if t.wildcard {
		n++
	}
	return n
}

// Match extracts placeholder values from a concrete topic. It returns
// (nil, false) when the topic does not fit the template; a disagreeing topic
// is not an error. Segments consumed by a trailing wildcard are discarded.
func (t *Template) Match(concrete string) (map[string]string, bool) {
	parts := strings.Split(concrete, Separator)

	if t.wildcard {
		if len(parts) < len(t.segments) {
			return nil, false
		}
	} else if len(parts) != len(t.segments) {
		return nil, false
	}

	var values map[string]string
	for i, seg := range t.segments {
		if seg.name != "" {
			if values == nil {
				values = make(map[string]string, len(t.names))
			}
			values[seg.name] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, true
}

// Render builds a concrete topic from placeholder values. Wildcard templates
// cannot be rendered. Values must not contain the separator.
func (t *Template) Render(values map[string]string) (string, error) {
	if t.wildcard {
		return "", &TemplateError{Template: t.raw, Reason: "wildcard template cannot be rendered for publishing"}
	}

	parts := make([]string, len(t.segments))
	for i, seg := range t.segments {
		if seg.name == "" {
			parts[i] = seg.literal
			continue
		}
		value, ok := values[seg.name]
		if !ok {
			return "", &MissingPlaceholderError{Template: t.raw, Name: seg.name}
		}
		if strings.Contains(value, Separator) {
			return "", &InvalidValueError{Name: seg.name, Value: value}
		}
		parts[i] = value
	}
	return strings.Join(parts, Separator), nil
}

// Filter returns the subscription filter for this template: placeholders
// become single-level wildcards ("+") and a trailing wildcard stays "#".
func (t *Template) Filter() string {
	parts := make([]string, 0, len(t.segments)+1)
	for _, seg := range t.segments {
		if seg.name != "" {
			parts = append(parts, placeholderPrefix)
		} else {
			parts = append(parts, seg.literal)
		}
	}
	if t.wildcard {
		parts = append(parts, wildcardSegment)
	}
	return strings.Join(parts, Separator)
}

// segment kinds ordered from most to least specific.
const (
	kindLiteral = iota
	kindPlaceholder
	kindWildcard
)

func (t *Template) kindAt(i int) int {
	if i >= len(t.segments) {
		return kindWildcard
	}
	if t.segments[i].name != "" {
		return kindPlaceholder
	}
	return kindLiteral
}

// Compare orders two templates by specificity, segment by segment: a literal
// beats a placeholder, a placeholder beats a wildcard. It returns a negative
// value when a is more specific, positive when b is, and zero when the
// templates have identical segment kinds throughout. Zero means no concrete
// topic can tell them apart by specificity.
func Compare(a, b *Template) int {
	n := len(a.segments)
	if len(b.segments) > n {
		n = len(b.segments)
	}
	if a.wildcard || b.wildcard {
		n++
	}
	for i := 0; i < n; i++ {
		if d := a.kindAt(i) - b.kindAt(i); d != 0 {
			return d
		}
	}
	return 0
}

// Overlaps reports whether some concrete topic could match both templates.
// The registry uses it at build time to reject ambiguous vocabularies.
func (t *Template) Overlaps(other *Template) bool {
	a, b := t.segments, other.segments
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].name != "" || b[i].name != "" {
			continue // placeholder matches any segment
		}
		if a[i].literal != b[i].literal {
			return false
		}
	}
	if len(a) == len(b) {
		return true
	}
	// Unequal lengths only overlap when the shorter template is wildcarded.
	if len(a) < len(b) {
		return t.wildcard
	}
	return other.wildcard
}
