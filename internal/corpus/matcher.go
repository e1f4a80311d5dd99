package corpus

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultDatePattern matches commit messages of the form YYYY-MM-DD.
	DefaultDatePattern = `^[0-9]{4}-[0-9]{2}-[0-9]{2}$`
	// DefaultDocumentPattern captures the BWB identifier directory of a path.
	DefaultDocumentPattern = `(?:.*[/\\])*(?P<id>BWB[^/^\\]+)[/\\]`
)

// Matcher recognises dated commits and resolves document identifiers from
// repository paths.
type Matcher struct {
	date     *regexp.Regexp
	document *regexp.Regexp
	idGroup  int
}

// NewMatcher compiles the date and document patterns. The document pattern
// must contain at least one capture group; a group named "id" is preferred,
// otherwise the first group is used. Empty patterns fall back to the defaults.
func NewMatcher(datePattern, documentPattern string) (*Matcher, error) {
	if strings.TrimSpace(datePattern) == "" {
		datePattern = DefaultDatePattern
	}
	if strings.TrimSpace(documentPattern) == "" {
		documentPattern = DefaultDocumentPattern
	}

	date, err := regexp.Compile(datePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid date pattern: %w", err)
	}
	document, err := regexp.Compile(documentPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid document pattern: %w", err)
	}
	if document.NumSubexp() == 0 {
		return nil, fmt.Errorf("document pattern %q has no capture group", documentPattern)
	}

	idGroup := document.SubexpIndex("id")
	if idGroup < 0 {
		idGroup = 1
	}
	return &Matcher{date: date, document: document, idGroup: idGroup}, nil
}

// Default returns a matcher for the standard laws-markdown layout.
func Default() *Matcher {
	m, err := NewMatcher(DefaultDatePattern, DefaultDocumentPattern)
	if err != nil {
		panic(err)
	}
	return m
}

// DateTag returns the trimmed commit message when it is a date tag.
func (m *Matcher) DateTag(message string) (string, bool) {
	tag := strings.TrimSpace(message)
	if !m.date.MatchString(tag) {
		return "", false
	}
	return tag, true
}

// IsDated reports whether a commit message is a date tag.
func (m *Matcher) IsDated(message string) bool {
	_, ok := m.DateTag(message)
	return ok
}

// DocumentID extracts the document identifier embedded in path.
func (m *Matcher) DocumentID(path string) (string, bool) {
	match := m.document.FindStringSubmatch(path)
	if match == nil || match[m.idGroup] == "" {
		return "", false
	}
	return match[m.idGroup], true
}
