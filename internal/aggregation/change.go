package aggregation

import (
	"errors"
	"fmt"
)

// ErrInvalidChangeType is returned when a Change is built with a type other
// than add, modify or delete.
var ErrInvalidChangeType = errors.New("invalid change type")

// ChangeType is the kind of change recorded for a document.
type ChangeType string

const (
	ChangeAdd    ChangeType = "add"
	ChangeModify ChangeType = "modify"
	ChangeDelete ChangeType = "delete"
)

// Valid reports whether t is one of the three recorded change types.
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeAdd, ChangeModify, ChangeDelete:
		return true
	default:
		return false
	}
}

// Change is one change record for a document on a date. It is immutable once
// constructed.
type Change struct {
	date       string
	documentID string
	changeType ChangeType
	before     *string
	after      *string
}

// NewChange creates a change record. before and after may be nil.
func NewChange(date, documentID string, changeType ChangeType, before, after *string) (Change, error) {
	if !changeType.Valid() {
		return Change{}, fmt.Errorf("%w: %q", ErrInvalidChangeType, string(changeType))
	}
	return Change{
		date:       date,
		documentID: documentID,
		changeType: changeType,
		before:     copyText(before),
		after:      copyText(after),
	}, nil
}

func copyText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Date returns the date tag of the commit that introduced the change.
func (c Change) Date() string { return c.date }

// DocumentID returns the BWB identifier of the changed document.
func (c Change) DocumentID() string { return c.documentID }

// Type returns the change type.
func (c Change) Type() ChangeType { return c.changeType }

// Before returns the captured old text, if any.
func (c Change) Before() (string, bool) {
	if c.before == nil {
		return "", false
	}
	return *c.before, true
}

// After returns the captured new text, if any.
func (c Change) After() (string, bool) {
	if c.after == nil {
		return "", false
	}
	return *c.after, true
}

// IsAdd returns 1 for an add record and 0 otherwise.
func (c Change) IsAdd() int { return indicator(c.changeType == ChangeAdd) }

// IsModify returns 1 for a modify record and 0 otherwise.
func (c Change) IsModify() int { return indicator(c.changeType == ChangeModify) }

// IsDelete returns 1 for a delete record and 0 otherwise.
func (c Change) IsDelete() int { return indicator(c.changeType == ChangeDelete) }

func indicator(b bool) int {
	if b {
		return 1
	}
	return 0
}
