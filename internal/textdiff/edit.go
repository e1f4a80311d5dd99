package textdiff

import "fmt"

// EditType classifies an Edit.
type EditType int

const (
	EditInsert EditType = iota
	EditDelete
	EditReplace
	EditEmpty
)

// Edit is a contiguous differing region: lines [BeginA, EndA) of the old text
// correspond to lines [BeginB, EndB) of the new text.
type Edit struct {
	BeginA, EndA int
	BeginB, EndB int
}

// Type returns the kind of edit.
func (e Edit) Type() EditType {
	switch {
	case e.BeginA == e.EndA && e.BeginB < e.EndB:
		return EditInsert
	case e.BeginA < e.EndA && e.BeginB == e.EndB:
		return EditDelete
	case e.BeginA == e.EndA && e.BeginB == e.EndB:
		return EditEmpty
	default:
		return EditReplace
	}
}

// LengthA returns the number of old lines covered.
func (e Edit) LengthA() int { return e.EndA - e.BeginA }

// LengthB returns the number of new lines covered.
func (e Edit) LengthB() int { return e.EndB - e.BeginB }

func (e Edit) String() string {
	return fmt.Sprintf("A[%d,%d) B[%d,%d)", e.BeginA, e.EndA, e.BeginB, e.EndB)
}
