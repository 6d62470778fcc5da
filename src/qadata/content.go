package qadata

import (
	"strings"
	"unicode/utf8"
)

// CreateResult reports what happened to a create operation. Invalid input and
// duplicates are normal outcomes, not errors; storage faults are returned
// separately as errors.
type CreateResult int

const (
	CreateOK CreateResult = iota
	CreateInvalid
	CreateDuplicate
)

func (r CreateResult) String() string {
	switch r {
	case CreateOK:
		return "ok"
	case CreateInvalid:
		return "invalid"
	case CreateDuplicate:
		return "duplicate"
	}
	return "unknown"
}

// validText reports whether text is acceptable content: non-blank after
// trimming, and at most maxLen characters. The text itself is stored
// verbatim; trimming applies only to the blankness check.
func validText(text string, maxLen int) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return utf8.RuneCountInString(text) <= maxLen
}
