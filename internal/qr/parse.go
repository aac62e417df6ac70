// Package qr extracts structured visit fields from a scanned QR payload.
package qr

import (
	"fmt"
	"regexp"
	"strings"
)

// Fields are the values extracted from one scanned payload.
// PdlName and Cell are lower-cased for matching; VisitorName keeps its casing.
type Fields struct {
	VisitorName   string
	PdlName       string
	Cell          string
	Relationship  string
	ContactNumber string
}

// MissingFieldError reports a required key that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("qr: missing required field %q", e.Field)
}

// segmentRe matches one bracketed "[Key: Value]" segment.
var segmentRe = regexp.MustCompile(`\[\s*([^:\[\]]+?)\s*:\s*([^\[\]]*?)\s*\]`)

// Parse extracts fields from a raw payload containing bracketed
// "[Key: Value]" segments in any order. Unknown keys are ignored and the
// last occurrence of a repeated key wins. Visitor, PDL and Cell are required.
func Parse(raw string) (Fields, error) {
	vals := map[string]string{}
	for _, m := range segmentRe.FindAllStringSubmatch(raw, -1) {
		key := strings.ToLower(strings.TrimSpace(m[1]))
		switch key {
		case "visitor", "pdl", "cell", "relationship", "contact":
			vals[key] = strings.TrimSpace(m[2])
		}
	}

	for _, req := range []struct{ key, label string }{
		{"visitor", "Visitor"},
		{"pdl", "PDL"},
		{"cell", "Cell"},
	} {
		if vals[req.key] == "" {
			return Fields{}, &MissingFieldError{Field: req.label}
		}
	}

	return Fields{
		VisitorName:   vals["visitor"],
		PdlName:       strings.ToLower(vals["pdl"]),
		Cell:          strings.ToLower(vals["cell"]),
		Relationship:  vals["relationship"],
		ContactNumber: vals["contact"],
	}, nil
}
