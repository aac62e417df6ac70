package qr

import (
	"errors"
	"testing"
)

func TestParse_AllFields(t *testing.T) {
	raw := "[Visitor: Jane Cruz][PDL: John Santos][Cell: A1][Relationship: Mother][Contact: 09171234567]"
	f, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.VisitorName != "Jane Cruz" {
		t.Errorf("visitor=%q", f.VisitorName)
	}
	if f.PdlName != "john santos" {
		t.Errorf("pdl=%q, want lower-cased", f.PdlName)
	}
	if f.Cell != "a1" {
		t.Errorf("cell=%q, want lower-cased", f.Cell)
	}
	if f.Relationship != "Mother" || f.ContactNumber != "09171234567" {
		t.Errorf("relationship=%q contact=%q", f.Relationship, f.ContactNumber)
	}
}

func TestParse_OrderIndependentAndUnknownKeys(t *testing.T) {
	raw := "prefix [Cell: B2] noise [Ticket: 99][PDL: Pedro Reyes] [Visitor: Ana Lim] suffix"
	f, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.VisitorName != "Ana Lim" || f.PdlName != "pedro reyes" || f.Cell != "b2" {
		t.Fatalf("unexpected fields: %+v", f)
	}
}

func TestParse_LastOccurrenceWins(t *testing.T) {
	raw := "[Visitor: First][Visitor: Second][PDL: X][Cell: C3]"
	f, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.VisitorName != "Second" {
		t.Fatalf("visitor=%q, want last occurrence", f.VisitorName)
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	raw := "[ Visitor :   Jane Cruz  ][PDL:  John Santos ][Cell:  A1 ]"
	f, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.VisitorName != "Jane Cruz" || f.PdlName != "john santos" || f.Cell != "a1" {
		t.Fatalf("unexpected fields: %+v", f)
	}
}

func TestParse_MissingRequired(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"[PDL: X][Cell: A1]", "Visitor"},
		{"[Visitor: J][Cell: A1]", "PDL"},
		{"[Visitor: J][PDL: X]", "Cell"},
		{"[Visitor:    ][PDL: X][Cell: A1]", "Visitor"},
		{"no brackets at all", "Visitor"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.raw)
		var mf *MissingFieldError
		if !errors.As(err, &mf) {
			t.Fatalf("raw=%q: want MissingFieldError, got %v", tc.raw, err)
		}
		if mf.Field != tc.want {
			t.Errorf("raw=%q: field=%q, want %q", tc.raw, mf.Field, tc.want)
		}
	}
}

func TestParse_OptionalFieldsAbsent(t *testing.T) {
	f, err := Parse("[Visitor: J][PDL: X][Cell: A1]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Relationship != "" || f.ContactNumber != "" {
		t.Fatalf("optional fields should be empty: %+v", f)
	}
}
