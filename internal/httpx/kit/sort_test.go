package kit

import (
	"testing"

	"visitlog/ent"
)

func TestApplyVisitSort_ValidateField(t *testing.T) {
	c := ent.NewClient()
	q := c.VisitSession.Query()
	if _, err := ApplyVisitSort(q, "time_in:desc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ApplyVisitSort(q, "visitor_name"); err != nil {
		t.Fatalf("bare field should default to asc: %v", err)
	}
	if _, err := ApplyVisitSort(q, "unknown:asc"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := ApplyVisitSort(q, "time_in:sideways"); err == nil {
		t.Fatalf("expected error for bad direction")
	}
}
