package kit

import (
	"strings"

	"visitlog/ent"
	"visitlog/ent/visitsession"

	"github.com/samber/lo"
)

type visitSortApplier struct {
	Asc  func(*ent.VisitSessionQuery) *ent.VisitSessionQuery
	Desc func(*ent.VisitSessionQuery) *ent.VisitSessionQuery
}

// VisitSortWhitelist defines allowed sort fields and their query modifiers for visit sessions
var VisitSortWhitelist = map[string]visitSortApplier{
	"time_in": {Asc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Asc(visitsession.FieldTimeIn))
	}, Desc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Desc(visitsession.FieldTimeIn))
	}},
	"scan_date": {Asc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Asc(visitsession.FieldScanDate))
	}, Desc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Desc(visitsession.FieldScanDate))
	}},
	"visitor_name": {Asc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Asc(visitsession.FieldVisitorKey))
	}, Desc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Desc(visitsession.FieldVisitorKey))
	}},
	"cell": {Asc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery { return q.Order(ent.Asc(visitsession.FieldCell)) }, Desc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Desc(visitsession.FieldCell))
	}},
	"created_at": {Asc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Asc(visitsession.FieldCreatedAt))
	}, Desc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery {
		return q.Order(ent.Desc(visitsession.FieldCreatedAt))
	}},
	"id": {Asc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery { return q.Order(ent.Asc(visitsession.FieldID)) }, Desc: func(q *ent.VisitSessionQuery) *ent.VisitSessionQuery { return q.Order(ent.Desc(visitsession.FieldID)) }},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyVisitSort applies a validated sort spec to an ent VisitSessionQuery
func ApplyVisitSort(q *ent.VisitSessionQuery, s string) (*ent.VisitSessionQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := VisitSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
