// Package resolver decides whether a scan opens or closes a visit session.
//
// The two states per triple (no open session / open session) are derived from
// the existence of a VisitSession row with a null time_out. Correctness under
// concurrent scans rests on the partial unique index over the triple where
// time_out IS NULL, plus a compare-and-set close.
package resolver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"visitlog/ent"
	"visitlog/ent/predicate"
	"visitlog/ent/visitsession"
)

// ErrConcurrentScan is returned when a commit loses an insert race for the
// same triple. The caller re-scans; the next commit classifies correctly.
var ErrConcurrentScan = errors.New("resolver: concurrent scan for the same triple, re-scan")

// Triple identifies a visiting relationship for session matching.
type Triple struct {
	VisitorName string // trimmed, original casing (display)
	VisitorKey  string // lower-cased visitor name (matching)
	PdlName     string // trimmed + lower-cased
	Cell        string // trimmed + lower-cased
}

// NewTriple normalizes raw names into a matching triple. Matching is
// case-insensitive on all three components; the visitor's casing is kept
// only for display.
func NewTriple(visitorName, pdlName, cell string) Triple {
	v := strings.TrimSpace(visitorName)
	return Triple{
		VisitorName: v,
		VisitorKey:  strings.ToLower(v),
		PdlName:     strings.ToLower(strings.TrimSpace(pdlName)),
		Cell:        strings.ToLower(strings.TrimSpace(cell)),
	}
}

// Signature is the debounce key for this triple.
func (t Triple) Signature() string {
	return t.VisitorKey + "|" + t.PdlName + "|" + t.Cell
}

// Action is the read-only classification of what a commit would do.
type Action string

const (
	ActionTimeInPending Action = "time_in_pending"
	ActionTimeOut       Action = "time_out"
)

// Kind labels a commit outcome.
type Kind string

const (
	KindTimeIn          Kind = "time_in"
	KindTimeOut         Kind = "time_out"
	KindAlreadyTimedOut Kind = "already_timed_out"
)

// Result is a committed decision.
type Result struct {
	Kind      Kind
	SessionID uuid.UUID
	TimeIn    time.Time
	TimeOut   *time.Time
}

// CommitInput carries one scan into Commit.
type CommitInput struct {
	Triple        Triple
	Purpose       visitsession.Purpose // defaults to normal on the time-in path
	Relationship  string
	ContactNumber string
	DeviceTime    string // authoritative when it parses; ignored otherwise
}

// Resolver runs preflight and commit against the session store.
type Resolver struct {
	client *ent.Client
	now    func() time.Time

	// beforeClose runs between the open-session read and the
	// compare-and-set close; nil outside tests.
	beforeClose func(context.Context, *ent.Tx)
}

func New(client *ent.Client) *Resolver {
	return &Resolver{client: client, now: time.Now}
}

func openSessionPredicates(t Triple) []predicate.VisitSession {
	return []predicate.VisitSession{
		visitsession.VisitorKeyEQ(t.VisitorKey),
		visitsession.PdlNameEQ(t.PdlName),
		visitsession.CellEQ(t.Cell),
		visitsession.TimeOutIsNil(),
	}
}

// Preflight classifies without mutating: time-out when an open session
// exists for the triple, otherwise time-in pending.
func (r *Resolver) Preflight(ctx context.Context, t Triple) (Action, error) {
	exists, err := r.client.VisitSession.Query().
		Where(openSessionPredicates(t)...).
		Exist(ctx)
	if err != nil {
		return "", err
	}
	if exists {
		return ActionTimeOut, nil
	}
	return ActionTimeInPending, nil
}

// Commit re-verifies state inside one transaction and applies exactly one
// mutation: close the open session, or open a new one.
func (r *Resolver) Commit(ctx context.Context, in CommitInput) (Result, error) {
	now := resolveNow(in.DeviceTime, r.now())
	purpose := in.Purpose
	if purpose == "" {
		purpose = visitsession.PurposeNormal
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return Result{}, err
	}
	res, err := r.commitTx(ctx, tx, in, purpose, now)
	if err != nil {
		_ = tx.Rollback()
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (r *Resolver) commitTx(ctx context.Context, tx *ent.Tx, in CommitInput, purpose visitsession.Purpose, now time.Time) (Result, error) {
	open, err := tx.VisitSession.Query().
		Where(openSessionPredicates(in.Triple)...).
		Only(ctx)
	switch {
	case err == nil:
		if r.beforeClose != nil {
			r.beforeClose(ctx, tx)
		}
		out := now
		if out.Before(open.TimeIn) {
			// device clock behind the recorded time-in; clamp so time_out >= time_in
			out = open.TimeIn
		}
		n, err := tx.VisitSession.Update().
			Where(visitsession.IDEQ(open.ID), visitsession.TimeOutIsNil()).
			SetTimeOut(out).
			Save(ctx)
		if err != nil {
			return Result{}, err
		}
		if n == 0 {
			// lost the close race: the row is already timed out, report it as such
			row, err := tx.VisitSession.Get(ctx, open.ID)
			if err != nil {
				return Result{}, err
			}
			return Result{Kind: KindAlreadyTimedOut, SessionID: row.ID, TimeIn: row.TimeIn, TimeOut: row.TimeOut}, nil
		}
		return Result{Kind: KindTimeOut, SessionID: open.ID, TimeIn: open.TimeIn, TimeOut: &out}, nil

	case ent.IsNotFound(err):
		created, err := tx.VisitSession.Create().
			SetVisitorName(in.Triple.VisitorName).
			SetVisitorKey(in.Triple.VisitorKey).
			SetPdlName(in.Triple.PdlName).
			SetCell(in.Triple.Cell).
			SetRelationship(in.Relationship).
			SetContactNumber(in.ContactNumber).
			SetPurpose(purpose).
			SetTimeIn(now).
			SetScanDate(dayOf(now)).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// a concurrent commit opened the session first
				return Result{}, ErrConcurrentScan
			}
			return Result{}, err
		}
		return Result{Kind: KindTimeIn, SessionID: created.ID, TimeIn: created.TimeIn}, nil

	default:
		return Result{}, err
	}
}

// deviceTimeLayouts are the accepted forms for a capturing device's clock.
var deviceTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// resolveNow prefers the device clock when it parses; a malformed value
// falls back to the server clock and never fails the commit.
func resolveNow(deviceTime string, fallback time.Time) time.Time {
	dt := strings.TrimSpace(deviceTime)
	if dt == "" {
		return fallback
	}
	for _, layout := range deviceTimeLayouts {
		if ts, err := time.Parse(layout, dt); err == nil {
			return ts
		}
	}
	return fallback
}

func dayOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
