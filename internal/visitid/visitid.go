// Package visitid issues collision-safe VIS-YY-NNNNNN visitor identifiers.
package visitid

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"visitlog/ent"
)

// maxAttempts bounds the regenerate-on-collision loop.
const maxAttempts = 10

// ErrExhaustedRetries is returned when every candidate id collided.
var ErrExhaustedRetries = errors.New("visitid: exhausted id generation retries")

// Generate builds one candidate id: VIS-<two-digit year>-<random 6 digits>.
func Generate(now time.Time, intn func(int) int) string {
	return fmt.Sprintf("VIS-%02d-%06d", now.Year()%100, intn(1_000_000))
}

// Profile is the registration input for a visitor.
type Profile struct {
	FullName          string
	Relationship      string
	Age               int
	Address           string
	ValidID           string
	ContactNumber     string
	DateOfApplication time.Time
	ConjugalVerified  bool
	PdlID             *uuid.UUID
}

// Registrar inserts visitor profiles, retrying only visitor_id collisions.
type Registrar struct {
	client *ent.Client
	intn   func(int) int
	now    func() time.Time
}

func NewRegistrar(client *ent.Client) *Registrar {
	return &Registrar{client: client, intn: rand.IntN, now: time.Now}
}

// Register creates a RegisteredVisitor with a fresh id. On a uniqueness
// violation for visitor_id it regenerates and retries up to maxAttempts;
// any other failure propagates immediately.
func (r *Registrar) Register(ctx context.Context, p Profile) (*ent.RegisteredVisitor, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		id := Generate(r.now(), r.intn)
		create := r.client.RegisteredVisitor.Create().
			SetVisitorID(id).
			SetFullName(p.FullName).
			SetRelationship(p.Relationship).
			SetAddress(p.Address).
			SetValidID(p.ValidID).
			SetContactNumber(p.ContactNumber).
			SetConjugalVerified(p.ConjugalVerified)
		if p.Age > 0 {
			create = create.SetAge(p.Age)
		}
		if !p.DateOfApplication.IsZero() {
			create = create.SetDateOfApplication(p.DateOfApplication)
		}
		if p.PdlID != nil {
			create = create.SetPdlID(*p.PdlID)
		}
		v, err := create.Save(ctx)
		if err == nil {
			return v, nil
		}
		if isVisitorIDCollision(err) {
			continue
		}
		return nil, err
	}
	return nil, ErrExhaustedRetries
}

// isVisitorIDCollision is true only for unique violations on visitor_id;
// other constraint failures must not be retried.
func isVisitorIDCollision(err error) bool {
	return ent.IsConstraintError(err) && strings.Contains(err.Error(), "visitor_id")
}
