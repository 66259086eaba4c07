// Package permission authorizes an employee to act on a specific animal.
//
// An employee may write feeding or state records for an animal only while a
// shift assigns them to that animal, and only if they hold the animal's
// required skill. A configured super actor bypasses both checks.
package permission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
)

// DefaultSkill marks an animal any on-duty employee may handle.
const DefaultSkill = "General"

// DefaultSuperActor is the administrator identity that bypasses the gate.
const DefaultSuperActor id.EmployeeID = "E001"

// Denial reasons returned to callers unchanged.
const (
	ReasonSuperActor        = "administrator override"
	ReasonAuthorized        = "authorized"
	ReasonNotOnDuty         = "not on duty for this animal"
	ReasonMissingCredential = "missing credential"
)

// Store is the read-only view of shifts, animals and skills the gate needs.
type Store interface {
	// HasActiveShift reports whether a shift assigns employee to animal with
	// shift_start <= at <= shift_end.
	HasActiveShift(ctx context.Context, employee id.EmployeeID, animal id.AnimalID, at time.Time) (bool, error)
	// RequiredSkill returns the animal's required skill, or DefaultSkill when
	// the animal is unknown or unrestricted.
	RequiredSkill(ctx context.Context, animal id.AnimalID) (string, error)
	HasSkill(ctx context.Context, employee id.EmployeeID, skill string) (bool, error)
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow(reason string) Decision { return Decision{Allowed: true, Reason: reason} }
func deny(reason string) Decision  { return Decision{Allowed: false, Reason: reason} }

// Gate authorizes writes against animals. It holds no locks and has no side effects.
type Gate struct {
	store      Store
	superActor id.EmployeeID
	logger     *slog.Logger
}

type Option func(*Gate)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

// WithSuperActor overrides the administrator identity that bypasses the gate.
func WithSuperActor(actor id.EmployeeID) Option {
	return func(g *Gate) {
		g.superActor = actor
	}
}

func New(store Store, opts ...Option) (*Gate, error) {
	if store == nil {
		return nil, fmt.Errorf("permission store is required")
	}
	g := &Gate{
		store:      store,
		superActor: DefaultSuperActor,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// SuperActor returns the identity that bypasses the gate.
func (g *Gate) SuperActor() id.EmployeeID {
	return g.superActor
}

// Authorize decides whether actor may act on animal at the request time.
// Store failures are returned as errors and never as an allow.
func (g *Gate) Authorize(ctx context.Context, actor id.EmployeeID, animal id.AnimalID) (Decision, error) {
	if actor == g.superActor {
		return allow(ReasonSuperActor), nil
	}

	onDuty, err := g.store.HasActiveShift(ctx, actor, animal, requestcontext.Now(ctx))
	if err != nil {
		return deny("permission check failed"), fmt.Errorf("check shift: %w", err)
	}
	if !onDuty {
		return deny(ReasonNotOnDuty), nil
	}

	return g.CheckSkill(ctx, actor, animal)
}

// CheckSkill verifies only the credential part of the gate. Shift assignment
// uses it to refuse scheduling an employee onto an animal they cannot handle.
func (g *Gate) CheckSkill(ctx context.Context, employee id.EmployeeID, animal id.AnimalID) (Decision, error) {
	skill, err := g.store.RequiredSkill(ctx, animal)
	if err != nil {
		return deny("permission check failed"), fmt.Errorf("resolve required skill: %w", err)
	}
	if skill == "" || skill == DefaultSkill {
		return allow(ReasonAuthorized), nil
	}

	has, err := g.store.HasSkill(ctx, employee, skill)
	if err != nil {
		return deny("permission check failed"), fmt.Errorf("check skill grant: %w", err)
	}
	if !has {
		return deny(fmt.Sprintf("%s: %s", ReasonMissingCredential, skill)), nil
	}
	return allow(ReasonAuthorized), nil
}

// Require is Authorize for callers that only proceed on success. A denial is
// a CodeForbidden error whose message is the gate's reason.
func (g *Gate) Require(ctx context.Context, actor id.EmployeeID, animal id.AnimalID) error {
	decision, err := g.Authorize(ctx, actor, animal)
	if err != nil {
		g.logger.ErrorContext(ctx, "permission check failed",
			"actor_id", actor,
			"animal_id", animal,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "permission check failed")
	}
	if !decision.Allowed {
		return dErrors.New(dErrors.CodeForbidden, decision.Reason)
	}
	return nil
}
