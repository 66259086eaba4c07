// Package requestcontext provides transport-independent context accessors for request-scoped values.
//
// The line server sets these values after resolving a session; services and
// stores read them without depending on the transport.
//
// Usage in services (read values):
//
//	actor := requestcontext.ActorID(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithActor(ctx, "E002", domain.RoleUser)
package requestcontext

import (
	"context"
	"time"

	id "zoo/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	actorIDKey     struct{}
	roleKey        struct{}
	sessionIDKey   struct{}
	clientAddrKey  struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyActorID     = actorIDKey{}
	ContextKeyRole        = roleKey{}
	ContextKeySessionID   = sessionIDKey{}
	ContextKeyClientAddr  = clientAddrKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// -----------------------------------------------------------------------------
// Session context (actor, role, session)
// -----------------------------------------------------------------------------

// ActorID retrieves the authenticated employee from the context.
// Returns the empty ID if not set.
func ActorID(ctx context.Context) id.EmployeeID {
	if actor, ok := ctx.Value(ContextKeyActorID).(id.EmployeeID); ok {
		return actor
	}
	return ""
}

// Role retrieves the authenticated employee's role. Defaults to RoleUser.
func Role(ctx context.Context) id.Role {
	if role, ok := ctx.Value(ContextKeyRole).(id.Role); ok {
		return role
	}
	return id.RoleUser
}

// WithActor injects the authenticated employee and role into the context.
func WithActor(ctx context.Context, actor id.EmployeeID, role id.Role) context.Context {
	ctx = context.WithValue(ctx, ContextKeyActorID, actor)
	return context.WithValue(ctx, ContextKeyRole, role)
}

// SessionID retrieves the session token id (jti) from the context.
func SessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(ContextKeySessionID).(string); ok {
		return sessionID
	}
	return ""
}

// WithSessionID injects a session token id into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// -----------------------------------------------------------------------------
// Connection metadata
// -----------------------------------------------------------------------------

// ClientAddr retrieves the remote address of the connection.
func ClientAddr(ctx context.Context) string {
	if addr, ok := ctx.Value(ContextKeyClientAddr).(string); ok {
		return addr
	}
	return ""
}

// WithClientAddr injects the remote address of the connection.
func WithClientAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, ContextKeyClientAddr, addr)
}

// -----------------------------------------------------------------------------
// Request ID
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a request ID into a context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// -----------------------------------------------------------------------------
// Request time
// -----------------------------------------------------------------------------

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (for workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
// Useful for:
//   - Service unit tests that need a fixed clock
//   - Batch scans that need consistent time across animals
//   - CLI commands
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
