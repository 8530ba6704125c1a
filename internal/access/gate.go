package access

import (
	"github.com/inventsight/inventsight-backend/internal/models"
)

// ResolutionState tags the lifecycle of one upstream lookup (session,
// membership, subscription). Failed exists so callers can log the cause before
// the gate degrades it to absence; the user-visible outcome is the same.
type ResolutionState int

const (
	ResolutionPending ResolutionState = iota
	ResolutionResolved
	ResolutionAbsent
	ResolutionFailed
)

// Resolution carries the latest value of an asynchronous lookup.
type Resolution[T any] struct {
	State ResolutionState
	Value T
	Err   error
}

func Pending[T any]() Resolution[T] { return Resolution[T]{State: ResolutionPending} }

func Resolved[T any](v T) Resolution[T] {
	return Resolution[T]{State: ResolutionResolved, Value: v}
}

func Absent[T any]() Resolution[T] { return Resolution[T]{State: ResolutionAbsent} }

func Failed[T any](err error) Resolution[T] {
	return Resolution[T]{State: ResolutionFailed, Err: err}
}

// GateState is what a protected screen should do right now.
type GateState int

const (
	// GateResolving: session or membership still loading; show nothing yet.
	GateResolving GateState = iota
	// GateSignedOut: no identity; send the client to login.
	GateSignedOut
	// GateNeedsOnboarding: identity but no active org; send to org setup.
	GateNeedsOnboarding
	// GateAuthorized: render protected content.
	GateAuthorized
	// GatePaywalled: render the paywall placeholder instead of content.
	GatePaywalled
)

func (s GateState) String() string {
	switch s {
	case GateResolving:
		return "resolving"
	case GateSignedOut:
		return "signed_out"
	case GateNeedsOnboarding:
		return "needs_onboarding"
	case GateAuthorized:
		return "authorized"
	case GatePaywalled:
		return "paywalled"
	default:
		return "unknown"
	}
}

// Gate composes the three upstream resolutions into a single state. It holds
// no timers and no hidden state; re-evaluating with new resolutions is the only
// way the answer changes.
//
// Policy notes, in order:
//   - The gate blocks on session and membership resolution, but NOT on the
//     subscription decision: while that is still pending, access is granted
//     optimistically to avoid a paywall flash on every mount.
//   - Lookup failures degrade to absence (login / onboarding redirect). The
//     Failed tag lets the caller log the reason first.
//   - A failed or absent decision reads as "no plan", which pays the wall.
func Gate(session Resolution[*models.User], org Resolution[*models.Organization], decision Resolution[Decision]) GateState {
	switch session.State {
	case ResolutionPending:
		return GateResolving
	case ResolutionAbsent, ResolutionFailed:
		return GateSignedOut
	}

	switch org.State {
	case ResolutionPending:
		return GateResolving
	case ResolutionAbsent, ResolutionFailed:
		return GateNeedsOnboarding
	}

	switch decision.State {
	case ResolutionPending:
		return GateAuthorized
	case ResolutionResolved:
		if decision.Value.HasAccess {
			return GateAuthorized
		}
	}
	return GatePaywalled
}
