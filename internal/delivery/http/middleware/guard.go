package middleware

import "medicenter-portal/internal/domain/entity"

// GateDecision is the outcome of the route guard for one request.
type GateDecision int

const (
	GateRender GateDecision = iota
	GateRedirectLogin
	GateRedirectCompleteProfile
	GateRedirectDashboard
)

// Redirect is the route hint front-ends receive alongside a denial.
func (d GateDecision) Redirect() string {
	switch d {
	case GateRedirectLogin:
		return "login"
	case GateRedirectCompleteProfile:
		return "complete-profile"
	case GateRedirectDashboard:
		return "dashboard"
	}
	return ""
}

// EvaluateGate decides whether a request may proceed. The rule order is
// load-bearing: an unauthenticated caller always goes to login; a session
// still requiring profile completion goes to the completion route before any
// role check, even for an otherwise-permitted page; a completed session with
// the wrong role goes to its dashboard; anything else renders.
func EvaluateGate(session *entity.Session, requiredRoles []string, onCompletionRoute bool) GateDecision {
	if session == nil {
		return GateRedirectLogin
	}
	if session.RequiresProfileCompletion() && !onCompletionRoute {
		return GateRedirectCompleteProfile
	}
	if !session.HasRole(requiredRoles...) {
		return GateRedirectDashboard
	}
	return GateRender
}
