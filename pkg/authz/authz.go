// Package authz decides whether an acting principal may mutate a record.
// The decision is a plain identity comparison: there are no roles and no
// escalation.
package authz

import "newsboard/pkg/apperr"

// Principal is the authenticated actor of a request.
type Principal struct {
	ID       string
	Username string
}

type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "denied"
}

// Resource is anything with an immutable owner.
type Resource interface {
	OwnedBy(p Principal) bool
}

// AuthorizeMutation is Allowed iff p is present and owns r.
func AuthorizeMutation(p *Principal, r Resource) Decision {
	if p == nil || r == nil {
		return Denied
	}
	if r.OwnedBy(*p) {
		return Allowed
	}
	return Denied
}

// Require turns a decision into an error the caller must return before
// touching storage. A missing principal is Unauthenticated, a foreign one
// Forbidden with msg.
func Require(p *Principal, r Resource, msg string) error {
	if p == nil {
		return apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}
	if AuthorizeMutation(p, r) == Denied {
		return apperr.Forbidden(msg)
	}
	return nil
}
