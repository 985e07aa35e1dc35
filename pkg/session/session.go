// Package session resolves who is behind the credential cookie of a request.
package session

import (
	"context"

	"github.com/jobsboard/web/pkg/jobs"
)

type Status int

const (
	StatusAbsent Status = iota
	StatusPending
	StatusResolved
	StatusDenied
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// State is the session of one request. Identity is set only when Status is
// StatusResolved, which in turn requires a credential.
type State struct {
	Credential string
	Identity   *jobs.Identity
	Status     Status
}

// Initial returns the state before any resolution: absent without a
// credential, pending with one.
func Initial(credential string) State {
	if credential == "" {
		return State{Status: StatusAbsent}
	}
	return State{Credential: credential, Status: StatusPending}
}

func (s State) HasCredential() bool {
	return s.Credential != ""
}

func (s State) Authenticated() bool {
	return s.Status == StatusResolved && s.Identity != nil
}

// Is reports whether the resolved identity has the given role.
func (s State) Is(role jobs.Role) bool {
	return s.Authenticated() && s.Identity.Role == role
}

type IdentityFetcher interface {
	CurrentUser(ctx context.Context) (jobs.Identity, error)
}

type Resolver struct {
	fetcher IdentityFetcher
}

func NewResolver(fetcher IdentityFetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve asks the API who owns credential. An absent credential never
// reaches the network. Any failure, including an unknown role, denies.
func (r *Resolver) Resolve(ctx context.Context, credential string) State {
	if credential == "" {
		return State{Status: StatusAbsent}
	}
	identity, err := r.fetcher.CurrentUser(WithCredential(ctx, credential))
	if err != nil || identity.Role == "" {
		return State{Credential: credential, Status: StatusDenied}
	}
	return State{Credential: credential, Identity: &identity, Status: StatusResolved}
}

// Manager pairs the cookie that carries the credential with the resolver that
// turns it into an identity.
type Manager struct {
	*Resolver
	CookieStore
}

func NewManager(resolver *Resolver, store CookieStore) *Manager {
	return &Manager{Resolver: resolver, CookieStore: store}
}
