package types

import (
	"github.com/jobsboard/web/pkg/jobs"
)

// NavigationItem is a link in the top bar. Name is a message ID.
type NavigationItem struct {
	Name string
	Href string
	// Roles limits the item to signed-in identities with one of these roles.
	Roles []jobs.Role
	// Anonymous limits the item to visitors without an identity.
	Anonymous bool
	Primary   bool
}

// Visible reports whether the item is shown for identity, which may be nil.
func (n NavigationItem) Visible(identity *jobs.Identity) bool {
	if n.Anonymous {
		return identity == nil
	}
	if len(n.Roles) == 0 {
		return true
	}
	if identity == nil {
		return false
	}
	for _, role := range n.Roles {
		if identity.Role == role {
			return true
		}
	}
	return false
}
