package admin

import (
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/types"
)

var NavItems = []types.NavigationItem{
	{Name: "Nav.Admin", Href: "/admin", Roles: []jobs.Role{jobs.RoleAdmin}},
}
