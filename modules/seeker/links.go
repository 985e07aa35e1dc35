package seeker

import (
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/types"
)

var NavItems = []types.NavigationItem{
	{Name: "Nav.MyApplications", Href: "/user/applications", Roles: []jobs.Role{jobs.RoleSeeker}},
}
