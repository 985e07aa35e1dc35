package company

import (
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/types"
)

var NavItems = []types.NavigationItem{
	{Name: "Nav.Dashboard", Href: "/company", Roles: []jobs.Role{jobs.RoleCompany}},
}
