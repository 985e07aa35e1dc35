package vacancies

import "github.com/jobsboard/web/pkg/types"

var NavItems = []types.NavigationItem{
	{Name: "Nav.Vacancies", Href: "/"},
}
