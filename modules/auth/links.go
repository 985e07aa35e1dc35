package auth

import "github.com/jobsboard/web/pkg/types"

var NavItems = []types.NavigationItem{
	{Name: "Nav.SignIn", Href: "/auth/sign-in", Anonymous: true},
	{Name: "Nav.SignUp", Href: "/auth/sign-up", Anonymous: true, Primary: true},
}
