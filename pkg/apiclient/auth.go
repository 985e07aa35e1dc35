package apiclient

import (
	"context"
	"net/http"

	"github.com/jobsboard/web/pkg/jobs"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SeekerSignUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CompanySignUpRequest struct {
	CompanyName string `json:"companyName"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	// Omitted entirely when blank.
	Website  string `json:"website,omitempty"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for a bearer token.
func (c *Client) SignIn(ctx context.Context, in SignInRequest) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.send(ctx, http.MethodPost, "/auth/sign-in", "/auth/sign-in", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) SignUpSeeker(ctx context.Context, in SeekerSignUpRequest) error {
	return c.send(ctx, http.MethodPost, "/auth/sign-up/user", "/auth/sign-up/user", in, nil)
}

func (c *Client) SignUpCompany(ctx context.Context, in CompanySignUpRequest) error {
	return c.send(ctx, http.MethodPost, "/auth/sign-up/company", "/auth/sign-up/company", in, nil)
}

// CurrentUser returns the identity behind the credential attached to ctx.
func (c *Client) CurrentUser(ctx context.Context) (jobs.Identity, error) {
	var out userDTO
	if err := c.get(ctx, "/auth/current-user", "/auth/current-user", nil, &out); err != nil {
		return jobs.Identity{}, err
	}
	return out.toIdentity(), nil
}
