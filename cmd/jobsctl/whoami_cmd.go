package main

import (
	"github.com/spf13/cobra"
)

type whoamiOutput struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId,omitempty"`
}

func newWhoamiCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind --token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := opts.client(cmd).CurrentUser(cmd.Context())
			if err != nil {
				return apiFailure("resolve identity", err)
			}
			return writeJSON(cmd.OutOrStdout(), whoamiOutput{
				ID:        identity.ID,
				FullName:  identity.FullName,
				Email:     identity.Email,
				Role:      string(identity.Role),
				CompanyID: identity.CompanyID,
			})
		},
	}
}
