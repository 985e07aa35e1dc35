package session

import (
	"context"

	"github.com/jobsboard/web/pkg/constants"
)

type credentialKey struct{}

// WithCredential attaches the bearer credential used by outbound API calls.
func WithCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, credentialKey{}, credential)
}

// CredentialFrom returns the credential attached by WithCredential or by the
// session state of the request.
func CredentialFrom(ctx context.Context) string {
	if c, ok := ctx.Value(credentialKey{}).(string); ok {
		return c
	}
	if st, ok := FromContext(ctx); ok {
		return st.Credential
	}
	return ""
}

func WithState(ctx context.Context, st State) context.Context {
	return context.WithValue(ctx, constants.SessionKey, st)
}

func FromContext(ctx context.Context) (State, bool) {
	st, ok := ctx.Value(constants.SessionKey).(State)
	return st, ok
}
