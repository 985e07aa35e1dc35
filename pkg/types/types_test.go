package types

import (
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/session"
)

func newPageContext(t *testing.T) *PageContext {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	bundle.MustAddMessages(language.English,
		&i18n.Message{ID: "Nav.Vacancies", Other: "Vacancies"},
		&i18n.Message{ID: "Greeting", Other: "Hello, {{.Name}}"},
	)
	return &PageContext{Locale: language.English, Localizer: i18n.NewLocalizer(bundle, "en")}
}

func TestPageContext_Translate(t *testing.T) {
	pc := newPageContext(t)

	assert.Equal(t, "Vacancies", pc.Namespace("Nav").T("Vacancies"))
	assert.Equal(t, "Hello, Jane", pc.T("Greeting", map[string]interface{}{"Name": "Jane"}))
	assert.Equal(t, "Nav.Missing", pc.Namespace("Nav").T("Missing"))
	assert.Empty(t, pc.TSafe("Missing"))
}

func TestPageContext_Identity(t *testing.T) {
	pc := newPageContext(t)
	assert.Nil(t, pc.Identity())

	pc.State = session.State{Credential: "tok", Status: session.StatusResolved, Identity: &jobs.Identity{Role: jobs.RoleAdmin}}
	assert.Equal(t, jobs.RoleAdmin, pc.Identity().Role)
	assert.Equal(t, jobs.RoleAdmin, pc.Namespace("X").Identity().Role)
}

func TestNavigationItem_Visible(t *testing.T) {
	admin := &jobs.Identity{Role: jobs.RoleAdmin}
	seeker := &jobs.Identity{Role: jobs.RoleSeeker}

	public := NavigationItem{Name: "Vacancies"}
	signIn := NavigationItem{Name: "SignIn", Anonymous: true}
	adminOnly := NavigationItem{Name: "Admin", Roles: []jobs.Role{jobs.RoleAdmin}}

	assert.True(t, public.Visible(nil))
	assert.True(t, public.Visible(seeker))
	assert.True(t, signIn.Visible(nil))
	assert.False(t, signIn.Visible(seeker))
	assert.True(t, adminOnly.Visible(admin))
	assert.False(t, adminOnly.Visible(seeker))
	assert.False(t, adminOnly.Visible(nil))
}
