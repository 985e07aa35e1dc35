package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jobsboard/web/modules/core"
	"github.com/jobsboard/web/modules/seeker"
	"github.com/jobsboard/web/pkg/itf"
	"github.com/jobsboard/web/pkg/jobs"
)

var seekerUser = jobs.Identity{ID: "u1", FullName: "Ada Seeker", Role: jobs.RoleSeeker}

func TestMyApplications_Lists(t *testing.T) {
	s := itf.NewSuite(t, core.NewModule(), seeker.NewModule())
	s.API.JSON(http.MethodGet, "/applications/my", http.StatusOK, itf.Many([]jobs.Application{{
		ID:        "a1",
		VacancyID: "v1",
		Vacancy: &jobs.Vacancy{
			ID:        "v1",
			Title:     "Go developer",
			CompanyID: "c1",
			Company:   &jobs.Company{ID: "c1", Name: "Acme"},
		},
		UserID:    "u1",
		CVFileKey: "cvs/a1.pdf",
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}}, itf.Application))

	s.AsUser(seekerUser).GET("/user/applications").Do().
		Status(http.StatusOK).
		Contains("Go developer", "Acme", "2024-05-01", `href="/applications/cv/cvs/a1.pdf"`, `href="/user/applications"`)
	assert.Equal(t, "Bearer token-u1", s.API.LastAuthorization(http.MethodGet, "/applications/my"))
}

func TestMyApplications_FailureIsEmpty(t *testing.T) {
	s := itf.NewSuite(t, core.NewModule(), seeker.NewModule())
	s.API.Fail(http.MethodGet, "/applications/my", http.StatusInternalServerError, "boom")

	s.AsUser(seekerUser).GET("/user/applications").Do().
		Status(http.StatusOK).
		Contains("No applications yet")
}

func TestMyApplications_Gate(t *testing.T) {
	s := itf.NewSuite(t, core.NewModule(), seeker.NewModule())

	s.Anonymous().GET("/user/applications").Do().
		Status(http.StatusFound).
		RedirectsTo("/auth/sign-in")
	s.AsUser(jobs.Identity{ID: "u9", Role: jobs.RoleAdmin}).GET("/user/applications").Do().
		Status(http.StatusForbidden)
	s.WithCredential("expired").GET("/user/applications").Do().
		Status(http.StatusForbidden)
	assert.Zero(t, s.API.Calls(http.MethodGet, "/applications/my"))
}
