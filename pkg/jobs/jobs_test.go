package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		wire string
		want Role
		ok   bool
	}{
		{"user", RoleSeeker, true},
		{"seeker", RoleSeeker, true},
		{"company", RoleCompany, true},
		{"admin", RoleAdmin, true},
		{"root", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.wire)
		assert.Equal(t, tc.ok, ok, tc.wire)
		assert.Equal(t, tc.want, got, tc.wire)
	}
	assert.Equal(t, "user", RoleSeeker.Wire())
	assert.Equal(t, "admin", RoleAdmin.Wire())
}

func TestVacancy_SalaryRange(t *testing.T) {
	min := 1000.0
	max := 2500.5

	assert.False(t, Vacancy{}.HasSalary())
	assert.Equal(t, "1000 - ?", Vacancy{SalaryMin: &min}.SalaryRange())
	assert.Equal(t, "? - 2500.5", Vacancy{SalaryMax: &max}.SalaryRange())
	assert.Equal(t, "Company", Vacancy{}.CompanyName("Company"))
	assert.Equal(t, "Acme", Vacancy{Company: &Company{Name: "Acme"}}.CompanyName("Company"))
}
