// Package jobs holds the entities the jobs API exposes to the web frontend.
package jobs

import (
	"strconv"
	"time"
)

type Role string

const (
	RoleSeeker  Role = "seeker"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a role as the API spells it. The API calls seekers "user".
func ParseRole(wire string) (Role, bool) {
	switch wire {
	case "user", string(RoleSeeker):
		return RoleSeeker, true
	case string(RoleCompany):
		return RoleCompany, true
	case string(RoleAdmin):
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Wire returns the role as the API spells it.
func (r Role) Wire() string {
	if r == RoleSeeker {
		return "user"
	}
	return string(r)
}

type Identity struct {
	ID       string
	FullName string
	Email    string
	Role     Role
	// Set for company accounts when the API populates it.
	CompanyID string
}

type Company struct {
	ID          string
	Name        string
	Description string
	Email       string
	Phone       string
	Website     string
	UserID      string
	IsApproved  bool
}

type VacancyStatus string

const (
	VacancyPending  VacancyStatus = "pending"
	VacancyApproved VacancyStatus = "approved"
	VacancyRejected VacancyStatus = "rejected"
)

type Vacancy struct {
	ID          string
	Title       string
	Description string
	Category    string
	Location    string
	SalaryMin   *float64
	SalaryMax   *float64
	CompanyID   string
	// Company is nil when the API returned only the company id.
	Company   *Company
	Status    VacancyStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyName returns the populated company name or fallback.
func (v Vacancy) CompanyName(fallback string) string {
	if v.Company != nil && v.Company.Name != "" {
		return v.Company.Name
	}
	return fallback
}

// HasSalary reports whether either salary bound is known.
func (v Vacancy) HasSalary() bool {
	return v.SalaryMin != nil || v.SalaryMax != nil
}

// SalaryRange formats the bounds as "min - max" with "?" for unknown bounds.
func (v Vacancy) SalaryRange() string {
	return formatBound(v.SalaryMin) + " - " + formatBound(v.SalaryMax)
}

func formatBound(b *float64) string {
	if b == nil {
		return "?"
	}
	return strconv.FormatFloat(*b, 'f', -1, 64)
}

type Application struct {
	ID        string
	VacancyID string
	Vacancy   *Vacancy
	UserID    string
	User      *Identity
	// Opaque storage key of the uploaded CV; exchanged for a signed URL on demand.
	CVFileKey string
	CreatedAt time.Time
}

func (a Application) CompanyID() string {
	if a.Vacancy == nil {
		return ""
	}
	return a.Vacancy.CompanyID
}
