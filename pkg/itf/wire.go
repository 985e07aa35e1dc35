package itf

import (
	"time"

	"github.com/jobsboard/web/pkg/jobs"
)

// The helpers below build API payloads in the wire shape: "_id" keys, the
// "user" role for seekers and refs that may be ids or populated objects.

func User(identity jobs.Identity) map[string]any {
	out := map[string]any{
		"_id":      identity.ID,
		"fullName": identity.FullName,
		"email":    identity.Email,
		"role":     identity.Role.Wire(),
	}
	if identity.CompanyID != "" {
		out["companyId"] = identity.CompanyID
	}
	return out
}

func Company(c jobs.Company) map[string]any {
	return map[string]any{
		"_id":         c.ID,
		"name":        c.Name,
		"description": c.Description,
		"email":       c.Email,
		"phone":       c.Phone,
		"website":     c.Website,
		"userId":      c.UserID,
		"isApproved":  c.IsApproved,
	}
}

func Vacancy(v jobs.Vacancy) map[string]any {
	out := map[string]any{
		"_id":         v.ID,
		"title":       v.Title,
		"description": v.Description,
		"category":    v.Category,
		"location":    v.Location,
		"status":      string(v.Status),
		"companyId":   v.CompanyID,
		"createdAt":   v.CreatedAt.Format(time.RFC3339),
	}
	if v.Company != nil {
		out["companyId"] = Company(*v.Company)
	}
	if v.SalaryMin != nil {
		out["salaryMin"] = *v.SalaryMin
	}
	if v.SalaryMax != nil {
		out["salaryMax"] = *v.SalaryMax
	}
	return out
}

func Application(a jobs.Application) map[string]any {
	out := map[string]any{
		"_id":       a.ID,
		"vacancyId": a.VacancyID,
		"userId":    a.UserID,
		"cvFileUrl": a.CVFileKey,
		"createdAt": a.CreatedAt.Format(time.RFC3339),
	}
	if a.Vacancy != nil {
		out["vacancyId"] = Vacancy(*a.Vacancy)
	}
	if a.User != nil {
		out["userId"] = User(*a.User)
	}
	return out
}

func Many[T any](items []T, fn func(T) map[string]any) []map[string]any {
	out := make([]map[string]any, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
