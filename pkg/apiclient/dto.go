package apiclient

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jobsboard/web/pkg/jobs"
)

// ref is a relation the API may send either as a bare id or as the populated
// document.
type ref struct {
	ID  string
	Doc json.RawMessage
}

func (r *ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var head struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	r.ID = head.ID
	r.Doc = append(json.RawMessage(nil), data...)
	return nil
}

func (r ref) populated() bool {
	return len(r.Doc) > 0
}

type userDTO struct {
	ID        string `json:"_id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID ref    `json:"companyId"`
}

func (d userDTO) toIdentity() jobs.Identity {
	role, _ := jobs.ParseRole(d.Role)
	return jobs.Identity{
		ID:        d.ID,
		FullName:  d.FullName,
		Email:     d.Email,
		Role:      role,
		CompanyID: d.CompanyID.ID,
	}
}

type companyDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	UserID      ref    `json:"userId"`
	IsApproved  bool   `json:"isApproved"`
}

func (d companyDTO) toCompany() jobs.Company {
	return jobs.Company{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Email:       d.Email,
		Phone:       d.Phone,
		Website:     d.Website,
		UserID:      d.UserID.ID,
		IsApproved:  d.IsApproved,
	}
}

type vacancyDTO struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	SalaryMin   *float64   `json:"salaryMin"`
	SalaryMax   *float64   `json:"salaryMax"`
	CompanyID   ref        `json:"companyId"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func (d vacancyDTO) toVacancy() jobs.Vacancy {
	v := jobs.Vacancy{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Location:    d.Location,
		SalaryMin:   d.SalaryMin,
		SalaryMax:   d.SalaryMax,
		CompanyID:   d.CompanyID.ID,
		Status:      jobs.VacancyStatus(d.Status),
	}
	if d.CreatedAt != nil {
		v.CreatedAt = *d.CreatedAt
	}
	if d.UpdatedAt != nil {
		v.UpdatedAt = *d.UpdatedAt
	}
	if d.CompanyID.populated() {
		var c companyDTO
		if err := json.Unmarshal(d.CompanyID.Doc, &c); err == nil {
			company := c.toCompany()
			v.Company = &company
		}
	}
	return v
}

type applicationDTO struct {
	ID        string     `json:"_id"`
	VacancyID ref        `json:"vacancyId"`
	UserID    ref        `json:"userId"`
	CVFileURL string     `json:"cvFileUrl"`
	CreatedAt *time.Time `json:"createdAt"`
}

func (d applicationDTO) toApplication() jobs.Application {
	a := jobs.Application{
		ID:        d.ID,
		VacancyID: d.VacancyID.ID,
		UserID:    d.UserID.ID,
		CVFileKey: d.CVFileURL,
	}
	if d.CreatedAt != nil {
		a.CreatedAt = *d.CreatedAt
	}
	if d.VacancyID.populated() {
		var v vacancyDTO
		if err := json.Unmarshal(d.VacancyID.Doc, &v); err == nil {
			vacancy := v.toVacancy()
			a.Vacancy = &vacancy
		}
	}
	if d.UserID.populated() {
		var u userDTO
		if err := json.Unmarshal(d.UserID.Doc, &u); err == nil {
			identity := u.toIdentity()
			a.User = &identity
		}
	}
	return a
}

func mapSlice[T any, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}
	return out
}
