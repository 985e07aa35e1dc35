// Package applications renders application rows for seekers, companies and
// admins. Each audience picks the columns it needs.
package applications

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/composables"
)

type Row struct {
	ID             string
	VacancyID      string
	VacancyTitle   string
	CompanyName    string
	ApplicantName  string
	ApplicantEmail string
	CVKey          string
	AppliedAt      string
}

// CVHref is the local route that resolves the signed URL of the CV.
func (r Row) CVHref() string {
	if r.CVKey == "" {
		return ""
	}
	return "/applications/cv/" + (&url.URL{Path: r.CVKey}).EscapedPath()
}

type ListProps struct {
	Rows          []Row
	ShowVacancy   bool
	ShowCompany   bool
	ShowApplicant bool
	// Empty is shown instead of the table when there are no rows.
	Empty string
}

func List(p ListProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		if len(p.Rows) == 0 {
			w.Render(ctx, base.Empty(p.Empty))
			return
		}
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<table class="applications"><thead><tr>`)
		if p.ShowVacancy {
			header(w, pageCtx.T("Applications.Vacancy"))
		}
		if p.ShowCompany {
			header(w, pageCtx.T("Applications.Company"))
		}
		if p.ShowApplicant {
			header(w, pageCtx.T("Applications.Applicant"))
		}
		header(w, pageCtx.T("Applications.AppliedAt"))
		header(w, pageCtx.T("Applications.CV"))
		w.Raw(`</tr></thead><tbody>`)
		for _, row := range p.Rows {
			w.Raw(`<tr`)
			w.Attr("id", "application-"+row.ID)
			w.Raw(`>`)
			if p.ShowVacancy {
				w.Raw(`<td><a`)
				w.Attr("href", "/vacancies/"+row.VacancyID)
				w.Raw(`>`)
				w.Text(row.VacancyTitle)
				w.Raw(`</a></td>`)
			}
			if p.ShowCompany {
				cell(w, row.CompanyName)
			}
			if p.ShowApplicant {
				w.Raw(`<td>`)
				w.Text(row.ApplicantName)
				w.Raw(`<br><span class="muted">`)
				w.Text(row.ApplicantEmail)
				w.Raw(`</span></td>`)
			}
			cell(w, row.AppliedAt)
			w.Raw(`<td>`)
			if href := row.CVHref(); href != "" {
				w.Raw(`<a target="_blank" rel="noopener" hx-boost="false"`)
				w.Attr("href", href)
				w.Raw(`>`)
				w.Text(pageCtx.T("Applications.OpenCV"))
				w.Raw(`</a>`)
			}
			w.Raw(`</td></tr>`)
		}
		w.Raw(`</tbody></table>`)
	})
}

func header(w *base.Writer, text string) {
	w.Raw(`<th>`)
	w.Text(text)
	w.Raw(`</th>`)
}

func cell(w *base.Writer, text string) {
	w.Raw(`<td>`)
	w.Text(text)
	w.Raw(`</td>`)
}
