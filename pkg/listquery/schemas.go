package listquery

var (
	// Vacancies is the public vacancy board.
	Vacancies = NewSchema(12, "search", "category", "location", "salaryMin", "salaryMax")
	// Companies is the admin company directory.
	Companies = NewSchema(20)
	// Applications is the admin application list, filtered by company.
	Applications = Schema{Keys: []string{"companyId"}}
)
