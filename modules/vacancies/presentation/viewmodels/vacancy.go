package viewmodels

// Vacancy is a vacancy as every list and detail page shows it.
type Vacancy struct {
	ID          string
	Title       string
	Description string
	Category    string
	Location    string
	CompanyID   string
	CompanyName string
	// Salary is empty when neither bound is known.
	Salary    string
	Status    string
	CreatedAt string
}
