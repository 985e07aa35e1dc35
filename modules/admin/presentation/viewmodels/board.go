package viewmodels

import (
	vacancies "github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
)

type Company struct {
	ID         string
	Name       string
	Email      string
	IsApproved bool
}

type BoardKind string

const (
	DashboardBoard BoardKind = "dashboard"
	DirectoryBoard BoardKind = "directory"
)

// Board holds the lists one admin page rendered. It is kept in the view state
// store so that a later approve or ban from the same page can patch it.
type Board struct {
	Kind             BoardKind
	PendingVacancies []vacancies.Vacancy
	PendingCompanies []Company
	Companies        []Company
	// Only the count is needed; the application rows are never patched.
	Applications int
}

func (b Board) IsDashboard() bool {
	return b.Kind == DashboardBoard
}
