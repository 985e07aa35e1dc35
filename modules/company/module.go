package company

import (
	"embed"

	"github.com/jobsboard/web/modules/company/presentation/controllers"
	"github.com/jobsboard/web/pkg/application"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterControllers(
		controllers.NewVacanciesController(app),
		controllers.NewApplicationsController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "company"
}
