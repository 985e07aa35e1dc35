package auth

import (
	"embed"

	"github.com/jobsboard/web/modules/auth/presentation/controllers"
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
		controllers.NewSignInController(app),
		controllers.NewSignUpController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "auth"
}
