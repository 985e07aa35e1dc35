package modules

import (
	"github.com/jobsboard/web/modules/admin"
	"github.com/jobsboard/web/modules/auth"
	"github.com/jobsboard/web/modules/company"
	"github.com/jobsboard/web/modules/core"
	"github.com/jobsboard/web/modules/seeker"
	"github.com/jobsboard/web/modules/vacancies"
	"github.com/jobsboard/web/pkg/application"
)

// BuiltInModules lists every module of the web frontend. Core goes first: it
// owns the shared messages and the static file routes.
var BuiltInModules = []application.Module{
	core.NewModule(),
	vacancies.NewModule(),
	seeker.NewModule(),
	company.NewModule(),
	admin.NewModule(),
	auth.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
