package application

import (
	"embed"
	"reflect"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/mutation"
	"github.com/jobsboard/web/pkg/session"
	"github.com/jobsboard/web/pkg/types"
	"github.com/jobsboard/web/pkg/viewstate"
)

type Controller interface {
	Register(r *mux.Router)
	Key() string
}

type Module interface {
	Name() string
	Register(app Application) error
}

// Application is the process wide registry every module registers into.
type Application interface {
	API() *apiclient.Client
	Sessions() *session.Manager
	ViewState() viewstate.Store
	Mutations() *mutation.Applier

	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
	RegisterLocaleFiles(fs ...*embed.FS)

	NavItems() []types.NavigationItem
	RegisterNavItems(items ...types.NavigationItem)

	Middleware() []mux.MiddlewareFunc
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)

	Controllers() []Controller
	RegisterControllers(controllers ...Controller)

	HashFsAssets() []*hashfs.FS
	RegisterHashFsAssets(fs ...*hashfs.FS)

	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	Services() map[reflect.Type]interface{}
}
