package constants

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

type ContextKey string

const (
	AppKey       ContextKey = "app"
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	PageContext  ContextKey = "pageContext"
	RequestStart ContextKey = "requestStart"
	SessionKey   ContextKey = "session"
	NavItemsKey  ContextKey = "navItems"
	HeadKey      ContextKey = "head"
)

// Validate is the process-wide validator used by form DTOs. Field names in
// its errors are the form tags.
var Validate = newValidator()

// Translator renders validation errors in English when no localized message
// exists.
var Translator ut.Translator

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	english := en.New()
	Translator, _ = ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, Translator); err != nil {
		panic(err)
	}
	return v
}
