package types

import (
	"net/url"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/session"
)

// PageContextProvider carries page level localization and the session the
// page was rendered for.
type PageContextProvider interface {
	// T translates a message ID. A missing message renders as its ID.
	T(key string, args ...map[string]interface{}) string

	// TSafe is like T but returns an empty string for a missing message.
	TSafe(key string, args ...map[string]interface{}) string

	// Namespace returns a provider that prefixes every message ID.
	Namespace(prefix string) PageContextProvider

	GetLocale() language.Tag
	GetURL() *url.URL
	GetLocalizer() *i18n.Localizer

	Session() session.State
	// Identity returns the resolved identity or nil.
	Identity() *jobs.Identity
}

type PageContext struct {
	Locale    language.Tag
	URL       *url.URL
	Localizer *i18n.Localizer
	State     session.State
	prefix    string
}

var _ PageContextProvider = (*PageContext)(nil)

func (p *PageContext) messageID(k string) string {
	if p.prefix != "" {
		return p.prefix + "." + k
	}
	return k
}

func (p *PageContext) localize(k string, args []map[string]interface{}) (string, error) {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}
	cfg := &i18n.LocalizeConfig{MessageID: p.messageID(k)}
	if len(args) == 1 {
		cfg.TemplateData = args[0]
	}
	return p.Localizer.Localize(cfg)
}

func (p *PageContext) T(k string, args ...map[string]interface{}) string {
	result, err := p.localize(k, args)
	if err != nil {
		return p.messageID(k)
	}
	return result
}

func (p *PageContext) TSafe(k string, args ...map[string]interface{}) string {
	result, err := p.localize(k, args)
	if err != nil {
		return ""
	}
	return result
}

func (p *PageContext) Namespace(prefix string) PageContextProvider {
	return &PageContext{
		Locale:    p.Locale,
		URL:       p.URL,
		Localizer: p.Localizer,
		State:     p.State,
		prefix:    prefix,
	}
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}

func (p *PageContext) GetLocalizer() *i18n.Localizer {
	return p.Localizer
}

func (p *PageContext) Session() session.State {
	return p.State
}

func (p *PageContext) Identity() *jobs.Identity {
	if !p.State.Authenticated() {
		return nil
	}
	return p.State.Identity
}
