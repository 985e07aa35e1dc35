package shared

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/jobsboard/web/pkg/constants"
	"github.com/jobsboard/web/pkg/intl"
)

// FieldErrors maps each failing field, by form name, to a message. The field
// label is looked up as "<prefix>.<field>" and the message as
// "ValidationErrors.<tag>"; the validator's English text is the fallback.
func FieldErrors(ctx context.Context, prefix string, err error) map[string]string {
	errorMessages := map[string]string{}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errorMessages
	}

	for _, fe := range errs {
		if _, seen := errorMessages[fe.Field()]; seen {
			continue
		}
		msg, ok := localizeFieldError(ctx, prefix, fe.Field(), fe.Tag(), fe.Param())
		if !ok {
			msg = fe.Translate(constants.Translator)
		}
		errorMessages[fe.Field()] = msg
	}
	return errorMessages
}

// FieldError builds the message of a check done outside the validator, e.g.
// one spanning two parsed fields.
func FieldError(ctx context.Context, prefix, field, tag, param string) string {
	if msg, ok := localizeFieldError(ctx, prefix, field, tag, param); ok {
		return msg
	}
	return fmt.Sprintf("%s failed on the '%s' check", field, tag)
}

func localizeFieldError(ctx context.Context, prefix, field, tag, param string) (string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		return "", false
	}
	label, err := l.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("%s.%s", prefix, field),
	})
	if err != nil {
		label = field
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    fmt.Sprintf("ValidationErrors.%s", tag),
		TemplateData: map[string]string{"Field": label, "Param": param},
	})
	if err != nil {
		return "", false
	}
	return msg, true
}
