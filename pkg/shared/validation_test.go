package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobsboard/web/pkg/constants"
)

func TestFieldErrors_UsesFormNames(t *testing.T) {
	dto := struct {
		FullName string `form:"fullName" validate:"required"`
		Email    string `form:"email" validate:"required,email"`
		Password string `form:"password" validate:"min=6,max=20"`
	}{Email: "nope", Password: "123"}

	errs := FieldErrors(context.Background(), "SignUp", constants.Validate.Struct(dto))

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestFieldErrors_NilError(t *testing.T) {
	assert.Empty(t, FieldErrors(context.Background(), "SignUp", nil))
}
