package dtos

import (
	"context"
	"strings"

	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/constants"
	"github.com/jobsboard/web/pkg/shared"
)

type SignInDTO struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

func (d *SignInDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Email = strings.TrimSpace(d.Email)
	errorMessages := shared.FieldErrors(ctx, "SignIn", constants.Validate.Struct(d))
	return errorMessages, len(errorMessages) == 0
}

func (d *SignInDTO) ToRequest() apiclient.SignInRequest {
	return apiclient.SignInRequest{Email: d.Email, Password: d.Password}
}

type SeekerSignUpDTO struct {
	FullName string `form:"fullName" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6,max=20"`
}

func (d *SeekerSignUpDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(d.Email)
	errorMessages := shared.FieldErrors(ctx, "SignUp", constants.Validate.Struct(d))
	return errorMessages, len(errorMessages) == 0
}

func (d *SeekerSignUpDTO) ToRequest() apiclient.SeekerSignUpRequest {
	return apiclient.SeekerSignUpRequest{FullName: d.FullName, Email: d.Email, Password: d.Password}
}

// CompanySignUpDTO registers a company together with its owner account.
// Description, phone and website are optional.
type CompanySignUpDTO struct {
	CompanyName string `form:"companyName" validate:"required"`
	Description string `form:"description"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone"`
	Website     string `form:"website" validate:"omitempty,url"`
	FullName    string `form:"fullName" validate:"required"`
	Password    string `form:"password" validate:"required,min=6,max=20"`
}

func (d *CompanySignUpDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.CompanyName = strings.TrimSpace(d.CompanyName)
	d.Description = strings.TrimSpace(d.Description)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Website = strings.TrimSpace(d.Website)
	d.FullName = strings.TrimSpace(d.FullName)
	errorMessages := shared.FieldErrors(ctx, "SignUp", constants.Validate.Struct(d))
	return errorMessages, len(errorMessages) == 0
}

func (d *CompanySignUpDTO) ToRequest() apiclient.CompanySignUpRequest {
	return apiclient.CompanySignUpRequest{
		CompanyName: d.CompanyName,
		Description: d.Description,
		Email:       d.Email,
		Phone:       d.Phone,
		Website:     d.Website,
		FullName:    d.FullName,
		Password:    d.Password,
	}
}
