package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jobsboard/web/pkg/jobs"
)

type ApplyRequest struct {
	VacancyID string
	FileName  string
	CV        []byte
}

// IsPDFName is the only check applied to a CV before upload.
func IsPDFName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Apply uploads a CV for a vacancy as multipart form data.
func (c *Client) Apply(ctx context.Context, in ApplyRequest) error {
	if !IsPDFName(in.FileName) {
		return ErrNotPDF
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("vacancyId", in.VacancyID); err != nil {
		return fmt.Errorf("write vacancyId field: %w", err)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cv"; filename=%q`, filepath.Base(in.FileName)))
	header.Set("Content-Type", mimetype.Detect(in.CV).String())
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create cv part: %w", err)
	}
	if _, err := part.Write(in.CV); err != nil {
		return fmt.Errorf("write cv part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		route:       "/applications",
		path:        "/applications",
		body:        &buf,
		contentType: writer.FormDataContentType(),
	}, nil)
}

func (c *Client) MyApplications(ctx context.Context) ([]jobs.Application, error) {
	return c.applications(ctx, "/applications/my", "/applications/my", nil)
}

// CompanyApplications lists applications to every vacancy of the signed-in company.
func (c *Client) CompanyApplications(ctx context.Context) ([]jobs.Application, error) {
	return c.applications(ctx, "/applications/company", "/applications/company", nil)
}

func (c *Client) VacancyApplications(ctx context.Context, vacancyID string) ([]jobs.Application, error) {
	return c.applications(ctx, "/applications/vacancy/{id}", "/applications/vacancy/"+escape(vacancyID), nil)
}

// AdminApplications lists every application, narrowed to one company when
// companyID is not blank.
func (c *Client) AdminApplications(ctx context.Context, companyID string) ([]jobs.Application, error) {
	var query url.Values
	if companyID != "" {
		query = url.Values{"companyId": {companyID}}
	}
	return c.applications(ctx, "/applications/admin", "/applications/admin", query)
}

// CVURL exchanges a CV storage key for a short-lived download URL.
func (c *Client) CVURL(ctx context.Context, fileKey string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	query := url.Values{"fileKey": {fileKey}}
	if err := c.get(ctx, "/applications/cv-url", "/applications/cv-url", query, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *Client) applications(ctx context.Context, route, path string, query url.Values) ([]jobs.Application, error) {
	var out []applicationDTO
	if err := c.get(ctx, route, path, query, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, applicationDTO.toApplication), nil
}
