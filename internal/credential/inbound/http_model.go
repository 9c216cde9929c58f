package inbound

import (
	"fmt"
	"net/http"
)

type IssueKeyRequest struct {
	Email       string `json:"email"`
	Creator     string `json:"creator"`
	CompanyName string `json:"company_name"`
}

type IssueKeyResponse struct {
	APIKey string `json:"api_key"`

	email     string
	delivered bool
}

func (r IssueKeyResponse) Message() string {
	if !r.delivered {
		return "API key generated successfully but failed to send email."
	}
	return fmt.Sprintf("API key successfully generated and sent to %s.", r.email)
}

func (IssueKeyResponse) StatusCode() int {
	return http.StatusCreated
}
