package strcase

import "testing"

func TestToLowerSnake(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"Email":       "email",
		"UserEmail":   "user_email",
		"APIKey":      "api_key",
		"CompanyName": "company_name",
		"OTP":         "otp",
		"CreatedBy":   "created_by",
	}

	for in, want := range cases {
		if got := ToLowerSnake(in); got != want {
			t.Errorf("ToLowerSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
