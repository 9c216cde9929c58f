package inbound

import "fmt"

type RequestOtpRequest struct {
	Email string `json:"email"`
}

type RequestOtpResponse struct {
	email string
}

func (r RequestOtpResponse) Message() string {
	return fmt.Sprintf("OTP sent to %s.", r.email)
}

type VerifyOtpRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

type VerifyOtpResponse struct {
	Success bool `json:"success"`
}

func (VerifyOtpResponse) Message() string {
	return "OTP verified successfully."
}
