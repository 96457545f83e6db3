package models

import (
	"strings"

	dErrors "talentradar/pkg/domain-errors"
)

// SubscribeRequest is the HTTP request body for POST /api/newsletter/subscribe.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate normalizes and checks the email. Deliverability is the mail
// system's problem; this only rejects obviously malformed input.
func (r *SubscribeRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return dErrors.NewField(dErrors.CodeValidation, "email is required", "email")
	}
	at := strings.Index(r.Email, "@")
	if at <= 0 || at == len(r.Email)-1 {
		return dErrors.NewField(dErrors.CodeValidation, "email must be a valid address", "email")
	}
	return nil
}

// SubscribeResponse is the success body for the subscribe endpoint.
type SubscribeResponse struct {
	Message string `json:"message"`
}
