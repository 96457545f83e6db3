package models

import (
	"strings"

	dErrors "talentradar/pkg/domain-errors"
)

// CreateAlertRequest is the HTTP request body for POST /api/alerts. The same
// struct backs the Go API client so both trust boundaries validate
// identically.
type CreateAlertRequest struct {
	Keywords  string  `json:"keywords"`
	Location  *string `json:"location,omitempty"`
	Frequency string  `json:"frequency,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`

	// Populated by Validate
	parsedFrequency Frequency
}

// Validate normalizes and checks the request, applying defaults.
func (r *CreateAlertRequest) Validate() error {
	r.Keywords = strings.TrimSpace(r.Keywords)
	if r.Keywords == "" {
		return dErrors.NewField(dErrors.CodeValidation, "keywords is required", "keywords")
	}

	if r.Frequency == "" {
		r.parsedFrequency = DefaultFrequency
		return nil
	}
	freq, err := ParseFrequency(r.Frequency)
	if err != nil {
		return err
	}
	r.parsedFrequency = freq
	return nil
}

// ParsedFrequency returns the validated frequency. Only meaningful after a
// successful Validate.
func (r *CreateAlertRequest) ParsedFrequency() Frequency {
	return r.parsedFrequency
}

// Active resolves the isActive default (true) when the field is omitted.
func (r *CreateAlertRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// UpdateAlertRequest is the HTTP request body for PUT /api/alerts/{id}.
// Every field is optional; nil means "leave unchanged".
type UpdateAlertRequest struct {
	Keywords  *string `json:"keywords,omitempty"`
	Location  *string `json:"location,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`

	parsedFrequency *Frequency
}

// Validate checks each provided field.
func (r *UpdateAlertRequest) Validate() error {
	if r.Keywords != nil {
		trimmed := strings.TrimSpace(*r.Keywords)
		if trimmed == "" {
			return dErrors.NewField(dErrors.CodeValidation, "keywords is required", "keywords")
		}
		r.Keywords = &trimmed
	}
	if r.Frequency != nil {
		freq, err := ParseFrequency(*r.Frequency)
		if err != nil {
			return err
		}
		r.parsedFrequency = &freq
	}
	return nil
}

// Update converts the validated request into the store-level partial update.
func (r *UpdateAlertRequest) Update() AlertUpdate {
	return AlertUpdate{
		Keywords:  r.Keywords,
		Location:  r.Location,
		Frequency: r.parsedFrequency,
		IsActive:  r.IsActive,
	}
}
