package models

import (
	"strings"
	"time"

	dErrors "talentradar/pkg/domain-errors"
)

// RecruiterProfile is the one-per-user company identity record.
//
// Invariants:
//   - UserID is unique (one profile per user)
//   - CompanyName is non-empty
//   - Profiles are upserted, never deleted
type RecruiterProfile struct {
	ID          int       `json:"id"`
	UserID      string    `json:"userId"`
	CompanyName string    `json:"companyName"`
	Industry    *string   `json:"industry"`
	WebsiteURL  *string   `json:"websiteUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProfileUpdate carries a partial update; nil fields are left unchanged.
type ProfileUpdate struct {
	CompanyName *string
	Industry    *string
	WebsiteURL  *string
}

// UpdateProfileRequest is the HTTP request body for PUT /api/recruiter/profile.
// Every field is optional; whether companyName may be omitted depends on
// whether a profile already exists, which the service decides.
type UpdateProfileRequest struct {
	CompanyName *string `json:"companyName,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	WebsiteURL  *string `json:"websiteUrl,omitempty"`
}

// Validate checks each provided field.
func (r *UpdateProfileRequest) Validate() error {
	if r.CompanyName != nil {
		trimmed := strings.TrimSpace(*r.CompanyName)
		if trimmed == "" {
			return dErrors.NewField(dErrors.CodeValidation, "companyName must not be empty", "companyName")
		}
		r.CompanyName = &trimmed
	}
	return nil
}

// HasCompanyName reports whether the request carries a usable company name.
func (r *UpdateProfileRequest) HasCompanyName() bool {
	return r.CompanyName != nil && *r.CompanyName != ""
}

// Update converts the validated request into the store-level partial update.
func (r *UpdateProfileRequest) Update() ProfileUpdate {
	return ProfileUpdate{
		CompanyName: r.CompanyName,
		Industry:    r.Industry,
		WebsiteURL:  r.WebsiteURL,
	}
}
