package models

import (
	"time"

	dErrors "talentradar/pkg/domain-errors"
)

// Frequency controls how often an alert would be evaluated. The dispatcher
// that would read it is intentionally unbuilt; the value is configuration
// only.
type Frequency string

const (
	FrequencyInstant Frequency = "instant"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
)

// DefaultFrequency applies when a create request omits the field.
const DefaultFrequency = FrequencyDaily

// ParseFrequency validates a frequency value from user input.
func ParseFrequency(raw string) (Frequency, error) {
	switch Frequency(raw) {
	case FrequencyInstant, FrequencyDaily, FrequencyWeekly:
		return Frequency(raw), nil
	}
	return "", dErrors.NewField(dErrors.CodeValidation,
		"frequency must be one of instant, daily, weekly", "frequency")
}

// Alert is a saved notification preference owned by exactly one user.
//
// Invariants:
//   - Keywords is non-empty
//   - Only the owning user may read, update, or delete the row
//   - ID, UserID, LastSentAt and CreatedAt are server-assigned; request
//     types below deliberately omit them
type Alert struct {
	ID         int        `json:"id"`
	UserID     string     `json:"userId"`
	Keywords   string     `json:"keywords"`
	Location   *string    `json:"location"`
	Frequency  Frequency  `json:"frequency"`
	IsActive   bool       `json:"isActive"`
	LastSentAt *time.Time `json:"lastSentAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// AlertUpdate carries a partial update; nil fields are left unchanged.
type AlertUpdate struct {
	Keywords  *string
	Location  *string
	Frequency *Frequency
	IsActive  *bool
}
