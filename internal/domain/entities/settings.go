package entities

import "time"

const LiffURLPrefix = "https://liff.line.me/"

// LineSettings holds an owner's LINE channel configuration. The channel
// credentials are kept sealed at rest and are never returned to clients.
type LineSettings struct {
	UserID              string    `json:"user_id"`
	SealedChannelToken  string    `json:"-"`
	SealedChannelSecret string    `json:"-"`
	LiffURL             string    `json:"liff_url"`
	LiffID              string    `json:"liff_id"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (s LineSettings) HasChannelCredentials() bool {
	return s.SealedChannelToken != "" && s.SealedChannelSecret != ""
}

// Profile is the company information printed on an owner's estimates.
type Profile struct {
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	LineURL     string    `json:"line_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
