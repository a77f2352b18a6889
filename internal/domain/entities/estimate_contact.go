package entities

import "time"

// EstimateContact links a LINE user to an estimate. One row per
// (estimate_id, line_user_id); re-linking refreshes the profile and LinkedAt.
type EstimateContact struct {
	EstimateID  string    `json:"estimate_id"`
	LineUserID  string    `json:"line_user_id"`
	Token       string    `json:"token"`
	DisplayName *string   `json:"display_name,omitempty"`
	PictureURL  *string   `json:"picture_url,omitempty"`
	LinkedAt    time.Time `json:"linked_at"`
}
