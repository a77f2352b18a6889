package response

import (
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase"
)

type SessionResponse struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{UserID: s.UserID, Token: s.Token, ExpiresAt: s.ExpiresAt}
}

type ProfileResponse struct {
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
	LineURL     string `json:"lineUrl"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{CompanyName: p.CompanyName, PhoneNumber: p.PhoneNumber, LineURL: p.LineURL}
}

// LineSettingsResponse reports whether credentials are stored, never the
// credentials themselves.
type LineSettingsResponse struct {
	Linked  bool   `json:"linked"`
	LiffURL string `json:"liffUrl"`
	LiffID  string `json:"liffId"`
}

func FromLineSettings(v usecase.LineSettingsView) LineSettingsResponse {
	return LineSettingsResponse{Linked: v.Linked, LiffURL: v.LiffURL, LiffID: v.LiffID}
}

type SettingsResponse struct {
	Profile ProfileResponse      `json:"profile"`
	Line    LineSettingsResponse `json:"line"`
}

func FromSettings(v usecase.SettingsView) SettingsResponse {
	return SettingsResponse{Profile: FromProfile(v.Profile), Line: FromLineSettings(v.Line)}
}
