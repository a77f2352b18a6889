package response

import (
	"time"

	"mitsumori_tsuikyaku/internal/usecase"
)

type OKResponse struct {
	OK bool `json:"ok"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type PublicPlanResponse struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Amount      int64    `json:"amount"`
	AmountText  string   `json:"amountText"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	Recommended bool     `json:"recommended"`
}

// PublicEstimateResponse is what the customer page renders.
type PublicEstimateResponse struct {
	ID                 string               `json:"id"`
	Token              string               `json:"token"`
	CustomerName       string               `json:"customerName"`
	CompanyName        string               `json:"companyName"`
	PhoneNumber        string               `json:"phoneNumber,omitempty"`
	LineURL            string               `json:"lineUrl,omitempty"`
	Plans              []PublicPlanResponse `json:"plans"`
	GalleryImages      []string             `json:"galleryImages"`
	GalleryDescription string               `json:"galleryDescription,omitempty"`
	IssuedAt           time.Time            `json:"issuedAt"`
	IssuedDate         string               `json:"issuedDate"`
	ContractStatus     string               `json:"contractStatus"`
	ContractPlan       string               `json:"contractPlan,omitempty"`
}

func FromPublicEstimate(e usecase.PublicEstimate, loc *time.Location) PublicEstimateResponse {
	plans := make([]PublicPlanResponse, 0, len(e.Plans))
	for _, p := range e.Plans {
		plans = append(plans, PublicPlanResponse{
			Key:         string(p.Key),
			Label:       p.Label,
			Amount:      p.Amount,
			AmountText:  FormatYen(p.Amount),
			Description: p.Description,
			Perks:       nonNil(p.Perks),
			Recommended: p.Recommended,
		})
	}
	return PublicEstimateResponse{
		ID:                 e.ID,
		Token:              e.Token,
		CustomerName:       e.CustomerName,
		CompanyName:        e.CompanyName,
		PhoneNumber:        e.PhoneNumber,
		LineURL:            e.LineURL,
		Plans:              plans,
		GalleryImages:      nonNil(e.GalleryImages),
		GalleryDescription: e.GalleryDescription,
		IssuedAt:           e.IssuedAt,
		IssuedDate:         FormatDate(e.IssuedAt, loc),
		ContractStatus:     string(e.ContractStatus),
		ContractPlan:       string(e.ContractPlan),
	}
}

type LiffEntryResponse struct {
	LiffID       string `json:"liffId"`
	RedirectPath string `json:"redirectPath"`
}

func FromLiffEntry(e usecase.LiffEntry) LiffEntryResponse {
	return LiffEntryResponse{LiffID: e.LiffID, RedirectPath: e.RedirectPath}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
