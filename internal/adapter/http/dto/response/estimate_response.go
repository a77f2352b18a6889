package response

import (
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase"
)

type PlanResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Amount      *int64 `json:"amount"`
	AmountText  string `json:"amountText"`
	Description string `json:"description"`
	Offered     bool   `json:"offered"`
}

// EstimateResponse is the owner's view of an estimate row.
type EstimateResponse struct {
	ID                 string         `json:"id"`
	Token              string         `json:"token"`
	CustomerName       string         `json:"customerName"`
	CustomerPhone      string         `json:"customerPhone,omitempty"`
	Amount             *int64         `json:"amount"`
	AmountText         string         `json:"amountText"`
	Plans              []PlanResponse `json:"plans"`
	GalleryImages      []string       `json:"galleryImages"`
	GalleryDescription string         `json:"galleryDescription,omitempty"`
	ContractStatus     string         `json:"contractStatus"`
	ContractPlan       string         `json:"contractPlan,omitempty"`
	ContractPlanLabel  string         `json:"contractPlanLabel,omitempty"`
	ContractSlots      []string       `json:"contractSlots"`
	CreatedAt          time.Time      `json:"createdAt"`
	CreatedDate        string         `json:"createdDate"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func FromEstimate(e entities.Estimate, loc *time.Location) EstimateResponse {
	plans := make([]PlanResponse, 0, len(entities.PlanKeys))
	for _, k := range entities.PlanKeys {
		p := e.Plan(k)
		plans = append(plans, PlanResponse{
			Key:         string(k),
			Label:       p.LabelOr(k.DefaultLabel()),
			Amount:      p.Amount,
			AmountText:  FormatAmount(p.Amount),
			Description: p.DescriptionOr(""),
			Offered:     p.Offered(),
		})
	}
	return EstimateResponse{
		ID:                 e.ID,
		Token:              e.Token,
		CustomerName:       e.CustomerName,
		CustomerPhone:      e.CustomerPhone,
		Amount:             e.Amount,
		AmountText:         FormatAmount(e.Amount),
		Plans:              plans,
		GalleryImages:      nonNil(e.GalleryImages),
		GalleryDescription: e.GalleryDescription,
		ContractStatus:     string(e.ContractStatus),
		ContractPlan:       string(e.ContractPlan),
		ContractPlanLabel:  e.ContractPlan.ShortLabel(),
		ContractSlots:      nonNil(e.ContractSlots),
		CreatedAt:          e.CreatedAt,
		CreatedDate:        FormatDate(e.CreatedAt, loc),
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate, loc *time.Location) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e, loc))
	}
	return out
}

type ContactResponse struct {
	LineUserID  string    `json:"lineUserId"`
	DisplayName *string   `json:"displayName"`
	PictureURL  *string   `json:"pictureUrl"`
	LinkedAt    time.Time `json:"linkedAt"`
}

type EventResponse struct {
	ID            string    `json:"id"`
	EventType     string    `json:"eventType"`
	Action        string    `json:"action"`
	Urgent        bool      `json:"urgent"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedAtText string    `json:"createdAtText"`
}

func fromAccessLog(l entities.AccessLog, loc *time.Location) EventResponse {
	return EventResponse{
		ID:            l.ID,
		EventType:     l.EventType,
		Action:        entities.DescribeEvent(l.EventType),
		Urgent:        entities.IsUrgentEvent(l.EventType),
		CreatedAt:     l.CreatedAt,
		CreatedAtText: FormatDateTime(l.CreatedAt, loc),
	}
}

type EstimateDetailResponse struct {
	Estimate EstimateResponse  `json:"estimate"`
	Contacts []ContactResponse `json:"contacts"`
	Events   []EventResponse   `json:"events"`
}

func FromEstimateDetail(d usecase.EstimateDetail, loc *time.Location) EstimateDetailResponse {
	res := EstimateDetailResponse{
		Estimate: FromEstimate(d.Estimate, loc),
		Contacts: make([]ContactResponse, 0, len(d.Contacts)),
		Events:   make([]EventResponse, 0, len(d.Events)),
	}
	for _, c := range d.Contacts {
		res.Contacts = append(res.Contacts, ContactResponse{
			LineUserID:  c.LineUserID,
			DisplayName: c.DisplayName,
			PictureURL:  c.PictureURL,
			LinkedAt:    c.LinkedAt,
		})
	}
	for _, l := range d.Events {
		res.Events = append(res.Events, fromAccessLog(l, loc))
	}
	return res
}

// ActivityResponse is one line of the owner's timeline.
type ActivityResponse struct {
	EventResponse
	EstimateID   string `json:"estimateId"`
	CustomerName string `json:"customerName"`
	AmountText   string `json:"amountText"`
}

func FromActivity(items []entities.ActivityItem, loc *time.Location) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ActivityResponse{
			EventResponse: fromAccessLog(it.Log, loc),
			EstimateID:    it.EstimateID,
			CustomerName:  it.CustomerName,
			AmountText:    FormatAmount(it.Amount),
		})
	}
	return out
}

type CreatedEstimateResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	ShareURL string           `json:"shareUrl"`
	LiffLink string           `json:"liffLink,omitempty"`
}

func FromCreatedEstimate(c usecase.CreatedEstimate, loc *time.Location) CreatedEstimateResponse {
	return CreatedEstimateResponse{
		Estimate: FromEstimate(c.Estimate, loc),
		ShareURL: c.ShareURL,
		LiffLink: c.LiffLink,
	}
}
