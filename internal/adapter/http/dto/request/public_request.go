package request

import "mitsumori_tsuikyaku/internal/usecase"

// TrackRequest is the body of POST /api/track.
type TrackRequest struct {
	EstimateID string `json:"estimateId"`
	EventType  string `json:"eventType"`
}

// ContractSubmitRequest is the body of POST /api/contracts/submit.
type ContractSubmitRequest struct {
	EstimateID LooseString  `json:"estimateId"`
	Token      LooseString  `json:"token"`
	PlanKey    LooseString  `json:"planKey"`
	Slots      LooseStrings `json:"slots"`
}

func (r ContractSubmitRequest) ToSubmission() usecase.ContractSubmission {
	return usecase.ContractSubmission{
		EstimateID: r.EstimateID.String(),
		Token:      r.Token.String(),
		PlanKey:    r.PlanKey.String(),
		Slots:      append([]string(nil), r.Slots...),
	}
}

// LiffLinkRequest is the body of POST /api/liff/link.
type LiffLinkRequest struct {
	Token       LooseString `json:"token"`
	LineUserID  LooseString `json:"lineUserId"`
	DisplayName LooseString `json:"displayName"`
	PictureURL  LooseString `json:"pictureUrl"`
}

func (r LiffLinkRequest) ToLink() usecase.LineLink {
	return usecase.LineLink{
		Token:       r.Token.String(),
		LineUserID:  r.LineUserID.String(),
		DisplayName: r.DisplayName.Optional(),
		PictureURL:  r.PictureURL.Optional(),
	}
}
