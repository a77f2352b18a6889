package request

import "mitsumori_tsuikyaku/internal/usecase"

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileRequest struct {
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
	LineURL     string `json:"lineUrl"`
}

func (r ProfileRequest) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		CompanyName: r.CompanyName,
		PhoneNumber: r.PhoneNumber,
		LineURL:     r.LineURL,
	}
}

type LineSettingsRequest struct {
	ChannelAccessToken string `json:"channelAccessToken"`
	ChannelSecret      string `json:"channelSecret"`
	LiffURL            string `json:"liffUrl"`
}

func (r LineSettingsRequest) ToInput() usecase.LineSettingsInput {
	return usecase.LineSettingsInput{
		ChannelAccessToken: r.ChannelAccessToken,
		ChannelSecret:      r.ChannelSecret,
		LiffURL:            r.LiffURL,
	}
}
