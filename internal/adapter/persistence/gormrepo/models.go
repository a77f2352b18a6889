package gormrepo

import (
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type estimateModel struct {
	ID                 string `gorm:"primaryKey;size:36"`
	Token              string `gorm:"uniqueIndex;size:64;not null"`
	UserID             string `gorm:"index:idx_estimates_owner_created,priority:1;size:64;not null"`
	CustomerName       string `gorm:"not null"`
	CustomerPhone      string
	MatsuAmount        *int64
	MatsuLabel         *string
	MatsuDescription   *string
	TakeAmount         *int64
	TakeLabel          *string
	TakeDescription    *string
	UmeAmount          *int64
	UmeLabel           *string
	UmeDescription     *string
	Amount             *int64
	GalleryImages      datatypes.JSONSlice[string]
	GalleryDescription string
	ContractStatus     string `gorm:"size:16;not null;default:''"`
	ContractPlan       string `gorm:"size:16;not null;default:''"`
	ContractSlots      datatypes.JSONSlice[string]
	CreatedAt          time.Time `gorm:"index:idx_estimates_owner_created,priority:2"`
	UpdatedAt          time.Time
}

func (estimateModel) TableName() string { return "estimates" }

type accessLogModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	EstimateID string    `gorm:"index:idx_access_logs_estimate_created,priority:1;type:text;not null"`
	EventType  string    `gorm:"type:text;not null"`
	UserAgent  string    `gorm:"size:512"`
	CreatedAt  time.Time `gorm:"index:idx_access_logs_estimate_created,priority:2"`
}

func (accessLogModel) TableName() string { return "access_logs" }

type estimateContactModel struct {
	EstimateID  string `gorm:"primaryKey;size:36"`
	LineUserID  string `gorm:"primaryKey;type:text"`
	Token       string `gorm:"size:64;not null"`
	DisplayName *string
	PictureURL  *string
	LinkedAt    time.Time
}

func (estimateContactModel) TableName() string { return "estimate_contacts" }

type profileModel struct {
	UserID      string `gorm:"primaryKey;size:64"`
	CompanyName string `gorm:"not null"`
	PhoneNumber string
	LineURL     string
	UpdatedAt   time.Time
}

func (profileModel) TableName() string { return "profiles" }

type lineSettingsModel struct {
	UserID             string `gorm:"primaryKey;size:64"`
	ChannelAccessToken string `gorm:"not null"`
	ChannelSecret      string `gorm:"not null"`
	LiffURL            string
	LiffID             string
	UpdatedAt          time.Time
}

func (lineSettingsModel) TableName() string { return "line_settings" }

type accountModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;size:254;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (accountModel) TableName() string { return "accounts" }

// AutoMigrate creates or updates every table the relational store needs.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&estimateModel{},
		&accessLogModel{},
		&estimateContactModel{},
		&profileModel{},
		&lineSettingsModel{},
		&accountModel{},
	)
}

func toEstimateModel(e entities.Estimate) estimateModel {
	return estimateModel{
		ID:                 e.ID,
		Token:              e.Token,
		UserID:             e.UserID,
		CustomerName:       e.CustomerName,
		CustomerPhone:      e.CustomerPhone,
		MatsuAmount:        e.Matsu.Amount,
		MatsuLabel:         e.Matsu.Label,
		MatsuDescription:   e.Matsu.Description,
		TakeAmount:         e.Take.Amount,
		TakeLabel:          e.Take.Label,
		TakeDescription:    e.Take.Description,
		UmeAmount:          e.Ume.Amount,
		UmeLabel:           e.Ume.Label,
		UmeDescription:     e.Ume.Description,
		Amount:             e.Amount,
		GalleryImages:      datatypes.JSONSlice[string](nonNil(e.GalleryImages)),
		GalleryDescription: e.GalleryDescription,
		ContractStatus:     string(e.ContractStatus),
		ContractPlan:       string(e.ContractPlan),
		ContractSlots:      datatypes.JSONSlice[string](nonNil(e.ContractSlots)),
		CreatedAt:          e.CreatedAt.UTC(),
		UpdatedAt:          e.UpdatedAt.UTC(),
	}
}

func (m estimateModel) toEntity() entities.Estimate {
	return entities.Estimate{
		ID:                 m.ID,
		Token:              m.Token,
		UserID:             m.UserID,
		CustomerName:       m.CustomerName,
		CustomerPhone:      m.CustomerPhone,
		Matsu:              entities.Plan{Amount: m.MatsuAmount, Label: m.MatsuLabel, Description: m.MatsuDescription},
		Take:               entities.Plan{Amount: m.TakeAmount, Label: m.TakeLabel, Description: m.TakeDescription},
		Ume:                entities.Plan{Amount: m.UmeAmount, Label: m.UmeLabel, Description: m.UmeDescription},
		Amount:             m.Amount,
		GalleryImages:      nonNil(m.GalleryImages),
		GalleryDescription: m.GalleryDescription,
		ContractStatus:     entities.ContractStatus(m.ContractStatus),
		ContractPlan:       entities.PlanKey(m.ContractPlan),
		ContractSlots:      nonNil(m.ContractSlots),
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
