package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"
)

var (
	ErrCompanyNameRequired  = errors.New("company name is required")
	ErrChannelCredsRequired = errors.New("channel access token and secret are required")
	ErrInvalidLiffURL       = errors.New("invalid liff url")
	ErrSealerNotConfigured  = errors.New("settings encryption is not configured")
)

type ProfileInput struct {
	CompanyName string
	PhoneNumber string
	LineURL     string
}

type LineSettingsInput struct {
	ChannelAccessToken string
	ChannelSecret      string
	LiffURL            string
}

// LineSettingsView never exposes the channel credentials themselves.
type LineSettingsView struct {
	Linked  bool
	LiffURL string
	LiffID  string
}

type SettingsView struct {
	Profile entities.Profile
	Line    LineSettingsView
}

type ISettingsUseCase interface {
	Get(ctx context.Context, userID string) (SettingsView, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (entities.Profile, error)
	SaveLineSettings(ctx context.Context, userID string, in LineSettingsInput) (LineSettingsView, error)
}

type SettingsUseCase struct {
	repo   interfaces.ISettingsRepository
	sealer interfaces.ISecretSealer
	log    *logger.Logger
	now    func() time.Time
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

// NewSettingsUseCase accepts a nil sealer; saving LINE credentials then fails
// with ErrSealerNotConfigured.
func NewSettingsUseCase(repo interfaces.ISettingsRepository, sealer interfaces.ISecretSealer, log *logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		repo:   repo,
		sealer: sealer,
		log:    log.With("component", "settings"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *SettingsUseCase) Get(ctx context.Context, userID string) (SettingsView, error) {
	if strings.TrimSpace(userID) == "" {
		return SettingsView{}, ErrUnauthenticated
	}
	profile, err := u.repo.GetProfile(ctx, userID)
	if err != nil {
		return SettingsView{}, err
	}
	line, err := u.repo.GetLineSettings(ctx, userID)
	if err != nil {
		return SettingsView{}, err
	}
	profile.UserID = userID
	return SettingsView{Profile: profile, Line: lineView(line)}, nil
}

func (u *SettingsUseCase) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (entities.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Profile{}, ErrUnauthenticated
	}
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return entities.Profile{}, ErrCompanyNameRequired
	}
	return u.repo.SaveProfile(ctx, entities.Profile{
		UserID:      userID,
		CompanyName: name,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		LineURL:     strings.TrimSpace(in.LineURL),
		UpdatedAt:   u.now(),
	})
}

func (u *SettingsUseCase) SaveLineSettings(ctx context.Context, userID string, in LineSettingsInput) (LineSettingsView, error) {
	if strings.TrimSpace(userID) == "" {
		return LineSettingsView{}, ErrUnauthenticated
	}
	token := strings.TrimSpace(in.ChannelAccessToken)
	secret := strings.TrimSpace(in.ChannelSecret)
	if token == "" || secret == "" {
		return LineSettingsView{}, ErrChannelCredsRequired
	}
	liffURL := strings.TrimSpace(in.LiffURL)
	liffID, ok := ParseLiffID(liffURL)
	if !ok {
		return LineSettingsView{}, ErrInvalidLiffURL
	}
	if u.sealer == nil {
		return LineSettingsView{}, ErrSealerNotConfigured
	}

	sealedToken, err := u.sealer.Seal(token)
	if err != nil {
		return LineSettingsView{}, err
	}
	sealedSecret, err := u.sealer.Seal(secret)
	if err != nil {
		return LineSettingsView{}, err
	}

	saved, err := u.repo.SaveLineSettings(ctx, entities.LineSettings{
		UserID:              userID,
		SealedChannelToken:  sealedToken,
		SealedChannelSecret: sealedSecret,
		LiffURL:             liffURL,
		LiffID:              liffID,
		UpdatedAt:           u.now(),
	})
	if err != nil {
		return LineSettingsView{}, err
	}
	u.log.Info("line settings saved", "user_id", userID, "liff_id", liffID)
	return lineView(saved), nil
}

// ParseLiffID extracts the LIFF app id from a https://liff.line.me/<id>[/...] URL.
func ParseLiffID(liffURL string) (string, bool) {
	if !strings.HasPrefix(liffURL, entities.LiffURLPrefix) {
		return "", false
	}
	rest := strings.TrimPrefix(liffURL, entities.LiffURLPrefix)
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

func lineView(s entities.LineSettings) LineSettingsView {
	return LineSettingsView{
		Linked:  s.HasChannelCredentials(),
		LiffURL: s.LiffURL,
		LiffID:  s.LiffID,
	}
}
