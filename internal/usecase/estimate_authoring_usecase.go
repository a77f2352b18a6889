package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"mitsumori_tsuikyaku/internal/config"
	"mitsumori_tsuikyaku/internal/domain/authoring"
	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/infrastructure/observability"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MaxTokenAttempts bounds retries when a generated token is already taken.
const MaxTokenAttempts = 5

var (
	ErrInvalidEstimateInput = errors.New("invalid estimate input")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrTooManyImages        = errors.New("too many gallery images")
	ErrUnknownKeptImage     = errors.New("kept image does not belong to the estimate")
	ErrTokenExhausted       = errors.New("could not allocate a unique token")
)

// PlanInput is one active plan card, in the order the owner arranged them.
type PlanInput struct {
	Key         string
	Label       string
	Description string
	Price       string
}

// ImageUpload is one selected gallery file. Open may be called more than once.
type ImageUpload struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

type EstimateInput struct {
	CustomerName       string
	CustomerPhone      string
	GalleryDescription string
	Plans              []PlanInput
	// KeepImages lists current gallery URLs to retain on update.
	KeepImages []string
	Images     []ImageUpload
}

// CreatedEstimate carries the links the owner shares with the customer.
type CreatedEstimate struct {
	Estimate entities.Estimate
	ShareURL string
	LiffLink string
}

// IEstimateAuthoringUseCase creates and edits estimates for an owner.
type IEstimateAuthoringUseCase interface {
	Create(ctx context.Context, userID string, in EstimateInput) (CreatedEstimate, error)
	Update(ctx context.Context, userID, id string, in EstimateInput) (entities.Estimate, error)
}

type EstimateAuthoringUseCase struct {
	estimates interfaces.IEstimateRepository
	settings  interfaces.ISettingsRepository
	storage   interfaces.IGalleryStorage
	tokens    interfaces.ITokenGenerator
	cfg       config.Config
	log       *logger.Logger
	metrics   *observability.Metrics
	now       func() time.Time
}

var _ IEstimateAuthoringUseCase = (*EstimateAuthoringUseCase)(nil)

func NewEstimateAuthoringUseCase(
	estimates interfaces.IEstimateRepository,
	settings interfaces.ISettingsRepository,
	storage interfaces.IGalleryStorage,
	tokens interfaces.ITokenGenerator,
	cfg config.Config,
	log *logger.Logger,
	metrics *observability.Metrics,
) *EstimateAuthoringUseCase {
	if cfg.UploadConcurrency <= 0 {
		cfg.UploadConcurrency = 1
	}
	return &EstimateAuthoringUseCase{
		estimates: estimates,
		settings:  settings,
		storage:   storage,
		tokens:    tokens,
		cfg:       cfg,
		log:       log.With("component", "estimate_authoring"),
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimateAuthoringUseCase) Create(ctx context.Context, userID string, in EstimateInput) (CreatedEstimate, error) {
	if strings.TrimSpace(userID) == "" {
		return CreatedEstimate{}, ErrUnauthenticated
	}
	content, err := buildContent(in)
	if err != nil {
		return CreatedEstimate{}, err
	}
	if len(in.Images) > entities.MaxGalleryImages {
		return CreatedEstimate{}, ErrTooManyImages
	}

	for attempt := 1; attempt <= MaxTokenAttempts; attempt++ {
		token, err := u.tokens.Generate()
		if err != nil {
			return CreatedEstimate{}, fmt.Errorf("generate token: %w", err)
		}

		keys := make([]string, len(in.Images))
		for i, img := range in.Images {
			keys[i] = fmt.Sprintf("%s/%s-%d.%s", userID, token, i, imageExt(img.Filename))
		}
		urls, err := u.uploadAll(ctx, keys, in.Images)
		if err != nil {
			return CreatedEstimate{}, err
		}

		now := u.now()
		e := entities.Estimate{
			ID:                 uuid.NewString(),
			Token:              token,
			UserID:             userID,
			CustomerName:       content.CustomerName,
			CustomerPhone:      content.CustomerPhone,
			Matsu:              content.Matsu,
			Take:               content.Take,
			Ume:                content.Ume,
			Amount:             content.Amount,
			GalleryImages:      urls,
			GalleryDescription: content.GalleryDescription,
			ContractStatus:     entities.ContractStatusUnset,
			ContractSlots:      []string{},
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		created, err := u.estimates.Create(ctx, e)
		if errors.Is(err, interfaces.ErrTokenConflict) {
			u.log.Warn("token collision, retrying", "attempt", attempt)
			u.cleanup(ctx, keys)
			continue
		}
		if err != nil {
			u.cleanup(ctx, keys)
			return CreatedEstimate{}, err
		}

		u.log.Info("estimate created", "estimate_id", created.ID, "user_id", userID, "images", len(urls))
		return CreatedEstimate{
			Estimate: created,
			ShareURL: u.cfg.BaseURL + "/e/" + created.Token,
			LiffLink: u.liffLink(ctx, userID, created.Token),
		}, nil
	}
	return CreatedEstimate{}, ErrTokenExhausted
}

func (u *EstimateAuthoringUseCase) Update(ctx context.Context, userID, id string, in EstimateInput) (entities.Estimate, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Estimate{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	content, err := buildContent(in)
	if err != nil {
		return entities.Estimate{}, err
	}

	current, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.ID == "" || current.UserID != userID {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	kept, err := keptImages(current.GalleryImages, in.KeepImages)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(kept)+len(in.Images) > entities.MaxGalleryImages {
		return entities.Estimate{}, ErrTooManyImages
	}

	stamp := strconv.FormatInt(u.now().UnixMilli(), 10)
	keys := make([]string, len(in.Images))
	for i, img := range in.Images {
		keys[i] = fmt.Sprintf("%s/%s-%d.%s", current.ID, stamp, i, imageExt(img.Filename))
	}
	urls, err := u.uploadAll(ctx, keys, in.Images)
	if err != nil {
		return entities.Estimate{}, err
	}
	content.GalleryImages = append(kept, urls...)

	updated, err := u.estimates.UpdateContent(ctx, current.ID, userID, content)
	if err != nil {
		u.cleanup(ctx, keys)
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		u.cleanup(ctx, keys)
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// uploadAll stores files concurrently. urls[i] always belongs to files[i].
// On failure every object that did upload is removed again.
func (u *EstimateAuthoringUseCase) uploadAll(ctx context.Context, keys []string, files []ImageUpload) ([]string, error) {
	urls := make([]string, len(files))
	if len(files) == 0 {
		return urls, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.UploadConcurrency)
	for i := range files {
		g.Go(func() error {
			url, err := u.uploadOne(gctx, keys[i], files[i])
			if err != nil {
				u.metrics.GalleryUploaded("error")
				return fmt.Errorf("upload %s: %w", files[i].Filename, err)
			}
			u.metrics.GalleryUploaded("ok")
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var done []string
		for i, url := range urls {
			if url != "" {
				done = append(done, keys[i])
			}
		}
		u.cleanup(ctx, done)
		return nil, err
	}
	return urls, nil
}

func (u *EstimateAuthoringUseCase) uploadOne(ctx context.Context, key string, f ImageUpload) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return u.storage.Upload(ctx, key, f.ContentType, rc)
}

// cleanup removes orphaned objects. Failures are logged, not returned.
func (u *EstimateAuthoringUseCase) cleanup(ctx context.Context, keys []string) {
	for _, k := range keys {
		if err := u.storage.Delete(context.WithoutCancel(ctx), k); err != nil {
			u.log.Warn("orphaned gallery object", "key", k, "error", err)
		}
	}
}

func (u *EstimateAuthoringUseCase) liffLink(ctx context.Context, userID, token string) string {
	s, err := u.settings.GetLineSettings(ctx, userID)
	if err != nil {
		u.log.Warn("line settings lookup failed", "user_id", userID, "error", err)
		return ""
	}
	base := strings.TrimRight(strings.TrimSpace(s.LiffURL), "/")
	if base == "" {
		return ""
	}
	return base + "/" + token
}

// buildContent runs the plan cards through the authoring reducer and checks
// the remaining form fields.
func buildContent(in EstimateInput) (entities.EstimateContent, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return entities.EstimateContent{}, ErrCustomerNameRequired
	}
	if len(in.Plans) == 0 {
		return entities.EstimateContent{}, fmt.Errorf("%w: %w", ErrInvalidEstimateInput, authoring.ErrPriceRequired)
	}

	first, ok := entities.ParsePlanKey(in.Plans[0].Key)
	if !ok {
		return entities.EstimateContent{}, fmt.Errorf("%w: %w", ErrInvalidEstimateInput, authoring.ErrUnknownPlan)
	}
	d, err := authoring.New(first)
	if err != nil {
		return entities.EstimateContent{}, fmt.Errorf("%w: %w", ErrInvalidEstimateInput, err)
	}

	actions := make([]authoring.Action, 0, len(in.Plans)*4)
	for i, p := range in.Plans {
		key := entities.PlanKey(p.Key)
		if i > 0 {
			actions = append(actions, authoring.AddPlan{Key: key})
		}
		actions = append(actions,
			authoring.EditField{Key: key, Field: authoring.FieldLabel, Value: p.Label},
			authoring.EditField{Key: key, Field: authoring.FieldDescription, Value: p.Description},
			authoring.EditField{Key: key, Field: authoring.FieldPrice, Value: p.Price},
		)
	}
	for _, a := range actions {
		if d, err = authoring.Reduce(d, a); err != nil {
			return entities.EstimateContent{}, fmt.Errorf("%w: %w", ErrInvalidEstimateInput, err)
		}
	}

	set, err := d.Build()
	if err != nil {
		return entities.EstimateContent{}, fmt.Errorf("%w: %w", ErrInvalidEstimateInput, err)
	}
	return entities.EstimateContent{
		CustomerName:       name,
		CustomerPhone:      strings.TrimSpace(in.CustomerPhone),
		Matsu:              set.Matsu,
		Take:               set.Take,
		Ume:                set.Ume,
		Amount:             set.Amount,
		GalleryImages:      []string{},
		GalleryDescription: strings.TrimSpace(in.GalleryDescription),
	}, nil
}

func keptImages(current, keep []string) ([]string, error) {
	owned := make(map[string]bool, len(current))
	for _, c := range current {
		owned[c] = true
	}
	out := make([]string, 0, len(keep))
	seen := make(map[string]bool, len(keep))
	for _, k := range keep {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		if !owned[k] {
			return nil, ErrUnknownKeptImage
		}
		seen[k] = true
		out = append(out, k)
	}
	return out, nil
}

func imageExt(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return "jpg"
	}
	return ext
}
