package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"mitsumori_tsuikyaku/internal/config"
	"mitsumori_tsuikyaku/internal/domain/authoring"
	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"
	mock_interfaces "mitsumori_tsuikyaku/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type authoringMocks struct {
	estimates *mock_interfaces.MockIEstimateRepository
	settings  *mock_interfaces.MockISettingsRepository
	storage   *mock_interfaces.MockIGalleryStorage
	tokens    *mock_interfaces.MockITokenGenerator
}

func newAuthoringUseCase(t *testing.T) (*EstimateAuthoringUseCase, authoringMocks) {
	ctrl := gomock.NewController(t)
	m := authoringMocks{
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
		settings:  mock_interfaces.NewMockISettingsRepository(ctrl),
		storage:   mock_interfaces.NewMockIGalleryStorage(ctrl),
		tokens:    mock_interfaces.NewMockITokenGenerator(ctrl),
	}
	cfg := config.Config{BaseURL: "https://mitsumori.example", UploadConcurrency: 2}
	uc := NewEstimateAuthoringUseCase(m.estimates, m.settings, m.storage, m.tokens, cfg, logger.Nop(), nil)
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return uc, m
}

func image(name string) ImageUpload {
	return ImageUpload{
		Filename:    name,
		ContentType: "image/jpeg",
		Open:        func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("jpeg")), nil },
	}
}

func basicInput() EstimateInput {
	return EstimateInput{
		CustomerName: " 山田様 ",
		Plans: []PlanInput{
			{Key: "take", Price: "¥300,000"},
			{Key: "matsu", Label: "特上", Price: "500000"},
		},
	}
}

func TestEstimateAuthoringUseCase_Create_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   func() EstimateInput
		want error
	}{
		{name: "blank customer", in: func() EstimateInput { in := basicInput(); in.CustomerName = " "; return in }, want: ErrCustomerNameRequired},
		{name: "no plans", in: func() EstimateInput { in := basicInput(); in.Plans = nil; return in }, want: authoring.ErrPriceRequired},
		{name: "first price blank", in: func() EstimateInput {
			in := basicInput()
			in.Plans[0].Price = ""
			return in
		}, want: authoring.ErrPriceRequired},
		{name: "bad price", in: func() EstimateInput {
			in := basicInput()
			in.Plans[1].Price = "abc"
			return in
		}, want: authoring.ErrInvalidPrice},
		{name: "duplicate plan", in: func() EstimateInput {
			in := basicInput()
			in.Plans[1].Key = "take"
			return in
		}, want: authoring.ErrPlanAlreadyAdded},
		{name: "unknown first plan", in: func() EstimateInput {
			in := basicInput()
			in.Plans[0].Key = "gold"
			return in
		}, want: authoring.ErrUnknownPlan},
		{name: "too many images", in: func() EstimateInput {
			in := basicInput()
			for i := 0; i < entities.MaxGalleryImages+1; i++ {
				in.Images = append(in.Images, image("a.jpg"))
			}
			return in
		}, want: ErrTooManyImages},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newAuthoringUseCase(t)
			_, err := uc.Create(context.Background(), "owner-1", tc.in())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		uc, _ := newAuthoringUseCase(t)
		_, err := uc.Create(context.Background(), "", basicInput())
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestEstimateAuthoringUseCase_Create(t *testing.T) {
	t.Run("success with gallery", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		in := basicInput()
		in.Images = []ImageUpload{image("front.PNG"), image("side")}

		m.tokens.EXPECT().Generate().Return("tok123", nil)
		m.storage.EXPECT().Upload(gomock.Any(), "owner-1/tok123-0.png", "image/jpeg", gomock.Any()).Return("https://cdn/0", nil)
		m.storage.EXPECT().Upload(gomock.Any(), "owner-1/tok123-1.jpg", "image/jpeg", gomock.Any()).Return("https://cdn/1", nil)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.Token != "tok123" || e.UserID != "owner-1" || e.CustomerName != "山田様" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Amount == nil || *e.Amount != 300000 {
					t.Fatalf("expected amount mirrored from first plan, got %v", e.Amount)
				}
				if e.Matsu.Amount == nil || *e.Matsu.Amount != 500000 || e.Matsu.Label == nil || *e.Matsu.Label != "特上" {
					t.Fatalf("unexpected matsu: %+v", e.Matsu)
				}
				if e.Ume.Offered() {
					t.Fatalf("ume was not active")
				}
				if len(e.GalleryImages) != 2 || e.GalleryImages[0] != "https://cdn/0" || e.GalleryImages[1] != "https://cdn/1" {
					t.Fatalf("unexpected gallery: %v", e.GalleryImages)
				}
				if e.ContractStatus != entities.ContractStatusUnset {
					t.Fatalf("unexpected status %q", e.ContractStatus)
				}
				return e, nil
			},
		)
		m.settings.EXPECT().GetLineSettings(gomock.Any(), "owner-1").Return(entities.LineSettings{LiffURL: "https://liff.line.me/123-abc/"}, nil)

		res, err := uc.Create(context.Background(), "owner-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ShareURL != "https://mitsumori.example/e/tok123" {
			t.Fatalf("unexpected share url %q", res.ShareURL)
		}
		if res.LiffLink != "https://liff.line.me/123-abc/tok123" {
			t.Fatalf("unexpected liff link %q", res.LiffLink)
		}
	})

	t.Run("token collision retries", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)

		gomock.InOrder(
			m.tokens.EXPECT().Generate().Return("dup", nil),
			m.tokens.EXPECT().Generate().Return("fresh", nil),
		)
		gomock.InOrder(
			m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrTokenConflict),
			m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
			),
		)
		m.settings.EXPECT().GetLineSettings(gomock.Any(), "owner-1").Return(entities.LineSettings{}, nil)

		res, err := uc.Create(context.Background(), "owner-1", basicInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estimate.Token != "fresh" || res.LiffLink != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("token attempts exhausted", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)

		m.tokens.EXPECT().Generate().Return("dup", nil).Times(MaxTokenAttempts)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrTokenConflict).Times(MaxTokenAttempts)

		_, err := uc.Create(context.Background(), "owner-1", basicInput())
		if !errors.Is(err, ErrTokenExhausted) {
			t.Fatalf("expected ErrTokenExhausted, got %v", err)
		}
	})

	t.Run("upload failure removes uploaded objects", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		uc.cfg.UploadConcurrency = 1
		in := basicInput()
		in.Images = []ImageUpload{image("a.jpg"), image("b.jpg")}

		m.tokens.EXPECT().Generate().Return("tok", nil)
		m.storage.EXPECT().Upload(gomock.Any(), "owner-1/tok-0.jpg", gomock.Any(), gomock.Any()).Return("https://cdn/a", nil)
		m.storage.EXPECT().Upload(gomock.Any(), "owner-1/tok-1.jpg", gomock.Any(), gomock.Any()).Return("", errors.New("quota")).MaxTimes(1)
		m.storage.EXPECT().Delete(gomock.Any(), "owner-1/tok-0.jpg").Return(nil)

		_, err := uc.Create(context.Background(), "owner-1", in)
		if err == nil || !strings.Contains(err.Error(), "quota") {
			t.Fatalf("expected quota error, got %v", err)
		}
	})

	t.Run("store failure removes gallery", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		in := basicInput()
		in.Images = []ImageUpload{image("a.jpg")}

		var mu sync.Mutex
		var deleted []string
		m.tokens.EXPECT().Generate().Return("tok", nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/a", nil)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))
		m.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
			mu.Lock()
			defer mu.Unlock()
			deleted = append(deleted, key)
			return nil
		})

		_, err := uc.Create(context.Background(), "owner-1", in)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if len(deleted) != 1 || deleted[0] != "owner-1/tok-0.jpg" {
			t.Fatalf("unexpected cleanup: %v", deleted)
		}
	})
}

func TestEstimateAuthoringUseCase_Update(t *testing.T) {
	current := entities.Estimate{
		ID:            "est-1",
		UserID:        "owner-1",
		GalleryImages: []string{"https://cdn/1", "https://cdn/2"},
	}

	t.Run("other owner", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(current, nil)

		_, err := uc.Update(context.Background(), "owner-2", "est-1", basicInput())
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("unknown kept image", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(current, nil)

		in := basicInput()
		in.KeepImages = []string{"https://elsewhere/x"}
		_, err := uc.Update(context.Background(), "owner-1", "est-1", in)
		if !errors.Is(err, ErrUnknownKeptImage) {
			t.Fatalf("expected ErrUnknownKeptImage, got %v", err)
		}
	})

	t.Run("kept plus new over limit", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(current, nil)

		in := basicInput()
		in.KeepImages = current.GalleryImages
		in.Images = []ImageUpload{image("a.jpg"), image("b.jpg"), image("c.jpg"), image("d.jpg")}
		_, err := uc.Update(context.Background(), "owner-1", "est-1", in)
		if !errors.Is(err, ErrTooManyImages) {
			t.Fatalf("expected ErrTooManyImages, got %v", err)
		}
	})

	t.Run("success keeps order", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(current, nil)
		m.storage.EXPECT().Upload(gomock.Any(), "est-1/1717232400000-0.jpg", gomock.Any(), gomock.Any()).Return("https://cdn/3", nil)
		m.estimates.EXPECT().UpdateContent(gomock.Any(), "est-1", "owner-1", gomock.AssignableToTypeOf(entities.EstimateContent{})).DoAndReturn(
			func(_ context.Context, id, userID string, c entities.EstimateContent) (entities.Estimate, error) {
				if len(c.GalleryImages) != 2 || c.GalleryImages[0] != "https://cdn/2" || c.GalleryImages[1] != "https://cdn/3" {
					t.Fatalf("unexpected gallery: %v", c.GalleryImages)
				}
				return entities.Estimate{ID: id, UserID: userID, GalleryImages: c.GalleryImages}, nil
			},
		)

		in := basicInput()
		in.KeepImages = []string{"https://cdn/2"}
		in.Images = []ImageUpload{image("new.jpg")}
		res, err := uc.Update(context.Background(), "owner-1", "est-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "est-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("vanished row cleans up uploads", func(t *testing.T) {
		uc, m := newAuthoringUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(current, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/3", nil)
		m.estimates.EXPECT().UpdateContent(gomock.Any(), "est-1", "owner-1", gomock.Any()).Return(entities.Estimate{}, nil)
		m.storage.EXPECT().Delete(gomock.Any(), "est-1/1717232400000-0.jpg").Return(errors.New("ignored"))

		in := basicInput()
		in.Images = []ImageUpload{image("new.jpg")}
		_, err := uc.Update(context.Background(), "owner-1", "est-1", in)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
