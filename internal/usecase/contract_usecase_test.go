package usecase

import (
	"context"
	"errors"
	"testing"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"
	mock_interfaces "mitsumori_tsuikyaku/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSubmission() ContractSubmission {
	return ContractSubmission{
		EstimateID: "est-1",
		Token:      "tok",
		PlanKey:    "take",
		Slots:      []string{"2024-05-01 午前", " ", "2024-05-02 午後"},
	}
}

func TestContractUseCase_Submit_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *ContractSubmission)
	}{
		{name: "missing estimate id", mutate: func(s *ContractSubmission) { s.EstimateID = "" }},
		{name: "missing token", mutate: func(s *ContractSubmission) { s.Token = "" }},
		{name: "unknown plan", mutate: func(s *ContractSubmission) { s.PlanKey = "gold" }},
		{name: "plan is case sensitive", mutate: func(s *ContractSubmission) { s.PlanKey = "Take" }},
		{name: "no slots", mutate: func(s *ContractSubmission) { s.Slots = nil }},
		{name: "only blank slots", mutate: func(s *ContractSubmission) { s.Slots = []string{"", "  "} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No expectations: the store must not be touched.
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
			uc := NewContractUseCase(repo, logger.Nop(), nil)

			s := validSubmission()
			tc.mutate(&s)
			if err := uc.Submit(context.Background(), s); !errors.Is(err, ErrInvalidContractInput) {
				t.Fatalf("expected ErrInvalidContractInput, got %v", err)
			}
		})
	}
}

func TestContractUseCase_Submit(t *testing.T) {
	t.Run("lookup error reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewContractUseCase(repo, logger.Nop(), nil)

		repo.EXPECT().FindByIDAndToken(gomock.Any(), "est-1", "tok").Return(entities.Estimate{}, errors.New("db"))

		if err := uc.Submit(context.Background(), validSubmission()); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("id and token mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewContractUseCase(repo, logger.Nop(), nil)

		repo.EXPECT().FindByIDAndToken(gomock.Any(), "est-1", "tok").Return(entities.Estimate{}, nil)

		if err := uc.Submit(context.Background(), validSubmission()); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("closed estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewContractUseCase(repo, logger.Nop(), nil)

		repo.EXPECT().FindByIDAndToken(gomock.Any(), "est-1", "tok").Return(entities.Estimate{ID: "est-1", ContractStatus: entities.ContractStatusClosed}, nil)

		if err := uc.Submit(context.Background(), validSubmission()); !errors.Is(err, ErrContractClosed) {
			t.Fatalf("expected ErrContractClosed, got %v", err)
		}
	})

	t.Run("closed between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewContractUseCase(repo, logger.Nop(), nil)

		repo.EXPECT().FindByIDAndToken(gomock.Any(), "est-1", "tok").Return(entities.Estimate{ID: "est-1"}, nil)
		repo.EXPECT().UpdateContract(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{}, interfaces.ErrContractClosed)

		if err := uc.Submit(context.Background(), validSubmission()); !errors.Is(err, ErrContractClosed) {
			t.Fatalf("expected ErrContractClosed, got %v", err)
		}
	})

	t.Run("update error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewContractUseCase(repo, logger.Nop(), nil)

		repo.EXPECT().FindByIDAndToken(gomock.Any(), "est-1", "tok").Return(entities.Estimate{ID: "est-1"}, nil)
		repo.EXPECT().UpdateContract(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{}, errors.New("write failed"))

		err := uc.Submit(context.Background(), validSubmission())
		if err == nil || err.Error() != "write failed" {
			t.Fatalf("expected write failed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewContractUseCase(repo, logger.Nop(), nil)

		repo.EXPECT().FindByIDAndToken(gomock.Any(), "est-1", "tok").Return(entities.Estimate{ID: "est-1", ContractStatus: entities.ContractStatusTentative}, nil)
		repo.EXPECT().UpdateContract(gomock.Any(), "est-1", gomock.AssignableToTypeOf(entities.ContractUpdate{})).DoAndReturn(
			func(_ context.Context, id string, u entities.ContractUpdate) (entities.Estimate, error) {
				if u.Plan != entities.PlanTake {
					t.Fatalf("unexpected plan %q", u.Plan)
				}
				if len(u.Slots) != 2 || u.Slots[0] != "2024-05-01 午前" || u.Slots[1] != "2024-05-02 午後" {
					t.Fatalf("unexpected slots %v", u.Slots)
				}
				return entities.Estimate{ID: id, ContractStatus: entities.ContractStatusTentative, ContractPlan: u.Plan, ContractSlots: u.Slots}, nil
			},
		)

		if err := uc.Submit(context.Background(), validSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("padded ids are matched as sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewContractUseCase(repo, logger.Nop(), nil)

		repo.EXPECT().FindByIDAndToken(gomock.Any(), " est-1 ", " tok").Return(entities.Estimate{}, nil)

		s := validSubmission()
		s.EstimateID = " est-1 "
		s.Token = " tok"
		if err := uc.Submit(context.Background(), s); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
