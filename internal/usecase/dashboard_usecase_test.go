package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	mock_interfaces "mitsumori_tsuikyaku/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_ListEstimates(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil, nil, logger.Nop())
		_, err := uc.ListEstimates(context.Background(), "")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewDashboardUseCase(estimates, nil, nil, logger.Nop())

		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		estimates.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return([]entities.Estimate{
			{ID: "old", CreatedAt: base},
			{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "mid", CreatedAt: base.Add(time.Hour)},
		}, nil)

		list, err := uc.ListEstimates(context.Background(), "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list[0].ID != "new" || list[1].ID != "mid" || list[2].ID != "old" {
			t.Fatalf("unexpected order: %v %v %v", list[0].ID, list[1].ID, list[2].ID)
		}
	})
}

func TestDashboardUseCase_ListActivity(t *testing.T) {
	t.Run("no estimates skips the log query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		logs := mock_interfaces.NewMockIAccessLogRepository(ctrl)
		uc := NewDashboardUseCase(estimates, logs, nil, logger.Nop())

		estimates.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(nil, nil)

		items, err := uc.ListActivity(context.Background(), "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty list, got %v", items)
		}
	})

	t.Run("joins events to estimates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		logs := mock_interfaces.NewMockIAccessLogRepository(ctrl)
		uc := NewDashboardUseCase(estimates, logs, nil, logger.Nop())

		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		estimates.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return([]entities.Estimate{
			{ID: "est-1", CustomerName: "佐藤様", Amount: i64(100000), CreatedAt: base},
			{ID: "est-2", CustomerName: "鈴木様", CreatedAt: base.Add(time.Hour)},
		}, nil)
		logs.EXPECT().ListRecentByEstimateIDs(gomock.Any(), gomock.Len(2), ActivityLimit).Return([]entities.AccessLog{
			{ID: "l1", EstimateID: "est-1", EventType: entities.EventOpen, CreatedAt: base.Add(time.Minute)},
			{ID: "l2", EstimateID: "est-2", EventType: entities.EventStayPrice, CreatedAt: base.Add(3 * time.Hour)},
			{ID: "l3", EstimateID: "foreign", EventType: entities.EventOpen, CreatedAt: base.Add(4 * time.Hour)},
		}, nil)

		items, err := uc.ListActivity(context.Background(), "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].Log.ID != "l2" || items[0].CustomerName != "鈴木様" {
			t.Fatalf("unexpected first item: %+v", items[0])
		}
		if items[1].Amount == nil || *items[1].Amount != 100000 {
			t.Fatalf("unexpected second item: %+v", items[1])
		}
	})

	t.Run("log error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		logs := mock_interfaces.NewMockIAccessLogRepository(ctrl)
		uc := NewDashboardUseCase(estimates, logs, nil, logger.Nop())

		estimates.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return([]entities.Estimate{{ID: "est-1"}}, nil)
		logs.EXPECT().ListRecentByEstimateIDs(gomock.Any(), []string{"est-1"}, ActivityLimit).Return(nil, errors.New("db"))

		_, err := uc.ListActivity(context.Background(), "owner-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDashboardUseCase_GetEstimate(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil, nil, logger.Nop())
		_, err := uc.GetEstimate(context.Background(), "owner-1", " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("other owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewDashboardUseCase(estimates, nil, nil, logger.Nop())

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", UserID: "owner-2"}, nil)

		_, err := uc.GetEstimate(context.Background(), "owner-1", "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		logs := mock_interfaces.NewMockIAccessLogRepository(ctrl)
		contacts := mock_interfaces.NewMockIEstimateContactRepository(ctrl)
		uc := NewDashboardUseCase(estimates, logs, contacts, logger.Nop())

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", UserID: "owner-1"}, nil)
		contacts.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.EstimateContact{{EstimateID: "est-1", LineUserID: "U1"}}, nil)
		logs.EXPECT().ListRecentByEstimateIDs(gomock.Any(), []string{"est-1"}, ActivityLimit).Return([]entities.AccessLog{{ID: "l1"}}, nil)

		detail, err := uc.GetEstimate(context.Background(), "owner-1", "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Estimate.ID != "est-1" || len(detail.Contacts) != 1 || len(detail.Events) != 1 {
			t.Fatalf("unexpected detail: %+v", detail)
		}
	})

	t.Run("contact error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		logs := mock_interfaces.NewMockIAccessLogRepository(ctrl)
		contacts := mock_interfaces.NewMockIEstimateContactRepository(ctrl)
		uc := NewDashboardUseCase(estimates, logs, contacts, logger.Nop())

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", UserID: "owner-1"}, nil)
		contacts.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, errors.New("db"))
		logs.EXPECT().ListRecentByEstimateIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := uc.GetEstimate(context.Background(), "owner-1", "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDashboardUseCase_CloseEstimate(t *testing.T) {
	t.Run("not owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewDashboardUseCase(estimates, nil, nil, logger.Nop())

		estimates.EXPECT().Close(gomock.Any(), "est-1", "owner-1").Return(entities.Estimate{}, nil)

		_, err := uc.CloseEstimate(context.Background(), "owner-1", "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewDashboardUseCase(estimates, nil, nil, logger.Nop())

		estimates.EXPECT().Close(gomock.Any(), "est-1", "owner-1").Return(entities.Estimate{ID: "est-1", ContractStatus: entities.ContractStatusClosed}, nil)

		e, err := uc.CloseEstimate(context.Background(), "owner-1", " est-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.IsClosed() {
			t.Fatalf("expected closed estimate")
		}
	})
}
