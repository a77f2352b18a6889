package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"mitsumori_tsuikyaku/internal/adapter/http/handlers/mocks"
	"mitsumori_tsuikyaku/internal/adapter/http/middleware"
	"mitsumori_tsuikyaku/internal/domain/authoring"
	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asOwner(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetUserID(c, userID)
		c.Next()
	}
}

func newEstimateRouter(h *EstimateHandler) *gin.Engine {
	r := gin.New()
	r.Use(asOwner("user-1"))
	r.GET("/api/dashboard/activity", h.ListActivity)
	r.GET("/api/dashboard/estimates", h.ListEstimates)
	r.GET("/api/dashboard/estimates/:id", h.GetEstimate)
	r.POST("/api/dashboard/estimates", h.CreateEstimate)
	r.PUT("/api/dashboard/estimates/:id", h.UpdateEstimate)
	r.PATCH("/api/dashboard/estimates/:id/close", h.CloseEstimate)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, images map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for name, data := range images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, name))
		h.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(data)
	}
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

func TestEstimateHandler_ReadViews(t *testing.T) {
	gin.SetMode(gin.TestMode)
	amount := int64(120000)

	t.Run("activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewEstimateHandler(dash, mocks.NewMockIEstimateAuthoringUseCase(ctrl), time.UTC, 0)

		dash.EXPECT().ListActivity(gomock.Any(), "user-1").Return([]entities.ActivityItem{
			{Log: entities.AccessLog{ID: "l1", EventType: entities.EventStayPrice}, EstimateID: "est-1", CustomerName: "山田", Amount: &amount},
		}, nil)

		w := httptest.NewRecorder()
		newEstimateRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/activity", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"urgent":true`) || !strings.Contains(w.Body.String(), "¥120,000") {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewEstimateHandler(dash, mocks.NewMockIEstimateAuthoringUseCase(ctrl), time.UTC, 0)

		dash.EXPECT().ListEstimates(gomock.Any(), "user-1").Return(nil, nil)

		w := httptest.NewRecorder()
		newEstimateRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/estimates", nil))
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("detail of another owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewEstimateHandler(dash, mocks.NewMockIEstimateAuthoringUseCase(ctrl), time.UTC, 0)

		dash.EXPECT().GetEstimate(gomock.Any(), "user-1", "est-9").Return(usecase.EstimateDetail{}, usecase.ErrEstimateNotFound)

		w := httptest.NewRecorder()
		newEstimateRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/estimates/est-9", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewEstimateHandler(dash, mocks.NewMockIEstimateAuthoringUseCase(ctrl), time.UTC, 0)

		dash.EXPECT().CloseEstimate(gomock.Any(), "user-1", "est-1").Return(entities.Estimate{ID: "est-1", ContractStatus: entities.ContractStatusClosed}, nil)

		w := httptest.NewRecorder()
		newEstimateRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/dashboard/estimates/est-1/close", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"contractStatus":"closed"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateHandler(mocks.NewMockIDashboardUseCase(ctrl), mocks.NewMockIEstimateAuthoringUseCase(ctrl), time.UTC, 0)

		req := httptest.NewRequest(http.MethodPost, "/api/dashboard/estimates", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newEstimateRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIEstimateAuthoringUseCase(ctrl)
		h := NewEstimateHandler(mocks.NewMockIDashboardUseCase(ctrl), auth, time.UTC, 1<<20)

		auth.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, in usecase.EstimateInput) (usecase.CreatedEstimate, error) {
			if in.CustomerName != "山田" || len(in.Plans) != 1 || in.Plans[0].Price != "98000" {
				t.Errorf("unexpected input: %+v", in)
			}
			if len(in.Images) != 1 {
				t.Errorf("expected one image, got %d", len(in.Images))
			} else {
				rc, err := in.Images[0].Open()
				if err != nil {
					t.Errorf("open image: %v", err)
				} else {
					data, _ := io.ReadAll(rc)
					rc.Close()
					if string(data) != "jpeg-bytes" {
						t.Errorf("unexpected image data %q", data)
					}
				}
			}
			return usecase.CreatedEstimate{
				Estimate: entities.Estimate{ID: "est-1", Token: "V1StGXR8_Z"},
				ShareURL: "https://example.com/e/V1StGXR8_Z",
			}, nil
		})

		body, ct := multipartBody(t, map[string]string{
			"customerName": "山田",
			"plans":        `[{"key":"take","price":98000}]`,
		}, map[string][]byte{"roof.jpg": []byte("jpeg-bytes")})
		req := httptest.NewRequest(http.MethodPost, "/api/dashboard/estimates", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		newEstimateRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"shareUrl":"https://example.com/e/V1StGXR8_Z"`) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("upload too large", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateHandler(mocks.NewMockIDashboardUseCase(ctrl), mocks.NewMockIEstimateAuthoringUseCase(ctrl), time.UTC, 64)

		body, ct := multipartBody(t, map[string]string{"customerName": "山田"}, map[string][]byte{"big.jpg": bytes.Repeat([]byte("x"), 4096)})
		req := httptest.NewRequest(http.MethodPost, "/api/dashboard/estimates", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		newEstimateRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	mapped := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing customer", usecase.ErrCustomerNameRequired, http.StatusBadRequest, "顧客名を入力してください"},
		{"missing first price", fmt.Errorf("%w: %w", usecase.ErrInvalidEstimateInput, authoring.ErrPriceRequired), http.StatusBadRequest, "最初のプラン金額を入力してください"},
		{"too many images", usecase.ErrTooManyImages, http.StatusBadRequest, "画像は5枚までです。"},
		{"token exhausted", usecase.ErrTokenExhausted, http.StatusServiceUnavailable, ""},
	}
	for _, tt := range mapped {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			auth := mocks.NewMockIEstimateAuthoringUseCase(ctrl)
			h := NewEstimateHandler(mocks.NewMockIDashboardUseCase(ctrl), auth, time.UTC, 1<<20)

			auth.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(usecase.CreatedEstimate{}, tt.err)

			body, ct := multipartBody(t, map[string]string{"customerName": "x", "plans": `[{"key":"take"}]`}, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/dashboard/estimates", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()
			newEstimateRouter(h).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantError != "" && !strings.Contains(w.Body.String(), tt.wantError) {
				t.Fatalf("expected error %q, got %s", tt.wantError, w.Body.String())
			}
		})
	}
}

func TestEstimateHandler_UpdateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	auth := mocks.NewMockIEstimateAuthoringUseCase(ctrl)
	h := NewEstimateHandler(mocks.NewMockIDashboardUseCase(ctrl), auth, time.UTC, 1<<20)

	auth.EXPECT().Update(gomock.Any(), "user-1", "est-1", gomock.Any()).DoAndReturn(func(_ context.Context, _, _ string, in usecase.EstimateInput) (entities.Estimate, error) {
		if len(in.KeepImages) != 2 || in.KeepImages[1] != "https://cdn/b.jpg" {
			t.Errorf("unexpected kept images: %v", in.KeepImages)
		}
		return entities.Estimate{ID: "est-1", GalleryImages: in.KeepImages}, nil
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("customerName", "山田")
	_ = mw.WriteField("plans", `[{"key":"matsu","price":"300000"}]`)
	_ = mw.WriteField("keepImages", "https://cdn/a.jpg")
	_ = mw.WriteField("keepImages", "https://cdn/b.jpg")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/estimates/est-1", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	newEstimateRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
