package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mitsumori_tsuikyaku/internal/adapter/http/handlers/mocks"
	"mitsumori_tsuikyaku/internal/adapter/http/middleware"
	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.ISettingsUseCase) *gin.Engine {
		h := NewSettingsHandler(uc)
		r := gin.New()
		r.Use(asOwner("user-1"))
		r.GET("/api/dashboard/settings", h.GetSettings)
		r.PUT("/api/dashboard/settings/profile", h.UpdateProfile)
		r.PUT("/api/dashboard/settings/line", h.SaveLineSettings)
		return r
	}

	t.Run("get never returns credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		uc.EXPECT().Get(gomock.Any(), "user-1").Return(usecase.SettingsView{
			Profile: entities.Profile{CompanyName: "早川工務店"},
			Line:    usecase.LineSettingsView{Linked: true, LiffURL: "https://liff.line.me/1650-abc", LiffID: "1650-abc"},
		}, nil)

		w := httptest.NewRecorder()
		build(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/settings", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `"linked":true`) || strings.Contains(strings.ToLower(body), "secret") {
			t.Fatalf("unexpected response body: %s", body)
		}
	})

	t.Run("company name required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		uc.EXPECT().UpdateProfile(gomock.Any(), "user-1", usecase.ProfileInput{CompanyName: " "}).Return(entities.Profile{}, usecase.ErrCompanyNameRequired)

		req := httptest.NewRequest(http.MethodPut, "/api/dashboard/settings/profile", strings.NewReader(`{"companyName":" "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		build(uc).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "会社名は必須です。") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid liff url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		uc.EXPECT().SaveLineSettings(gomock.Any(), "user-1", gomock.Any()).Return(usecase.LineSettingsView{}, usecase.ErrInvalidLiffURL)

		req := httptest.NewRequest(http.MethodPut, "/api/dashboard/settings/line", strings.NewReader(`{"channelAccessToken":"a","channelSecret":"b","liffUrl":"https://example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		build(uc).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exp := time.Now().Add(time.Hour)

	build := func(uc usecase.IAuthUseCase) *gin.Engine {
		h := NewAuthHandler(uc, true)
		r := gin.New()
		r.POST("/api/auth/signup", h.SignUp)
		r.POST("/api/auth/login", h.Login)
		r.POST("/api/auth/logout", h.Logout)
		return r
	}

	sessionCookie := func(w *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.SessionCookieName {
				return c
			}
		}
		return nil
	}

	t.Run("signup sets cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().SignUp(gomock.Any(), "owner@example.com", "secret123").Return(usecase.Session{UserID: "u1", Token: "jwt", ExpiresAt: exp}, nil)

		w := postJSON(build(uc), "/api/auth/signup", `{"email":"owner@example.com","password":"secret123"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		c := sessionCookie(w)
		if c == nil || c.Value != "jwt" || !c.HttpOnly || !c.Secure {
			t.Fatalf("unexpected session cookie: %+v", c)
		}
	})

	t.Run("signup with taken email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.Session{}, usecase.ErrEmailTaken)

		w := postJSON(build(uc), "/api/auth/signup", `{"email":"owner@example.com","password":"secret123"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("login missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)

		w := postJSON(build(uc), "/api/auth/login", `{"email":"owner@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("login bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "owner@example.com", "wrong-pass").Return(usecase.Session{}, usecase.ErrInvalidCredentials)

		w := postJSON(build(uc), "/api/auth/login", `{"email":"owner@example.com","password":"wrong-pass"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if sessionCookie(w) != nil {
			t.Fatalf("cookie must not be set on failure")
		}
	})

	t.Run("login store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.Session{}, errors.New("dynamodb: timeout"))

		w := postJSON(build(uc), "/api/auth/login", `{"email":"owner@example.com","password":"secret123"}`)
		if w.Code != http.StatusInternalServerError || strings.Contains(w.Body.String(), "dynamodb") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)

		w := postJSON(build(uc), "/api/auth/logout", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		c := sessionCookie(w)
		if c == nil || c.MaxAge >= 0 {
			t.Fatalf("expected expired cookie, got %+v", c)
		}
	})
}
