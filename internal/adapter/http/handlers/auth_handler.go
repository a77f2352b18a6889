package handlers

import (
	"errors"
	"net/http"
	"time"

	request "mitsumori_tsuikyaku/internal/adapter/http/dto/request"
	response "mitsumori_tsuikyaku/internal/adapter/http/dto/response"
	"mitsumori_tsuikyaku/internal/adapter/http/middleware"
	"mitsumori_tsuikyaku/internal/usecase"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCredentialsPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "メールアドレスとパスワードを入力してください。", http.StatusBadRequest)

// AuthHandler issues owner sessions. The token is returned in the body and
// set as an HttpOnly cookie.
type AuthHandler struct {
	usecase      usecase.IAuthUseCase
	cookieSecure bool
	now          func() time.Time
}

func NewAuthHandler(uc usecase.IAuthUseCase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{usecase: uc, cookieSecure: cookieSecure, now: time.Now}
}

// SignUp godoc
// @Summary      Create an owner account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.CredentialsRequest  true  "credentials"
// @Success      201  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCredentialsPayload.HTTPStatus, errInvalidCredentialsPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SignUp(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.setSessionCookie(c, session)
	c.JSON(http.StatusCreated, response.FromSession(session))
}

// Login godoc
// @Summary      Log in as an owner
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.CredentialsRequest  true  "credentials"
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCredentialsPayload.HTTPStatus, errInvalidCredentialsPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.setSessionCookie(c, session)
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.OKResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, s usecase.Session) {
	maxAge := int(s.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, s.Token, maxAge, "/", "", h.cookieSecure, true)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "メールアドレスの形式が正しくありません。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "パスワードは6文字以上で入力してください。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "このメールアドレスは既に登録されています。", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "サーバーエラーが発生しました。", err, http.StatusInternalServerError)
	}
}
