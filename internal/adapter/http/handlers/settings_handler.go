package handlers

import (
	"errors"
	"net/http"

	request "mitsumori_tsuikyaku/internal/adapter/http/dto/request"
	response "mitsumori_tsuikyaku/internal/adapter/http/dto/response"
	"mitsumori_tsuikyaku/internal/adapter/http/middleware"
	"mitsumori_tsuikyaku/internal/usecase"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "入力が不足しています。", http.StatusBadRequest)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary      Company profile and LINE settings
// @Tags         settings
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.SettingsResponse
// @Router       /dashboard/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(view))
}

// UpdateProfile godoc
// @Summary      Save the company profile
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.ProfileRequest  true  "profile"
// @Success      200  {object}  response.ProfileResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /dashboard/settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.UpdateProfile(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}

// SaveLineSettings godoc
// @Summary      Save LINE channel credentials and LIFF URL
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.LineSettingsRequest  true  "LINE settings"
// @Success      200  {object}  response.LineSettingsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /dashboard/settings/line [put]
func (h *SettingsHandler) SaveLineSettings(c *gin.Context) {
	var payload request.LineSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SaveLineSettings(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineSettings(view))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "ログインが必要です。", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCompanyNameRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "会社名は必須です。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChannelCredsRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "チャネルアクセストークンとチャネルシークレットは必須です。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLiffURL):
		return pkg.NewDomainErrorSimple("INVALID_LIFF_URL", "LIFF URLは https://liff.line.me/ から始まる形式で入力してください。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSealerNotConfigured):
		return pkg.NewDomainError("LINE_SETTINGS_UNAVAILABLE", "LINE連携設定は現在保存できません。", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "サーバーエラーが発生しました。", err, http.StatusInternalServerError)
	}
}
