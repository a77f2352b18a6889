package handlers

import (
	"errors"
	"net/http"
	"time"

	request "mitsumori_tsuikyaku/internal/adapter/http/dto/request"
	response "mitsumori_tsuikyaku/internal/adapter/http/dto/response"
	"mitsumori_tsuikyaku/internal/adapter/http/middleware"
	"mitsumori_tsuikyaku/internal/domain/authoring"
	"mitsumori_tsuikyaku/internal/usecase"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimateForm = pkg.NewDomainErrorSimple("INVALID_REQUEST", "入力が不足しています。", http.StatusBadRequest)
	errUploadTooLarge      = pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "画像のサイズが大きすぎます。", http.StatusRequestEntityTooLarge)
)

// EstimateHandler serves the owner's dashboard: read views plus estimate
// authoring. Every route sits behind middleware.RequireOwner.
type EstimateHandler struct {
	dashboard      usecase.IDashboardUseCase
	authoring      usecase.IEstimateAuthoringUseCase
	loc            *time.Location
	maxUploadBytes int64
}

func NewEstimateHandler(
	dashboard usecase.IDashboardUseCase,
	authoring usecase.IEstimateAuthoringUseCase,
	loc *time.Location,
	maxUploadBytes int64,
) *EstimateHandler {
	return &EstimateHandler{dashboard: dashboard, authoring: authoring, loc: loc, maxUploadBytes: maxUploadBytes}
}

// ListActivity godoc
// @Summary      Owner activity timeline
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.ActivityResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /dashboard/activity [get]
func (h *EstimateHandler) ListActivity(c *gin.Context) {
	items, err := h.dashboard.ListActivity(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromActivity(items, h.loc))
}

// ListEstimates godoc
// @Summary      Owner estimates, newest first
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.EstimateResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /dashboard/estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.dashboard.ListEstimates(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list, h.loc))
}

// GetEstimate godoc
// @Summary      One owner estimate with contacts and events
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "estimate id"
// @Success      200  {object}  response.EstimateDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /dashboard/estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	detail, err := h.dashboard.GetEstimate(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDetail(detail, h.loc))
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Tags         dashboard
// @Accept       mpfd
// @Produce      json
// @Security     Bearer
// @Param        customerName        formData  string  true   "customer name"
// @Param        customerPhone       formData  string  false  "customer phone"
// @Param        galleryDescription  formData  string  false  "gallery description"
// @Param        plans               formData  string  true   "JSON array of {key,label,description,price}"
// @Param        images              formData  file    false  "gallery images (max 5)"
// @Success      201  {object}  response.CreatedEstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /dashboard/estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	in, appErr := h.bindForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.authoring.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCreatedEstimate(created, h.loc))
}

// UpdateEstimate godoc
// @Summary      Edit an estimate
// @Tags         dashboard
// @Accept       mpfd
// @Produce      json
// @Security     Bearer
// @Param        id          path      string  true   "estimate id"
// @Param        keepImages  formData  string  false  "existing image URLs to keep"
// @Success      200  {object}  response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /dashboard/estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	in, appErr := h.bindForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.authoring.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated, h.loc))
}

// CloseEstimate godoc
// @Summary      Close an estimate
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /dashboard/estimates/{id}/close [patch]
func (h *EstimateHandler) CloseEstimate(c *gin.Context) {
	closed, err := h.dashboard.CloseEstimate(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(closed, h.loc))
}

func (h *EstimateHandler) bindForm(c *gin.Context) (usecase.EstimateInput, *pkg.AppError) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return usecase.EstimateInput{}, errUploadTooLarge
		}
		return usecase.EstimateInput{}, errInvalidEstimateForm
	}
	in, err := request.ParseEstimateForm(form)
	if err != nil {
		return usecase.EstimateInput{}, mapEstimateError(err)
	}
	return in, nil
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "ログインが必要です。", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "見積IDが正しくありません。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "見積が見つかりません。", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNameRequired):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "顧客名を入力してください", http.StatusBadRequest)
	case errors.Is(err, authoring.ErrPriceRequired):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "最初のプラン金額を入力してください", http.StatusBadRequest)
	case errors.Is(err, authoring.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "金額は0以上の整数で入力してください", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateInput), errors.Is(err, request.ErrInvalidPlansField):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "プランの内容が正しくありません。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooManyImages):
		return pkg.NewDomainErrorSimple("TOO_MANY_IMAGES", "画像は5枚までです。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownKeptImage), errors.Is(err, request.ErrUnsupportedImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "画像の指定が正しくありません。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTokenExhausted):
		return pkg.NewDomainError("TOKEN_UNAVAILABLE", "見積URLを発行できませんでした。時間をおいて再度お試しください。", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "サーバーエラーが発生しました。", err, http.StatusInternalServerError)
	}
}
