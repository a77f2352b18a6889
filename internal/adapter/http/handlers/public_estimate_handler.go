package handlers

import (
	"errors"
	"net/http"
	"time"

	response "mitsumori_tsuikyaku/internal/adapter/http/dto/response"
	"mitsumori_tsuikyaku/internal/usecase"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

// PublicEstimateHandler serves the customer page data. The token in the path
// is the only key it accepts.
type PublicEstimateHandler struct {
	usecase usecase.IPublicEstimateUseCase
	loc     *time.Location
}

func NewPublicEstimateHandler(uc usecase.IPublicEstimateUseCase, loc *time.Location) *PublicEstimateHandler {
	return &PublicEstimateHandler{usecase: uc, loc: loc}
}

// GetByToken godoc
// @Summary      Public estimate by token
// @Tags         public
// @Produce      json
// @Param        token  path  string  true  "public token"
// @Success      200  {object}  response.PublicEstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{token} [get]
func (h *PublicEstimateHandler) GetByToken(c *gin.Context) {
	estimate, err := h.usecase.ResolveByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapPublicEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPublicEstimate(estimate, h.loc))
}

// GetLiffEntry godoc
// @Summary      LIFF entry target for a token
// @Tags         public
// @Produce      json
// @Param        token  path  string  true  "public token"
// @Success      200  {object}  response.LiffEntryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /liff-entry/{token} [get]
func (h *PublicEstimateHandler) GetLiffEntry(c *gin.Context) {
	entry, err := h.usecase.ResolveLiffEntry(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapPublicEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLiffEntry(entry))
}

func mapPublicEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "見積が見つかりません。", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "サーバーエラーが発生しました。", err, http.StatusInternalServerError)
	}
}
