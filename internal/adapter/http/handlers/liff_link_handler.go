package handlers

import (
	"errors"
	"net/http"

	request "mitsumori_tsuikyaku/internal/adapter/http/dto/request"
	response "mitsumori_tsuikyaku/internal/adapter/http/dto/response"
	"mitsumori_tsuikyaku/internal/usecase"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

type LiffLinkHandler struct {
	usecase usecase.ILiffLinkUseCase
}

func NewLiffLinkHandler(uc usecase.ILiffLinkUseCase) *LiffLinkHandler {
	return &LiffLinkHandler{usecase: uc}
}

// Link godoc
// @Summary      Link a LINE user to the estimate behind a token
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  request.LiffLinkRequest  true  "LINE identity"
// @Success      200  {object}  response.OKResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /liff/link [post]
func (h *LiffLinkHandler) Link(c *gin.Context) {
	var payload request.LiffLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// An unreadable body is treated as an empty one.
		payload = request.LiffLinkRequest{}
	}

	if err := h.usecase.Link(c.Request.Context(), payload.ToLink()); err != nil {
		appErr := mapLiffLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

func mapLiffLinkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLinkInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "token と lineUserId は必須です。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "該当する見積が見つかりません。", http.StatusNotFound)
	default:
		return pkg.NewDomainError("STORE_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
