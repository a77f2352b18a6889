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

var errTrackPayload = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal Server Error", http.StatusInternalServerError)

type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// Track godoc
// @Summary      Record an engagement event
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  request.TrackRequest  true  "event"
// @Success      200  {object}  response.SuccessResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /track [post]
func (h *TrackingHandler) Track(c *gin.Context) {
	var payload request.TrackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errTrackPayload.HTTPStatus, errTrackPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Track(c.Request.Context(), payload.EstimateID, payload.EventType, c.Request.UserAgent()); err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// Every failure is a 500 carrying the raw message; an empty row is refused
// the same way the store would refuse it.
func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackingInput):
		return pkg.NewDomainError("INVALID_EVENT", err.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("STORE_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
