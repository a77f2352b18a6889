package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "mitsumori_tsuikyaku/internal/adapter/http/dto/request"
	response "mitsumori_tsuikyaku/internal/adapter/http/dto/response"
	"mitsumori_tsuikyaku/internal/usecase"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

var errContractPayload = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "サーバーエラーが発生しました。", http.StatusInternalServerError)

// ContractHandler accepts a customer's tentative reservation.
type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a tentative contract
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  request.ContractSubmitRequest  true  "plan and visit slots"
// @Success      200  {object}  response.OKResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contracts/submit [post]
func (h *ContractHandler) Submit(c *gin.Context) {
	var payload request.ContractSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// Valid JSON that is not an object carries no fields.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			c.JSON(errContractPayload.HTTPStatus, errContractPayload.ToHTTPError())
			return
		}
		payload = request.ContractSubmitRequest{}
	}

	if err := h.usecase.Submit(c.Request.Context(), payload.ToSubmission()); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "入力が不足しています。", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "対象の見積が見つかりません。", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractClosed):
		return pkg.NewDomainErrorSimple("CONTRACT_CLOSED", "この見積は受付を終了しています。", http.StatusConflict)
	default:
		return pkg.NewDomainError("STORE_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
