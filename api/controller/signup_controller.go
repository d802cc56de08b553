package controller

import (
	"errors"
	"net/http"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

type SignupController struct {
	SignupUsecase domain.SignupUsecase
}

func NewSignupController(uc domain.SignupUsecase) *SignupController {
	return &SignupController{SignupUsecase: uc}
}

func (c *SignupController) Signup(ctx *gin.Context) {
	var request domain.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	response, err := c.SignupUsecase.Signup(ctx.Request.Context(), request)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			ErrorResponse(ctx, http.StatusConflict, "USER_EXISTS", "username already exists")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, response)
}
