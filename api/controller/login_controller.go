package controller

import (
	"errors"
	"net/http"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

type LoginController struct {
	LoginUsecase domain.LoginUsecase
}

func NewLoginController(uc domain.LoginUsecase) *LoginController {
	return &LoginController{LoginUsecase: uc}
}

func (c *LoginController) Login(ctx *gin.Context) {
	var request domain.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	response, err := c.LoginUsecase.Login(ctx.Request.Context(), request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, response)
}
