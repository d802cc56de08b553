package controller

import (
	"net/http"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserListUsecase domain.UserListUsecase
}

func NewUserController(uc domain.UserListUsecase) *UserController {
	return &UserController{UserListUsecase: uc}
}

func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserListUsecase.ListUsers(ctx.Request.Context())
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	SuccessResponse(ctx, "users", users, len(users))
}
