package controller

import (
	"github.com/gin-gonic/gin"
)

func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(200, gin.H{
		key:     data,
		"count": count,
	})
}
