package handlers

import (
	"eduhub/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

func respond(c *gin.Context, statusCode uint, data interface{}, err error) {
	if err != nil {
		msg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &msg,
		})
		return
	}
	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    data,
	})
}

func respondBadRequest(c *gin.Context, err error) {
	respond(c, 400, nil, err)
}
