package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const DefaultErrorMessage = "Internal server error"

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the whole body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an ErrorBody with the given status.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

// NotFound sends 404 with message.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest sends 400 with message.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError sends 500 with the default message.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, DefaultErrorMessage)
}
