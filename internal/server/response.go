package server

import "github.com/gin-gonic/gin"

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	OK    bool         `json:"ok"`
	Error errorPayload `json:"error"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error: errorPayload{Code: code, Message: message},
	})
}
