package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/escola-api/pkg/errors"
)

// ErrorBody is the failure contract returned to clients.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageBody acknowledges a mutation. ID is set only for creations.
type MessageBody struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message"`
}

// JSON sends a success response with the payload as the body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with the new identifier and a confirmation message.
func Created(c *gin.Context, id int64, message string) {
	JSON(c, http.StatusCreated, MessageBody{ID: id, Message: message})
}

// Message responds with HTTP 200 and a confirmation message.
func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, MessageBody{Message: message})
}

// Error sends an error response converting the error to the common structure.
// Internal failures carry the underlying cause so operators can see it.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError && appErr.Err != nil {
		message = appErr.Error()
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorBody{Error: message, Code: appErr.Code})
}
