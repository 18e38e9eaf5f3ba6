package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/escola-api/internal/service"
	"github.com/noah-isme/escola-api/pkg/response"
)

type rosterService interface {
	Export(ctx context.Context, classID int64, format string) (*service.RosterFile, error)
}

// RosterHandler serves class roster downloads.
type RosterHandler struct {
	service rosterService
}

// NewRosterHandler constructs a roster handler.
func NewRosterHandler(svc rosterService) *RosterHandler {
	return &RosterHandler{service: svc}
}

// Export godoc
// @Summary Export the students of a class
// @Tags Turmas
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Class ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /turmas/{id}/alunos/export [get]
func (h *RosterHandler) Export(c *gin.Context) {
	id, ok := pathID(c, "id", msgClassNotFound)
	if !ok {
		return
	}
	file, err := h.service.Export(c.Request.Context(), id, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
