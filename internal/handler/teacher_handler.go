package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
	"github.com/noah-isme/escola-api/pkg/response"
)

const msgTeacherNotFound = "Professor não encontrado"

type teacherService interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Search(ctx context.Context, term string) ([]models.Teacher, error)
	Get(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, req service.TeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, id int64, req service.TeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherHandler exposes teacher (professor) endpoints.
type TeacherHandler struct {
	service teacherService
}

// NewTeacherHandler constructs a teacher handler.
func NewTeacherHandler(svc teacherService) *TeacherHandler {
	return &TeacherHandler{service: svc}
}

// List godoc
// @Summary List teachers
// @Tags Professores
// @Produce json
// @Success 200 {array} models.Teacher
// @Router /professores [get]
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// Search godoc
// @Summary Search teachers by name
// @Tags Professores
// @Produce json
// @Param termo path string true "Name fragment"
// @Success 200 {array} models.Teacher
// @Router /professores/buscar/{termo} [get]
func (h *TeacherHandler) Search(c *gin.Context) {
	teachers, err := h.service.Search(c.Request.Context(), c.Param("termo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// Get godoc
// @Summary Get teacher
// @Tags Professores
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Failure 404 {object} response.ErrorBody
// @Router /professores/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", msgTeacherNotFound)
	if !ok {
		return
	}
	teacher, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Create godoc
// @Summary Create teacher
// @Tags Professores
// @Accept json
// @Produce json
// @Param payload body service.TeacherRequest true "Teacher payload"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Router /professores [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req service.TeacherRequest
	if !bindJSON(c, &req) {
		return
	}
	teacher, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher.ID, "Professor cadastrado com sucesso")
}

// Update godoc
// @Summary Update teacher
// @Tags Professores
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param payload body service.TeacherRequest true "Teacher payload"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /professores/{id} [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgTeacherNotFound)
	if !ok {
		return
	}
	var req service.TeacherRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Professor atualizado com sucesso")
}

// Delete godoc
// @Summary Delete teacher
// @Tags Professores
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /professores/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgTeacherNotFound)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Professor excluído com sucesso")
}
