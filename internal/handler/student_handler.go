package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
	"github.com/noah-isme/escola-api/pkg/response"
)

const msgStudentNotFound = "Aluno não encontrado"

type studentService interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
	Search(ctx context.Context, term string) ([]models.StudentDetail, error)
	ListByClass(ctx context.Context, classID int64) ([]models.StudentDetail, error)
	Get(ctx context.Context, id int64) (*models.StudentDetail, error)
	Create(ctx context.Context, req service.StudentRequest) (*models.Student, error)
	Update(ctx context.Context, id int64, req service.StudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// StudentHandler exposes student (aluno) endpoints.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc studentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// List godoc
// @Summary List students with their class
// @Tags Alunos
// @Produce json
// @Success 200 {array} models.StudentDetail
// @Router /alunos [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// ListByClass godoc
// @Summary List students enrolled in a class
// @Tags Alunos
// @Produce json
// @Param turmaId path int true "Class ID"
// @Success 200 {array} models.StudentDetail
// @Router /alunos/turma/{turmaId} [get]
func (h *StudentHandler) ListByClass(c *gin.Context) {
	classID, ok := pathID(c, "turmaId", msgClassNotFound)
	if !ok {
		return
	}
	students, err := h.service.ListByClass(c.Request.Context(), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Search godoc
// @Summary Search students by name
// @Tags Alunos
// @Produce json
// @Param termo path string true "Name fragment"
// @Success 200 {array} models.StudentDetail
// @Router /alunos/buscar/{termo} [get]
func (h *StudentHandler) Search(c *gin.Context) {
	students, err := h.service.Search(c.Request.Context(), c.Param("termo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get student
// @Tags Alunos
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentDetail
// @Failure 404 {object} response.ErrorBody
// @Router /alunos/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", msgStudentNotFound)
	if !ok {
		return
	}
	student, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Create godoc
// @Summary Create student
// @Tags Alunos
// @Accept json
// @Produce json
// @Param payload body service.StudentRequest true "Student payload"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Router /alunos [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.StudentRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student.ID, "Aluno cadastrado com sucesso")
}

// Update godoc
// @Summary Update student
// @Tags Alunos
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body service.StudentRequest true "Student payload"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /alunos/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", msgStudentNotFound)
	if !ok {
		return
	}
	var req service.StudentRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Aluno atualizado com sucesso")
}

// Delete godoc
// @Summary Delete student
// @Tags Alunos
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /alunos/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", msgStudentNotFound)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Aluno excluído com sucesso")
}
