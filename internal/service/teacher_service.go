package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/models"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// TeacherRequest is the create and update payload for a teacher. Every data
// field is required; status defaults to Ativo.
type TeacherRequest struct {
	FullName  string `json:"nome_completo" validate:"required"`
	BirthDate string `json:"data_nascimento" validate:"required"`
	Gender    string `json:"genero" validate:"required"`
	CPF       string `json:"cpf" validate:"required"`
	RG        string `json:"rg" validate:"required"`
	AddressPayload
	InstitutionalEmail string `json:"email_institucional" validate:"required"`
	Phone              string `json:"telefone" validate:"required"`
	Subjects           string `json:"disciplinas" validate:"required"`
	AcademicBackground string `json:"formacao_academica" validate:"required"`
	AdmissionDate      string `json:"data_admissao" validate:"required"`
	Status             string `json:"status"`
}

func (r *TeacherRequest) normalize() {
	trimAll(&r.FullName, &r.BirthDate, &r.Gender, &r.CPF, &r.RG,
		&r.InstitutionalEmail, &r.Phone, &r.Subjects, &r.AcademicBackground, &r.AdmissionDate)
	r.AddressPayload.normalize()
}

// TeacherService coordinates teacher operations.
type TeacherService struct {
	repo      teacherRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewTeacherService constructs TeacherService.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns every teacher ordered by name.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	return s.list(ctx, models.TeacherFilter{})
}

// Search returns teachers whose name contains term, ignoring case. A blank
// term lists everyone.
func (s *TeacherService) Search(ctx context.Context, term string) ([]models.Teacher, error) {
	return s.list(ctx, models.TeacherFilter{Search: strings.TrimSpace(term)})
}

func (s *TeacherService) list(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(ctx, err, msgTeacherNotFound, s.logger, "list teachers")
	}
	return teachers, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, msgTeacherNotFound, s.logger, "get teacher")
	}
	return teacher, nil
}

// Create registers a new teacher.
func (s *TeacherService) Create(ctx context.Context, req TeacherRequest) (*models.Teacher, error) {
	teacher, appErr := s.build(req)
	if appErr != nil {
		s.metrics.RecordMutation("teacher", "create", OutcomeRejected)
		return nil, appErr
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		appErr := storeError(ctx, err, msgTeacherNotFound, s.logger, "create teacher")
		s.metrics.RecordMutation("teacher", "create", outcomeOf(appErr))
		return nil, appErr
	}
	s.metrics.RecordMutation("teacher", "create", OutcomeSuccess)
	s.logger.Info("teacher created", zap.Int64("teacher_id", teacher.ID))
	return teacher, nil
}

// Update replaces every field of an existing teacher.
func (s *TeacherService) Update(ctx context.Context, id int64, req TeacherRequest) (*models.Teacher, error) {
	teacher, appErr := s.build(req)
	if appErr != nil {
		s.metrics.RecordMutation("teacher", "update", OutcomeRejected)
		return nil, appErr
	}
	teacher.ID = id
	if err := s.repo.Update(ctx, teacher); err != nil {
		appErr := storeError(ctx, err, msgTeacherNotFound, s.logger, "update teacher")
		s.metrics.RecordMutation("teacher", "update", outcomeOf(appErr))
		return nil, appErr
	}
	s.metrics.RecordMutation("teacher", "update", OutcomeSuccess)
	s.logger.Info("teacher updated", zap.Int64("teacher_id", id))
	return teacher, nil
}

// Delete removes a teacher.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		appErr := storeError(ctx, err, msgTeacherNotFound, s.logger, "delete teacher")
		s.metrics.RecordMutation("teacher", "delete", outcomeOf(appErr))
		return appErr
	}
	s.metrics.RecordMutation("teacher", "delete", OutcomeSuccess)
	s.logger.Info("teacher deleted", zap.Int64("teacher_id", id))
	return nil
}

func (s *TeacherService) build(req TeacherRequest) (*models.Teacher, *appErrors.Error) {
	req.normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, msgFieldsRequired)
	}
	birth, appErr := parseDateField(req.BirthDate, "data_nascimento")
	if appErr != nil {
		return nil, appErr
	}
	admission, appErr := parseDateField(req.AdmissionDate, "data_admissao")
	if appErr != nil {
		return nil, appErr
	}
	status, appErr := parseStatus(req.Status)
	if appErr != nil {
		return nil, appErr
	}
	return &models.Teacher{
		FullName:           req.FullName,
		BirthDate:          birth,
		Gender:             req.Gender,
		CPF:                req.CPF,
		RG:                 req.RG,
		Address:            req.AddressPayload.model(),
		InstitutionalEmail: req.InstitutionalEmail,
		Phone:              req.Phone,
		Subjects:           req.Subjects,
		AcademicBackground: req.AcademicBackground,
		AdmissionDate:      admission,
		Status:             status,
	}, nil
}
