package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/models"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error)
	FindByID(ctx context.Context, id int64) (*models.StudentDetail, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentRequest is the create and update payload for a student. RG and
// turma_id are optional; ano_ingresso may arrive as a numeric string.
type StudentRequest struct {
	FullName  string  `json:"nome_completo" validate:"required"`
	BirthDate string  `json:"data_nascimento" validate:"required"`
	Gender    string  `json:"genero" validate:"required"`
	CPF       string  `json:"cpf" validate:"required"`
	RG        *string `json:"rg"`
	AddressPayload
	GuardianName   string             `json:"nome_responsavel" validate:"required"`
	GuardianPhone  string             `json:"telefone_responsavel" validate:"required"`
	GuardianEmail  string             `json:"email_responsavel" validate:"required"`
	ClassID        *int64             `json:"turma_id" validate:"omitempty,gt=0"`
	EnrollmentYear models.FlexibleInt `json:"ano_ingresso" validate:"required,gt=0"`
	Status         string             `json:"status"`
}

// UnmarshalJSON accepts turma_id as a number, a numeric string, "" or null,
// the last two meaning no class.
func (r *StudentRequest) UnmarshalJSON(data []byte) error {
	type plain StudentRequest
	aux := struct {
		*plain
		ClassID *models.FlexibleInt `json:"turma_id"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ClassID = nil
	if aux.ClassID != nil && *aux.ClassID != 0 {
		id := int64(*aux.ClassID)
		r.ClassID = &id
	}
	return nil
}

func (r *StudentRequest) normalize() {
	trimAll(&r.FullName, &r.BirthDate, &r.Gender, &r.CPF, &r.GuardianName, &r.GuardianPhone, &r.GuardianEmail)
	r.AddressPayload.normalize()
	if r.RG != nil {
		rg := strings.TrimSpace(*r.RG)
		if rg == "" {
			r.RG = nil
		} else {
			r.RG = &rg
		}
	}
}

// StudentService coordinates student operations.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(repo studentRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns every student with class details, ordered by name.
func (s *StudentService) List(ctx context.Context) ([]models.StudentDetail, error) {
	return s.list(ctx, models.StudentFilter{})
}

// Search returns students whose name contains term, ignoring case.
func (s *StudentService) Search(ctx context.Context, term string) ([]models.StudentDetail, error) {
	return s.list(ctx, models.StudentFilter{Search: strings.TrimSpace(term)})
}

// ListByClass returns the students enrolled in classID. An unknown class
// yields an empty list.
func (s *StudentService) ListByClass(ctx context.Context, classID int64) ([]models.StudentDetail, error) {
	return s.list(ctx, models.StudentFilter{ClassID: &classID})
}

func (s *StudentService) list(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(ctx, err, msgStudentNotFound, s.logger, "list students")
	}
	return students, nil
}

// Get returns a student with class details.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.StudentDetail, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, msgStudentNotFound, s.logger, "get student")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*models.Student, error) {
	student, appErr := s.build(req)
	if appErr != nil {
		s.metrics.RecordMutation("student", "create", OutcomeRejected)
		return nil, appErr
	}
	if err := s.repo.Create(ctx, student); err != nil {
		appErr := storeError(ctx, err, msgStudentNotFound, s.logger, "create student")
		s.metrics.RecordMutation("student", "create", outcomeOf(appErr))
		return nil, appErr
	}
	s.metrics.RecordMutation("student", "create", OutcomeSuccess)
	s.logger.Info("student created", zap.Int64("student_id", student.ID))
	return student, nil
}

// Update replaces every field of an existing student.
func (s *StudentService) Update(ctx context.Context, id int64, req StudentRequest) (*models.Student, error) {
	student, appErr := s.build(req)
	if appErr != nil {
		s.metrics.RecordMutation("student", "update", OutcomeRejected)
		return nil, appErr
	}
	student.ID = id
	if err := s.repo.Update(ctx, student); err != nil {
		appErr := storeError(ctx, err, msgStudentNotFound, s.logger, "update student")
		s.metrics.RecordMutation("student", "update", outcomeOf(appErr))
		return nil, appErr
	}
	s.metrics.RecordMutation("student", "update", OutcomeSuccess)
	s.logger.Info("student updated", zap.Int64("student_id", id))
	return student, nil
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		appErr := storeError(ctx, err, msgStudentNotFound, s.logger, "delete student")
		s.metrics.RecordMutation("student", "delete", outcomeOf(appErr))
		return appErr
	}
	s.metrics.RecordMutation("student", "delete", OutcomeSuccess)
	s.logger.Info("student deleted", zap.Int64("student_id", id))
	return nil
}

func (s *StudentService) build(req StudentRequest) (*models.Student, *appErrors.Error) {
	req.normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, msgFieldsRequired)
	}
	birth, appErr := parseDateField(req.BirthDate, "data_nascimento")
	if appErr != nil {
		return nil, appErr
	}
	status, appErr := parseStatus(req.Status)
	if appErr != nil {
		return nil, appErr
	}
	return &models.Student{
		FullName:       req.FullName,
		BirthDate:      birth,
		Gender:         req.Gender,
		CPF:            req.CPF,
		RG:             req.RG,
		Address:        req.AddressPayload.model(),
		GuardianName:   req.GuardianName,
		GuardianPhone:  req.GuardianPhone,
		GuardianEmail:  req.GuardianEmail,
		ClassID:        req.ClassID,
		EnrollmentYear: int(req.EnrollmentYear),
		Status:         status,
	}, nil
}
