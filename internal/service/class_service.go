package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/models"
)

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
}

// ClassRequest is the create and update payload for a class. ano may arrive
// as a number or a numeric string.
type ClassRequest struct {
	Name  string             `json:"nome" validate:"required"`
	Grade string             `json:"serie" validate:"required"`
	Year  models.FlexibleInt `json:"ano" validate:"required,gt=0"`
}

func (r *ClassRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Grade = strings.TrimSpace(r.Grade)
}

// ClassService coordinates class operations.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns every class ordered by grade and name.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, msgClassNotFound, s.logger, "list classes")
	}
	return classes, nil
}

// Get returns a single class.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, msgClassNotFound, s.logger, "get class")
	}
	return class, nil
}

// Create adds a new class and returns it with its assigned id.
func (s *ClassService) Create(ctx context.Context, req ClassRequest) (*models.Class, error) {
	req.normalize()
	if err := s.validator.Struct(req); err != nil {
		s.metrics.RecordMutation("class", "create", OutcomeRejected)
		return nil, validationError(err, msgClassRequired)
	}

	class := &models.Class{Name: req.Name, Grade: req.Grade, Year: int(req.Year)}
	if err := s.repo.Create(ctx, class); err != nil {
		appErr := storeError(ctx, err, msgClassNotFound, s.logger, "create class")
		s.metrics.RecordMutation("class", "create", outcomeOf(appErr))
		return nil, appErr
	}
	s.metrics.RecordMutation("class", "create", OutcomeSuccess)
	s.logger.Info("class created", zap.Int64("class_id", class.ID), zap.String("name", class.Name))
	return class, nil
}

// Update replaces a class's fields.
func (s *ClassService) Update(ctx context.Context, id int64, req ClassRequest) (*models.Class, error) {
	req.normalize()
	if err := s.validator.Struct(req); err != nil {
		s.metrics.RecordMutation("class", "update", OutcomeRejected)
		return nil, validationError(err, msgClassRequired)
	}

	class := &models.Class{ID: id, Name: req.Name, Grade: req.Grade, Year: int(req.Year)}
	if err := s.repo.Update(ctx, class); err != nil {
		appErr := storeError(ctx, err, msgClassNotFound, s.logger, "update class")
		s.metrics.RecordMutation("class", "update", outcomeOf(appErr))
		return nil, appErr
	}
	s.metrics.RecordMutation("class", "update", OutcomeSuccess)
	s.logger.Info("class updated", zap.Int64("class_id", id))
	return class, nil
}

// Delete removes a class unless students are still enrolled in it.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		appErr := storeError(ctx, err, msgClassNotFound, s.logger, "delete class")
		s.metrics.RecordMutation("class", "delete", outcomeOf(appErr))
		return appErr
	}
	s.metrics.RecordMutation("class", "delete", OutcomeSuccess)
	s.logger.Info("class deleted", zap.Int64("class_id", id))
	return nil
}
