package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/repository"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
	"github.com/noah-isme/escola-api/pkg/middleware/requestid"
)

// Messages shown to API clients.
const (
	msgClassNotFound   = "Turma não encontrada"
	msgTeacherNotFound = "Professor não encontrado"
	msgStudentNotFound = "Aluno não encontrado"

	msgClassRequired  = "Nome, série e ano são obrigatórios"
	msgFieldsRequired = "Todos os campos obrigatórios devem ser preenchidos"
	msgInvalidStatus  = "Status deve ser Ativo ou Inativo"

	msgClassHasStudents = "Não é possível excluir turma com alunos cadastrados"
)

var conflictMessages = map[string]string{
	repository.ConstraintClassName:    "Nome da turma já existe",
	repository.ConstraintTeacherCPF:   "CPF já cadastrado",
	repository.ConstraintTeacherEmail: "Email institucional já cadastrado",
	repository.ConstraintStudentCPF:   "CPF já cadastrado",
}

// storeError classifies a repository failure into the API error taxonomy.
// Unrecognised failures are logged and surface as internal errors carrying the
// store message.
func storeError(ctx context.Context, err error, notFound string, logger *zap.Logger, op string) *appErrors.Error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	if errors.Is(err, repository.ErrHasDependents) {
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, msgClassHasStudents)
	}

	var unique *repository.UniqueViolationError
	if errors.As(err, &unique) {
		message, ok := conflictMessages[unique.Constraint]
		if !ok {
			message = appErrors.ErrConflict.Message + ": " + unique.Field
		}
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, message)
	}

	var fk *repository.ForeignKeyViolationError
	if errors.As(err, &fk) && fk.Constraint == repository.ConstraintStudentClassFK {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgClassNotFound)
	}

	logger.Error(op+" failed", zap.String("request_id", requestid.FromContext(ctx)), zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
}

// outcomeOf labels a mutation result for metrics.
func outcomeOf(err *appErrors.Error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case err.Status >= 500:
		return OutcomeFailed
	default:
		return OutcomeRejected
	}
}

func validationError(err error, message string) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
